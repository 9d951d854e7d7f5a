package tournament

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/jackhoeg/backgammon/admin"
	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/player"
	"github.com/jackhoeg/backgammon/strategy"
)

func localPlayers(names ...string) []agent.Agent {
	agents := make([]agent.Agent, len(names))
	for i, name := range names {
		agents[i] = agent.NewLocal(player.New(name, strategy.NewRando()))
	}
	return agents
}

func TestPadToPow2FillsWithNamedFillers(t *testing.T) {
	padded := padToPow2(localPlayers("A", "B", "C"), strategy.NameRando)
	if len(padded) != 4 {
		t.Fatalf("len(padded) = %d, want 4", len(padded))
	}
	if padded[3].GetName() != fillerName(3) {
		t.Fatalf("padded[3].GetName() = %q, want %q", padded[3].GetName(), fillerName(3))
	}
}

func TestSingleElimReachesAChampion(t *testing.T) {
	s := NewSingleElim(localPlayers("A", "B", "C", "D"), admin.PolicyEndGame, strategy.NameRando, zerolog.Nop())
	if err := s.ModerateTournament(); err != nil {
		t.Fatalf("ModerateTournament() error = %v", err)
	}

	name, ok := s.ReportWinner().(string)
	if !ok || name == "" {
		t.Fatalf("ReportWinner() = %v, want a non-empty champion name", s.ReportWinner())
	}
}

func TestSingleElimNoSurvivorsReportsFalse(t *testing.T) {
	s := &SingleElim{log: zerolog.Nop()}
	if got := s.ReportWinner(); got != false {
		t.Fatalf("ReportWinner() with no champion = %v, want false", got)
	}
}
