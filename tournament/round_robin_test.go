package tournament

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/jackhoeg/backgammon/admin"
	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/player"
	"github.com/jackhoeg/backgammon/strategy"
)

func TestRoundRobinEveryoneAccumulatesADecision(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	r := NewRoundRobin(localPlayers(names...), admin.PolicyEndGame, strategy.NameRando, zerolog.Nop())
	if err := r.ModerateTournament(); err != nil {
		t.Fatalf("ModerateTournament() error = %v", err)
	}

	report, ok := r.ReportWinner().([]Standing)
	if !ok {
		t.Fatalf("ReportWinner() type = %T, want []Standing", r.ReportWinner())
	}
	if len(report) != len(names) {
		t.Fatalf("len(report) = %d, want %d", len(report), len(names))
	}

	// Odd player count: each of the 5 players sits out exactly one of the
	// 5 rounds, so every player has exactly 4 decided games.
	for _, s := range report {
		if s.Wins+s.Losses != 4 {
			t.Errorf("player %q played %d games, want 4", s.Name, s.Wins+s.Losses)
		}
	}

	for i := 1; i < len(report); i++ {
		if report[i].Wins < report[i-1].Wins {
			t.Fatalf("report not sorted ascending by wins: %+v", report)
		}
	}
}

func TestRoundRobinEvenCountPlaysNMinusOneRounds(t *testing.T) {
	r := NewRoundRobin(localPlayers("A", "B", "C", "D"), admin.PolicyEndGame, strategy.NameRando, zerolog.Nop())
	if err := r.ModerateTournament(); err != nil {
		t.Fatalf("ModerateTournament() error = %v", err)
	}

	report := r.ReportWinner().([]Standing)
	for _, s := range report {
		if s.Wins+s.Losses != 3 {
			t.Errorf("player %q played %d games, want 3", s.Name, s.Wins+s.Losses)
		}
	}
}

// alwaysCheats reports itself cheated from the outset (so the administrator
// catches it at game startup) and returns a bogus move if asked for a turn,
// standing in for a remote peer that misbehaves immediately.
type alwaysCheats struct {
	*agent.Local
}

func (c *alwaysCheats) GetTurn(board.Board, []uint8) []board.Move {
	return []board.Move{{Start: 1, End: 9}}
}

func (c *alwaysCheats) ValidateTurn(board.Board, []uint8, []board.Move) bool {
	return false
}

func (c *alwaysCheats) HasCheated() bool {
	return true
}

func (c *alwaysCheats) Duplicate() agent.Agent {
	return &alwaysCheats{Local: agent.NewLocal(player.New(c.GetName(), strategy.NewRando()))}
}

// TestRoundRobinCreditsTheReplacedSeatNotTheOriginalOpponent guards against
// crediting a PolicyReplace stand-in's win to the wrong slot: the winning
// agent.Agent PolicyReplace hands back is a fresh replacement object,
// identical to neither original participant, so attribution must go
// through admin.Winner(), not pointer identity.
func TestRoundRobinCreditsTheReplacedSeatNotTheOriginalOpponent(t *testing.T) {
	cheater := &alwaysCheats{Local: agent.NewLocal(player.New("Cheater", strategy.NewRando()))}
	honest := agent.NewLocal(player.New("Honest", strategy.NewRando()))

	sawCheaterSeatWin := false
	for i := 0; i < 40; i++ {
		r := NewRoundRobin([]agent.Agent{cheater, honest}, admin.PolicyReplace, strategy.NameRando, zerolog.Nop())
		if err := r.ModerateTournament(); err != nil {
			t.Fatalf("ModerateTournament() error = %v", err)
		}
		report := r.ReportWinner().([]Standing)
		var cheaterRow Standing
		for _, s := range report {
			if s.Wins+s.Losses != 1 {
				t.Fatalf("each seat should have exactly one decided game: %+v", report)
			}
			if s.Name == "Cheater" {
				cheaterRow = s
			}
		}
		if cheaterRow.Wins == 1 {
			sawCheaterSeatWin = true
			break
		}
	}
	if !sawCheaterSeatWin {
		t.Fatalf("the cheater's replaced seat never won across 40 trials; " +
			"attribution is likely still defaulting every win to the other slot")
	}
}
