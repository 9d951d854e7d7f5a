package tournament

import (
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jackhoeg/backgammon/admin"
	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/strategy"
)

// SingleElim runs a power-of-two bracket: each round pairs consecutive
// players, plays every pair concurrently, and advances the winners.
type SingleElim struct {
	players []agent.Agent
	policy  admin.Policy
	strat   strategy.Name
	log     zerolog.Logger

	champion agent.Agent
}

// NewSingleElim builds a bracket over players, padding to the next power
// of two with local fillers of the given strategy if needed. strat also
// backs any cheater's PolicyReplace stand-in.
func NewSingleElim(players []agent.Agent, policy admin.Policy, strat strategy.Name, log zerolog.Logger) *SingleElim {
	return &SingleElim{players: padToPow2(players, strat), policy: policy, strat: strat, log: log}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func padToPow2(players []agent.Agent, strat strategy.Name) []agent.Agent {
	target := nextPow2(len(players))
	padded := make([]agent.Agent, len(players), target)
	copy(padded, players)
	for i := len(players); i < target; i++ {
		padded = append(padded, fillerPlayer(fillerName(i), strat))
	}
	return padded
}

// ModerateTournament plays every round to completion, round by round, so
// that all of a round's matches finish before the next round pairs up —
// concurrency lives within a round, never across rounds.
func (s *SingleElim) ModerateTournament() error {
	round := s.players
	for len(round) > 1 {
		winners := make([]agent.Agent, len(round)/2)

		var g errgroup.Group
		g.SetLimit(len(round) / 2)
		for i := 0; i < len(round); i += 2 {
			slot := i / 2
			p1, p2 := round[i], round[i+1]
			g.Go(func() error {
				winners[slot], _ = playMatch(p1, p2, s.policy, s.strat, s.log)
				return nil
			})
		}
		_ = g.Wait()

		next := winners[:0]
		for _, w := range winners {
			if w != nil {
				next = append(next, w)
			}
		}
		round = next
	}

	if len(round) == 1 {
		s.champion = round[0]
	}
	return nil
}

// ReportWinner returns the champion's name, or false if the bracket ended
// with no survivor.
func (s *SingleElim) ReportWinner() interface{} {
	if s.champion == nil {
		return false
	}
	return s.champion.GetName()
}
