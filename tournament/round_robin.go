package tournament

import (
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jackhoeg/backgammon/admin"
	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/strategy"
)

// Standing is one row of the final round-robin report.
type Standing struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// MarshalJSON renders a standing as the wire's [name, wins, losses]
// triple rather than a keyed object.
func (s Standing) MarshalJSON() ([]byte, error) {
	return jsonMarshalTriple(s.Name, s.Wins, s.Losses)
}

// RoundRobin plays every player against every other exactly once, using
// the classic circle method to build the schedule.
type RoundRobin struct {
	players []agent.Agent
	policy  admin.Policy
	strat   strategy.Name
	log     zerolog.Logger

	wins, losses []int
}

// NewRoundRobin builds a schedule over players. No padding: an odd player
// count gets a bye each round via a ghost seat in the rotation. strat backs
// any cheater's PolicyReplace stand-in.
func NewRoundRobin(players []agent.Agent, policy admin.Policy, strat strategy.Name, log zerolog.Logger) *RoundRobin {
	return &RoundRobin{
		players: players,
		policy:  policy,
		strat:   strat,
		log:     log,
		wins:    make([]int, len(players)),
		losses:  make([]int, len(players)),
	}
}

// ModerateTournament plays every round's matches concurrently, but rounds
// themselves run one after another so that a cheater flag raised in round
// r is observed before round r+1's matches are dispatched.
func (r *RoundRobin) ModerateTournament() error {
	n := len(r.players)
	if n < 2 {
		return nil
	}

	m := n
	ghost := -1
	if m%2 != 0 {
		ghost = m
		m++
	}

	rotation := make([]int, m)
	for i := range rotation {
		rotation[i] = i
	}

	for round := 0; round < m-1; round++ {
		type pairing struct{ a, b int }
		var pairs []pairing
		for i := 0; i < m/2; i++ {
			a, b := rotation[i], rotation[m-1-i]
			if a == ghost || b == ghost {
				continue
			}
			pairs = append(pairs, pairing{a, b})
		}

		var g errgroup.Group
		g.SetLimit(len(pairs))
		for _, p := range pairs {
			p := p
			g.Go(func() error {
				one := r.players[p.a].Duplicate()
				two := r.players[p.b].Duplicate()
				_, winner := playMatch(one, two, r.policy, r.strat, r.log)
				switch winner {
				case admin.WinnerNone:
					r.losses[p.a]++
					r.losses[p.b]++
				case admin.WinnerPlayerOne:
					r.wins[p.a]++
					r.losses[p.b]++
				case admin.WinnerPlayerTwo:
					r.wins[p.b]++
					r.losses[p.a]++
				}
				return nil
			})
		}
		_ = g.Wait()

		last := rotation[m-1]
		copy(rotation[2:], rotation[1:m-1])
		rotation[1] = last
	}
	return nil
}

// ReportWinner returns every player's (name, wins, losses), sorted
// ascending by wins — the champion appears last. This preserves the
// existing engine's output ordering rather than "fixing" it.
func (r *RoundRobin) ReportWinner() interface{} {
	standings := make([]Standing, len(r.players))
	for i, p := range r.players {
		standings[i] = Standing{Name: p.GetName(), Wins: r.wins[i], Losses: r.losses[i]}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins < standings[j].Wins
	})
	return standings
}
