// Package tournament implements the two pairing orchestrators — single
// elimination and round robin — on top of the admin package's per-game
// moderator, plus the shared accept phase that turns incoming TCP
// connections into remote player agents.
package tournament

import (
	"fmt"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jackhoeg/backgammon/admin"
	"github.com/jackhoeg/backgammon/agent"
	"github.com/jackhoeg/backgammon/player"
	"github.com/jackhoeg/backgammon/strategy"
	"github.com/jackhoeg/backgammon/wire"
)

// Tournament is the common interface both schedulers satisfy.
type Tournament interface {
	// ModerateTournament runs every match to completion. Blocking.
	ModerateTournament() error
	// ReportWinner returns the JSON-encodable final result.
	ReportWinner() interface{}
}

// AcceptPlayers blocks until exactly count TCP connections have arrived
// on ln, wrapping each as a remote player agent in accept order.
func AcceptPlayers(ln net.Listener, count int, log zerolog.Logger) ([]agent.Agent, error) {
	agents := make([]agent.Agent, 0, count)
	for i := 0; i < count; i++ {
		conn, err := ln.Accept()
		if err != nil {
			return nil, errors.Wrap(err, "tournament: accept connection")
		}
		agents = append(agents, agent.NewRemote(wire.NewCodec(conn), log))
	}
	return agents, nil
}

// fillerPlayer builds a local player of the given strategy, used to pad a
// single-elimination bracket.
func fillerPlayer(name string, strat strategy.Name) agent.Agent {
	return agent.NewLocal(player.New(name, strategy.New(strat)))
}

// seedGen feeds every concurrently-running match its own private
// *rand.Rand: math/rand.Rand is not safe for concurrent use, so each
// match gets a freshly seeded generator instead of sharing one.
var (
	seedMu  sync.Mutex
	seedGen = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func newMatchRand() *rand.Rand {
	seedMu.Lock()
	seed := seedGen.Int63()
	seedMu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// playMatch moderates one game between a and b and returns both the
// winning handle (nil if neither survived) and the winner relative to
// (a, b) — callers that need to credit a or b specifically must use the
// latter, since PolicyReplace can hand back an agent that is neither a
// nor b by identity.
func playMatch(a, b agent.Agent, policy admin.Policy, replacementStrategy strategy.Name, log zerolog.Logger) (agent.Agent, admin.Winner) {
	adm := admin.New(a, b, policy, replacementStrategy, newMatchRand(), log)
	adm.Moderate()
	return adm.WinningAgent(), adm.Winner()
}

func fillerName(i int) string {
	return fmt.Sprintf("Filler_%d", i)
}
