// Package agent realizes the engine's player capability as two tagged
// variants over a common interface: a trusted in-process Local agent and
// an untrusted Remote agent speaking the wire protocol. Neither subclasses
// the other; both satisfy Agent.
package agent

import (
	"sync"

	"github.com/jackhoeg/backgammon/board"
)

// Agent is the uniform capability surface the administrator drives a
// match through, regardless of whether the player behind it is local code
// or a socket peer.
type Agent interface {
	StartGame(color board.Color, oppName string) error
	GetName() string
	GetTurn(b board.Board, dice []uint8) []board.Move
	ValidateTurn(b board.Board, dice []uint8, moves []board.Move) bool
	EndGame(b board.Board, won bool) error
	HasCheated() bool
	GetColor() board.Color
	Duplicate() Agent
}

// cheatFlag is a sticky, mutex-guarded "has this peer ever cheated" bit.
// Once set it never clears; every read after the first write observes it.
type cheatFlag struct {
	mu      sync.Mutex
	cheated bool
}

func (f *cheatFlag) set() {
	f.mu.Lock()
	f.cheated = true
	f.mu.Unlock()
}

func (f *cheatFlag) get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cheated
}
