// Package player implements the local (in-process) player: a name, color,
// and strategy wired together against the view and strategy packages to
// answer the engine's turn requests without touching a network.
package player

import (
	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/strategy"
	"github.com/jackhoeg/backgammon/view"
)

// Player is a trusted, in-process agent: the strategy it wraps is asked
// for a turn and whatever it returns is accepted without re-validation.
type Player struct {
	name       string
	color      board.Color
	inProgress bool
	strat      strategy.Strategy
}

// New builds a local player with the given display name and decision
// strategy.
func New(name string, strat strategy.Strategy) *Player {
	return &Player{name: name, strat: strat}
}

// StartGame records the assigned color and marks the player in-progress.
func (p *Player) StartGame(color board.Color, _ string) error {
	p.color = color
	p.inProgress = true
	return nil
}

// GetName returns the player's display name.
func (p *Player) GetName() string {
	return p.name
}

// AssignName overwrites the display name, used when filling tournament
// brackets with anonymous default players.
func (p *Player) AssignName(name string) {
	p.name = name
}

// GetColor returns the color assigned at StartGame.
func (p *Player) GetColor() board.Color {
	return p.color
}

// InProgress reports whether StartGame has run without a matching
// EndGame.
func (p *Player) InProgress() bool {
	return p.inProgress
}

// GetTurn builds the legal-move forest for b/dice from the player's
// current color and asks the strategy to choose a path through it.
func (p *Player) GetTurn(b board.Board, dice []uint8) []board.Move {
	root := view.GenerateTree(b, p.color, dice)
	return p.strat.PickTurn(b, p.color, root)
}

// ValidateTurn always succeeds: local players are trusted, having
// produced the move themselves via GetTurn.
func (p *Player) ValidateTurn(board.Board, []uint8, []board.Move) bool {
	return true
}

// EndGame clears the in-progress flag.
func (p *Player) EndGame(board.Board, bool) error {
	p.inProgress = false
	return nil
}

// HasCheated is always false: a local player cannot violate the protocol
// it doesn't speak.
func (p *Player) HasCheated() bool {
	return false
}

// Duplicate returns an independent handle sharing this player's name and
// strategy, with its own color/in-progress state ready for a fresh game.
func (p *Player) Duplicate() *Player {
	return &Player{name: p.name, strat: p.strat}
}
