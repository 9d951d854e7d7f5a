package agent

import (
	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/player"
)

// Local adapts a trusted in-process player.Player to the Agent interface.
type Local struct {
	p *player.Player
}

// NewLocal wraps p as an Agent.
func NewLocal(p *player.Player) *Local {
	return &Local{p: p}
}

func (l *Local) StartGame(color board.Color, oppName string) error {
	return l.p.StartGame(color, oppName)
}

func (l *Local) GetName() string {
	return l.p.GetName()
}

func (l *Local) GetTurn(b board.Board, dice []uint8) []board.Move {
	return l.p.GetTurn(b, dice)
}

func (l *Local) ValidateTurn(b board.Board, dice []uint8, moves []board.Move) bool {
	return l.p.ValidateTurn(b, dice, moves)
}

func (l *Local) EndGame(b board.Board, won bool) error {
	return l.p.EndGame(b, won)
}

func (l *Local) HasCheated() bool {
	return l.p.HasCheated()
}

func (l *Local) GetColor() board.Color {
	return l.p.GetColor()
}

func (l *Local) Duplicate() Agent {
	return &Local{p: l.p.Duplicate()}
}
