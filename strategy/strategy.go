// Package strategy implements the scorers that choose a concrete turn from
// the pruned forest a view produces: an in-process decision function handed
// to a local player.
package strategy

import (
	"math/rand"

	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/turn"
)

// Strategy picks one root-to-leaf path of root and returns it as an
// ordered move sequence. b and color describe the position the turn
// starts from, needed by scorers that reason about bops and home
// distance. An empty forest yields an empty sequence.
type Strategy interface {
	PickTurn(b board.Board, color board.Color, root *turn.Node) []board.Move
}

// Name identifies a strategy in tournament configuration and logs.
type Name string

const (
	NameRando Name = "rando"
	NameBopsy Name = "bopsy"
	NameSmart Name = "smart"
)

// New constructs the named strategy, falling back to Rando for an unknown
// or empty name.
func New(name Name) Strategy {
	switch name {
	case NameBopsy:
		return NewBopsy()
	case NameSmart:
		return NewSmart()
	default:
		return NewRando()
	}
}

// Rando uniformly picks a child at every ply until it reaches a leaf.
type Rando struct {
	rnd *rand.Rand
}

// NewRando builds a Rando strategy seeded from the runtime's global source.
func NewRando() *Rando {
	return &Rando{rnd: rand.New(rand.NewSource(rand.Int63()))}
}

func (s *Rando) PickTurn(_ board.Board, _ board.Color, root *turn.Node) []board.Move {
	node := root
	var out []board.Move
	for len(node.Children) > 0 {
		node = node.Children[s.rnd.Intn(len(node.Children))]
		out = append(out, node.Move)
	}
	return out
}
