package strategy

import (
	"testing"

	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/view"
)

func TestRandoAlwaysReturnsALeafPath(t *testing.T) {
	b := board.New()
	root := view.GenerateTree(b, board.White, []uint8{3, 4})
	s := NewRando()

	got := s.PickTurn(b, board.White, root)
	if !view.ValidateTurn(root, got) {
		t.Fatalf("Rando produced an unvalidatable turn: %v", got)
	}
}

func TestRandoEmptyForestYieldsEmptyTurn(t *testing.T) {
	var b board.Board
	b.Black[0], b.Black[1] = board.Bar, board.Bar
	for i := 2; i < board.NumCheckers; i++ {
		b.Black[i] = 10
	}
	// white holds black's local points 4 and 5 (world 21 and 20).
	b.White = board.Positions{12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 20, 20, 21, 21}

	root := view.GenerateTree(b, board.Black, []uint8{4, 5})
	s := NewRando()
	got := s.PickTurn(b, board.Black, root)
	if len(got) != 0 {
		t.Fatalf("expected empty turn on empty forest, got %v", got)
	}
}

func TestBopsyPrefersTheBoppingMove(t *testing.T) {
	var b board.Board
	b.White = board.Positions{1, 12, 12, 12, 12, 12, 17, 17, 17, 19, 19, 19, 19, 19, 19}
	// a lone black blot sits exactly 4 pips ahead of white's checker at 1.
	b.Black = board.Positions{5, 8, 8, 8, 13, 13, 13, 13, 13, 24, 24, 24, 24, 24, 24}

	root := view.GenerateTree(b, board.White, []uint8{4, 6})
	s := NewBopsy()
	got := s.PickTurn(b, board.White, root)

	bopped := false
	for _, mv := range got {
		if mv == (board.Move{Start: 1, End: 5}) {
			bopped = true
		}
	}
	if !bopped {
		t.Fatalf("expected Bopsy to take the available bop, got %v", got)
	}
}

func TestNewDefaultsToRando(t *testing.T) {
	if _, ok := New("").(*Rando); !ok {
		t.Fatalf("New(\"\") did not return a *Rando")
	}
	if _, ok := New(NameBopsy).(*Bopsy); !ok {
		t.Fatalf("New(bopsy) did not return a *Bopsy")
	}
	if _, ok := New(NameSmart).(*Smart); !ok {
		t.Fatalf("New(smart) did not return a *Smart")
	}
}
