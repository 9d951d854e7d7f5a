package turn

import (
	"testing"

	"github.com/jackhoeg/backgammon/board"
)

func m(start, end uint8) board.Move {
	return board.Move{Start: start, End: end}
}

func TestComputeDepth(t *testing.T) {
	leaf := NewNode(m(1, 2))
	root := NewRoot()
	root.AddChild(leaf)
	if got := root.ComputeDepth(); got != 2 {
		t.Fatalf("ComputeDepth() = %d, want 2", got)
	}

	deep := NewNode(m(2, 3))
	leaf.AddChild(deep)
	if got := root.ComputeDepth(); got != 3 {
		t.Fatalf("ComputeDepth() = %d, want 3", got)
	}
}

func TestPruneKeepsOnlyDeepestBranches(t *testing.T) {
	root := NewRoot()

	shallow := NewNode(m(1, 2))
	root.AddChild(shallow)

	deepA := NewNode(m(3, 4))
	deepA.AddChild(NewNode(m(4, 5)))
	root.AddChild(deepA)

	deepB := NewNode(m(6, 7))
	deepB.AddChild(NewNode(m(7, 8)))
	root.AddChild(deepB)

	root.Prune()

	if len(root.Children) != 2 {
		t.Fatalf("Prune() left %d children, want 2 (the depth-2 branches)", len(root.Children))
	}
	for _, c := range root.Children {
		if c.Move == shallow.Move {
			t.Fatalf("Prune() kept the shallow branch")
		}
	}
}

func TestNumPathsAndToArray(t *testing.T) {
	root := NewRoot()
	a := NewNode(m(1, 2))
	b := NewNode(m(1, 3))
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(NewNode(m(2, 4)))
	a.AddChild(NewNode(m(2, 5)))

	if got := root.NumPaths(); got != 3 {
		t.Fatalf("NumPaths() = %d, want 3", got)
	}

	path := root.ToArray(0)
	want := []board.Move{m(1, 2), m(2, 4)}
	if len(path) != len(want) || path[0] != want[0] || path[1] != want[1] {
		t.Fatalf("ToArray(0) = %v, want %v", path, want)
	}

	last := root.ToArray(2)
	if len(last) != 1 || last[0] != m(1, 3) {
		t.Fatalf("ToArray(2) = %v, want [%v]", last, m(1, 3))
	}
}

func TestLeavesOnEmptyRoot(t *testing.T) {
	root := NewRoot()
	leaves := root.Leaves()
	if len(leaves) != 1 || len(leaves[0]) != 0 {
		t.Fatalf("Leaves() on empty root = %v, want one empty play", leaves)
	}
}

func TestFlipTree(t *testing.T) {
	root := NewRoot()
	child := NewNode(m(5, 10))
	root.AddChild(child)

	flip := func(mv board.Move) board.Move {
		return board.Move{Start: 25 - mv.Start, End: 25 - mv.End}
	}
	root.FlipTree(flip)

	if child.Move != m(20, 15) {
		t.Fatalf("FlipTree() child move = %v, want %v", child.Move, m(20, 15))
	}
}
