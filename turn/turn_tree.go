// Package turn implements the turn tree: the move-by-move search tree a
// player's legal plays are organized into before the deepest, highest-value
// branches are selected and handed to a strategy.
package turn

import "github.com/jackhoeg/backgammon/board"

// Node is one ply of a turn tree. Children represent the legal continuations
// after Move is played; a leaf (no children) is either a dead end or the
// last die of the roll. Score is unset until a strategy records one with
// SetScore.
type Node struct {
	Move     board.Move
	Children []*Node
	isRoot   bool
	score    float64
	hasScore bool
}

// NewNode creates a leaf node for mve.
func NewNode(mve board.Move) *Node {
	return &Node{Move: mve}
}

// NewRoot creates the sentinel root of a turn tree. The root carries no
// move of its own; only its descendants' moves form a play.
func NewRoot() *Node {
	return &Node{isRoot: true}
}

// AddChild attaches child as a continuation of n.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// SetScore records a strategy's evaluation of the position reached by
// following n (and its ancestors).
func (n *Node) SetScore(score float64) {
	n.score = score
	n.hasScore = true
}

// GetScore returns the node's recorded score and whether one was set.
func (n *Node) GetScore() (float64, bool) {
	return n.score, n.hasScore
}

// ComputeDepth returns the length of the longest root-to-leaf path under n,
// counting n itself. A bare leaf has depth 1.
func (n *Node) ComputeDepth() int {
	if len(n.Children) == 0 {
		return 1
	}
	best := 0
	for _, c := range n.Children {
		if d := c.ComputeDepth(); d > best {
			best = d
		}
	}
	return best + 1
}

// Prune removes every child subtree whose depth is less than the maximum
// depth among siblings, enforcing the rule that a player must use as many
// dice as any legal sequence allows.
func (n *Node) Prune() {
	if len(n.Children) == 0 {
		return
	}
	best := 0
	depths := make([]int, len(n.Children))
	for i, c := range n.Children {
		depths[i] = c.ComputeDepth()
		if depths[i] > best {
			best = depths[i]
		}
	}
	kept := n.Children[:0]
	for i, c := range n.Children {
		if depths[i] == best {
			c.Prune()
			kept = append(kept, c)
		}
	}
	n.Children = kept
}

// FlipTree mirrors every move in the tree via flip, used to translate a
// tree generated in the mover's normalized perspective back to world
// coordinates (or vice versa).
func (n *Node) FlipTree(flip func(board.Move) board.Move) {
	if !n.isRoot {
		n.Move = flip(n.Move)
	}
	for _, c := range n.Children {
		c.FlipTree(flip)
	}
}

// NumPaths returns the number of distinct root-to-leaf paths under n.
func (n *Node) NumPaths() int {
	if len(n.Children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += c.NumPaths()
	}
	return total
}

// ActualTreeSize returns the total number of nodes in the subtree rooted
// at n, including n.
func (n *Node) ActualTreeSize() int {
	total := 1
	for _, c := range n.Children {
		total += c.ActualTreeSize()
	}
	return total
}

// ToArray walks one root-to-leaf path (the pathIndex-th in depth-first
// order) and returns its moves in order. An empty tree (root with no
// children and a zero-value Move) yields an empty play.
func (n *Node) ToArray(pathIndex int) []board.Move {
	var out []board.Move
	n.addToArray(pathIndex, &out)
	return out
}

func (n *Node) addToArray(pathIndex int, out *[]board.Move) int {
	if !n.isRoot {
		*out = append(*out, n.Move)
	}
	if len(n.Children) == 0 {
		return pathIndex
	}
	for _, c := range n.Children {
		paths := c.NumPaths()
		if pathIndex < paths {
			return c.addToArray(pathIndex, out)
		}
		pathIndex -= paths
	}
	return pathIndex
}

// Leaves returns every leaf node under n along with the move sequence that
// reaches it, in depth-first order. The root's own (empty) move is never
// included.
func (n *Node) Leaves() [][]board.Move {
	if len(n.Children) == 0 {
		if n.isRoot {
			return [][]board.Move{{}}
		}
		return [][]board.Move{{n.Move}}
	}
	var out [][]board.Move
	for _, c := range n.Children {
		for _, path := range c.Leaves() {
			var full []board.Move
			if !n.isRoot {
				full = append(full, n.Move)
			}
			full = append(full, path...)
			out = append(out, full)
		}
	}
	return out
}
