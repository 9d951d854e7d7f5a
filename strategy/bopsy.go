package strategy

import (
	"math/rand"

	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/turn"
)

// Bopsy is the "bop-happy" reference scorer: it favors long moves and
// moves that land a fresh bop or bear a checker off, picking uniformly
// among ties at every ply.
type Bopsy struct {
	rnd *rand.Rand
}

// NewBopsy builds a Bopsy strategy seeded from the runtime's global source.
func NewBopsy() *Bopsy {
	return &Bopsy{rnd: rand.New(rand.NewSource(rand.Int63()))}
}

// PickTurn scores the whole forest against b (the board the turn starts
// from) and color, then walks down picking the max-scoring child at every
// ply, breaking ties uniformly.
func (s *Bopsy) PickTurn(b board.Board, color board.Color, root *turn.Node) []board.Move {
	if len(root.Children) == 0 {
		return nil
	}
	var bopped [26]bool
	for _, c := range root.Children {
		scoreSubtree(c, b, color, bopped)
	}

	node := root
	var out []board.Move
	for len(node.Children) > 0 {
		node = pickMaxScoring(s.rnd, node.Children)
		out = append(out, node.Move)
	}
	return out
}

func pickMaxScoring(rnd *rand.Rand, children []*turn.Node) *turn.Node {
	best := children[0]
	bestScore, _ := best.GetScore()
	var tied []*turn.Node
	tied = append(tied, best)
	for _, c := range children[1:] {
		score, _ := c.GetScore()
		switch {
		case score > bestScore:
			bestScore = score
			tied = tied[:0]
			tied = append(tied, c)
		case score == bestScore:
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[rnd.Intn(len(tied))]
}

// reflectPoint mirrors a single world point into black's local frame; bar
// and home are fixed points, interior points map via 25-p. Duplicated
// here (rather than imported from view) to keep strategy decoupled from
// the tree-generation layer it is handed results from.
func reflectPoint(p uint8) uint8 {
	if p == board.Bar || p == board.Home {
		return p
	}
	return board.Home - p
}

// moveDistance returns how many pips a move advances, in the mover's own
// local frame. Black's world-coordinate moves run in the opposite
// direction of white's, so a raw End-Start would underflow for black;
// reflecting back into the local (always-increasing) frame first avoids
// that and gives a color-independent magnitude.
func moveDistance(color board.Color, m board.Move) float64 {
	if color == board.Black {
		return float64(reflectPoint(m.End) - reflectPoint(m.Start))
	}
	return float64(m.End - m.Start)
}

// scoreSubtree assigns every node under the given root-child its score:
// the move's own contribution (distance plus any bop/bear-off bonus) plus
// the best score achievable among its children. b is the board state
// immediately before node.Move is played; bopped tracks which landing
// points have already earned a first-bop bonus along this path.
func scoreSubtree(node *turn.Node, b board.Board, color board.Color, bopped [26]bool) float64 {
	landing := node.Move.End
	own := moveDistance(color, node.Move)

	if landing == board.Home {
		own += 10
	} else if !bopped[landing] && b.CountOccurrences(color.Opponent(), landing) == 1 {
		own += float64(board.Home - landing)
		bopped[landing] = true
	}

	if len(node.Children) == 0 {
		node.SetScore(own)
		return own
	}

	next := b
	next.MakeMove(color, node.Move)

	best := scoreSubtree(node.Children[0], next, color, bopped)
	for _, c := range node.Children[1:] {
		if cs := scoreSubtree(c, next, color, bopped); cs > best {
			best = cs
		}
	}

	total := own + best
	node.SetScore(total)
	return total
}
