package strategy

import (
	"math/rand"

	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/turn"
)

// Weights for the smart leaf evaluator. Not canonical — any
// monotone-equivalent scheme is acceptable; these were picked to make
// point-building and blot safety matter roughly as much as raw racing
// progress and bop value already captured by the aggressive scorer.
const (
	weightPointBuilt   = 3.0
	weightStackPenalty = 2.0
	weightBlotThreat   = 4.0
)

// Smart combines the aggressive (bopsy) scorer's running/bopping bonus
// with a leaf evaluator that rewards sound board shape: made points,
// cleared overstacks, and blots out of direct-shot range.
type Smart struct {
	rnd *rand.Rand
}

// NewSmart builds a Smart strategy seeded from the runtime's global source.
func NewSmart() *Smart {
	return &Smart{rnd: rand.New(rand.NewSource(rand.Int63()))}
}

func (s *Smart) PickTurn(b board.Board, color board.Color, root *turn.Node) []board.Move {
	if len(root.Children) == 0 {
		return nil
	}
	var bopped [26]bool
	for _, c := range root.Children {
		smartScoreSubtree(c, b, color, bopped)
	}

	node := root
	var out []board.Move
	for len(node.Children) > 0 {
		node = pickMaxScoring(s.rnd, node.Children)
		out = append(out, node.Move)
	}
	return out
}

func smartScoreSubtree(node *turn.Node, b board.Board, color board.Color, bopped [26]bool) float64 {
	landing := node.Move.End
	own := moveDistance(color, node.Move)

	if landing == board.Home {
		own += 10
	} else if !bopped[landing] && b.CountOccurrences(color.Opponent(), landing) == 1 {
		own += float64(board.Home - landing)
		bopped[landing] = true
	}

	next := b
	next.MakeMove(color, node.Move)

	if len(node.Children) == 0 {
		own += boardShapeScore(next, color)
		node.SetScore(own)
		return own
	}

	best := smartScoreSubtree(node.Children[0], next, color, bopped)
	for _, c := range node.Children[1:] {
		if cs := smartScoreSubtree(c, next, color, bopped); cs > best {
			best = cs
		}
	}

	total := own + best
	node.SetScore(total)
	return total
}

// boardShapeScore rewards made points, penalizes overstacked points that
// should be clearing out, and penalizes blots sitting in direct-shot range
// of an enemy checker behind them.
func boardShapeScore(b board.Board, color board.Color) float64 {
	mover, _ := sidePositions(b, color)

	var score float64
	for p := uint8(1); p < board.Home; p++ {
		n := board.CountOccurrences(mover, p)
		switch {
		case n >= 2 && n <= 3:
			score += weightPointBuilt
		case n > 3:
			score -= weightStackPenalty * float64(n-3)
		case n == 1:
			if threats := directShotThreats(b, color, p); threats > 0 {
				score -= weightBlotThreat * float64(threats)
			}
		}
	}
	return score
}

func sidePositions(b board.Board, color board.Color) (mover, enemy *board.Positions) {
	if color == board.Black {
		return &b.Black, &b.White
	}
	return &b.White, &b.Black
}

// directShotThreats counts how many of the distances 1..6 behind the
// mover's blot at p hold at least one enemy checker, measured in the
// enemy's own direction of travel: black runs toward decreasing world points, white toward
// increasing ones, so "behind" p means the opposite side in each case.
func directShotThreats(b board.Board, color board.Color, p uint8) int {
	_, enemy := sidePositions(b, color)
	count := 0
	for d := uint8(1); d <= 6; d++ {
		var behind uint8
		if color == board.White {
			if p+d > board.Home-1 {
				continue
			}
			behind = p + d
		} else {
			if d >= p {
				continue
			}
			behind = p - d
		}
		if board.CountOccurrences(enemy, behind) > 0 {
			count++
		}
	}
	return count
}
