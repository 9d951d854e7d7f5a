// Package view builds the per-turn, per-player local perspective of a
// board and generates the pruned turn-tree of legal move sequences that
// perspective admits.
package view

import (
	"github.com/jackhoeg/backgammon/board"
	"github.com/jackhoeg/backgammon/turn"
)

// HomeEdge is the lowest local point at which a player may begin bearing
// off: once every checker sits at or past this point, the home phase
// applies.
const HomeEdge uint8 = 19

// ReflectPoint mirrors a single world point into (or out of) black's local
// frame. Bar and home are fixed points; interior points map via 25-p. The
// function is its own inverse.
func ReflectPoint(p uint8) uint8 {
	if p == board.Bar || p == board.Home {
		return p
	}
	return board.Home - p
}

// ReflectMove mirrors both ends of a move via ReflectPoint.
func ReflectMove(m board.Move) board.Move {
	return board.Move{Start: ReflectPoint(m.Start), End: ReflectPoint(m.End)}
}

// reflectPositions mirrors every point of pos and restores sort order.
func reflectPositions(pos board.Positions) board.Positions {
	var out board.Positions
	for i, p := range pos {
		out[i] = ReflectPoint(p)
	}
	sortPositions(&out)
	return out
}

func sortPositions(pos *board.Positions) {
	for i := 1; i < board.NumCheckers; i++ {
		v := pos[i]
		j := i - 1
		for j >= 0 && pos[j] > v {
			pos[j+1] = pos[j]
			j--
		}
		pos[j+1] = v
	}
}

// frequencyOf builds a 26-slot occupancy count, indexed by point.
func frequencyOf(pos board.Positions) [26]uint8 {
	var freq [26]uint8
	for _, p := range pos {
		freq[p]++
	}
	return freq
}

// localView returns the mover's positions and the opponent's occupancy
// vector, both expressed in the mover's local frame: reflected for black,
// as-is for white.
func localView(b board.Board, c board.Color) (mover board.Positions, enemyFreq [26]uint8) {
	if c == board.Black {
		return reflectPositions(b.Black), frequencyOf(reflectPositions(b.White))
	}
	return b.White, frequencyOf(b.Black)
}

type candidate struct {
	start, end uint8
	dieIndex   int
}

// GenerateTree builds, prunes, and (for black) flips back to world
// coordinates the full forest of legal turn sequences available to color
// c on board b with the given dice roll.
func GenerateTree(b board.Board, c board.Color, dice []uint8) *turn.Node {
	mover, enemyFreq := localView(b, c)
	tracker := board.NewDiceTracker(dice)

	root := turn.NewRoot()
	root.Children = buildChildren(mover, enemyFreq, tracker, dice)
	root.Prune()

	if c == board.Black {
		root.FlipTree(ReflectMove)
	}
	return root
}

// ValidateTurn reports whether moves is exactly one root-to-leaf path of
// the forest rooted at root.
func ValidateTurn(root *turn.Node, moves []board.Move) bool {
	if len(moves) == 0 {
		return len(root.Children) == 0
	}
	return matchPath(root, moves)
}

func matchPath(node *turn.Node, moves []board.Move) bool {
	if len(moves) == 0 {
		return len(node.Children) == 0
	}
	for _, c := range node.Children {
		if c.Move == moves[0] && matchPath(c, moves[1:]) {
			return true
		}
	}
	return false
}

// buildChildren expands one ply of candidates from pos/freq/tracker. A
// checker on the bar must enter before any other checker moves; once the
// bar clears mid-turn, the remaining dice go unused rather than feeding a
// normal-phase continuation — entering is the whole of that ply.
func buildChildren(pos board.Positions, freq [26]uint8, tracker board.DiceTracker, dice []uint8) []*turn.Node {
	if tracker.IsEmpty() {
		return nil
	}
	wasBar := pos[0] == board.Bar
	cands := legalMoves(pos, freq, tracker, dice)
	children := make([]*turn.Node, 0, len(cands))
	for _, cand := range cands {
		newPos := pos
		board.MoveChecker(&newPos, cand.start, cand.end)

		newFreq := freq
		if cand.end != board.Bar && cand.end != board.Home && newFreq[cand.end] == 1 {
			newFreq[cand.end] = 0
			newFreq[board.Bar]++
		}

		newTracker := tracker.UseDie(cand.dieIndex)

		child := turn.NewNode(board.Move{Start: cand.start, End: cand.end})
		if !(wasBar && newPos[0] != board.Bar) {
			child.Children = buildChildren(newPos, newFreq, newTracker, dice)
		}
		children = append(children, child)
	}
	return children
}

func legalMoves(pos board.Positions, freq [26]uint8, tracker board.DiceTracker, dice []uint8) []candidate {
	pMin := pos[0]
	switch {
	case pMin == board.Bar:
		return legalBarMoves(freq, tracker, dice)
	case pMin >= HomeEdge:
		return legalHomeMoves(pos, freq, tracker, dice)
	default:
		return legalNormalMoves(pos, freq, tracker, dice)
	}
}

func legalBarMoves(freq [26]uint8, tracker board.DiceTracker, dice []uint8) []candidate {
	var out []candidate
	for i := 0; i < tracker.NumUnique(); i++ {
		dieIndex := tracker.GetDieIndex(i)
		d := tracker.GetDie(i, dice)
		if freq[d] <= 1 {
			out = append(out, candidate{start: board.Bar, end: d, dieIndex: dieIndex})
		}
	}
	return out
}

func legalNormalMoves(pos board.Positions, freq [26]uint8, tracker board.DiceTracker, dice []uint8) []candidate {
	var out []candidate
	for i := 0; i < tracker.NumUnique(); i++ {
		dieIndex := tracker.GetDieIndex(i)
		d := tracker.GetDie(i, dice)
		var seen [26]bool
		for _, p := range pos {
			if p == board.Bar || p == board.Home || seen[p] {
				continue
			}
			seen[p] = true
			end := p + d
			if end < board.Home && freq[end] <= 1 {
				out = append(out, candidate{p, end, dieIndex})
			}
		}
	}
	return out
}

func legalHomeMoves(pos board.Positions, freq [26]uint8, tracker board.DiceTracker, dice []uint8) []candidate {
	pMin := pos[0]

	vals := make([]uint8, 0, 2)
	idxs := make([]int, 0, 2)
	for i := 0; i < tracker.NumUnique(); i++ {
		idxs = append(idxs, tracker.GetDieIndex(i))
		vals = append(vals, tracker.GetDie(i, dice))
	}
	var maxDie uint8
	for _, v := range vals {
		if v > maxDie {
			maxDie = v
		}
	}

	var out []candidate
	for i, d := range vals {
		dieIndex := idxs[i]
		bearsOffMin := false
		var seen [26]bool
		for _, p := range pos {
			if p == board.Bar || p == board.Home || seen[p] {
				continue
			}
			seen[p] = true
			if p+d == board.Home {
				out = append(out, candidate{p, board.Home, dieIndex})
				if p == pMin {
					bearsOffMin = true
				}
				continue
			}
			end := p + d
			if end < board.Home && freq[end] <= 1 {
				out = append(out, candidate{p, end, dieIndex})
			}
		}
		if d == maxDie && board.Home-d < pMin && !bearsOffMin {
			out = append(out, candidate{pMin, board.Home, dieIndex})
		}
	}
	return out
}
