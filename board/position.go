// Package board implements the checker-position primitives, the two-sided
// board, the move value type, and the dice tracker that every higher layer
// of the engine builds on.
package board

import "github.com/pkg/errors"

// NumCheckers is the number of checkers each side starts a game with.
const NumCheckers = 15

// Bar is the point index a bopped checker is sent to, and the index a
// checker must leave from on re-entry.
const Bar uint8 = 0

// Home is the bear-off destination point index.
const Home uint8 = 25

// Positions is a sorted-ascending array of NumCheckers point indices in
// 0..=25. Duplicates denote stacking. Every exported function here
// preserves the sorted invariant.
type Positions [NumCheckers]uint8

// MoveChecker relocates one checker from startVal to endVal, keeping the
// array sorted. It panics if no checker occupies startVal: a caller asking
// to move from an empty point is a precondition violation, not a
// recoverable error.
func MoveChecker(positions *Positions, startVal, endVal uint8) {
	startInd, endInd := doubleBinarySearch(positions, startVal, endVal)
	moveCheckerAtIndex(positions, endVal, startInd, endInd)
}

func moveCheckerAtIndex(positions *Positions, endVal uint8, startInd, endInd int) {
	if startInd < 0 {
		panic(errors.Errorf("move_checker: no checker at start position"))
	}
	if startInd < endInd {
		copy(positions[startInd:endInd-1], positions[startInd+1:endInd])
		positions[endInd-1] = endVal
		return
	}
	if endInd < startInd {
		copy(positions[endInd+1:startInd+1], positions[endInd:startInd])
	}
	positions[endInd] = endVal
}

// doubleBinarySearch locates the checker to move (startInd, or -1 if
// absent) and the insertion point for endVal (endInd), oriented so that a
// single shift restores sort order regardless of move direction.
func doubleBinarySearch(positions *Positions, targ1, targ2 uint8) (startInd, endInd int) {
	if targ1 < targ2 {
		startInd = lastIndexOf(positions, targ1)
		endInd = firstInsertionPoint(positions, targ2)
	} else {
		startInd = firstIndexOf(positions, targ1)
		endInd = lastInsertionPoint(positions, targ2)
	}
	return
}

// firstIndexOf returns the index of the first occurrence of targ, or -1.
func firstIndexOf(positions *Positions, targ uint8) int {
	left, right := 0, NumCheckers
	found := -1
	for left < right {
		mid := (left + right) / 2
		if positions[mid] < targ {
			left = mid + 1
		} else {
			if positions[mid] == targ {
				found = mid
			}
			right = mid
		}
	}
	return found
}

// lastIndexOf returns the index of the last occurrence of targ, or -1.
func lastIndexOf(positions *Positions, targ uint8) int {
	left, right := 0, NumCheckers
	found := -1
	for left < right {
		mid := (left + right) / 2
		if positions[mid] > targ {
			right = mid
		} else {
			if positions[mid] == targ {
				found = mid
			}
			left = mid + 1
		}
	}
	return found
}

// firstInsertionPoint returns the first index at/after which targ could be
// inserted while keeping the array sorted (the first occurrence if present).
func firstInsertionPoint(positions *Positions, targ uint8) int {
	left, right := 0, NumCheckers
	for left < right {
		mid := (left + right) / 2
		if positions[mid] < targ {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// lastInsertionPoint returns the index just past the last occurrence of
// targ, or the first index greater than targ if targ is absent.
func lastInsertionPoint(positions *Positions, targ uint8) int {
	left, right := 0, NumCheckers
	for left < right {
		mid := (left + right) / 2
		if positions[mid] > targ {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// TryBop relocates the single enemy checker at landing to the bar, if
// exactly one enemy checker occupies landing. Landings held by zero or two
// or more checkers, and the bar and home points, are left untouched.
func TryBop(enemyPositions *Positions, landing uint8) {
	if landing == Bar || landing == Home {
		return
	}
	first := firstIndexOf(enemyPositions, landing)
	if first < 0 {
		return
	}
	if first == NumCheckers-1 || enemyPositions[first+1] != landing {
		endInd := lastIndexOf(enemyPositions, Bar)
		if endInd < 0 {
			endInd = firstInsertionPoint(enemyPositions, Bar)
		} else {
			endInd++
		}
		moveCheckerAtIndex(enemyPositions, Bar, first, endInd)
	}
}

// CountOccurrences returns how many checkers sit at val.
func CountOccurrences(positions *Positions, val uint8) uint8 {
	first := firstIndexOf(positions, val)
	if first < 0 {
		return 0
	}
	var tally uint8
	for i := first; i < NumCheckers && positions[i] == val; i++ {
		tally++
	}
	return tally
}
