package board

import "github.com/pkg/errors"

// DiceTracker encodes which dice of a roll remain unused in the low four
// bits of a byte. A fresh tracker holds 0b0011 for a distinct pair or
// 0b1111 for doubles. Consuming a die clears its bit in the distinct case,
// or the lowest set bit in the doubles case (the four faces of a double
// are interchangeable). Trackers are immutable; UseDie returns a new one.
type DiceTracker struct {
	bits uint8
}

// NewDiceTracker builds a tracker for a validated roll: two distinct
// values, or four equal values.
func NewDiceTracker(dice []uint8) DiceTracker {
	if len(dice) == 2 {
		return DiceTracker{bits: 0x03}
	}
	if len(dice) == 4 {
		return DiceTracker{bits: 0x0F}
	}
	panic(errors.Errorf("dice_tracker: roll has invalid length %d, want 2 or 4", len(dice)))
}

// IsEmpty reports whether every die has been used.
func (t DiceTracker) IsEmpty() bool {
	return t.bits == 0
}

func (t DiceTracker) doubled() bool {
	return t.bits > 0x03
}

// NumUnique returns the number of distinct remaining die faces: 0, 1, or 2.
// Doubles collapse to at most one distinct face, pruning what would
// otherwise be a 4!-branching search into manageable breadth.
func (t DiceTracker) NumUnique() int {
	switch t.bits {
	case 0x03:
		return 2
	case 0:
		return 0
	default:
		return 1
	}
}

// IsValid reports whether the die at roll-index ind has not yet been used.
func (t DiceTracker) IsValid(ind int) bool {
	if t.doubled() {
		return true
	}
	return t.bits&(1<<uint(ind)) != 0
}

// UseDie returns a tracker with the die at roll-index dieInd consumed. If
// the roll was doubles, the lowest set bit is dropped instead, since all
// four faces are interchangeable.
func (t DiceTracker) UseDie(dieInd int) DiceTracker {
	if t.doubled() {
		return DiceTracker{bits: t.bits ^ lowestSetBit(t.bits)}
	}
	return DiceTracker{bits: t.bits ^ (1 << uint(dieInd))}
}

// GetDieIndex maps a 0..NumUnique() loop counter to an index into the
// original roll. loopNum must be the result of iterating 0..NumUnique().
func (t DiceTracker) GetDieIndex(loopNum int) int {
	switch loopNum {
	case 0:
		if t.doubled() || t.bits&0x1 != 0 {
			return 0
		}
		return 1
	case 1:
		return 1
	default:
		panic(errors.Errorf("dice_tracker: loop index %d out of range", loopNum))
	}
}

// GetDie maps a loop counter to the die face value, given the original roll.
func (t DiceTracker) GetDie(loopNum int, dice []uint8) uint8 {
	switch loopNum {
	case 0:
		if t.doubled() || t.bits&0x1 != 0 {
			return dice[0]
		}
		return dice[1]
	case 1:
		return dice[1]
	default:
		panic(errors.Errorf("dice_tracker: loop index %d out of range", loopNum))
	}
}

func lowestSetBit(b uint8) uint8 {
	return b & (-b)
}

// RollDice produces a fresh two- or four-element roll using r for
// randomness. r is expected to be an *rand.Rand or equivalent satisfying
// the Intn(n int) int contract.
func RollDice(r interface{ Intn(int) int }) []uint8 {
	r1 := uint8(r.Intn(6) + 1)
	r2 := uint8(r.Intn(6) + 1)
	if r1 == r2 {
		return []uint8{r1, r1, r1, r1}
	}
	return []uint8{r1, r2}
}
