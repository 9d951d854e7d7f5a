package board

import "testing"

func TestNewDiceTrackerDistinctPair(t *testing.T) {
	tr := NewDiceTracker([]uint8{3, 5})
	if tr.IsEmpty() {
		t.Fatalf("fresh distinct-pair tracker reports empty")
	}
	if got := tr.NumUnique(); got != 2 {
		t.Errorf("NumUnique() = %d, want 2", got)
	}
	if !tr.IsValid(0) || !tr.IsValid(1) {
		t.Errorf("both dice of a fresh pair should be valid")
	}
}

func TestNewDiceTrackerDoubles(t *testing.T) {
	tr := NewDiceTracker([]uint8{4, 4, 4, 4})
	if got := tr.NumUnique(); got != 1 {
		t.Errorf("NumUnique() = %d, want 1 for doubles", got)
	}
	if !tr.IsValid(0) || !tr.IsValid(1) {
		t.Errorf("doubles: every roll-index is valid regardless of ind")
	}
}

func TestNewDiceTrackerInvalidLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewDiceTracker with 3 dice: want panic, got none")
		}
	}()
	NewDiceTracker([]uint8{1, 2, 3})
}

func TestUseDieDistinctClearsOnlyThatBit(t *testing.T) {
	tr := NewDiceTracker([]uint8{3, 5})
	tr = tr.UseDie(0)

	if tr.IsValid(0) {
		t.Errorf("die 0 should be consumed")
	}
	if !tr.IsValid(1) {
		t.Errorf("die 1 should remain valid")
	}
	if tr.NumUnique() != 1 {
		t.Errorf("NumUnique() = %d, want 1 after using one of a distinct pair", tr.NumUnique())
	}
	if tr.IsEmpty() {
		t.Errorf("tracker with one die left should not be empty")
	}
}

func TestUseDieDistinctBothClearsTracker(t *testing.T) {
	tr := NewDiceTracker([]uint8{3, 5})
	tr = tr.UseDie(0)
	tr = tr.UseDie(1)

	if !tr.IsEmpty() {
		t.Errorf("tracker should be empty after both dice of a pair are used")
	}
}

func TestUseDieDoublesAlwaysClearsLowestBit(t *testing.T) {
	tr := NewDiceTracker([]uint8{2, 2, 2, 2})
	for i := 0; i < 4; i++ {
		if tr.IsEmpty() {
			t.Fatalf("doubles tracker emptied after only %d uses, want 4", i)
		}
		tr = tr.UseDie(0)
	}
	if !tr.IsEmpty() {
		t.Errorf("doubles tracker should be empty after 4 uses")
	}
}

func TestGetDieIndexAndGetDieDistinctPair(t *testing.T) {
	dice := []uint8{3, 5}
	tr := NewDiceTracker(dice)

	if got := tr.GetDieIndex(0); got != 0 {
		t.Errorf("GetDieIndex(0) = %d, want 0 with both dice unused", got)
	}
	if got := tr.GetDie(0, dice); got != 3 {
		t.Errorf("GetDie(0, dice) = %d, want 3", got)
	}
	if got := tr.GetDie(1, dice); got != 5 {
		t.Errorf("GetDie(1, dice) = %d, want 5", got)
	}

	afterUsingFirst := tr.UseDie(0)
	if got := afterUsingFirst.GetDieIndex(0); got != 1 {
		t.Errorf("GetDieIndex(0) = %d, want 1 once die 0 is used", got)
	}
	if got := afterUsingFirst.GetDie(0, dice); got != 5 {
		t.Errorf("GetDie(0, dice) = %d, want 5 once die 0 is used", got)
	}
}

func TestGetDieIndexOutOfRangePanics(t *testing.T) {
	tr := NewDiceTracker([]uint8{3, 5})
	defer func() {
		if recover() == nil {
			t.Fatalf("GetDieIndex(2): want panic, got none")
		}
	}()
	tr.GetDieIndex(2)
}

type fixedRand struct{ vals []int }

func (f *fixedRand) Intn(n int) int {
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v
}

func TestRollDiceDistinctYieldsTwoDice(t *testing.T) {
	r := &fixedRand{vals: []int{1, 4}} // Intn(6)+1 => 2, 5
	dice := RollDice(r)
	if len(dice) != 2 {
		t.Fatalf("len(dice) = %d, want 2 for a distinct roll", len(dice))
	}
	if dice[0] != 2 || dice[1] != 5 {
		t.Errorf("dice = %v, want [2 5]", dice)
	}
}

func TestRollDiceDoublesYieldsFourDice(t *testing.T) {
	r := &fixedRand{vals: []int{2, 2}} // Intn(6)+1 => 3, 3
	dice := RollDice(r)
	if len(dice) != 4 {
		t.Fatalf("len(dice) = %d, want 4 for a doubled roll", len(dice))
	}
	for _, d := range dice {
		if d != 3 {
			t.Errorf("dice = %v, want all 3s", dice)
			break
		}
	}
}
