package board

import "github.com/pkg/errors"

func errInvalidColor(s string) error {
	return errors.Errorf("board: invalid color %q, want \"black\" or \"white\"", s)
}

func errInvalidPoint(s string) error {
	return errors.Errorf("board: invalid point %q, want \"bar\", \"home\", or 1..24", s)
}

func errInvalidPointValue(n uint8) error {
	return errors.Errorf("board: invalid point %d, want 1..24 (0 is \"bar\", 25 is \"home\")", n)
}
