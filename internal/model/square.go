package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Square is a board coordinate stored as a linear index in FEN scan order:
// index 0 is a8, index 63 is h1.
type Square uint8

// NewSquare builds a square from a rank (0 = rank 1) and file (0 = file a).
// Both must be in [0,7].
func NewSquare(rank, file int) Square {
	return Square((7-rank)*8 + file)
}

func (s Square) Rank() int {
	return 7 - int(s)/8
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Index() int {
	return int(s)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File(), s.Rank()+1)
}

// ParseSquare converts an algebraic name like "e4" into a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return 0, errors.Errorf("model: square %q must be two characters", text)
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, errors.Errorf("model: square %q is off the board", text)
	}
	return NewSquare(rank, file), nil
}
