package model

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const startingPlacementFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Placement is an immutable snapshot of which piece, if any, occupies each of
// the 64 squares. It is a value type: every mutator returns a new copy and
// comparisons are structural over the 64 slots.
type Placement struct {
	squares [64]Piece
}

// TargetChange is one element of a diff between two placements: a square
// whose occupant differs, with its occupant before and after.
type TargetChange struct {
	Square Square
	Before Piece
	After  Piece
}

func EmptyPlacement() Placement {
	return Placement{}
}

func StartingPlacement() Placement {
	p, err := FromFEN(startingPlacementFEN)
	if err != nil {
		panic(err) // the starting placement constant always parses
	}
	return p
}

// FromFEN parses the piece-placement field of a FEN string: eight ranks
// separated by '/', each a mix of piece letters and digits 1-8 run-length
// encoding empty squares. Malformed ranks are all reported, not just the
// first one.
func FromFEN(text string) (Placement, error) {
	ranks := strings.Split(text, "/")
	if len(ranks) != 8 {
		return Placement{}, errors.Errorf("model: placement %q must have 8 ranks, got %d", text, len(ranks))
	}
	var p Placement
	var result *multierror.Error
	for i, rank := range ranks {
		width := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '8':
				width += int(r - '0')
			default:
				pc, ok := pieceFromLetter(r)
				if !ok {
					result = multierror.Append(result, errors.Errorf("model: rank %d: unrecognized piece %q", 8-i, r))
					width++
					continue
				}
				if width < 8 {
					p.squares[i*8+width] = pc
				}
				width++
			}
		}
		if width != 8 {
			result = multierror.Append(result, errors.Errorf("model: rank %d: %q covers %d squares, want 8", 8-i, rank, width))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return Placement{}, err
	}
	return p, nil
}

func (p Placement) PieceAt(sq Square) Piece {
	return p.squares[sq]
}

// WithPieceAt returns a copy of the placement with the square's occupant
// replaced; NoPiece clears the square.
func (p Placement) WithPieceAt(sq Square, pc Piece) Placement {
	p.squares[sq] = pc
	return p
}

// FEN renders the placement as the piece-placement field of a FEN string.
// Round-trips byte-for-byte with FromFEN.
func (p Placement) FEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[rank*8+file]
			if pc == NoPiece {
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte(byte('0' + run))
				run = 0
			}
			sb.WriteByte(fenLetters[pc])
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
		}
	}
	return sb.String()
}

// Diff scans the 64 squares in index order and collects a TargetChange for
// every square whose occupant differs from other. A positive limit stops the
// scan once that many changes are found, which makes single-change checks
// cheap; limit <= 0 scans everything.
func (p Placement) Diff(other Placement, limit int) []TargetChange {
	var changes []TargetChange
	for i := 0; i < 64; i++ {
		if p.squares[i] == other.squares[i] {
			continue
		}
		changes = append(changes, TargetChange{
			Square: Square(i),
			Before: p.squares[i],
			After:  other.squares[i],
		})
		if limit > 0 && len(changes) == limit {
			break
		}
	}
	return changes
}

func (p Placement) Equals(other Placement) bool {
	return len(p.Diff(other, 1)) == 0
}
