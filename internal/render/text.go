// Package render draws a reconciled position as text. A lifted piece's
// square gets one accent, every target of an inconsistent placement gets a
// second, distinct accent — including squares that should be empty, which
// are accented instead of drawn with the normal empty glyph.
package render

import (
	"strings"

	"github.com/chesslink/boardsync/internal/model"
)

const emptyGlyph = "."

// Text renders an 8x8 board of FEN letters with rank and file labels.
// Lifted squares are wrapped in parentheses, error targets in brackets.
func Text(placement model.Placement, status model.Status) string {
	lifted, errored := accents(status)

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			sq := model.NewSquare(rank, file)
			glyph := placement.PieceAt(sq).Letter()
			if glyph == "" {
				glyph = emptyGlyph
			}
			switch {
			case sq == lifted:
				sb.WriteString("(" + glyph + ")")
			case errored[sq]:
				sb.WriteString("[" + glyph + "]")
			default:
				sb.WriteString("  " + glyph)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}

// accents extracts the squares to emphasize. The returned lifted square is
// 64 (off the board) when nothing is lifted.
func accents(status model.Status) (model.Square, map[model.Square]bool) {
	const none = model.Square(64)
	errored := map[model.Square]bool{}
	switch s := status.(type) {
	case model.Ready:
		return none, errored
	case model.Lifted:
		return s.Square, errored
	case model.Errors:
		for _, t := range s.Targets {
			errored[t.Square] = true
		}
		return none, errored
	case model.Moved:
		return none, errored
	}
	return none, errored
}
