package render

import (
	"strings"
	"testing"

	"github.com/chesslink/boardsync/internal/model"
)

func TestTextReadyBoard(t *testing.T) {
	out := Text(model.StartingPlacement(), model.Ready{})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 8 ranks plus file labels, got %d lines", len(lines))
	}
	if lines[0] != "8  r  n  b  q  k  b  n  r" {
		t.Fatalf("rank 8 rendered wrong: %q", lines[0])
	}
	if lines[7] != "1  R  N  B  Q  K  B  N  R" {
		t.Fatalf("rank 1 rendered wrong: %q", lines[7])
	}
	if lines[8] != "   a  b  c  d  e  f  g  h" {
		t.Fatalf("file labels rendered wrong: %q", lines[8])
	}
	if strings.ContainsAny(out, "()[]") {
		t.Fatalf("ready board must carry no accents: %q", out)
	}
}

func TestTextLiftedAccent(t *testing.T) {
	e2, _ := model.ParseSquare("e2")
	out := Text(model.StartingPlacement(), model.Lifted{Piece: model.WhitePawn, Square: e2})

	if !strings.Contains(out, "(P)") {
		t.Fatalf("lifted square not accented: %q", out)
	}
}

func TestTextErrorAccents(t *testing.T) {
	d1, _ := model.ParseSquare("d1")
	e5, _ := model.ParseSquare("e5")
	status := model.Errors{Targets: []model.ErrorTarget{
		{Before: model.WhiteQueen, Square: d1},
		{Before: model.NoPiece, Square: e5},
	}}
	out := Text(model.StartingPlacement(), status)

	if !strings.Contains(out, "[Q]") {
		t.Fatalf("occupied error target not accented: %q", out)
	}
	// A square that should be empty is accented instead of drawn plain.
	if !strings.Contains(out, "[.]") {
		t.Fatalf("empty error target not accented: %q", out)
	}
}
