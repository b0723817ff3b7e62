package model

import "testing"

func TestSquareIndexMapping(t *testing.T) {
	tests := []struct {
		name  string
		rank  int
		file  int
		index int
	}{
		{"a8", 7, 0, 0},
		{"h8", 7, 7, 7},
		{"a1", 0, 0, 56},
		{"h1", 0, 7, 63},
		{"e2", 1, 4, 52},
		{"d5", 4, 3, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := NewSquare(tt.rank, tt.file)
			if sq.Index() != tt.index {
				t.Fatalf("index of %s: got %d, want %d", tt.name, sq.Index(), tt.index)
			}
			if sq.Rank() != tt.rank || sq.File() != tt.file {
				t.Fatalf("round trip of %s: got rank %d file %d", tt.name, sq.Rank(), sq.File())
			}
			if sq.String() != tt.name {
				t.Fatalf("algebraic name: got %q, want %q", sq.String(), tt.name)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	if err != nil {
		t.Fatalf("parse e4: %v", err)
	}
	if sq != NewSquare(3, 4) {
		t.Fatalf("parse e4: got %s", sq)
	}

	for _, bad := range []string{"", "e", "e44", "i4", "e9", "a0"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("expected error parsing %q", bad)
		}
	}
}
