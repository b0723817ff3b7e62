package model

type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return ""
}

type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return ""
}

// Piece is one of the twelve (kind, color) identities, or NoPiece for an
// empty square.
type Piece uint8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

func NewPiece(kind PieceKind, color Color) Piece {
	if kind == NoKind || color == NoColor {
		return NoPiece
	}
	if color == White {
		return Piece(kind)
	}
	return Piece(kind) + 6
}

func (p Piece) Kind() PieceKind {
	switch {
	case p == NoPiece:
		return NoKind
	case p <= WhiteKing:
		return PieceKind(p)
	default:
		return PieceKind(p - 6)
	}
}

func (p Piece) Color() Color {
	switch {
	case p == NoPiece:
		return NoColor
	case p <= WhiteKing:
		return White
	default:
		return Black
	}
}

func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	return p.Color().String() + " " + p.Kind().String()
}

var fenLetters = [...]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B',
	WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b',
	BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// Letter returns the FEN letter for the piece (uppercase for white), or an
// empty string for NoPiece.
func (p Piece) Letter() string {
	if p == NoPiece {
		return ""
	}
	return string(fenLetters[p])
}

func pieceFromLetter(r rune) (Piece, bool) {
	for pc := WhitePawn; pc <= BlackKing; pc++ {
		if rune(fenLetters[pc]) == r {
			return pc, true
		}
	}
	return NoPiece, false
}
