// Package engine adapts an external chess-rules library to the narrow
// contract the reconciliation state machine consumes: legal move
// enumeration with resulting placements, move apply/undo, turn tracking,
// game-ending detection and FEN/PGN serialization.
package engine

import "github.com/chesslink/boardsync/internal/model"

// Move is a legal move as enumerated by the rules engine. ResultingPlacement
// is the FEN piece-placement field of the position after the move, which is
// what the reconciler matches observed boards against.
type Move struct {
	SAN                string
	UCI                string
	ResultingPlacement string

	inner applied
}

// MoveRecord is one applied half-move from the engine's history.
type MoveRecord struct {
	SAN   string
	Color model.Color
}

// Rules is the mutable rules-engine handle. It is exclusively owned by one
// live Position at a time and must never be called from two call sites
// interleaved.
type Rules interface {
	// FEN returns the full FEN of the current position.
	FEN() string
	// PlacementFEN returns just the piece-placement field.
	PlacementFEN() string
	// Turn returns the color to move.
	Turn() model.Color
	// LegalMoves enumerates the legal moves from the current position, in
	// the engine's stable enumeration order.
	LegalMoves() []Move
	// Apply plays a move previously returned by LegalMoves.
	Apply(Move) error
	// UndoLast rewinds the last applied move.
	UndoLast() error

	IsCheckmate() bool
	IsStalemate() bool
	IsInsufficientMaterial() bool
	IsThreefoldRepetition() bool
	IsFiftyMoveDraw() bool

	// History returns every applied half-move in order.
	History() []MoveRecord
	// PGN serializes the whole game.
	PGN() string
}
