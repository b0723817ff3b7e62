package model

// StatusKind discriminates the Status variants.
type StatusKind string

const (
	StatusReady  StatusKind = "ready"
	StatusLifted StatusKind = "lifted"
	StatusErrors StatusKind = "errors"
	StatusMoved  StatusKind = "moved"
)

// Status is the "what just happened" signal layered on top of the
// authoritative board position. It is a sealed variant: exactly one of
// Ready, Lifted, Errors or Moved holds at a time, and consumers are
// expected to switch over all four concrete types.
type Status interface {
	Kind() StatusKind
	status()
}

// Ready means the observed board matches the last accepted placement.
type Ready struct{}

func (Ready) Kind() StatusKind { return StatusReady }
func (Ready) status()          {}

// Lifted means a single piece of the side to move has been picked up.
type Lifted struct {
	Piece  Piece
	Square Square
}

func (Lifted) Kind() StatusKind { return StatusLifted }
func (Lifted) status()          {}

// ErrorTarget is one square of an inconsistent placement, carrying the
// occupant it should have (NoPiece when the square should be empty).
type ErrorTarget struct {
	Before Piece
	Square Square
}

// Errors means the observed board cannot be explained as a lift, a legal
// move, or a pending-move resolution. It clears itself once the board
// returns to the last accepted placement.
type Errors struct {
	Targets []ErrorTarget
}

func (Errors) Kind() StatusKind { return StatusErrors }
func (Errors) status()          {}

// Moved means a legal move was recognized and applied to the rules engine.
type Moved struct{}

func (Moved) Kind() StatusKind { return StatusMoved }
func (Moved) status()          {}
