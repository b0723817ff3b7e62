// Package game holds the position-reconciliation state machine and the
// session wrapper around it. The reconciler takes full board snapshots as
// reported by a sensor board, diffs each against the last accepted
// placement and classifies the result: nothing happened, a piece is in the
// air, a legal move completed (possibly reversing or replacing the previous
// one), or the board is in an inconsistent state.
package game

import (
	"github.com/pkg/errors"

	"github.com/chesslink/boardsync/internal/engine"
	"github.com/chesslink/boardsync/internal/model"
)

// TurnSide is the side to move together with the full legal-move list from
// the current engine position.
type TurnSide struct {
	Color      model.Color
	LegalMoves []engine.Move
}

// PendingSide remembers the move that was just applied: who moved, the
// placement before the move, and the legal-move list that was searched to
// find it. While set, the player can still physically reverse the move or
// slide into a different legal move from the same starting point.
type PendingSide struct {
	Color           model.Color
	ReturnPlacement model.Placement
	LegalMoves      []engine.Move
}

// Position is the reconciled game state. It exclusively owns the mutable
// rules-engine handle; Next consumes the receiver and hands the handle to
// the returned successor, so a superseded Position can no longer touch the
// engine.
type Position struct {
	rules       engine.Rules
	placement   model.Placement
	status      model.Status
	turnSide    TurnSide
	pendingSide *PendingSide
}

// ErrSuperseded is returned when Next is called on a Position whose engine
// handle has already been handed to a successor.
var ErrSuperseded = errors.New("game: position superseded by a later Next call")

// Initial returns the reconciler at the standard starting position with
// white to move.
func Initial() *Position {
	p, err := FromRules(engine.New())
	if err != nil {
		panic(err) // the standard starting position always parses
	}
	return p
}

// FromRules wraps an engine handle positioned anywhere. The caller gives up
// the handle; it must not be used directly afterwards.
func FromRules(rules engine.Rules) (*Position, error) {
	placement, err := model.FromFEN(rules.PlacementFEN())
	if err != nil {
		return nil, errors.Wrap(err, "game: engine placement")
	}
	return &Position{
		rules:     rules,
		placement: placement,
		status:    model.Ready{},
		turnSide: TurnSide{
			Color:      rules.Turn(),
			LegalMoves: rules.LegalMoves(),
		},
	}, nil
}

func (p *Position) Status() model.Status       { return p.status }
func (p *Position) Placement() model.Placement { return p.placement }
func (p *Position) TurnSide() TurnSide         { return p.turnSide }
func (p *Position) PendingSide() *PendingSide  { return p.pendingSide }

// Next reconciles a newly observed placement against the current state and
// returns the successor Position. The receiver is consumed unless the call
// is a pure no-op. Errors are returned only for engine-level failures;
// unexplainable boards are reported through the Errors status, not as an
// error.
func (p *Position) Next(observed model.Placement) (*Position, error) {
	if p.rules == nil {
		return nil, ErrSuperseded
	}

	diff := p.placement.Diff(observed, 0)

	if len(diff) == 0 {
		switch p.status.(type) {
		case model.Lifted, model.Errors:
			// The anomaly resolved itself: the board is back to the
			// last accepted placement.
			return p.successor(p.placement, model.Ready{}, p.turnSide, p.pendingSide), nil
		}
		return p, nil
	}

	if len(diff) == 1 {
		change := diff[0]
		if change.After == model.NoPiece && change.Before.Color() == p.turnSide.Color {
			status := model.Lifted{Piece: change.Before, Square: change.Square}
			return p.successor(p.placement, status, p.turnSide, p.pendingSide), nil
		}
		// Wrong-color lift, or a square gained or swapped a piece with no
		// vacated square to explain it.
		return p.successor(p.placement, model.Errors{Targets: errorTargets(diff)}, p.turnSide, p.pendingSide), nil
	}

	// Two or more squares changed: try to explain it as a completed move.

	// The just-applied move was physically reversed.
	if p.pendingSide != nil && observed.Equals(p.pendingSide.ReturnPlacement) {
		if err := p.rules.UndoLast(); err != nil {
			return nil, err
		}
		side := TurnSide{Color: p.pendingSide.Color, LegalMoves: p.rules.LegalMoves()}
		return p.successor(p.pendingSide.ReturnPlacement, model.Ready{}, side, nil), nil
	}

	// Mid-adjustment the board settled on a different legal move of the
	// side that just moved: swap it in for the tentatively recorded one.
	if p.pendingSide != nil {
		if mv, ok := matchPlacement(p.pendingSide.LegalMoves, observed); ok {
			if err := p.rules.UndoLast(); err != nil {
				return nil, err
			}
			if err := p.rules.Apply(mv); err != nil {
				return nil, err
			}
			side := TurnSide{Color: p.rules.Turn(), LegalMoves: p.rules.LegalMoves()}
			return p.successor(observed, model.Moved{}, side, p.pendingSide), nil
		}
	}

	// A fresh legal move of the side to move.
	if mv, ok := matchPlacement(p.turnSide.LegalMoves, observed); ok {
		pending := &PendingSide{
			Color:           p.turnSide.Color,
			ReturnPlacement: p.placement,
			LegalMoves:      p.turnSide.LegalMoves,
		}
		if err := p.rules.Apply(mv); err != nil {
			return nil, err
		}
		side := TurnSide{Color: p.rules.Turn(), LegalMoves: p.rules.LegalMoves()}
		return p.successor(observed, model.Moved{}, side, pending), nil
	}

	return p.successor(p.placement, model.Errors{Targets: errorTargets(diff)}, p.turnSide, p.pendingSide), nil
}

// successor transfers engine ownership from the receiver to a new Position.
func (p *Position) successor(placement model.Placement, status model.Status, side TurnSide, pending *PendingSide) *Position {
	next := &Position{
		rules:       p.rules,
		placement:   placement,
		status:      status,
		turnSide:    side,
		pendingSide: pending,
	}
	p.rules = nil
	return next
}

// matchPlacement returns the first move in enumeration order whose resulting
// placement equals the observed board. When two legal moves collide on
// placement (promotion choices can), the first one wins; callers that need
// the exact promotion piece must supply it out of band.
func matchPlacement(moves []engine.Move, observed model.Placement) (engine.Move, bool) {
	fen := observed.FEN()
	for _, m := range moves {
		if m.ResultingPlacement == fen {
			return m, true
		}
	}
	return engine.Move{}, false
}

func errorTargets(diff []model.TargetChange) []model.ErrorTarget {
	targets := make([]model.ErrorTarget, len(diff))
	for i, change := range diff {
		targets[i] = model.ErrorTarget{Before: change.Before, Square: change.Square}
	}
	return targets
}

// Ending is a game-over verdict as reported by the rules engine.
type Ending string

const (
	EndingCheckmate            Ending = "checkmate"
	EndingStalemate            Ending = "stalemate"
	EndingInsufficientMaterial Ending = "insufficient_material"
	EndingThreefoldRepetition  Ending = "threefold_repetition"
	EndingFiftyMoveRule        Ending = "fifty_move_rule"
)

// GameEnding reports whether the game is over, checking verdicts in a fixed
// priority order.
func (p *Position) GameEnding() (Ending, bool) {
	if p.rules == nil {
		return "", false
	}
	switch {
	case p.rules.IsCheckmate():
		return EndingCheckmate, true
	case p.rules.IsStalemate():
		return EndingStalemate, true
	case p.rules.IsInsufficientMaterial():
		return EndingInsufficientMaterial, true
	case p.rules.IsThreefoldRepetition():
		return EndingThreefoldRepetition, true
	case p.rules.IsFiftyMoveDraw():
		return EndingFiftyMoveRule, true
	}
	return "", false
}

// HistoryMove pairs consecutive half-moves into one full move.
type HistoryMove struct {
	Number int    `json:"number"`
	White  string `json:"white,omitempty"`
	Black  string `json:"black,omitempty"`
}

// MovesHistory returns the applied moves paired per full move.
func (p *Position) MovesHistory() []HistoryMove {
	if p.rules == nil {
		return nil
	}
	records := p.rules.History()
	history := make([]HistoryMove, 0, (len(records)+1)/2)
	for _, rec := range records {
		if rec.Color == model.White {
			history = append(history, HistoryMove{Number: len(history) + 1, White: rec.SAN})
			continue
		}
		if len(history) == 0 {
			// A game started from a black-to-move placement.
			history = append(history, HistoryMove{Number: 1})
		}
		history[len(history)-1].Black = rec.SAN
	}
	return history
}

// FEN returns the full FEN of the live engine position.
func (p *Position) FEN() string {
	if p.rules == nil {
		return ""
	}
	return p.rules.FEN()
}

// PGN serializes the game so far.
func (p *Position) PGN() string {
	if p.rules == nil {
		return ""
	}
	return p.rules.PGN()
}
