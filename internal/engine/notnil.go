package engine

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/chesslink/boardsync/internal/model"
)

// applied is the underlying library's move handle carried inside Move.
type applied = *chess.Move

// notnilRules implements Rules on top of github.com/notnil/chess. Undo is
// implemented with a stack of pre-move game snapshots, since the library
// itself only moves forward.
type notnilRules struct {
	game *chess.Game
	undo []*chess.Game
}

// New returns a rules engine at the standard starting position.
func New() Rules {
	return &notnilRules{game: chess.NewGame()}
}

// NewFromFEN returns a rules engine at the position described by a full FEN
// string.
func NewFromFEN(fen string) (Rules, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "engine: parse fen %q", fen)
	}
	return &notnilRules{game: chess.NewGame(opt)}, nil
}

func (r *notnilRules) FEN() string {
	return r.game.Position().String()
}

func (r *notnilRules) PlacementFEN() string {
	return r.game.Position().Board().String()
}

func (r *notnilRules) Turn() model.Color {
	return colorOf(r.game.Position().Turn())
}

func (r *notnilRules) LegalMoves() []Move {
	pos := r.game.Position()
	notation := chess.AlgebraicNotation{}
	valid := r.game.ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, Move{
			SAN:                notation.Encode(pos, m),
			UCI:                m.String(),
			ResultingPlacement: pos.Update(m).Board().String(),
			inner:              m,
		})
	}
	return moves
}

func (r *notnilRules) Apply(m Move) error {
	if m.inner == nil {
		return errors.New("engine: move was not produced by LegalMoves")
	}
	snapshot := r.game.Clone()
	if err := r.game.Move(m.inner); err != nil {
		return errors.Wrapf(err, "engine: apply %s", m.UCI)
	}
	r.undo = append(r.undo, snapshot)
	return nil
}

func (r *notnilRules) UndoLast() error {
	if len(r.undo) == 0 {
		return errors.New("engine: no move to undo")
	}
	r.game = r.undo[len(r.undo)-1]
	r.undo = r.undo[:len(r.undo)-1]
	return nil
}

func (r *notnilRules) IsCheckmate() bool {
	return r.game.Position().Status() == chess.Checkmate
}

func (r *notnilRules) IsStalemate() bool {
	return r.game.Position().Status() == chess.Stalemate
}

func (r *notnilRules) IsInsufficientMaterial() bool {
	return r.game.Method() == chess.InsufficientMaterial
}

func (r *notnilRules) IsThreefoldRepetition() bool {
	return r.eligibleDraw(chess.ThreefoldRepetition)
}

func (r *notnilRules) IsFiftyMoveDraw() bool {
	return r.eligibleDraw(chess.FiftyMoveRule)
}

func (r *notnilRules) eligibleDraw(method chess.Method) bool {
	for _, m := range r.game.EligibleDraws() {
		if m == method {
			return true
		}
	}
	return false
}

func (r *notnilRules) History() []MoveRecord {
	moves := r.game.Moves()
	positions := r.game.Positions()
	notation := chess.AlgebraicNotation{}
	records := make([]MoveRecord, 0, len(moves))
	for i, m := range moves {
		records = append(records, MoveRecord{
			SAN:   notation.Encode(positions[i], m),
			Color: colorOf(positions[i].Turn()),
		})
	}
	return records
}

func (r *notnilRules) PGN() string {
	return r.game.String()
}

func colorOf(c chess.Color) model.Color {
	switch c {
	case chess.White:
		return model.White
	case chess.Black:
		return model.Black
	}
	return model.NoColor
}
