package game

import "github.com/chesslink/boardsync/internal/model"

// View is the JSON shape pushed to clients on every session state change.
type View struct {
	Phase        Phase         `json:"phase"`
	Placement    string        `json:"placement"`
	FEN          string        `json:"fen,omitempty"`
	Status       *StatusView   `json:"status,omitempty"`
	ToMove       string        `json:"toMove,omitempty"`
	Pending      *PendingView  `json:"pending,omitempty"`
	MoveHistory  []HistoryMove `json:"moveHistory,omitempty"`
	Ending       string        `json:"ending,omitempty"`
	WhiteThinkMs int64         `json:"whiteThinkMs"`
	BlackThinkMs int64         `json:"blackThinkMs"`
}

type StatusView struct {
	Kind    model.StatusKind `json:"kind"`
	Piece   string           `json:"piece,omitempty"`
	Square  string           `json:"square,omitempty"`
	Targets []TargetView     `json:"targets,omitempty"`
}

type TargetView struct {
	Square string `json:"square"`
	// Piece is the occupant the square should have; empty when the square
	// should be empty.
	Piece string `json:"piece,omitempty"`
}

type PendingView struct {
	Color           string `json:"color"`
	ReturnPlacement string `json:"returnPlacement"`
}

func statusView(status model.Status) *StatusView {
	switch s := status.(type) {
	case model.Ready:
		return &StatusView{Kind: s.Kind()}
	case model.Lifted:
		return &StatusView{Kind: s.Kind(), Piece: s.Piece.Letter(), Square: s.Square.String()}
	case model.Errors:
		targets := make([]TargetView, len(s.Targets))
		for i, t := range s.Targets {
			targets[i] = TargetView{Square: t.Square.String(), Piece: t.Before.Letter()}
		}
		return &StatusView{Kind: s.Kind(), Targets: targets}
	case model.Moved:
		return &StatusView{Kind: s.Kind()}
	}
	return nil
}
