package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesslink/boardsync/internal/model"
)

func TestSessionPhases(t *testing.T) {
	s := NewSession()
	assert.Equal(t, PhaseSettingUp, s.Phase())
	assert.Nil(t, s.Position())

	// Observing snapshots before the game starts is rejected.
	err := s.Observe(model.StartingPlacement())
	assert.Error(t, err)

	custom, err := model.FromFEN("3qk3/8/8/8/8/8/8/3QK3")
	require.NoError(t, err)
	require.NoError(t, s.UpdatePlacement(custom))

	require.NoError(t, s.Start())
	assert.Equal(t, PhaseInProgress, s.Phase())
	require.NotNil(t, s.Position())
	assert.True(t, s.Position().Placement().Equals(custom))

	// Once in progress the starting placement is frozen.
	assert.Error(t, s.UpdatePlacement(custom))
	assert.Error(t, s.Start())
}

func TestSessionNotifiesListeners(t *testing.T) {
	s := NewSession()

	var first, second []View
	cancelFirst := s.Subscribe(func(v View) { first = append(first, v) })
	s.Subscribe(func(v View) { second = append(second, v) })

	require.NoError(t, s.Start())
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, PhaseInProgress, first[0].Phase)
	assert.Equal(t, "white", first[0].ToMove)
	require.NotNil(t, first[0].Status)
	assert.Equal(t, model.StatusReady, first[0].Status.Kind)

	cancelFirst()

	observed := model.StartingPlacement().WithPieceAt(sq(t, "e2"), model.NoPiece)
	require.NoError(t, s.Observe(observed))

	assert.Len(t, first, 1, "cancelled listener must not be notified")
	require.Len(t, second, 2)
	require.NotNil(t, second[1].Status)
	assert.Equal(t, model.StatusLifted, second[1].Status.Kind)
	assert.Equal(t, "e2", second[1].Status.Square)
	assert.Equal(t, "P", second[1].Status.Piece)
}

func TestSessionViewAfterMove(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Start())

	observed := model.StartingPlacement().
		WithPieceAt(sq(t, "e2"), model.NoPiece).
		WithPieceAt(sq(t, "e4"), model.WhitePawn)
	require.NoError(t, s.Observe(observed))

	view := s.View()
	assert.Equal(t, observed.FEN(), view.Placement)
	assert.Equal(t, "black", view.ToMove)
	require.NotNil(t, view.Status)
	assert.Equal(t, model.StatusMoved, view.Status.Kind)
	require.NotNil(t, view.Pending)
	assert.Equal(t, "white", view.Pending.Color)
	assert.Equal(t, model.StartingPlacement().FEN(), view.Pending.ReturnPlacement)
	require.Len(t, view.MoveHistory, 1)
	assert.Equal(t, "e4", view.MoveHistory[0].White)
}

func TestStartingFENCastlingRights(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      string
	}{
		{"full rights", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"white queenside rook gone", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1"},
		{"kings off home squares", "rnbq1bnr/ppppkppp/8/8/8/8/PPPPKPPP/RNBQ1BNR", "rnbq1bnr/ppppkppp/8/8/8/8/PPPPKPPP/RNBQ1BNR w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := model.FromFEN(tt.placement)
			require.NoError(t, err)
			assert.Equal(t, tt.want, startingFEN(p))
		})
	}
}
