package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/chesslink/boardsync/internal/game"
	"github.com/chesslink/boardsync/internal/model"
	"github.com/chesslink/boardsync/internal/render"
)

// SessionService is the facade the controllers talk to.
type SessionService struct {
	sessionManager *SessionManager
}

func NewSessionService(sessionManager *SessionManager) *SessionService {
	return &SessionService{sessionManager: sessionManager}
}

func (ss *SessionService) CreateSession() (string, error) {
	sessionID := uuid.New().String()
	if _, err := ss.sessionManager.Create(sessionID); err != nil {
		return "", errors.Wrap(err, "service: create session")
	}
	return sessionID, nil
}

func (ss *SessionService) GetView(sessionID string) (game.View, error) {
	session, err := ss.sessionManager.Get(sessionID)
	if err != nil {
		return game.View{}, err
	}
	return session.View(), nil
}

// RenderBoard returns the session's board as accented text. During setup the
// raw placement is drawn without accents.
func (ss *SessionService) RenderBoard(sessionID string) (string, error) {
	session, err := ss.sessionManager.Get(sessionID)
	if err != nil {
		return "", err
	}
	pos := session.Position()
	if pos == nil {
		placement, err := model.FromFEN(session.View().Placement)
		if err != nil {
			return "", err
		}
		return render.Text(placement, model.Ready{}), nil
	}
	return render.Text(pos.Placement(), pos.Status()), nil
}

// UpdatePlacement edits the starting placement of a setting-up session from
// a FEN piece-placement field.
func (ss *SessionService) UpdatePlacement(sessionID, placementFEN string) error {
	session, err := ss.sessionManager.Get(sessionID)
	if err != nil {
		return err
	}
	placement, err := model.FromFEN(placementFEN)
	if err != nil {
		return err
	}
	return session.UpdatePlacement(placement)
}

func (ss *SessionService) StartSession(sessionID string) error {
	session, err := ss.sessionManager.Get(sessionID)
	if err != nil {
		return err
	}
	return session.Start()
}

// ObservePlacement feeds one observed board snapshot to the session's
// reconciler.
func (ss *SessionService) ObservePlacement(sessionID, placementFEN string) error {
	session, err := ss.sessionManager.Get(sessionID)
	if err != nil {
		return err
	}
	placement, err := model.FromFEN(placementFEN)
	if err != nil {
		return err
	}
	return session.Observe(placement)
}

// Subscribe registers a state-change listener on a session.
func (ss *SessionService) Subscribe(sessionID string, fn game.Listener) (cancel func(), err error) {
	session, err := ss.sessionManager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Subscribe(fn), nil
}
