package service

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/chesslink/boardsync/internal/game"
)

// ErrSessionNotFound is returned for lookups of unknown session IDs.
var ErrSessionNotFound = errors.New("service: session not found")

// SessionManager owns the registry of live board sessions.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*game.Session),
	}
}

func (sm *SessionManager) Create(sessionID string) (*game.Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[sessionID]; exists {
		return nil, errors.Errorf("service: session %s already exists", sessionID)
	}
	session := game.NewSession()
	sm.sessions[sessionID] = session
	return session, nil
}

func (sm *SessionManager) Get(sessionID string) (*game.Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (sm *SessionManager) Remove(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, sessionID)
}
