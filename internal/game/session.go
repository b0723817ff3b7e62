package game

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/chesslink/boardsync/internal/engine"
	"github.com/chesslink/boardsync/internal/model"
)

// Phase is the coarse session state: a freely editable starting placement,
// then a running game wrapping the reconciler.
type Phase string

const (
	PhaseSettingUp  Phase = "setting_up"
	PhaseInProgress Phase = "in_progress"
)

// Listener receives the session view after every state change. Listeners
// are invoked synchronously and must not call back into the session.
type Listener func(View)

// Session is the two-phase wrapper around the reconciler. While setting up,
// the starting placement can be edited; Start commits it and every
// subsequent snapshot is fed to the reconciliation state machine. All
// methods serialize on an internal mutex so the strictly synchronous core
// is never entered concurrently.
type Session struct {
	mu         sync.Mutex
	phase      Phase
	setup      model.Placement
	position   *Position
	listeners  map[int]Listener
	nextListen int

	whiteClock *ThinkClock
	blackClock *ThinkClock
}

func NewSession() *Session {
	return &Session{
		phase:      PhaseSettingUp,
		setup:      model.StartingPlacement(),
		listeners:  make(map[int]Listener),
		whiteClock: NewThinkClock(),
		blackClock: NewThinkClock(),
	}
}

// Subscribe registers a listener and returns a cancel function that removes
// it again.
func (s *Session) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// UpdatePlacement replaces the starting placement. Only valid while the
// session is setting up.
func (s *Session) UpdatePlacement(p model.Placement) error {
	s.mu.Lock()
	if s.phase != PhaseSettingUp {
		s.mu.Unlock()
		return errors.Errorf("game: placement is only editable while setting up, session is %s", s.phase)
	}
	s.setup = p
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, view)
	return nil
}

// Start commits the current setup placement as the game's starting
// arrangement and transitions the session to in-progress.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.phase != PhaseSettingUp {
		s.mu.Unlock()
		return errors.Errorf("game: session already %s", s.phase)
	}
	rules, err := engine.NewFromFEN(startingFEN(s.setup))
	if err != nil {
		s.mu.Unlock()
		return err
	}
	position, err := FromRules(rules)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.position = position
	s.phase = PhaseInProgress
	s.syncClocksLocked()
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, view)
	return nil
}

// Observe feeds a newly observed placement snapshot to the reconciler.
func (s *Session) Observe(p model.Placement) error {
	s.mu.Lock()
	if s.phase != PhaseInProgress {
		s.mu.Unlock()
		return errors.Errorf("game: session is %s, start it before observing placements", s.phase)
	}
	next, err := s.position.Next(p)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.position = next
	s.syncClocksLocked()
	view, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, view)
	return nil
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Position returns the live reconciled position, or nil while setting up.
func (s *Session) Position() *Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, _ := s.snapshotLocked()
	return view
}

// syncClocksLocked keeps exactly the side to move on the clock.
func (s *Session) syncClocksLocked() {
	if s.position == nil {
		return
	}
	switch s.position.TurnSide().Color {
	case model.White:
		s.blackClock.Stop()
		s.whiteClock.Start()
	case model.Black:
		s.whiteClock.Stop()
		s.blackClock.Start()
	}
}

func (s *Session) snapshotLocked() (View, []Listener) {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}

	view := View{
		Phase:        s.phase,
		WhiteThinkMs: s.whiteClock.Elapsed().Milliseconds(),
		BlackThinkMs: s.blackClock.Elapsed().Milliseconds(),
	}
	if s.phase == PhaseSettingUp {
		view.Placement = s.setup.FEN()
		return view, listeners
	}

	pos := s.position
	view.Placement = pos.Placement().FEN()
	view.FEN = pos.FEN()
	view.Status = statusView(pos.Status())
	view.ToMove = pos.TurnSide().Color.String()
	view.MoveHistory = pos.MovesHistory()
	if pending := pos.PendingSide(); pending != nil {
		view.Pending = &PendingView{
			Color:           pending.Color.String(),
			ReturnPlacement: pending.ReturnPlacement.FEN(),
		}
	}
	if ending, over := pos.GameEnding(); over {
		view.Ending = string(ending)
	}
	return view, listeners
}

func notify(listeners []Listener, view View) {
	for _, fn := range listeners {
		fn(view)
	}
}

// startingFEN synthesizes a full FEN for a committed setup placement: white
// to move, castling rights only where king and rook are still on their home
// squares, no en-passant target.
func startingFEN(p model.Placement) string {
	rights := ""
	if p.PieceAt(model.NewSquare(0, 4)) == model.WhiteKing { // e1
		if p.PieceAt(model.NewSquare(0, 7)) == model.WhiteRook { // h1
			rights += "K"
		}
		if p.PieceAt(model.NewSquare(0, 0)) == model.WhiteRook { // a1
			rights += "Q"
		}
	}
	if p.PieceAt(model.NewSquare(7, 4)) == model.BlackKing { // e8
		if p.PieceAt(model.NewSquare(7, 7)) == model.BlackRook { // h8
			rights += "k"
		}
		if p.PieceAt(model.NewSquare(7, 0)) == model.BlackRook { // a8
			rights += "q"
		}
	}
	if rights == "" {
		rights = "-"
	}
	return fmt.Sprintf("%s w %s - 0 1", p.FEN(), rights)
}
