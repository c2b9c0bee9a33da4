// Package session records a cube play session into storage: one row per
// session, one row per completed rotation.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/cubeforge/ncube"
	"github.com/cubeforge/ncube/internal/app/storage"
)

// State represents the current state of a recording session.
type State int

const (
	StateIdle State = iota
	StateActive
	StateEnded
)

// String returns the string representation of the session state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session manages one play recording session. Wire RecordMove to the
// cube's Changed callback and MarkSolved to its Solved callback.
type Session struct {
	db *storage.DB

	mu        sync.Mutex
	state     State
	sessionID string
	startTime time.Time
	moveIndex int
	solved    bool

	// Repositories
	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
}

// New creates a new session manager.
func New(db *storage.DB) *Session {
	return &Session{
		db:       db,
		state:    StateIdle,
		sessions: storage.NewSessionRepository(db),
		moves:    storage.NewMoveRepository(db),
	}
}

// Start begins a new recording session for a cube of the given edge
// length and returns the session ID.
func (s *Session) Start(dimensions int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateActive {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := s.sessions.Create(dimensions)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.moveIndex = 0
	s.solved = false
	s.state = StateActive

	return sessionID, nil
}

// RecordMove stores one completed rotation. Calls made while no session
// is active are ignored.
func (s *Session) RecordMove(m ncube.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if _, err := s.moves.Create(s.sessionID, s.moveIndex, tsMs, m); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++
	return nil
}

// MarkSolved flags the active session as solved.
func (s *Session) MarkSolved() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return nil
	}
	s.solved = true
	if err := s.sessions.MarkSolved(s.sessionID); err != nil {
		return fmt.Errorf("failed to mark solved: %w", err)
	}
	return nil
}

// End finishes the active session, storing its final move count.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return fmt.Errorf("no session in progress")
	}

	if err := s.sessions.End(s.sessionID, s.moveIndex, s.solved); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.state = StateEnded
	return nil
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveIndex
}

// ElapsedMs returns the elapsed time since the session started in
// milliseconds, or 0 when no session is active.
func (s *Session) ElapsedMs() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}
