package store

import (
	"sync"

	"github.com/google/uuid"

	"intervu/internal/interview"
)

// Sessions keeps live interview sessions in memory, one per connected
// client. Nothing survives a restart.
type Sessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*interview.Session
}

func NewSessions() *Sessions {
	return &Sessions{
		sessions: make(map[uuid.UUID]*interview.Session),
	}
}

// Create registers a session under a fresh id.
func (s *Sessions) Create(sess *interview.Session) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return id
}

// Get retrieves a session by id.
func (s *Sessions) Get(id uuid.UUID) (*interview.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session. Returns false when the id is unknown.
func (s *Sessions) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
