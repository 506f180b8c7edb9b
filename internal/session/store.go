package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Store holds the single in-memory staff session.
type Store struct {
	mu      sync.RWMutex
	current *model.Session
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Begin replaces any existing session. Each session gets a fresh ID so cookies
// issued for an earlier login stop matching.
func (s *Store) Begin(token string, profile model.Profile) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := model.Session{ID: uuid.NewString(), AccessToken: token, Profile: profile, StartedAt: s.now()}
	s.current = &sess
	return sess
}

// Clear drops the session. It reports whether one was active.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := s.current != nil
	s.current = nil
	return active
}

// End drops the session if its ID is id. It reports whether it did.
func (s *Store) End(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != id {
		return false
	}
	s.current = nil
	return true
}

// Current returns a copy of the active session.
func (s *Store) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.Session{}, false
	}
	return *s.current, true
}

// AccessToken returns the bearer token of the active session.
func (s *Store) AccessToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.AccessToken == "" {
		return "", domainErrors.ErrNoSession
	}
	return s.current.AccessToken, nil
}
