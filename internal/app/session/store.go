// Package session keeps one rental ledger per visitor in memory.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"malacara/go_backend/internal/domain/rental"
)

type Session struct {
	ID string

	mu       sync.Mutex
	ledger   *rental.Ledger
	lastSeen time.Time
}

// WithLedger runs fn with exclusive access to the session's ledger.
func (s *Session) WithLedger(fn func(l *rental.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl without use.
// A ttl of zero disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the live session with the given id or starts a new one.
// The second result reports whether a new session was created.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	if s, ok := st.sessions[id]; ok {
		if !st.expired(s, now) {
			s.lastSeen = now
			return s, false
		}
		delete(st.sessions, id)
	}

	s := &Session{
		ID:       uuid.NewString(),
		ledger:   rental.NewLedger(),
		lastSeen: now,
	}
	st.sessions[s.ID] = s
	return s, true
}

// Find returns the live session with the given id without starting one.
func (st *Store) Find(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if st.expired(s, now) {
		delete(st.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// Sweep drops expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	n := 0
	for id, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) expired(s *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.lastSeen) > st.ttl
}
