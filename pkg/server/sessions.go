package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"droscher.com/BeerDiary/pkg/journal"
)

// SessionHeader carries the id of the caller's session buffer on requests and responses.
const SessionHeader = "Beer-Diary-Session"

type ownedSession struct {
	owner    string
	buffer   *journal.Session
	lastUsed time.Time
}

// Sessions keeps the unsaved journal buffer of every live session. A session
// belongs to the user that started it and expires after ttl without use.
type Sessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*ownedSession
	ttl      time.Duration
	now      func() time.Time
}

func NewSessions(ttl time.Duration, now func() time.Time) *Sessions {
	return &Sessions{sessions: make(map[uuid.UUID]*ownedSession), ttl: ttl, now: now}
}

// Lookup returns the live session named in header when userID owns it. It
// never starts a session.
func (s *Sessions) Lookup(header http.Header, userID string) (uuid.UUID, *journal.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, owned := s.find(header, userID)
	if owned == nil {
		return uuid.Nil, nil, false
	}

	return id, owned.buffer, true
}

// Resolve returns the live session named in header when userID owns it and
// starts a new one otherwise. Expired sessions are pruned first.
func (s *Sessions) Resolve(header http.Header, userID string) (uuid.UUID, *journal.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	if id, owned := s.find(header, userID); owned != nil {
		return id, owned.buffer
	}

	id := uuid.New()
	owned := &ownedSession{owner: userID, buffer: journal.NewSession(), lastUsed: s.now()}
	s.sessions[id] = owned

	return id, owned.buffer
}

// Prune drops every session idle for longer than the ttl and returns how many went.
func (s *Sessions) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pruneLocked()
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Sessions) find(header http.Header, userID string) (uuid.UUID, *ownedSession) {
	id, err := uuid.Parse(header.Get(SessionHeader))
	if err != nil {
		return uuid.Nil, nil
	}

	owned, ok := s.sessions[id]
	if !ok || owned.owner != userID || s.expired(owned) {
		return uuid.Nil, nil
	}

	owned.lastUsed = s.now()

	return id, owned
}

func (s *Sessions) expired(owned *ownedSession) bool {
	return s.now().Sub(owned.lastUsed) > s.ttl
}

func (s *Sessions) pruneLocked() int {
	pruned := 0

	for id, owned := range s.sessions {
		if s.expired(owned) {
			delete(s.sessions, id)
			pruned++
		}
	}

	return pruned
}
