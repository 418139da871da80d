package memory

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/glossario/glossary-api/internal/core/domain"
)

const tokenBytes = 32

// SessionStore maps opaque tokens to identity snapshots. Sessions live until
// destroyed; a positive ttl additionally expires them (the default ttl of 0
// keeps the original no-expiry behavior).
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a session under a fresh random token.
func (s *SessionStore) Create(_ context.Context, identity domain.Identity) (*domain.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &domain.Session{
		Token:     token,
		Identity:  identity,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	clone := *session
	return &clone, nil
}

// Get resolves token to its session. Expired sessions are evicted lazily.
func (s *SessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if s.ttl > 0 && s.now().Sub(session.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}

	clone := *session
	return &clone, nil
}

// Destroy removes the session for token.
func (s *SessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

// Len reports the number of live sessions. Used by the active-sessions gauge.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// generateToken returns a 64-character hex token from crypto/rand.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
