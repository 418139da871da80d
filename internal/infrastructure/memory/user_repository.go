// Package memory provides the in-process adapters backing the default
// deployment: a seeded user store, an opaque-token session store and the
// ordered item collection. Each store serializes access with its own mutex so
// read-modify-write sequences never interleave across requests.
package memory

import (
	"context"
	"sync"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// UserRepository is an in-memory credential store keyed by username.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

// Seed installs the startup account set, replacing any previous contents.
func (r *UserRepository) Seed(_ context.Context, users []domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[string]*domain.User, len(users))
	for _, u := range users {
		clone := u
		r.users[u.Username] = &clone
	}
	return nil
}

// FindByUsername looks up a user by exact, case-sensitive username match.
func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// UpdatePassword replaces the password in place. Sessions issued before the
// change are not invalidated.
func (r *UserRepository) UpdatePassword(_ context.Context, username, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = newPassword
	return nil
}
