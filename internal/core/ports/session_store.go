package ports

import (
	"context"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// SessionStore maps opaque tokens to authenticated identities. Sessions live
// for the process lifetime unless destroyed (or expired, when the store is
// configured with a TTL).
type SessionStore interface {
	// Create issues a new session with a fresh opaque token.
	Create(ctx context.Context, identity domain.Identity) (*domain.Session, error)
	// Get returns the session for token, or domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Destroy removes the session for token. Returns
	// domain.ErrSessionNotFound when no such session exists.
	Destroy(ctx context.Context, token string) error
}
