package ports

import (
	"context"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// AuthService implements the session lifecycle: anonymous → authenticated on
// login, back to anonymous on logout.
type AuthService interface {
	// Login verifies the credentials and issues a session. priorToken, when
	// non-empty, identifies a session presented by the same client; it is
	// destroyed so a client never stacks sessions. Unknown username and
	// wrong password both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password, priorToken string) (*domain.Session, error)
	// Logout destroys the session for token.
	Logout(ctx context.Context, token string) error
	// ResetPassword replaces the caller's own password. Session state is
	// unchanged.
	ResetPassword(ctx context.Context, username, newPassword string) error
	// Resolve looks up the session for token.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}
