package ports

import (
	"context"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// UserRepository defines the interface for credential lookup and update.
type UserRepository interface {
	// FindByUsername returns the user with the exact username, or
	// domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdatePassword replaces the user's password in place. Sessions issued
	// before the change remain valid.
	UpdatePassword(ctx context.Context, username, newPassword string) error
	// Seed installs the startup account set.
	Seed(ctx context.Context, users []domain.User) error
}
