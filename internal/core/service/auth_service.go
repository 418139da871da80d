package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glossario/glossary-api/internal/core/domain"
	"github.com/glossario/glossary-api/internal/core/ports"
)

// AuthService implements login, logout and password reset on top of a
// credential store and a session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Login verifies the credentials by exact equality and issues a session
// holding a snapshot of the user's identity. An unknown username and a wrong
// password are indistinguishable to the caller. When priorToken names a
// session issued earlier to the same client, that session is destroyed first
// so a client holds at most one.
func (s *AuthService) Login(ctx context.Context, username, password, priorToken string) (*domain.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}

	if priorToken != "" {
		if err := s.sessions.Destroy(ctx, priorToken); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, fmt.Errorf("replace session: %w", err)
		}
	}

	session, err := s.sessions.Create(ctx, domain.Identity{Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return session, nil
}

// Logout destroys the session for token. A store failure is reported as
// domain.ErrSessionDestroy, which the API layer treats as a server fault.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return err
		}
		s.logger.Error().Err(err).Msg("session teardown failed")
		return domain.ErrSessionDestroy
	}
	return nil
}

// ResetPassword replaces the caller's own password in place. Sessions issued
// before the change, including the caller's, stay valid.
func (s *AuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if err := s.users.UpdatePassword(ctx, username, newPassword); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	s.logger.Info().Str("username", username).Msg("password updated")
	return nil
}

// Resolve returns the session for token, or domain.ErrSessionNotFound.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	return s.sessions.Get(ctx, token)
}
