package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/glossario/glossary-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := u
		r.users[u.Username] = &clone
	}
	return r
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, username, newPassword string) error {
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = newPassword
	return nil
}

func (r *stubUserRepo) Seed(_ context.Context, users []domain.User) error {
	for _, u := range users {
		clone := u
		r.users[u.Username] = &clone
	}
	return nil
}

type stubSessionStore struct {
	sessions   map[string]*domain.Session
	nextToken  int
	destroyErr error // if set, Destroy returns this error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, identity domain.Identity) (*domain.Session, error) {
	s.nextToken++
	session := &domain.Session{
		Token:     fmt.Sprintf("token-%d", s.nextToken),
		Identity:  identity,
		CreatedAt: time.Now(),
	}
	s.sessions[session.Token] = session
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, token string) error {
	if s.destroyErr != nil {
		return s.destroyErr
	}
	if _, ok := s.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}

func newTestAuthService(users *stubUserRepo, sessions *stubSessionStore) *AuthService {
	return NewAuthService(users, sessions, zerolog.Nop())
}

func seedAccounts() *stubUserRepo {
	return newStubUserRepo(
		domain.User{ID: 1, Username: "admin", Password: "adminpass", Role: domain.RoleAdmin},
		domain.User{ID: 2, Username: "user", Password: "userpass", Role: domain.RoleUser},
	)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	session, err := svc.Login(context.Background(), "admin", "adminpass", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected a token")
	}
	if session.Identity.Username != "admin" || session.Identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", session.Identity)
	}
}

func TestAuthService_Login_RoleSnapshot(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	session, err := svc.Login(context.Background(), "user", "userpass", "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Identity.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, session.Identity.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	if _, err := svc.Login(context.Background(), "admin", "wrong", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session must be created on failure, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	// Unknown usernames surface as the same error as a wrong password.
	if _, err := svc.Login(context.Background(), "ghost", "whatever", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session must be created on failure, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Login_CaseSensitiveUsername(t *testing.T) {
	svc := newTestAuthService(seedAccounts(), newStubSessionStore())

	if _, err := svc.Login(context.Background(), "Admin", "adminpass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for case-folded username, got %v", err)
	}
}

func TestAuthService_Login_ReplacesPriorSession(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	first, err := svc.Login(context.Background(), "admin", "adminpass", "")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	second, err := svc.Login(context.Background(), "admin", "adminpass", first.Token)
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if second.Token == first.Token {
		t.Fatalf("expected a fresh token")
	}
	if _, err := sessions.Get(context.Background(), first.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("prior session must be destroyed, got %v", err)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected exactly one live session, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Login_StalePriorTokenIgnored(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	if _, err := svc.Login(context.Background(), "admin", "adminpass", "long-gone"); err != nil {
		t.Fatalf("login with a stale prior cookie must succeed: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	sessions := newStubSessionStore()
	svc := newTestAuthService(seedAccounts(), sessions)

	session, _ := svc.Login(context.Background(), "user", "userpass", "")
	if err := svc.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), session.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
}

func TestAuthService_Logout_TeardownFailure(t *testing.T) {
	sessions := newStubSessionStore()
	sessions.destroyErr = errors.New("backend down")
	svc := newTestAuthService(seedAccounts(), sessions)

	if err := svc.Logout(context.Background(), "whatever"); !errors.Is(err, domain.ErrSessionDestroy) {
		t.Fatalf("expected ErrSessionDestroy, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

func TestAuthService_ResetPassword(t *testing.T) {
	users := seedAccounts()
	sessions := newStubSessionStore()
	svc := newTestAuthService(users, sessions)

	session, _ := svc.Login(context.Background(), "user", "userpass", "")

	if err := svc.ResetPassword(context.Background(), "user", "newpass"); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	// Old sessions stay valid even though the password changed underneath.
	if _, err := svc.Resolve(context.Background(), session.Token); err != nil {
		t.Fatalf("session must survive a password reset: %v", err)
	}

	if _, err := svc.Login(context.Background(), "user", "userpass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "user", "newpass", ""); err != nil {
		t.Fatalf("new password must work: %v", err)
	}
}

func TestAuthService_ResetPassword_UnknownUser(t *testing.T) {
	svc := newTestAuthService(seedAccounts(), newStubSessionStore())

	if err := svc.ResetPassword(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
