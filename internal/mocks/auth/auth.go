package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*StaticAuthenticator)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
)

// StaticAuthenticator accepts a fixed set of email/password pairs.
type StaticAuthenticator struct {
	LoginFunc func(ctx context.Context, creds domainauth.Credentials) (ports.LoginResult, error)

	// Users maps email to the password and viewer returned on success.
	Users map[string]StaticUser

	calls int
}

// StaticUser is one account known to StaticAuthenticator.
type StaticUser struct {
	Password string
	Viewer   domainauth.ViewerContext
	Token    string
}

// ErrBadCredentials is returned for unknown emails or wrong passwords.
var ErrBadCredentials = errors.New("invalid credentials")

// NewStaticAuthenticator creates a StaticAuthenticator with one admin and one power user.
func NewStaticAuthenticator() *StaticAuthenticator {
	return &StaticAuthenticator{
		Users: map[string]StaticUser{
			"admin@example.com": {
				Password: "admin-pass",
				Viewer:   domainauth.ViewerContext{UserID: "1", Email: "admin@example.com", Role: domainauth.RoleAdmin},
				Token:    "token-admin",
			},
			"power@example.com": {
				Password: "power-pass",
				Viewer:   domainauth.ViewerContext{UserID: "2", Email: "power@example.com", Role: domainauth.RolePowerUser},
				Token:    "token-power",
			},
		},
	}
}

// Calls returns how many times Login was invoked.
func (a *StaticAuthenticator) Calls() int { return a.calls }

func (a *StaticAuthenticator) Login(ctx context.Context, creds domainauth.Credentials) (ports.LoginResult, error) {
	a.calls++
	if a.LoginFunc != nil {
		return a.LoginFunc(ctx, creds)
	}
	u, ok := a.Users[creds.Email]
	if !ok || u.Password != creds.Password {
		return ports.LoginResult{}, ErrBadCredentials
	}
	return ports.LoginResult{Viewer: u.Viewer, Token: u.Token}, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// ErrNotFound is returned by mocks when an entity is not present.
var ErrNotFound = ports.ErrSessionNotFound
