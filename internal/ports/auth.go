package ports

// Package ports defines interfaces (hexagonal ports) for the remote API and
// local session persistence. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
)

// LoginResult is what the API returns for a successful login.
type LoginResult struct {
	Viewer domainauth.ViewerContext
	Token  string
}

// Authenticator exchanges credentials for a viewer identity and bearer token.
type Authenticator interface {
	Login(ctx context.Context, creds domainauth.Credentials) (LoginResult, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// ErrSessionNotFound is returned by SessionStore.Get when no live session is
// stored under the id.
var ErrSessionNotFound = errors.New("session not found")
