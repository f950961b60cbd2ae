package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/ports"
)

// SessionPolicy controls session lifetime.
type SessionPolicy struct {
	TTL time.Duration
	Now func() time.Time
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Sessions      ports.SessionStore
	Policy        SessionPolicy
}

// AuthService logs a viewer in against the API and keeps the resulting
// session in a SessionStore so later commands can act as that viewer.
type AuthService struct {
	authenticator ports.Authenticator
	sessions      ports.SessionStore
	ttl           time.Duration
	now           func() time.Time
}

var (
	errSessionExpired = apperrors.Unauthorized("session expired; log in again")
	errNotLoggedIn    = apperrors.Unauthorized("not logged in")
)

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	ttl := opts.Policy.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	now := opts.Policy.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		authenticator: opts.Authenticator,
		sessions:      opts.Sessions,
		ttl:           ttl,
		now:           now,
	}
}

// LoginOutcome contains the result of a successful login.
type LoginOutcome struct {
	Session   domainauth.Session
	Dashboard domainauth.Dashboard
}

// Login exchanges credentials for a session stored under profile.
func (s *AuthService) Login(ctx context.Context, profile string, creds domainauth.Credentials) (*LoginOutcome, error) {
	if s.authenticator == nil {
		return nil, errors.New("login is not configured")
	}
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return nil, apperrors.ValidationField("profile", "profile is required")
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if err := model.Struct(creds); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	res, err := s.authenticator.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	viewer := res.Viewer
	viewer.Role = domainauth.ParseRole(string(viewer.Role))

	now := s.now()
	session := domainauth.Session{
		ID:        profile,
		Viewer:    viewer,
		Token:     res.Token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &LoginOutcome{
		Session:   session,
		Dashboard: viewer.Role.Dashboard(),
	}, nil
}

// Current returns the live session for profile. Expired sessions are removed.
func (s *AuthService) Current(ctx context.Context, profile string) (*domainauth.Session, error) {
	if profile == "" {
		return nil, apperrors.ValidationField("profile", "profile is required")
	}
	session, err := s.sessions.Get(ctx, profile)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, errNotLoggedIn
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, profile); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}
	return &session, nil
}

// Logout forgets the session stored under profile.
func (s *AuthService) Logout(ctx context.Context, profile string) error {
	if profile == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, profile); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
