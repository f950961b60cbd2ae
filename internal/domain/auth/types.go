package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence; the API returns it verbatim.
// Values outside the constants below are carried as-is and are never visible
// in either dashboard.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePowerUser Role = "power_user"
	RoleUser      Role = "user"
)

// ParseRole normalises a raw role string. Unknown values are returned unchanged
// (lowercased and trimmed) so callers can still display them.
func ParseRole(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

// Known reports whether r is one of the three roles the application defines.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RolePowerUser, RoleUser:
		return true
	default:
		return false
	}
}

// Dashboard identifies the landing view for a role after login.
type Dashboard string

const (
	DashboardAdmin     Dashboard = "admin-dashboard"
	DashboardPowerUser Dashboard = "power-user-dashboard"
	DashboardUser      Dashboard = "user-dashboard"
	DashboardNone      Dashboard = ""
)

// Dashboard returns the landing dashboard for the role.
func (r Role) Dashboard() Dashboard {
	switch r {
	case RoleAdmin:
		return DashboardAdmin
	case RolePowerUser:
		return DashboardPowerUser
	case RoleUser:
		return DashboardUser
	default:
		return DashboardNone
	}
}

// ViewerContext is the acting user's identity for the duration of a session.
// It is passed explicitly to every component that makes authorization decisions.
type ViewerContext struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Credentials are what the user types into the login form.
type Credentials struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the record we persist locally for an authenticated user.
// ID is an opaque session identifier; Token is the bearer token issued by the API.
type Session struct {
	ID        string        `json:"id"`
	Viewer    ViewerContext `json:"viewer"`
	Token     string        `json:"token"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
