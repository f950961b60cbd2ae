package viewmodel

import domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"

// User represents the authenticated user context exposed to renderers.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Layout captures shared chrome metadata (titles, landing view, auth flags).
type Layout struct {
	Title           string               `json:"title"`
	Dashboard       domainauth.Dashboard `json:"dashboard"`
	IsAuthenticated bool                 `json:"is_authenticated"`
	CanInvite       bool                 `json:"can_invite"`
	CanChangeRoles  bool                 `json:"can_change_roles"`
	User            *User                `json:"user,omitempty"`
}

// LayoutFor derives the layout for viewer.
func LayoutFor(viewer domainauth.ViewerContext) Layout {
	l := Layout{
		Title:     dashboardTitle(viewer.Role),
		Dashboard: viewer.Role.Dashboard(),
	}
	if viewer.UserID == "" && viewer.Email == "" {
		return l
	}
	l.IsAuthenticated = true
	l.User = &User{ID: viewer.UserID, Email: viewer.Email, Role: RoleLabel(viewer.Role)}
	l.CanInvite = viewer.Role == domainauth.RoleAdmin || viewer.Role == domainauth.RolePowerUser
	l.CanChangeRoles = viewer.Role == domainauth.RoleAdmin
	return l
}

func dashboardTitle(r domainauth.Role) string {
	switch r {
	case domainauth.RoleAdmin:
		return "Admin Dashboard"
	case domainauth.RolePowerUser:
		return "Power User Dashboard"
	case domainauth.RoleUser:
		return "User Dashboard"
	default:
		return "TalentHub"
	}
}

// RoleLabel is the human-readable role name.
func RoleLabel(r domainauth.Role) string {
	switch r {
	case domainauth.RoleAdmin:
		return "Admin"
	case domainauth.RolePowerUser:
		return "Power User"
	case domainauth.RoleUser:
		return "User"
	case "":
		return "Unknown"
	default:
		return string(r)
	}
}
