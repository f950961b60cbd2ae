// Package authz holds the single definition of which candidate rows a viewer may
// see and which actions each row offers. Everything here is pure.
package authz

import (
	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
)

// Action is one operation a presentation may offer on a candidate row.
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionPromote Action = "promote"
	ActionDemote  Action = "demote"
	ActionDelete  Action = "delete"
)

// AllActions lists every action in display order.
var AllActions = []Action{ActionView, ActionEdit, ActionPromote, ActionDemote, ActionDelete}

// ActionSet is the set of actions permitted on one row. It is derived on every
// render and never persisted.
type ActionSet struct {
	View    bool `json:"view"`
	Edit    bool `json:"edit"`
	Promote bool `json:"promote"`
	Demote  bool `json:"demote"`
	Delete  bool `json:"delete"`
}

// Allows reports whether a is in the set.
func (s ActionSet) Allows(a Action) bool {
	switch a {
	case ActionView:
		return s.View
	case ActionEdit:
		return s.Edit
	case ActionPromote:
		return s.Promote
	case ActionDemote:
		return s.Demote
	case ActionDelete:
		return s.Delete
	default:
		return false
	}
}

// Empty reports whether no action is permitted.
func (s ActionSet) Empty() bool {
	return s == ActionSet{}
}

// Actions returns the permitted actions in display order.
func (s ActionSet) Actions() []Action {
	out := make([]Action, 0, len(AllActions))
	for _, a := range AllActions {
		if s.Allows(a) {
			out = append(out, a)
		}
	}
	return out
}

// visibility maps a viewer role to the candidate roles it may list.
// Admins never list other admins; power users only list plain users.
var visibility = map[domainauth.Role]map[domainauth.Role]struct{}{
	domainauth.RoleAdmin: {
		domainauth.RolePowerUser: {},
		domainauth.RoleUser:      {},
	},
	domainauth.RolePowerUser: {
		domainauth.RoleUser: {},
	},
}

// CanSee reports whether a viewer with viewerRole may list a candidate with candidateRole.
// Unknown roles on either side are never visible.
func CanSee(viewerRole, candidateRole domainauth.Role) bool {
	_, ok := visibility[viewerRole][candidateRole]
	return ok
}

// VisibleRoles returns the candidate roles viewerRole may list, power users first.
func VisibleRoles(viewerRole domainauth.Role) []domainauth.Role {
	out := make([]domainauth.Role, 0, 2)
	for _, r := range []domainauth.Role{domainauth.RolePowerUser, domainauth.RoleUser} {
		if CanSee(viewerRole, r) {
			out = append(out, r)
		}
	}
	return out
}

// ActionsFor is total over every (viewer, candidate) role pair.
func ActionsFor(viewerRole, candidateRole domainauth.Role) ActionSet {
	if !CanSee(viewerRole, candidateRole) {
		return ActionSet{}
	}
	return ActionSet{
		View:    true,
		Edit:    true,
		Delete:  true,
		Promote: candidateRole == domainauth.RoleUser,
		Demote:  candidateRole == domainauth.RolePowerUser,
	}
}

// RenderProfile selects which ActionSet fields a presentation shows. The policy
// in ActionsFor stays the same; a profile can only hide actions, never add them.
type RenderProfile struct {
	Name       string
	ShowRoleOp bool
}

var (
	// AdminProfile renders promote/demote toggles.
	AdminProfile = RenderProfile{Name: "admin", ShowRoleOp: true}
	// PowerUserProfile hides role changes.
	PowerUserProfile = RenderProfile{Name: "power_user", ShowRoleOp: false}
)

// ProfileFor returns the default render profile for a viewer role.
func ProfileFor(viewerRole domainauth.Role) RenderProfile {
	if viewerRole == domainauth.RoleAdmin {
		return AdminProfile
	}
	return PowerUserProfile
}

// Render applies the profile to a set.
func (p RenderProfile) Render(s ActionSet) ActionSet {
	if !p.ShowRoleOp {
		s.Promote = false
		s.Demote = false
	}
	return s
}
