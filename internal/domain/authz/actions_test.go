package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
)

var allRoles = []domainauth.Role{
	domainauth.RoleAdmin,
	domainauth.RolePowerUser,
	domainauth.RoleUser,
	domainauth.Role("guest"),
	domainauth.Role(""),
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name      string
		viewer    domainauth.Role
		candidate domainauth.Role
		want      ActionSet
	}{
		{
			name:      "admin on user",
			viewer:    domainauth.RoleAdmin,
			candidate: domainauth.RoleUser,
			want:      ActionSet{View: true, Edit: true, Delete: true, Promote: true},
		},
		{
			name:      "admin on power user",
			viewer:    domainauth.RoleAdmin,
			candidate: domainauth.RolePowerUser,
			want:      ActionSet{View: true, Edit: true, Delete: true, Demote: true},
		},
		{
			name:      "admin on admin",
			viewer:    domainauth.RoleAdmin,
			candidate: domainauth.RoleAdmin,
			want:      ActionSet{},
		},
		{
			name:      "power user on user",
			viewer:    domainauth.RolePowerUser,
			candidate: domainauth.RoleUser,
			want:      ActionSet{View: true, Edit: true, Delete: true, Promote: true},
		},
		{
			name:      "power user on power user",
			viewer:    domainauth.RolePowerUser,
			candidate: domainauth.RolePowerUser,
			want:      ActionSet{},
		},
		{
			name:      "user sees nothing",
			viewer:    domainauth.RoleUser,
			candidate: domainauth.RoleUser,
			want:      ActionSet{},
		},
		{
			name:      "unknown candidate role",
			viewer:    domainauth.RoleAdmin,
			candidate: domainauth.Role("recruiter"),
			want:      ActionSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionsFor(tt.viewer, tt.candidate))
		})
	}
}

func TestActionsFor_TotalAndDeterministic(t *testing.T) {
	for _, viewer := range allRoles {
		for _, candidate := range allRoles {
			first := ActionsFor(viewer, candidate)
			second := ActionsFor(viewer, candidate)
			assert.Equal(t, first, second, "viewer=%q candidate=%q", viewer, candidate)

			if !CanSee(viewer, candidate) {
				assert.True(t, first.Empty(), "invisible pair must deny everything: %q/%q", viewer, candidate)
				continue
			}
			assert.True(t, first.View && first.Edit && first.Delete)
			assert.False(t, first.Promote && first.Demote, "promote and demote are exclusive")
		}
	}
}

func TestVisibleRoles(t *testing.T) {
	assert.Equal(t, []domainauth.Role{domainauth.RolePowerUser, domainauth.RoleUser}, VisibleRoles(domainauth.RoleAdmin))
	assert.Equal(t, []domainauth.Role{domainauth.RoleUser}, VisibleRoles(domainauth.RolePowerUser))
	assert.Empty(t, VisibleRoles(domainauth.RoleUser))
}

func TestRenderProfile(t *testing.T) {
	set := ActionsFor(domainauth.RoleAdmin, domainauth.RoleUser)

	admin := AdminProfile.Render(set)
	assert.True(t, admin.Promote)

	power := PowerUserProfile.Render(ActionsFor(domainauth.RolePowerUser, domainauth.RoleUser))
	assert.False(t, power.Promote)
	assert.False(t, power.Demote)
	assert.Equal(t, []Action{ActionView, ActionEdit, ActionDelete}, power.Actions())

	assert.Equal(t, AdminProfile, ProfileFor(domainauth.RoleAdmin))
	assert.Equal(t, PowerUserProfile, ProfileFor(domainauth.RolePowerUser))
}

func TestActionSet_Actions(t *testing.T) {
	set := ActionSet{View: true, Demote: true}
	assert.Equal(t, []Action{ActionView, ActionDemote}, set.Actions())
	assert.True(t, set.Allows(ActionDemote))
	assert.False(t, set.Allows(Action("archive")))
}
