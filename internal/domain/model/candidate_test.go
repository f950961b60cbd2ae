package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
)

func TestCandidateID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    CandidateID
		wantErr bool
	}{
		{name: "number", raw: `12`, want: "12"},
		{name: "string", raw: `"abc-1"`, want: "abc-1"},
		{name: "null", raw: `null`, want: ""},
		{name: "bool", raw: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id CandidateID
			err := json.Unmarshal([]byte(tt.raw), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestCandidateSummary_DecodeAPIRow(t *testing.T) {
	var c CandidateSummary
	raw := `{"id":4,"username":"jdoe","email":"j@example.com","role":"power_user","resume_path":"uploads/j.pdf"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, CandidateID("4"), c.ID)
	assert.Equal(t, domainauth.RolePowerUser, c.Role)
	assert.True(t, c.HasResume())
}

func TestCandidateSummary_Name(t *testing.T) {
	assert.Equal(t, "jdoe", CandidateSummary{DisplayName: " jdoe ", FirstName: "John"}.Name())
	assert.Equal(t, "John", CandidateSummary{FirstName: "John", Email: "j@example.com"}.Name())
	assert.Equal(t, "j@example.com", CandidateSummary{Email: "j@example.com"}.Name())
	assert.False(t, CandidateSummary{ResumePath: "  "}.HasResume())
}

func TestRoleChangeRequest_Validate(t *testing.T) {
	assert.NoError(t, RoleChangeRequest{Role: domainauth.RolePowerUser}.Validate())
	assert.NoError(t, RoleChangeRequest{Role: domainauth.RoleUser}.Validate())

	err := RoleChangeRequest{Role: domainauth.RoleAdmin}.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "role", apperrors.GetField(err))
}

func TestInviteRequest(t *testing.T) {
	req := InviteRequest{Email: "  new@example.com "}
	req.Normalize()
	assert.Equal(t, "new@example.com", req.Email)
	assert.NoError(t, req.Validate())

	for _, bad := range []string{"", "not-an-email"} {
		err := InviteRequest{Email: bad}.Validate()
		require.Error(t, err, bad)
		assert.Equal(t, "email", apperrors.GetField(err))
	}
}

func TestCascadeOrder_CandidateLast(t *testing.T) {
	require.Len(t, CascadeOrder, 5)
	assert.Equal(t, ResourceQualifications, CascadeOrder[0])
	assert.Equal(t, ResourceCandidates, CascadeOrder[len(CascadeOrder)-1])
}
