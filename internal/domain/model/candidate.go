// Package model defines the core data types exchanged with the TalentHub API.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
)

// CandidateID is the opaque identifier of a candidate. The API emits numeric
// ids today; the type accepts JSON numbers and strings alike.
type CandidateID string

// UnmarshalJSON accepts both `12` and `"12"`.
func (id *CandidateID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("candidate id: %w", err)
		}
		*id = CandidateID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("candidate id: %w", err)
	}
	*id = CandidateID(n.String())
	return nil
}

func (id CandidateID) String() string { return string(id) }

// CandidateSummary is one row as listed to an admin or power user.
type CandidateSummary struct {
	ID          CandidateID     `json:"id"`
	DisplayName string          `json:"username"`
	FirstName   string          `json:"first_name,omitempty"`
	Email       string          `json:"email"`
	Role        domainauth.Role `json:"role"`
	ResumePath  string          `json:"resume_path,omitempty"`
}

// Name returns the best label for the row: the display name, falling back to
// the first name and then the email.
func (c CandidateSummary) Name() string {
	if n := strings.TrimSpace(c.DisplayName); n != "" {
		return n
	}
	if n := strings.TrimSpace(c.FirstName); n != "" {
		return n
	}
	return c.Email
}

// HasResume reports whether a downloadable resume is attached.
func (c CandidateSummary) HasResume() bool {
	return strings.TrimSpace(c.ResumePath) != ""
}

// RoleChangeRequest is the body of PUT /candidates/{id}/role.
type RoleChangeRequest struct {
	Role domainauth.Role `json:"role" validate:"required,oneof=power_user user"`
}

// InviteRequest is the body of POST /send-magic-link.
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Normalize trims the email.
func (r *InviteRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
