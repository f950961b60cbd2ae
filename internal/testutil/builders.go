// Package testutil provides fixtures shared by TalentHub tests.
package testutil

import (
	"fmt"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/model"
)

// CandidateBuilder provides a fluent interface for building CandidateSummary fixtures.
type CandidateBuilder struct {
	c model.CandidateSummary
}

// NewCandidate creates a builder for a plain user with a derived name and email.
func NewCandidate(id string) *CandidateBuilder {
	return &CandidateBuilder{c: model.CandidateSummary{
		ID:          model.CandidateID(id),
		DisplayName: "Candidate " + id,
		Email:       fmt.Sprintf("candidate%s@example.com", id),
		Role:        domainauth.RoleUser,
	}}
}

// WithRole sets the role.
func (b *CandidateBuilder) WithRole(role domainauth.Role) *CandidateBuilder {
	b.c.Role = role
	return b
}

// WithName sets the display name.
func (b *CandidateBuilder) WithName(name string) *CandidateBuilder {
	b.c.DisplayName = name
	return b
}

// WithEmail sets the email.
func (b *CandidateBuilder) WithEmail(email string) *CandidateBuilder {
	b.c.Email = email
	return b
}

// WithResume sets the resume path.
func (b *CandidateBuilder) WithResume(path string) *CandidateBuilder {
	b.c.ResumePath = path
	return b
}

// Build returns the candidate.
func (b *CandidateBuilder) Build() model.CandidateSummary {
	return b.c
}

// Candidates builds a list from builders, in order.
func Candidates(builders ...*CandidateBuilder) []model.CandidateSummary {
	out := make([]model.CandidateSummary, len(builders))
	for i, b := range builders {
		out[i] = b.Build()
	}
	return out
}

// DetailsBuilder provides a fluent interface for building CandidateDetails fixtures.
type DetailsBuilder struct {
	d model.CandidateDetails
}

// NewDetails creates a builder whose personal-details record has id.
func NewDetails(id string) *DetailsBuilder {
	return &DetailsBuilder{d: model.CandidateDetails{
		PersonalDetails: model.PersonalDetails{ID: model.CandidateID(id), FirstName: "John", LastName: "Doe"},
	}}
}

// WithQualification appends a qualification.
func (b *DetailsBuilder) WithQualification(q model.Qualification) *DetailsBuilder {
	b.d.Qualifications = append(b.d.Qualifications, q)
	return b
}

// WithSkills sets the skills.
func (b *DetailsBuilder) WithSkills(skills ...string) *DetailsBuilder {
	b.d.Skills = skills
	return b
}

// WithCertifications sets the certifications.
func (b *DetailsBuilder) WithCertifications(certs ...string) *DetailsBuilder {
	b.d.Certifications = certs
	return b
}

// Build returns the details.
func (b *DetailsBuilder) Build() model.CandidateDetails {
	return b.d
}
