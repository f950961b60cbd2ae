package model

import (
	"fmt"
	"strings"
)

// PersonalDetails is the personal section of a candidate profile.
// ID is the personal-details record id; the resume download is keyed on it.
// Section updates are keyed on the candidate id instead.
type PersonalDetails struct {
	ID           CandidateID `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	PhoneNo      string      `json:"phone_no"`
	AddressLine1 string      `json:"address_line1"`
	AddressLine2 string      `json:"address_line2"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	Country      string      `json:"country"`
	PostalCode   string      `json:"postal_code"`
	LinkedInURL  string      `json:"linkedin_url" validate:"omitempty,url"`
	ResumePath   string      `json:"resume_path,omitempty"`
}

// personalField binds a form field name to its struct slot.
type personalField struct {
	name string
	ptr  func(p *PersonalDetails) *string
}

var personalFields = []personalField{
	{"first_name", func(p *PersonalDetails) *string { return &p.FirstName }},
	{"last_name", func(p *PersonalDetails) *string { return &p.LastName }},
	{"phone_no", func(p *PersonalDetails) *string { return &p.PhoneNo }},
	{"address_line1", func(p *PersonalDetails) *string { return &p.AddressLine1 }},
	{"address_line2", func(p *PersonalDetails) *string { return &p.AddressLine2 }},
	{"city", func(p *PersonalDetails) *string { return &p.City }},
	{"state", func(p *PersonalDetails) *string { return &p.State }},
	{"country", func(p *PersonalDetails) *string { return &p.Country }},
	{"postal_code", func(p *PersonalDetails) *string { return &p.PostalCode }},
	{"linkedin_url", func(p *PersonalDetails) *string { return &p.LinkedInURL }},
}

// FormField is one name/value pair of a multipart form.
type FormField struct {
	Name  string
	Value string
}

// FormFields returns the editable personal fields in a stable order, ready to be
// written as multipart form values.
func (p PersonalDetails) FormFields() []FormField {
	out := make([]FormField, 0, len(personalFields)+1)
	if p.ID != "" {
		out = append(out, FormField{Name: "id", Value: p.ID.String()})
	}
	for _, f := range personalFields {
		out = append(out, FormField{Name: f.name, Value: *f.ptr(&p)})
	}
	return out
}

// Set assigns a personal field by its form name.
func (p *PersonalDetails) Set(name, value string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range personalFields {
		if f.name == name {
			*f.ptr(p) = value
			return nil
		}
	}
	return fmt.Errorf("unknown personal field %q", name)
}

// PersonalFieldNames lists the names accepted by Set.
func PersonalFieldNames() []string {
	out := make([]string, len(personalFields))
	for i, f := range personalFields {
		out[i] = f.name
	}
	return out
}

// Qualification is one entry of the qualifications section.
type Qualification struct {
	ID                       CandidateID `json:"id,omitempty"`
	RecentJob                string      `json:"recent_job"`
	PreferredRoles           string      `json:"preferred_roles"`
	Availability             string      `json:"availability"`
	WorkPermitStatus         string      `json:"work_permit_status"`
	PreferredRoleType        string      `json:"preferred_role_type"`
	PreferredWorkArrangement string      `json:"preferred_work_arrangement"`
	Compensation             string      `json:"compensation"`
}

// Set assigns a qualification field by its form name.
func (q *Qualification) Set(name, value string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recent_job":
		q.RecentJob = value
	case "preferred_roles":
		q.PreferredRoles = value
	case "availability":
		q.Availability = value
	case "work_permit_status":
		q.WorkPermitStatus = value
	case "preferred_role_type":
		q.PreferredRoleType = value
	case "preferred_work_arrangement":
		q.PreferredWorkArrangement = value
	case "compensation":
		q.Compensation = value
	default:
		return fmt.Errorf("unknown qualification field %q", name)
	}
	return nil
}

// CandidateDetails is the payload of GET /personalDetails/{id}.
type CandidateDetails struct {
	PersonalDetails PersonalDetails `json:"personalDetails"`
	Qualifications  []Qualification `json:"qualifications"`
	Skills          []string        `json:"skills"`
	Certifications  []string        `json:"certifications"`
}

// Normalize replaces nil slices with empty ones so that rendering and
// re-submitting never emit JSON null.
func (d *CandidateDetails) Normalize() {
	if d.Qualifications == nil {
		d.Qualifications = []Qualification{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
}

// Clone returns a deep copy suitable for use as an editable form.
func (d CandidateDetails) Clone() CandidateDetails {
	out := d
	out.Qualifications = append([]Qualification(nil), d.Qualifications...)
	out.Skills = append([]string(nil), d.Skills...)
	out.Certifications = append([]string(nil), d.Certifications...)
	out.Normalize()
	return out
}

// ResumeUpload is an optional file attached to a personal-details update.
type ResumeUpload struct {
	FileName string
	Content  []byte
}

// PersonalUpdate is the multipart submission for the personal section.
type PersonalUpdate struct {
	Details PersonalDetails
	Resume  *ResumeUpload
}

// SkillsUpdate is the body of PUT /candidates/{id}/skills.
type SkillsUpdate struct {
	Skills []string `json:"skills" validate:"dive,required"`
}

// CertificationsUpdate is the body of PUT /candidates/{id}/certifications.
type CertificationsUpdate struct {
	Certifications []string `json:"certifications" validate:"dive,required"`
}

// MagicLink is one entry of the invite history.
type MagicLink struct {
	ID        CandidateID `json:"id"`
	Email     string      `json:"email"`
	CreatedAt string      `json:"created_at,omitempty"`
	ExpiresAt string      `json:"expires_at,omitempty"`
	Used      bool        `json:"used,omitempty"`
}
