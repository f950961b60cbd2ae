// Package viewmodel shapes candidate rows for presentation. Rows carry the
// actions the render profile shows; the policy itself lives in authz.
package viewmodel

import (
	"strings"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/authz"
	"github.com/mrraghuvarun/talent/internal/domain/model"
	"github.com/mrraghuvarun/talent/internal/service"
)

const maxNameRunes = 40

// Row is one rendered candidate line.
type Row struct {
	ID        model.CandidateID `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      domainauth.Role   `json:"role"`
	RoleLabel string            `json:"role_label"`
	ResumeURL string            `json:"resume_url,omitempty"`
	Actions   []authz.Action    `json:"actions"`
}

// Can reports whether the row offers action.
func (r Row) Can(a authz.Action) bool {
	for _, have := range r.Actions {
		if have == a {
			return true
		}
	}
	return false
}

// Dashboard is the complete view of a candidate list.
type Dashboard struct {
	Layout     Layout     `json:"layout"`
	Query      string     `json:"query,omitempty"`
	Rows       []Row      `json:"rows"`
	Pagination Pagination `json:"pagination"`
	// Error is the last refresh failure. Rows then show the previous list.
	Error string `json:"error,omitempty"`
}

// Empty reports whether there is nothing to show.
func (d Dashboard) Empty() bool { return len(d.Rows) == 0 }

// DashboardInput groups everything BuildDashboard needs.
type DashboardInput struct {
	Viewer   domainauth.ViewerContext
	Rows     []service.CandidateRow
	Query    string
	Page     int
	PageSize int
	// Profile overrides the viewer's default render profile.
	Profile *authz.RenderProfile
	// ResumeURL turns a resume_path into a link. Optional.
	ResumeURL  func(path string) string
	RefreshErr error
}

// BuildDashboard renders rows through the viewer's profile and paginates them.
func BuildDashboard(in DashboardInput) Dashboard {
	profile := authz.ProfileFor(in.Viewer.Role)
	if in.Profile != nil {
		profile = *in.Profile
	}

	p := Paginate(len(in.Rows), in.Page, in.PageSize)
	page := in.Rows[p.StartIndex:p.EndIndex]

	rows := make([]Row, len(page))
	for i, cr := range page {
		c := cr.Candidate
		row := Row{
			ID:        c.ID,
			Name:      truncateWithEllipsis(c.Name(), maxNameRunes),
			Email:     c.Email,
			Role:      c.Role,
			RoleLabel: RoleLabel(c.Role),
			Actions:   profile.Render(cr.Actions).Actions(),
		}
		if c.HasResume() && in.ResumeURL != nil {
			row.ResumeURL = in.ResumeURL(c.ResumePath)
		}
		rows[i] = row
	}

	d := Dashboard{
		Layout:     LayoutFor(in.Viewer),
		Query:      strings.TrimSpace(in.Query),
		Rows:       rows,
		Pagination: p,
	}
	if in.RefreshErr != nil {
		d.Error = in.RefreshErr.Error()
	}
	return d
}

// truncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func truncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
