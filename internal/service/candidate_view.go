package service

import (
	"sort"
	"strings"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/authz"
	"github.com/mrraghuvarun/talent/internal/domain/model"
)

// CandidateRow pairs a visible candidate with the actions its viewer may take.
type CandidateRow struct {
	Candidate model.CandidateSummary `json:"candidate"`
	Actions   authz.ActionSet        `json:"actions"`
}

// VisibleFor keeps only the candidates whose role viewerRole may list.
// The input is never modified.
func VisibleFor(viewerRole domainauth.Role, list []model.CandidateSummary) []model.CandidateSummary {
	out := make([]model.CandidateSummary, 0, len(list))
	for _, c := range list {
		if authz.CanSee(viewerRole, c.Role) {
			out = append(out, c)
		}
	}
	return out
}

// roleRank orders power users before users. Every other role shares the last
// rank, so unknown roles compare equal to each other and keep their input order.
func roleRank(r domainauth.Role) int {
	switch r {
	case domainauth.RolePowerUser:
		return 0
	case domainauth.RoleUser:
		return 1
	default:
		return 2
	}
}

// OrderedFor returns a stably sorted copy: power_user rows before user rows,
// ties keep their input order. The ordering is the same for every viewer.
func OrderedFor(_ domainauth.Role, list []model.CandidateSummary) []model.CandidateSummary {
	out := append([]model.CandidateSummary(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return roleRank(out[i].Role) < roleRank(out[j].Role)
	})
	return out
}

// Search keeps rows whose display name (username) or email contains query,
// ignoring case. The first-name fallback used for display is not searched.
// An empty or blank query returns list itself.
func Search(list []model.CandidateSummary, query string) []model.CandidateSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]model.CandidateSummary, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.DisplayName), q) || strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out
}

// BuildView derives the list a viewer sees: visibility, then ordering, then
// search, each row carrying its ActionSet.
func BuildView(viewer domainauth.ViewerContext, list []model.CandidateSummary, query string) []CandidateRow {
	filtered := Search(OrderedFor(viewer.Role, VisibleFor(viewer.Role, list)), query)
	rows := make([]CandidateRow, len(filtered))
	for i, c := range filtered {
		rows[i] = CandidateRow{
			Candidate: c,
			Actions:   authz.ActionsFor(viewer.Role, c.Role),
		}
	}
	return rows
}
