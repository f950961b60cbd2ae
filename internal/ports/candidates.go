package ports

import (
	"context"
	"io"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/model"
)

// CandidateAPI is the subset of the REST API the candidate store needs.
type CandidateAPI interface {
	// ListCandidates fetches the full candidate collection.
	ListCandidates(ctx context.Context) ([]model.CandidateSummary, error)
	// UpdateRole issues PUT /candidates/{id}/role.
	UpdateRole(ctx context.Context, id model.CandidateID, role domainauth.Role) error
	// DeleteResource issues DELETE /{resource}/{id}.
	DeleteResource(ctx context.Context, resource model.Resource, id model.CandidateID) error
	// SendMagicLink issues POST /send-magic-link.
	SendMagicLink(ctx context.Context, email string) error
}

// DetailsAPI reads and edits the sections of one candidate profile.
type DetailsAPI interface {
	GetDetails(ctx context.Context, id model.CandidateID) (model.CandidateDetails, error)
	UpdatePersonal(ctx context.Context, id model.CandidateID, update model.PersonalUpdate) error
	UpdateQualification(ctx context.Context, id model.CandidateID, q model.Qualification) error
	UpdateSkills(ctx context.Context, id model.CandidateID, skills []string) error
	UpdateCertifications(ctx context.Context, id model.CandidateID, certs []string) error
	// ResumeURL returns the download link for a personal-details record.
	ResumeURL(id model.CandidateID) string
	// DownloadResume streams GET /resume/{id} into w and returns the byte count.
	DownloadResume(ctx context.Context, id model.CandidateID, w io.Writer) (int64, error)
}

// MagicLinkAPI lists previously sent invites.
type MagicLinkAPI interface {
	ListMagicLinks(ctx context.Context) ([]model.MagicLink, error)
}
