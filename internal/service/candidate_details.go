package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/ports"
)

// Section is one independently editable part of a candidate profile.
type Section string

const (
	SectionPersonal       Section = "personal"
	SectionQualifications Section = "qualifications"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
)

// Sections lists every section in display order.
var Sections = []Section{SectionPersonal, SectionQualifications, SectionSkills, SectionCertifications}

// DetailsServiceOptions groups dependencies for DetailsService.
type DetailsServiceOptions struct {
	API    ports.DetailsAPI // Required
	Logger *slog.Logger     // Optional
}

// DetailsService reads candidate profiles and opens editors on them.
type DetailsService struct {
	api    ports.DetailsAPI
	logger *slog.Logger
}

// NewDetailsService constructs a new DetailsService.
func NewDetailsService(opts DetailsServiceOptions) *DetailsService {
	if opts.API == nil {
		panic("DetailsAPI is required")
	}
	return &DetailsService{api: opts.API, logger: opts.Logger}
}

// Get fetches the full profile of a candidate.
func (s *DetailsService) Get(ctx context.Context, id model.CandidateID) (model.CandidateDetails, error) {
	if id == "" {
		return model.CandidateDetails{}, apperrors.ValidationField("id", "candidate id is required")
	}
	details, err := s.api.GetDetails(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return model.CandidateDetails{}, err
		}
		return model.CandidateDetails{}, apperrors.FetchFailure("get_details", err)
	}
	details.Normalize()
	return details, nil
}

// ResumeURL returns the download link for the profile's resume.
func (s *DetailsService) ResumeURL(details model.CandidateDetails) string {
	if details.PersonalDetails.ID == "" {
		return ""
	}
	return s.api.ResumeURL(details.PersonalDetails.ID)
}

// DownloadResume copies the profile's resume into w. A profile without a
// personal-details record has nothing to download.
func (s *DetailsService) DownloadResume(ctx context.Context, details model.CandidateDetails, w io.Writer) (int64, error) {
	id := details.PersonalDetails.ID
	if id == "" {
		return 0, apperrors.NotFoundf("candidate has no personal details record")
	}
	n, err := s.api.DownloadResume(ctx, id, w)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return n, err
		}
		return n, apperrors.FetchFailure("download_resume", err)
	}
	return n, nil
}

// Open fetches a profile and returns an editor over it.
func (s *DetailsService) Open(ctx context.Context, id model.CandidateID) (*DetailsEditor, error) {
	details, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e := &DetailsEditor{
		svc:     s,
		id:      id,
		editing: make(map[Section]bool, len(Sections)),
	}
	e.reset(details)
	return e, nil
}

// DetailsEditor keeps the state of the profile editor: the last fetched
// details, an editable copy, and which section forms are open. It is not safe
// for concurrent use.
type DetailsEditor struct {
	svc     *DetailsService
	id      model.CandidateID
	details model.CandidateDetails
	form    model.CandidateDetails
	editing map[Section]bool
	resume  *model.ResumeUpload
}

func (e *DetailsEditor) reset(details model.CandidateDetails) {
	e.details = details
	e.form = details.Clone()
	e.resume = nil
}

// Details returns the details as last fetched.
func (e *DetailsEditor) Details() model.CandidateDetails { return e.details }

// Form returns a copy of the pending edits.
func (e *DetailsEditor) Form() model.CandidateDetails { return e.form.Clone() }

// Editing reports whether the section's form is open.
func (e *DetailsEditor) Editing(section Section) bool { return e.editing[section] }

// Toggle opens or closes a section's form and returns the new state.
func (e *DetailsEditor) Toggle(section Section) bool {
	e.editing[section] = !e.editing[section]
	return e.editing[section]
}

// SetPersonal changes one personal field in the pending edits.
func (e *DetailsEditor) SetPersonal(name, value string) error {
	return e.form.PersonalDetails.Set(name, value)
}

// SetQualification changes one field of the qualification at index.
func (e *DetailsEditor) SetQualification(index int, name, value string) error {
	if index < 0 || index >= len(e.form.Qualifications) {
		return apperrors.ValidationField("index", fmt.Sprintf("qualification index %d out of range", index))
	}
	return e.form.Qualifications[index].Set(name, value)
}

// SetSkills replaces the pending skills list.
func (e *DetailsEditor) SetSkills(skills []string) {
	e.form.Skills = trimAll(skills)
}

// SetCertifications replaces the pending certifications list.
func (e *DetailsEditor) SetCertifications(certs []string) {
	e.form.Certifications = trimAll(certs)
}

// AttachResume queues a resume file for the next personal submit.
func (e *DetailsEditor) AttachResume(upload model.ResumeUpload) {
	e.resume = &upload
}

// Submit sends one section's pending edits, then re-fetches the profile and
// closes the section's form. A failed submit keeps the pending edits.
func (e *DetailsEditor) Submit(ctx context.Context, section Section) error {
	if err := e.submit(ctx, section); err != nil {
		return fmt.Errorf("update %s: %w", section, err)
	}
	if e.svc.logger != nil {
		e.svc.logger.Info("candidate details updated", "id", e.id, "section", section)
	}

	e.editing[section] = false
	fresh, err := e.svc.Get(ctx, e.id)
	if err != nil {
		return fmt.Errorf("reload after %s update: %w", section, err)
	}
	e.reset(fresh)
	return nil
}

func (e *DetailsEditor) submit(ctx context.Context, section Section) error {
	api := e.svc.api
	id := e.id

	switch section {
	case SectionPersonal:
		if err := e.form.PersonalDetails.Validate(); err != nil {
			return err
		}
		update := model.PersonalUpdate{Details: e.form.PersonalDetails, Resume: e.resume}
		if err := api.UpdatePersonal(ctx, id, update); err != nil {
			return apperrors.MutationFailure("update_personal", err)
		}
	case SectionQualifications:
		for i, q := range e.form.Qualifications {
			if err := api.UpdateQualification(ctx, id, q); err != nil {
				return apperrors.MutationFailure(fmt.Sprintf("update_qualification[%d]", i), err)
			}
		}
	case SectionSkills:
		req := model.SkillsUpdate{Skills: e.form.Skills}
		if err := req.Validate(); err != nil {
			return err
		}
		if err := api.UpdateSkills(ctx, id, req.Skills); err != nil {
			return apperrors.MutationFailure("update_skills", err)
		}
	case SectionCertifications:
		req := model.CertificationsUpdate{Certifications: e.form.Certifications}
		if err := req.Validate(); err != nil {
			return err
		}
		if err := api.UpdateCertifications(ctx, id, req.Certifications); err != nil {
			return apperrors.MutationFailure("update_certifications", err)
		}
	default:
		return apperrors.ValidationField("section", fmt.Sprintf("unknown section %q", section))
	}
	return nil
}

// ParseSection maps user input to a Section.
func ParseSection(raw string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	return "", apperrors.ValidationField("section", fmt.Sprintf("unknown section %q", raw))
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
