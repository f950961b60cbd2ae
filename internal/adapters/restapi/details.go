package restapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mrraghuvarun/talent/internal/domain/model"
)

// GetDetails issues GET /personalDetails/{id}.
func (c *Client) GetDetails(ctx context.Context, id model.CandidateID) (model.CandidateDetails, error) {
	var out model.CandidateDetails
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("personalDetails", id.String()), nil, &out); err != nil {
		return model.CandidateDetails{}, fmt.Errorf("get details: %w", err)
	}
	return out, nil
}

// UpdatePersonal issues a multipart PUT /candidates/{id}/personal carrying every
// personal field and, when present, the resume file.
func (c *Client) UpdatePersonal(ctx context.Context, id model.CandidateID, update model.PersonalUpdate) error {
	body, contentType, err := encodePersonal(update)
	if err != nil {
		return fmt.Errorf("update personal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint("candidates", id.String(), "personal"), body)
	if err != nil {
		return fmt.Errorf("update personal: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("update personal: %w", err)
	}
	return nil
}

func encodePersonal(update model.PersonalUpdate) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range update.Details.FormFields() {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}
	if update.Resume != nil {
		name := filepath.Base(update.Resume.FileName)
		if name == "." || name == string(filepath.Separator) {
			name = "resume"
		}
		part, err := w.CreateFormFile("resume", name)
		if err != nil {
			return nil, "", fmt.Errorf("create resume part: %w", err)
		}
		if _, err := part.Write(update.Resume.Content); err != nil {
			return nil, "", fmt.Errorf("write resume part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// UpdateQualification issues PUT /candidates/{id}/qualifications for one entry.
func (c *Client) UpdateQualification(ctx context.Context, id model.CandidateID, q model.Qualification) error {
	if err := c.doJSON(ctx, http.MethodPut, c.endpoint("candidates", id.String(), "qualifications"), q, nil); err != nil {
		return fmt.Errorf("update qualification: %w", err)
	}
	return nil
}

// UpdateSkills issues PUT /candidates/{id}/skills.
func (c *Client) UpdateSkills(ctx context.Context, id model.CandidateID, skills []string) error {
	body := model.SkillsUpdate{Skills: nonNil(skills)}
	if err := c.doJSON(ctx, http.MethodPut, c.endpoint("candidates", id.String(), "skills"), body, nil); err != nil {
		return fmt.Errorf("update skills: %w", err)
	}
	return nil
}

// UpdateCertifications issues PUT /candidates/{id}/certifications.
func (c *Client) UpdateCertifications(ctx context.Context, id model.CandidateID, certs []string) error {
	body := model.CertificationsUpdate{Certifications: nonNil(certs)}
	if err := c.doJSON(ctx, http.MethodPut, c.endpoint("candidates", id.String(), "certifications"), body, nil); err != nil {
		return fmt.Errorf("update certifications: %w", err)
	}
	return nil
}

// ResumeURL returns {base}/resume/{id}.
func (c *Client) ResumeURL(id model.CandidateID) string {
	return c.endpoint("resume", id.String())
}

// DownloadResume issues GET /resume/{id} with the session's credentials and
// copies the file into w.
func (c *Client) DownloadResume(ctx context.Context, id model.CandidateID, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResumeURL(id), nil)
	if err != nil {
		return 0, fmt.Errorf("download resume: build request: %w", err)
	}
	resp, err := c.send(req)
	if err != nil {
		return 0, fmt.Errorf("download resume: %w", err)
	}
	n, copyErr := io.Copy(w, resp.Body)
	closeErr := resp.Body.Close()
	if copyErr != nil {
		return n, fmt.Errorf("download resume: %w", errors.Join(copyErr, closeErr))
	}
	if closeErr != nil {
		return n, fmt.Errorf("download resume: close response body: %w", closeErr)
	}
	return n, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// FileURL returns the link for a server-relative upload path such as a
// candidate's resume_path. Uploads are served from the API origin, outside
// the API prefix.
func (c *Client) FileURL(relPath string) string {
	relPath = strings.TrimLeft(strings.TrimSpace(relPath), "/")
	if relPath == "" {
		return ""
	}
	origin := url.URL{Scheme: c.base.Scheme, Host: c.base.Host}
	segments := strings.Split(relPath, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return origin.JoinPath(segments...).String()
}
