package restapi

import (
	"context"
	"fmt"
	"net/http"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/model"
)

// ListCandidates issues GET /candidates. The API returns a bare JSON array.
func (c *Client) ListCandidates(ctx context.Context) ([]model.CandidateSummary, error) {
	var out []model.CandidateSummary
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("candidates"), nil, &out); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if out == nil {
		out = []model.CandidateSummary{}
	}
	return out, nil
}

// UpdateRole issues PUT /candidates/{id}/role.
func (c *Client) UpdateRole(ctx context.Context, id model.CandidateID, role domainauth.Role) error {
	body := model.RoleChangeRequest{Role: role}
	if err := c.doJSON(ctx, http.MethodPut, c.endpoint("candidates", id.String(), "role"), body, nil); err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// DeleteResource issues DELETE /{resource}/{id}.
func (c *Client) DeleteResource(ctx context.Context, resource model.Resource, id model.CandidateID) error {
	if err := c.doJSON(ctx, http.MethodDelete, c.endpoint(string(resource), id.String()), nil, nil); err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	return nil
}

// SendMagicLink issues POST /send-magic-link.
func (c *Client) SendMagicLink(ctx context.Context, email string) error {
	body := model.InviteRequest{Email: email}
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("send-magic-link"), body, nil); err != nil {
		return fmt.Errorf("send magic link: %w", err)
	}
	return nil
}

// ListMagicLinks issues GET /magic-links.
func (c *Client) ListMagicLinks(ctx context.Context) ([]model.MagicLink, error) {
	var out []model.MagicLink
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("magic-links"), nil, &out); err != nil {
		return nil, fmt.Errorf("list magic links: %w", err)
	}
	return out, nil
}
