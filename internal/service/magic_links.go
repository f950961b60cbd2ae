package service

import (
	"context"

	"github.com/mrraghuvarun/talent/internal/domain/model"
	apperrors "github.com/mrraghuvarun/talent/internal/errors"
	"github.com/mrraghuvarun/talent/internal/ports"
)

// MagicLinkService lists the invite history.
type MagicLinkService struct {
	api ports.MagicLinkAPI
}

// NewMagicLinkService constructs a new MagicLinkService.
func NewMagicLinkService(api ports.MagicLinkAPI) *MagicLinkService {
	if api == nil {
		panic("MagicLinkAPI is required")
	}
	return &MagicLinkService{api: api}
}

// List returns every magic link the API knows about.
func (s *MagicLinkService) List(ctx context.Context) ([]model.MagicLink, error) {
	links, err := s.api.ListMagicLinks(ctx)
	if err != nil {
		return nil, apperrors.FetchFailure("list_magic_links", err)
	}
	if links == nil {
		links = []model.MagicLink{}
	}
	return links, nil
}
