package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/auth"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
)

// ViewerService turns an access token into a Viewer.
type ViewerService struct {
	profiles  profiles.Repository
	jwtSecret []byte
}

func NewViewerService(repo profiles.Repository, secretKey string) *ViewerService {
	return &ViewerService{profiles: repo, jwtSecret: []byte(secretKey)}
}

// Resolve returns an anonymous viewer for an empty token. Otherwise the token
// must be valid (common.ErrInvalidToken, common.ErrTokenExpired) and its
// subject must own a profile (common.ErrProfileMissing).
func (s *ViewerService) Resolve(ctx context.Context, token string) (visibility.Viewer, error) {
	if token == "" {
		return visibility.Anonymous(), nil
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return visibility.Viewer{}, err
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return visibility.Viewer{}, common.ErrProfileMissing
		}
		return visibility.Viewer{}, fmt.Errorf("error loading profile: %w", err)
	}
	return visibility.Authenticated(p.ID), nil
}
