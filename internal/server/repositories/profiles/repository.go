//go:generate mockgen -source=repository.go -destination=../mocks/profiles.go -package=mocks -mock_names=Repository=MockProfileRepository

package profiles

import (
	"context"

	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
)

// Repository reads profiles. Lookups that match nothing return
// common.ErrorNotFound.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
}
