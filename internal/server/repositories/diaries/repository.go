//go:generate mockgen -source=repository.go -destination=../mocks/diaries.go -package=mocks -mock_names=Repository=MockDiaryRepository

package diaries

import (
	"context"

	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
)

// Repository reads diary entries.
//
// ListFeed and CountFeed select rows admitted by filter, ordered newest first
// with the higher id first on equal timestamps. An offset past the end yields
// an empty slice, not an error.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Diary, error)
	ListByProfile(ctx context.Context, profileID int64) ([]models.Diary, error)
	ListFeed(ctx context.Context, filter visibility.FeedFilter, limit, offset int) ([]models.DiaryWithOwner, error)
	CountFeed(ctx context.Context, filter visibility.FeedFilter) (int64, error)
}
