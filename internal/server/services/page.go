package services

import (
	"fmt"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
)

// Page selects a window of a feed.
type Page struct {
	Limit  int
	Offset int
}

// NewPage validates caller-supplied bounds. Out-of-range values are rejected,
// never clamped.
func NewPage(limit, offset int) (Page, error) {
	if limit < 1 || limit > common.MaxFeedLimit {
		return Page{}, fmt.Errorf("%w: limit must be between 1 and %d, got %d",
			common.ErrInvalidPagination, common.MaxFeedLimit, limit)
	}
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must not be negative, got %d",
			common.ErrInvalidPagination, offset)
	}
	return Page{Limit: limit, Offset: offset}, nil
}

// DefaultPage is the first page at the default size.
func DefaultPage() Page {
	return Page{Limit: common.DefaultFeedLimit}
}

// FeedResult is one page of a feed. TotalCount is nil unless the caller asked
// for it.
type FeedResult struct {
	Entries    []models.DiaryWithOwner
	TotalCount *int64
}
