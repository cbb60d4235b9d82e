package grpc

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/services"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       map[string]any
		want      services.Page
		wantCount bool
		wantErr   error
	}{
		{"defaults", map[string]any{}, services.Page{Limit: common.DefaultFeedLimit}, false, nil},
		{"explicit", map[string]any{"limit": 5, "offset": 10, "include_count": true}, services.Page{Limit: 5, Offset: 10}, true, nil},
		{"null limit", map[string]any{"limit": nil}, services.Page{Limit: common.DefaultFeedLimit}, false, nil},
		{"limit zero", map[string]any{"limit": 0}, services.Page{}, false, common.ErrInvalidPagination},
		{"limit too large", map[string]any{"limit": 101}, services.Page{}, false, common.ErrInvalidPagination},
		{"negative offset", map[string]any{"offset": -1}, services.Page{}, false, common.ErrInvalidPagination},
		{"huge offset", map[string]any{"offset": 1e15}, services.Page{}, false, common.ErrInvalidPagination},
		{"fractional limit", map[string]any{"limit": 2.5}, services.Page{}, false, errBadRequest},
		{"string limit", map[string]any{"limit": "10"}, services.Page{}, false, errBadRequest},
		{"string count flag", map[string]any{"include_count": "yes"}, services.Page{}, false, errBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, wantCount, err := pageFromRequest(mustStruct(t, tt.req))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
			assert.Equal(t, tt.wantCount, wantCount)
		})
	}
}

func TestRequiredFields(t *testing.T) {
	_, err := requiredID(mustStruct(t, map[string]any{}), "diary_id")
	assert.ErrorIs(t, err, errBadRequest)

	id, err := requiredID(mustStruct(t, map[string]any{"diary_id": 42}), "diary_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = stringField(mustStruct(t, map[string]any{"username": ""}), "username")
	assert.ErrorIs(t, err, errBadRequest)

	_, err = stringField(mustStruct(t, map[string]any{"username": 1}), "username")
	assert.ErrorIs(t, err, errBadRequest)
}

func TestEntryValue(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	row := models.DiaryWithOwner{
		Diary: models.Diary{
			ID: 3, ProfileID: 1, Title: "t", Content: "c",
			Visibility: models.VisibilityFriendsOnly, CreatedAt: created, UpdatedAt: &updated,
		},
		Owner: models.Profile{ID: 1, Username: "alice", DisplayName: "Alice"},
	}

	got := mustStruct(t, entryValue(row)).AsMap()
	want := map[string]any{
		"id":         float64(3),
		"profile_id": float64(1),
		"title":      "t",
		"content":    "c",
		"visibility": "friends-only",
		"created_at": "2024-05-01T10:00:00Z",
		"updated_at": "2024-05-01T11:00:00Z",
		"owner": map[string]any{
			"id":           float64(1),
			"username":     "alice",
			"display_name": "Alice",
			"avatar_url":   "",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entryValue mismatch (-want +got):\n%s", diff)
	}

	row.Diary.UpdatedAt = nil
	assert.Nil(t, mustStruct(t, entryValue(row)).AsMap()["updated_at"])
}

func TestFeedResponse_TotalCount(t *testing.T) {
	page := services.Page{Limit: 2}

	out, err := feedResponse(&services.FeedResult{Entries: nil}, page, false)
	require.NoError(t, err)
	pagination := out.AsMap()["pagination"].(map[string]any)
	assert.Nil(t, pagination["total_count"])
	assert.Equal(t, float64(0), pagination["count"])
	assert.Equal(t, []any{}, out.AsMap()["data"])

	n := int64(7)
	out, err = feedResponse(&services.FeedResult{TotalCount: &n}, page, true)
	require.NoError(t, err)
	m := out.AsMap()
	assert.Equal(t, float64(7), m["pagination"].(map[string]any)["total_count"])
	assert.Equal(t, true, m["meta"].(map[string]any)["is_authenticated"])
}
