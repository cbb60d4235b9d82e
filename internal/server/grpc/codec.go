package grpc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/services"
	"google.golang.org/protobuf/types/known/structpb"
)

// errBadRequest marks malformed request documents.
var errBadRequest = errors.New("bad request")

// intField reads an integral number. ok is false when the field is absent or
// null.
func intField(req *structpb.Struct, name string) (n int64, ok bool, err error) {
	v, present := req.GetFields()[name]
	if !present {
		return 0, false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, false, nil
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, false, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
		}
		return int64(f), true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number", errBadRequest, name)
	}
}

func boolField(req *structpb.Struct, name string) (bool, error) {
	v, present := req.GetFields()[name]
	if !present {
		return false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return false, nil
	case *structpb.Value_BoolValue:
		return k.BoolValue, nil
	default:
		return false, fmt.Errorf("%w: %s must be a boolean", errBadRequest, name)
	}
}

func stringField(req *structpb.Struct, name string) (string, error) {
	v, present := req.GetFields()[name]
	if !present {
		return "", fmt.Errorf("%w: %s is required", errBadRequest, name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok || s.StringValue == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", errBadRequest, name)
	}
	return s.StringValue, nil
}

func requiredID(req *structpb.Struct, name string) (int64, error) {
	id, ok, err := intField(req, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", errBadRequest, name)
	}
	return id, nil
}

// pageFromRequest reads limit, offset and include_count. A missing limit
// means the default page size; bounds are checked by services.NewPage.
func pageFromRequest(req *structpb.Struct) (services.Page, bool, error) {
	limit, ok, err := intField(req, "limit")
	if err != nil {
		return services.Page{}, false, err
	}
	if !ok {
		limit = common.DefaultFeedLimit
	}
	offset, _, err := intField(req, "offset")
	if err != nil {
		return services.Page{}, false, err
	}
	wantCount, err := boolField(req, "include_count")
	if err != nil {
		return services.Page{}, false, err
	}

	if limit > math.MaxInt32 || limit < math.MinInt32 || offset > math.MaxInt32 || offset < math.MinInt32 {
		return services.Page{}, false, fmt.Errorf("%w: pagination out of range", common.ErrInvalidPagination)
	}
	page, err := services.NewPage(int(limit), int(offset))
	if err != nil {
		return services.Page{}, false, err
	}
	return page, wantCount, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func entryValue(row models.DiaryWithOwner) map[string]any {
	d, o := row.Diary, row.Owner

	var updatedAt any
	if d.UpdatedAt != nil {
		updatedAt = formatTime(*d.UpdatedAt)
	}

	return map[string]any{
		"id":         d.ID,
		"profile_id": d.ProfileID,
		"title":      d.Title,
		"content":    d.Content,
		"visibility": string(d.Visibility),
		"created_at": formatTime(d.CreatedAt),
		"updated_at": updatedAt,
		"owner": map[string]any{
			"id":           o.ID,
			"username":     o.Username,
			"display_name": o.DisplayName,
			"avatar_url":   o.AvatarURL,
		},
	}
}

func entryList(rows []models.DiaryWithOwner) []any {
	out := make([]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, entryValue(r))
	}
	return out
}

func feedResponse(res *services.FeedResult, page services.Page, authenticated bool) (*structpb.Struct, error) {
	var total any
	if res.TotalCount != nil {
		total = *res.TotalCount
	}
	return structpb.NewStruct(map[string]any{
		"data": entryList(res.Entries),
		"pagination": map[string]any{
			"limit":       page.Limit,
			"offset":      page.Offset,
			"count":       len(res.Entries),
			"total_count": total,
		},
		"meta": map[string]any{
			"is_authenticated": authenticated,
		},
	})
}
