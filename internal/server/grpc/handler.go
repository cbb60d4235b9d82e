package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// requestError turns request-decoding failures into InvalidArgument and
// everything else into the usual mapping.
func (s *GRPCServer) requestError(ctx context.Context, err error) error {
	if errors.Is(err, errBadRequest) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return s.toStatus(ctx, err)
}

func (s *GRPCServer) GetFeed(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, wantCount, err := pageFromRequest(req)
	if err != nil {
		return nil, s.requestError(ctx, err)
	}

	viewer := visibility.FromContext(ctx)
	res, err := s.feed.GetFeed(ctx, viewer, page, wantCount)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out, err := feedResponse(res, page, !viewer.IsAnonymous())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Debug(ctx, "Feed served", "count", len(res.Entries))
	return out, nil
}

func (s *GRPCServer) GetDiary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredID(req, "diary_id")
	if err != nil {
		return nil, s.requestError(ctx, err)
	}

	row, err := s.feed.GetOneIfVisible(ctx, visibility.FromContext(ctx), id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.wrapData(ctx, entryValue(*row))
}

func (s *GRPCServer) ListProfileDiaries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	username, err := stringField(req, "username")
	if err != nil {
		return nil, s.requestError(ctx, err)
	}

	rows, err := s.feed.ListProfileDiaries(ctx, visibility.FromContext(ctx), username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.wrapData(ctx, entryList(rows))
}

func (s *GRPCServer) GetProfileDiary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	username, err := stringField(req, "username")
	if err != nil {
		return nil, s.requestError(ctx, err)
	}
	id, err := requiredID(req, "diary_id")
	if err != nil {
		return nil, s.requestError(ctx, err)
	}

	row, err := s.feed.GetProfileDiary(ctx, visibility.FromContext(ctx), username, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return s.wrapData(ctx, entryValue(*row))
}

func (s *GRPCServer) wrapData(ctx context.Context, data any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(map[string]any{"data": data})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return out, nil
}
