package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeaderName = "x-request-id"

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestLogInterceptor tags each call with a request id, echoes it in the
// response header and logs the outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := firstMetadata(ctx, requestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeaderName, requestID))

	log := s.logger.With("request_id", requestID, "method", info.FullMethod)
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	log.Info(ctx, "request handled", "code", code.String(), "duration", time.Since(start))
	return resp, err
}

// viewerInterceptor resolves the viewer for feed calls. Other services, such
// as health checks, pass through untouched.
func (s *GRPCServer) viewerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !strings.HasPrefix(info.FullMethod, "/"+FeedServiceName+"/") {
		return handler(ctx, req)
	}

	token := firstMetadata(ctx, common.AccessTokenHeaderName)
	viewer, err := s.viewers.Resolve(ctx, token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return handler(visibility.WithViewer(ctx, viewer), req)
}
