// Package grpc exposes the feed service over gRPC. Viewer identity comes from
// the access_token metadata entry; requests without one are anonymous.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/diaryfeed/internal/logging"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/services"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// FeedService is the part of services.FeedService the transport needs.
type FeedService interface {
	GetFeed(ctx context.Context, viewer visibility.Viewer, page services.Page, wantCount bool) (*services.FeedResult, error)
	GetOneIfVisible(ctx context.Context, viewer visibility.Viewer, diaryID int64) (*models.DiaryWithOwner, error)
	ListProfileDiaries(ctx context.Context, viewer visibility.Viewer, username string) ([]models.DiaryWithOwner, error)
	GetProfileDiary(ctx context.Context, viewer visibility.Viewer, username string, diaryID int64) (*models.DiaryWithOwner, error)
}

// ViewerResolver maps an access token (possibly empty) to a viewer.
type ViewerResolver interface {
	Resolve(ctx context.Context, token string) (visibility.Viewer, error)
}

type GRPCServer struct {
	address string
	feed    FeedService
	viewers ViewerResolver
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(a string, l logging.Logger, feed FeedService, viewers ViewerResolver) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		feed:    feed,
		viewers: viewers,
		health:  health.NewServer(),
	}
}

// NewServer builds a grpc.Server with the feed and health services
// registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.viewerInterceptor))
	srv := grpc.NewServer(opts...)

	srv.RegisterService(&FeedServiceDesc, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(FeedServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
