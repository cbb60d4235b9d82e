package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// FeedServiceName is the fully qualified gRPC service name. Requests and
// responses are google.protobuf.Struct documents.
const FeedServiceName = "diary.v1.FeedService"

const (
	methodGetFeed            = "GetFeed"
	methodGetDiary           = "GetDiary"
	methodListProfileDiaries = "ListProfileDiaries"
	methodGetProfileDiary    = "GetProfileDiary"
)

// FeedServiceServer is implemented by GRPCServer.
type FeedServiceServer interface {
	GetFeed(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDiary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProfileDiaries(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProfileDiary(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type structCall func(FeedServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call structCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(FeedServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(FeedServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + FeedServiceName + "/" + name
}

// FeedServiceDesc describes the service for grpc.Server.RegisterService.
var FeedServiceDesc = grpc.ServiceDesc{
	ServiceName: FeedServiceName,
	HandlerType: (*FeedServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(methodGetFeed, FeedServiceServer.GetFeed),
		unaryMethod(methodGetDiary, FeedServiceServer.GetDiary),
		unaryMethod(methodListProfileDiaries, FeedServiceServer.ListProfileDiaries),
		unaryMethod(methodGetProfileDiary, FeedServiceServer.GetProfileDiary),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "diary/v1/feed.proto",
}

// FeedClient calls FeedService over conn.
type FeedClient struct {
	conn grpc.ClientConnInterface
}

func NewFeedClient(conn grpc.ClientConnInterface) *FeedClient {
	return &FeedClient{conn: conn}
}

func (c *FeedClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FeedClient) GetFeed(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodGetFeed, in, opts...)
}

func (c *FeedClient) GetDiary(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodGetDiary, in, opts...)
}

func (c *FeedClient) ListProfileDiaries(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodListProfileDiaries, in, opts...)
}

func (c *FeedClient) GetProfileDiary(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodGetProfileDiary, in, opts...)
}
