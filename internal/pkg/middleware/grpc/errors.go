package grpc

import (
	"context"

	"google.golang.org/grpc"

	v1 "github.com/lesedi-io/lesedi/api/v1"
)

// UnaryErrorInterceptor converts service errors into gRPC status errors so
// clients can tell safety, domain and argument failures apart.
func UnaryErrorInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		return nil, v1.ToStatus(err)
	}
	return resp, nil
}

// UnaryValidationInterceptor rejects requests whose Validate method fails.
func UnaryValidationInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if v, ok := req.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return handler(ctx, req)
}
