package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/lesedi-io/lesedi/pkg/log"
)

// UnaryLoggingInterceptor logs every call with its duration and status code.
// It expects errors already converted to gRPC status.
func UnaryLoggingInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		kv := []any{"method", info.FullMethod, "duration", time.Since(start), "code", code.String()}
		if err != nil {
			logger.Error(err, "gRPC call failed", kv...)
		} else {
			logger.Debug("gRPC call", kv...)
		}
		return resp, err
	}
}
