package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/log"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/lesedi.v1.LesediService/OpenDome"}

func TestUnaryErrorInterceptor(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{v1.Safetyf("Lockout engaged. Command not allowed."), codes.PermissionDenied},
		{v1.Domainf("Dome cannot be opened while not in remote mode."), codes.FailedPrecondition},
		{v1.InvalidArgumentf("altitude 91 out of range 0 .. 90"), codes.InvalidArgument},
		{v1.Busyf("Cannot start up while SHUTDOWN is in progress"), codes.Aborted},
		{errors.New("boom"), codes.Internal},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			_, err := UnaryErrorInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
				return nil, tt.err
			})
			assert.Equal(t, tt.want, status.Code(err))
			assert.Equal(t, tt.err.Error(), status.Convert(err).Message())
		})
	}
}

func TestUnaryValidationInterceptor(t *testing.T) {
	called := false
	handler := func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	}

	_, err := UnaryValidationInterceptor(context.Background(), &v1.GotoAltAzRequest{Alt: 95, Az: 10}, info, handler)
	assert.True(t, errors.Is(err, v1.ErrInvalidArgument))
	assert.False(t, called)

	_, err = UnaryValidationInterceptor(context.Background(), &v1.GotoAltAzRequest{Alt: 45, Az: 10}, info, handler)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestUnaryServerTimeoutInterceptor(t *testing.T) {
	interceptor := UnaryServerTimeoutInterceptor(50 * time.Millisecond)
	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, _ any) (any, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestUnaryLoggingInterceptorPassesThrough(t *testing.T) {
	interceptor := UnaryLoggingInterceptor(log.WithName("test"))
	want := status.Error(codes.Aborted, "busy")
	resp, err := interceptor(context.Background(), "req", info, func(context.Context, any) (any, error) {
		return "resp", want
	})
	assert.Equal(t, "resp", resp)
	assert.Equal(t, want, err)
}
