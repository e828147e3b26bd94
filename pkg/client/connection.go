// Package client provides reconnecting gRPC clients for the Lesedi telescope
// control service and the Mookodi camera service.
//
// A failed call caused by a timeout or a transport error makes the client
// close and reopen its connection once and retry the call once. Clients are
// not safe for concurrent use; give each goroutine its own.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	middleware "github.com/lesedi-io/lesedi/internal/pkg/middleware/grpc"
	"github.com/lesedi-io/lesedi/pkg/log"
)

// DefaultTimeout bounds connection attempts and calls.
const DefaultTimeout = 5 * time.Second

// ConnectionError reports that the service could not be reached, either when
// connecting or after the single reconnect and retry.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

type Option func(*Connection)

// WithTimeout sets the connect and per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Connection) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDialOptions adds gRPC dial options, mainly for tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Connection) { c.dialOpts = append(c.dialOpts, opts...) }
}

// Connection is a grpc.ClientConnInterface that reconnects once on failure.
type Connection struct {
	target   string
	timeout  time.Duration
	dialOpts []grpc.DialOption
	logger   log.Logger

	cc     *grpc.ClientConn
	closed bool
}

var _ grpc.ClientConnInterface = (*Connection)(nil)

// Dial connects to target and waits until the connection is ready or the
// timeout expires.
func Dial(ctx context.Context, target string, opts ...Option) (*Connection, error) {
	c := &Connection{
		target:  target,
		timeout: DefaultTimeout,
		logger:  log.WithName("client").WithValues("target", target),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dialOpts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(middleware.UnaryTimeoutInterceptor(c.timeout)),
	}, c.dialOpts...)

	if err := c.open(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Target returns the address the connection dials.
func (c *Connection) Target() string { return c.target }

// Timeout returns the connect and per-call timeout.
func (c *Connection) Timeout() time.Duration { return c.timeout }

func (c *Connection) open(ctx context.Context) error {
	cc, err := grpc.NewClient(c.target, c.dialOpts...)
	if err != nil {
		return &ConnectionError{Target: c.target, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cc.Connect()
	for {
		state := cc.GetState()
		if state == connectivity.Ready {
			break
		}
		if !cc.WaitForStateChange(ctx, state) {
			_ = cc.Close()
			return &ConnectionError{Target: c.target, Err: ctx.Err()}
		}
	}

	c.cc = cc
	c.closed = false
	return nil
}

// Close releases the connection. Closing twice is a no-op.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Invoke performs a unary call, reconnecting and retrying once when the call
// fails with a timeout or transport error. When that reconnect fails, the
// next call dials again.
func (c *Connection) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	if c.closed {
		return &ConnectionError{Target: c.target, Err: errors.New("connection is closed")}
	}

	if c.cc != nil {
		err := c.cc.Invoke(ctx, method, args, reply, opts...)
		if !retryable(err) || ctx.Err() != nil {
			return err
		}
		c.logger.Info("Call failed, reconnecting", "method", method, "error", err.Error())
		_ = c.cc.Close()
		c.cc = nil
	}

	if err := c.open(ctx); err != nil {
		return err
	}
	err := c.cc.Invoke(ctx, method, args, reply, opts...)
	if retryable(err) {
		return &ConnectionError{Target: c.target, Err: err}
	}
	return err
}

// NewStream is not retried; none of the services use streams.
func (c *Connection) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	if c.closed || c.cc == nil {
		return nil, &ConnectionError{Target: c.target, Err: errors.New("connection is closed")}
	}
	return c.cc.NewStream(ctx, desc, method, opts...)
}

func retryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}
	return false
}
