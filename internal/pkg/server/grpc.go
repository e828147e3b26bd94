package server

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	middleware "github.com/lesedi-io/lesedi/internal/pkg/middleware/grpc"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/options"
)

// GRPCServer serves registered services plus the standard health service.
type GRPCServer struct {
	server  *grpc.Server
	health  *health.Server
	options *options.GrpcOptions
	lis     net.Listener
	logger  log.Logger
}

// NewGRPCServer builds a server with the logging, error mapping, timeout and
// validation interceptors installed. register adds the application services.
func NewGRPCServer(opts *options.GrpcOptions, register func(grpc.ServiceRegistrar)) *GRPCServer {
	logger := log.WithName("grpc")
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		middleware.UnaryLoggingInterceptor(logger),
		middleware.UnaryErrorInterceptor,
		middleware.UnaryServerTimeoutInterceptor(opts.Timeout),
		middleware.UnaryValidationInterceptor,
	))
	register(s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)

	return &GRPCServer{server: s, health: hs, options: opts, logger: logger}
}

// Listen binds the listener. Start calls it when needed.
func (s *GRPCServer) Listen() error {
	if s.lis != nil {
		return nil
	}
	lis, err := net.Listen(s.options.Network, s.options.Addr)
	if err != nil {
		return err
	}
	s.lis = lis
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *GRPCServer) Addr() string {
	if s.lis != nil {
		return s.lis.Addr().String()
	}
	return s.options.Addr
}

func (s *GRPCServer) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.logger.Info("Starting gRPC Server", "addr", s.Addr())
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(s.lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.health.Shutdown()
		s.server.GracefulStop()
		return nil
	}
}
