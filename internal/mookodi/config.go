package mookodi

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/camera"
	"github.com/lesedi-io/lesedi/internal/pipeline"
	"github.com/lesedi-io/lesedi/internal/pkg/server"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type Config struct {
	CameraOptions   *CameraOptions
	PipelineOptions *PipelineOptions
	StoreOptions    *options.StoreOptions
	GrpcOptions     *options.GrpcOptions
	HttpOptions     *options.HttpOptions

	// Store replaces the store built from StoreOptions.
	Store store.Store
}

// NewCameraServer wires the frame store, the optional pipeline, the camera
// and its servers.
func (cfg *Config) NewCameraServer(ctx context.Context) (*CameraServer, error) {
	st := cfg.Store
	if st == nil {
		var err error
		if st, err = store.New(ctx, cfg.StoreOptions); err != nil {
			return nil, fmt.Errorf("failed to init frame store: %w", err)
		}
	}

	opts := []camera.Option{camera.WithStore(st)}
	if cfg.PipelineOptions.Enabled {
		p, err := pipeline.New(ctx, st, cfg.PipelineOptions.Reduction)
		if err != nil {
			return nil, fmt.Errorf("failed to init pipeline: %w", err)
		}
		opts = append(opts, camera.WithFrameHook(p.FrameHook(pipeline.Mode(cfg.PipelineOptions.Mode))))
	}
	cam := camera.New(cfg.CameraOptions.Config(), opts...)

	svc := camera.NewService(cam)
	grpcServer := server.NewGRPCServer(cfg.GrpcOptions, func(r grpc.ServiceRegistrar) {
		v1.RegisterCameraServiceServer(r, svc)
	})
	httpServer := server.NewHTTPServer(cfg.HttpOptions, nil)
	httpServer.HandleJSON("/api/v1/state", func(context.Context) (any, error) {
		return cam.State(), nil
	})
	httpServer.HandleJSON("/api/v1/filenames", func(context.Context) (any, error) {
		return cam.ImageFilenames(), nil
	})

	return &CameraServer{
		serverManager: server.NewManager(grpcServer, httpServer),
		camera:        cam,
		http:          httpServer,
	}, nil
}
