// Package mookodi runs the emulated Mookodi camera server with its frame
// store and optional reduction pipeline.
package mookodi

import (
	"context"

	"github.com/lesedi-io/lesedi/internal/camera"
	"github.com/lesedi-io/lesedi/internal/pkg/server"
	"github.com/lesedi-io/lesedi/pkg/log"
)

type CameraServer struct {
	serverManager *server.Manager
	camera        *camera.Camera
	http          *server.HTTPServer
}

// Run blocks until ctx is done or a server fails. Any exposure in progress
// is abandoned.
func (s *CameraServer) Run(ctx context.Context) error {
	log.Info("Starting Mookodi camera server...")
	defer s.camera.Close()
	return s.serverManager.Start(ctx)
}
