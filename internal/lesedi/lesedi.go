// Package lesedi runs the telescope control server: the subsystem drivers,
// the coordinator, and the gRPC, HTTP and MQTT surfaces in front of it.
package lesedi

import (
	"context"

	"github.com/lesedi-io/lesedi/internal/driver"
	"github.com/lesedi-io/lesedi/internal/pkg/server"
	"github.com/lesedi-io/lesedi/pkg/log"
)

// LesediServer is the main application struct of the lesedi binary.
type LesediServer struct {
	serverManager *server.Manager
	conns         []*driver.Conn
}

// Run blocks until ctx is done or a server fails, then closes the driver
// connections.
func (s *LesediServer) Run(ctx context.Context) error {
	log.Info("Starting Lesedi telescope control server...")
	defer func() {
		for _, c := range s.conns {
			_ = c.Close()
		}
	}()
	return s.serverManager.Start(ctx)
}
