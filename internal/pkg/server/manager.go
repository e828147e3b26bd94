// Package server runs the protocol servers of a binary side by side.
package server

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lesedi-io/lesedi/pkg/log"
)

// Server is anything with a blocking Start that returns when ctx ends.
type Server interface {
	Start(ctx context.Context) error
}

// Manager manages the lifecycle of a set of servers.
type Manager struct {
	servers []Server
}

func NewManager(servers ...Server) *Manager {
	return &Manager{servers: servers}
}

// Add appends s. Nil servers are skipped so optional components can be
// passed unconditionally.
func (m *Manager) Add(s Server) {
	if s != nil {
		m.servers = append(m.servers, s)
	}
}

// Start launches all servers in parallel. The first failure cancels the rest.
func (m *Manager) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, s := range m.servers {
		g.Go(func() error {
			return s.Start(ctx)
		})
	}

	log.Info("All servers starting...", "count", len(m.servers))
	return g.Wait()
}
