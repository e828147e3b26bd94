// Package sim provides in-process stand-ins for the observatory hardware.
// Each line-protocol device listens on its own TCP port and answers one
// reply line per command line, like the real controllers.
package sim

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/lesedi-io/lesedi/pkg/log"
)

// Device answers a single command line. A false ok drops the connection
// without a reply, the way a faulted controller does.
type Device interface {
	Handle(command string) (reply string, ok bool)
}

// LineServer exposes a Device over TCP.
type LineServer struct {
	name   string
	addr   string
	device Device
	logger log.Logger

	mu sync.Mutex
	ln net.Listener
}

func NewLineServer(name, addr string, device Device) *LineServer {
	return &LineServer{
		name:   name,
		addr:   addr,
		device: device,
		logger: log.WithName("sim").WithValues("device", name),
	}
}

// Listen binds the listener. Start calls it when needed; tests call it first
// to learn the bound address.
func (s *LineServer) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *LineServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Start serves until ctx is done.
func (s *LineServer) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	s.logger.Info("Simulator listening", "addr", ln.Addr().String())

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConn(ctx, conn)
		}()
	}
}

func (s *LineServer) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	remote := conn.RemoteAddr().String()
	s.logger.Debug("Client connected", "remote", remote)

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				s.logger.Debug("Read failed", "remote", remote, "error", err)
			}
			return
		}
		command := strings.TrimSpace(line)
		reply, ok := s.device.Handle(command)
		if !ok {
			s.logger.Info("Dropping connection on injected fault", "command", command)
			return
		}
		s.logger.Debug("Command handled", "command", command, "reply", reply)
		if _, err := io.WriteString(conn, reply+"\n"); err != nil {
			return
		}
	}
}
