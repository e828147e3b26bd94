package sim

import (
	"context"
	"net"
	"sync"

	"github.com/tbrandon/mbserver"

	"github.com/lesedi-io/lesedi/internal/driver/covers"
	"github.com/lesedi-io/lesedi/pkg/log"
)

const (
	fnReadHoldingRegisters  = 3
	fnWriteHoldingRegisters = 16
)

// Covers simulates the auxiliary PLC as a Modbus TCP server. A write to the
// command register moves the covers and the baffle instantly.
type Covers struct {
	addr   string
	logger log.Logger

	mu     sync.Mutex
	srv    *mbserver.Server
	status covers.Status
	bound  string
}

func NewCovers(sc CoversScenario, addr string) *Covers {
	c := &Covers{
		addr:   addr,
		logger: log.WithName("sim").WithValues("device", covers.Subsystem),
		srv:    mbserver.NewServer(),
	}
	c.set(sc.Open)
	c.srv.RegisterFunctionHandler(fnReadHoldingRegisters, c.read)
	c.srv.RegisterFunctionHandler(fnWriteHoldingRegisters, c.write)
	return c
}

func (c *Covers) Status() covers.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Listen binds the Modbus listener. mbserver does not expose the bound
// address, so a zero port is resolved to a free one first.
func (c *Covers) Listen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bound != "" {
		return nil
	}
	addr, err := resolvePort(c.addr)
	if err != nil {
		return err
	}
	if err := c.srv.ListenTCP(addr); err != nil {
		return err
	}
	c.bound = addr
	return nil
}

func (c *Covers) Addr() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bound != "" {
		return c.bound
	}
	return c.addr
}

func (c *Covers) Start(ctx context.Context) error {
	if err := c.Listen(); err != nil {
		return err
	}
	c.logger.Info("Simulator listening", "addr", c.Addr())
	<-ctx.Done()
	c.srv.Close()
	return nil
}

func (c *Covers) read(s *mbserver.Server, frame mbserver.Framer) ([]byte, *mbserver.Exception) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mbserver.ReadHoldingRegisters(s, frame)
}

func (c *Covers) write(s *mbserver.Server, frame mbserver.Framer) ([]byte, *mbserver.Exception) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, exc := mbserver.WriteHoldingRegisters(s, frame)
	if exc != &mbserver.Success {
		return data, exc
	}
	c.setLocked(s.HoldingRegisters[covers.CommandRegister] == covers.CommandOpen)
	c.logger.Debug("Covers commanded", "open", c.status.Open())
	return data, exc
}

func (c *Covers) set(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(open)
}

func (c *Covers) setLocked(open bool) {
	c.status = covers.Status{
		MirrorCover1Open:   open,
		MirrorCover2Open:   open,
		BaffleOpen:         open,
		MirrorCover1Closed: !open,
		MirrorCover2Closed: !open,
		BaffleClosed:       !open,
	}
	c.srv.HoldingRegisters[covers.StatusRegister] = c.status.Word()
}

func resolvePort(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", err
	}
	if port != "0" {
		return addr, nil
	}
	ln, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return "", err
	}
	defer ln.Close()
	return ln.Addr().String(), nil
}
