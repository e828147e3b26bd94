package driver

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/lesedi-io/lesedi/internal/pkg/metrics"
	"github.com/lesedi-io/lesedi/pkg/log"
)

const (
	// DefaultTimeout bounds a single command round trip.
	DefaultTimeout = time.Second

	terminator = '\n'
)

// Executor sends one command line and returns the raw reply line.
type Executor interface {
	Execute(ctx context.Context, command string) (string, error)
	Close() error
}

// Conn is a newline-terminated request/response connection to a subsystem.
// Commands are serialized; the socket is dialed lazily and dropped after any
// I/O failure so the next command starts on a fresh connection.
type Conn struct {
	subsystem string
	addr      string
	timeout   time.Duration
	logger    log.Logger

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

var _ Executor = (*Conn)(nil)

// NewConn returns a connection for the named subsystem. Nothing is dialed
// until the first command.
func NewConn(subsystem, addr string, timeout time.Duration) *Conn {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Conn{
		subsystem: subsystem,
		addr:      addr,
		timeout:   timeout,
		logger:    log.WithName("driver").WithValues("subsystem", subsystem, "addr", addr),
	}
}

// Subsystem returns the subsystem name used in logs and metrics.
func (c *Conn) Subsystem() string {
	return c.subsystem
}

// Execute writes command and reads back one reply line with the terminator
// stripped.
func (c *Conn) Execute(ctx context.Context, command string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	reply, err := c.roundTrip(ctx, command)
	metrics.DriverRequestDuration.WithLabelValues(c.subsystem, verb(command)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DriverErrorsTotal.WithLabelValues(c.subsystem).Inc()
		c.closeLocked()
		c.logger.Warn("Command failed, connection dropped", "command", command, "error", err)
		return "", &IOError{Subsystem: c.subsystem, Command: command, Err: err}
	}

	c.logger.Debug("Command executed", "command", command, "reply", reply)
	return reply, nil
}

func (c *Conn) roundTrip(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.conn == nil {
		dialer := net.Dialer{Timeout: c.timeout}
		conn, err := dialer.DialContext(ctx, "tcp", c.addr)
		if err != nil {
			return "", fmt.Errorf("dial: %w", err)
		}
		c.conn = conn
		c.reader = bufio.NewReader(conn)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return "", err
	}

	if _, err := c.conn.Write([]byte(command + string(terminator))); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	line, err := c.reader.ReadString(terminator)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Close drops the underlying socket. The connection may still be used; the
// next command redials.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Conn) closeLocked() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// verb is the command keyword without arguments, used as a metric label.
func verb(command string) string {
	if i := strings.IndexByte(command, ' '); i >= 0 {
		return command[:i]
	}
	return command
}
