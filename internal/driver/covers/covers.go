// Package covers drives the auxiliary PLC that moves the mirror covers and the
// baffle over Modbus TCP.
package covers

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/goburrow/modbus"

	"github.com/lesedi-io/lesedi/internal/driver"
	"github.com/lesedi-io/lesedi/internal/pkg/metrics"
)

const (
	Subsystem   = "covers"
	DefaultPort = 502

	// CommandRegister takes 1 to open and 0 to close the covers.
	CommandRegister = 110
	// StatusRegister holds the cover status bits.
	StatusRegister = 130

	CommandOpen  = 1
	CommandClose = 0
)

// Status is the decoded cover status register.
type Status struct {
	MirrorCover1Closed bool
	MirrorCover1Open   bool
	MirrorCover2Closed bool
	MirrorCover2Open   bool
	BaffleClosed       bool
	BaffleOpen         bool
	Moving             bool
}

func (s *Status) bits() []driver.Bit {
	return []driver.Bit{
		{Pos: 0, Flag: &s.MirrorCover1Closed},
		{Pos: 1, Flag: &s.MirrorCover1Open},
		{Pos: 2, Flag: &s.MirrorCover2Closed},
		{Pos: 3, Flag: &s.MirrorCover2Open},
		{Pos: 4, Flag: &s.BaffleClosed},
		{Pos: 5, Flag: &s.BaffleOpen},
		{Pos: 6, Flag: &s.Moving},
	}
}

func (s Status) Word() uint16 {
	return uint16(driver.EncodeBits(s.bits()))
}

// Open reports whether both mirror covers and the baffle are open.
func (s *Status) Open() bool {
	return s.MirrorCover1Open && s.MirrorCover2Open && s.BaffleOpen
}

func ParseStatus(word uint16) *Status {
	s := &Status{}
	driver.DecodeBits(uint64(word), s.bits())
	return s
}

// Driver talks to the PLC. Every operation uses a fresh Modbus connection.
type Driver struct {
	addr    string
	timeout time.Duration
}

func New(host string, port int, timeout time.Duration) *Driver {
	if timeout <= 0 {
		timeout = driver.DefaultTimeout
	}
	return &Driver{addr: net.JoinHostPort(host, strconv.Itoa(port)), timeout: timeout}
}

func (d *Driver) Status(ctx context.Context) (*Status, error) {
	var word uint16
	err := d.do(ctx, "ReadHoldingRegisters", func(c modbus.Client) error {
		b, err := c.ReadHoldingRegisters(StatusRegister, 1)
		if err != nil {
			return err
		}
		if len(b) != 2 {
			return &driver.ProtocolError{Reply: fmt.Sprintf("% x", b), Reason: "want one register"}
		}
		word = binary.BigEndian.Uint16(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ParseStatus(word), nil
}

// OpenCovers opens the mirror covers and the baffle in order.
func (d *Driver) OpenCovers(ctx context.Context) error {
	return d.write(ctx, CommandOpen)
}

// CloseCovers closes the mirror covers and the baffle in order.
func (d *Driver) CloseCovers(ctx context.Context) error {
	return d.write(ctx, CommandClose)
}

func (d *Driver) write(ctx context.Context, value uint16) error {
	return d.do(ctx, "WriteMultipleRegisters", func(c modbus.Client) error {
		payload := make([]byte, 2)
		binary.BigEndian.PutUint16(payload, value)
		_, err := c.WriteMultipleRegisters(CommandRegister, 1, payload)
		return err
	})
}

func (d *Driver) do(ctx context.Context, op string, fn func(modbus.Client) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.DriverRequestDuration.WithLabelValues(Subsystem, op).Observe(time.Since(start).Seconds())
	}()

	handler := modbus.NewTCPClientHandler(d.addr)
	handler.Timeout = d.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < handler.Timeout {
			handler.Timeout = left
		}
	}
	if err := handler.Connect(); err != nil {
		metrics.DriverErrorsTotal.WithLabelValues(Subsystem).Inc()
		return &driver.IOError{Subsystem: Subsystem, Command: op, Err: err}
	}
	defer handler.Close()

	if err := fn(modbus.NewClient(handler)); err != nil {
		metrics.DriverErrorsTotal.WithLabelValues(Subsystem).Inc()
		return &driver.IOError{Subsystem: Subsystem, Command: op, Err: err}
	}
	return nil
}
