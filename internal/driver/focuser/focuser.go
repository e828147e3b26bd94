// Package focuser drives the secondary and tertiary mirror controller.
package focuser

import (
	"context"
	"fmt"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver"
)

const (
	Subsystem   = "focuser"
	DefaultPort = 1961
)

// Status is the decoded GetFocuserTertiaryData reply.
type Status struct {
	SecondaryMirrorMoving           bool
	TertiaryMirrorMoving            bool
	SecondaryMirrorAuto             bool
	TertiaryMirrorAuto              bool
	SecondaryMirrorAtLimit          bool
	Autofocus                       bool
	TertiaryMirrorLeftForkPosition  bool
	TertiaryMirrorRightForkPosition bool
	CommsFaultServocommunicator     bool
	CommsFaultServocontroller       bool

	// SecondaryMirrorPosition is in inches.
	SecondaryMirrorPosition float64
	TertiaryMirrorAngle     float64
}

func (s *Status) bits() []driver.Bit {
	return []driver.Bit{
		{Pos: 0, Flag: &s.SecondaryMirrorMoving},
		{Pos: 1, Flag: &s.TertiaryMirrorMoving},
		{Pos: 2, Flag: &s.SecondaryMirrorAuto},
		{Pos: 3, Flag: &s.TertiaryMirrorAuto},
		{Pos: 4, Flag: &s.SecondaryMirrorAtLimit},
		{Pos: 5, Flag: &s.Autofocus},
		{Pos: 6, Flag: &s.TertiaryMirrorLeftForkPosition},
		{Pos: 7, Flag: &s.TertiaryMirrorRightForkPosition},
		{Pos: 8, Flag: &s.CommsFaultServocommunicator},
		{Pos: 9, Flag: &s.CommsFaultServocontroller},
	}
}

func (s Status) Word() uint64 {
	return driver.EncodeBits(s.bits())
}

// Instrument derives the selected instrument from the tertiary fork position.
// The left fork feeds WINCAM and the right fork SHOC.
func (s *Status) Instrument() v1.Instrument {
	switch {
	case s.TertiaryMirrorLeftForkPosition:
		return v1.InstrumentWINCAM
	case s.TertiaryMirrorRightForkPosition:
		return v1.InstrumentSHOC
	}
	return v1.InstrumentNone
}

func ParseStatus(resp *driver.Response) (*Status, error) {
	if err := resp.Expect(3); err != nil {
		return nil, err
	}
	word, err := resp.Uint(0)
	if err != nil {
		return nil, err
	}
	v, err := resp.Floats(1)
	if err != nil {
		return nil, err
	}
	s := &Status{SecondaryMirrorPosition: v[0], TertiaryMirrorAngle: v[1]}
	driver.DecodeBits(word, s.bits())
	return s, nil
}

// Driver issues focuser commands. Every command must be acknowledged with
// its exact accept message.
type Driver struct {
	line *driver.Line
}

func New(exec driver.Executor) *Driver {
	return &Driver{line: driver.NewLine(exec, Subsystem, driver.Semicolon)}
}

func (d *Driver) Status(ctx context.Context) (*Status, error) {
	resp, err := d.line.Exec(ctx, "GetFocuserTertiaryData")
	if err != nil {
		return nil, err
	}
	return ParseStatus(resp)
}

// SelectInstrument swings the tertiary to the instrument's fork.
func (d *Driver) SelectInstrument(ctx context.Context, instrument v1.Instrument) error {
	var command, ack string
	switch instrument {
	case v1.InstrumentWINCAM:
		command, ack = "GoLeftTertiary", "GoLeftTertiaryAccepted"
	case v1.InstrumentSHOC:
		command, ack = "GoRightTertiary", "GoRightTertiaryAccepted"
	default:
		return v1.InvalidArgumentf("Unknown instrument")
	}
	return d.expect(ctx, command, ack, "Select instrument command failed.")
}

func (d *Driver) OpenMirrorCovers(ctx context.Context) error {
	return d.expect(ctx, "MirrorCoverOpen", "MirrorCoverOpenAccepted", "Mirror covers open command failed.")
}

func (d *Driver) CloseMirrorCovers(ctx context.Context) error {
	return d.expect(ctx, "MirrorCoverClose", "MirrorCoverCloseAccepted", "Mirror covers close command failed.")
}

func (d *Driver) OpenBaffle(ctx context.Context) error {
	return d.expect(ctx, "BaffleOpen", "BaffleOpenAccepted", "Baffle open command failed.")
}

// CloseBaffle is acknowledged as CloseBaffleAccepted, not BaffleCloseAccepted.
func (d *Driver) CloseBaffle(ctx context.Context) error {
	return d.expect(ctx, "BaffleClose", "CloseBaffleAccepted", "Baffle close command failed.")
}

// SecondaryMoveTo moves the focus to inches, or to the limit.
func (d *Driver) SecondaryMoveTo(ctx context.Context, inches float64) error {
	return d.expect(ctx, fmt.Sprintf("MoveFocuserTo %v", inches), "MoveFocuserAccepted", "Move command failed.")
}

func (d *Driver) SecondaryStop(ctx context.Context) error {
	return d.expect(ctx, "StopFocuser", "StopFocuserAccepted", "Stop command failed.")
}

func (d *Driver) SecondaryToAuto(ctx context.Context) error {
	return d.expect(ctx, "ToAutoFocuser", "ToAutoFocuserAccepted", "Auto command failed.")
}

func (d *Driver) SecondaryToManual(ctx context.Context) error {
	return d.expect(ctx, "ToBlinkyFocuser", "ToBlinkyFocuserAccepted", "Manual command failed.")
}

func (d *Driver) DoAutofocus(ctx context.Context) error {
	return d.expect(ctx, "DoAutoFocus", "FocuserToAutoAccepted", "Autofocus command failed.")
}

func (d *Driver) CancelAutofocus(ctx context.Context) error {
	return d.expect(ctx, "CancelAutoFocus", "CancelAutoFocusAccepted", "Cancel command failed.")
}

// RestartComms asks the controller to reconnect to the servo communicator.
func (d *Driver) RestartComms(ctx context.Context) error {
	return d.expect(ctx, "RestartCommunicatorComms", "RestartCommunicatorCommsAccepted", "Restart command failed.")
}

func (d *Driver) TertiaryToAuto(ctx context.Context) error {
	return d.expect(ctx, "ToAutoTertiary", "ToAutoTertiaryAccepted", "Tertiary auto command failed.")
}

func (d *Driver) TertiaryToManual(ctx context.Context) error {
	return d.expect(ctx, "ToBlinkyTertiary", "ToBlinkyTertiaryAccepted", "Tertiary manual command failed.")
}

func (d *Driver) TertiaryMoveTo(ctx context.Context, angle float64) error {
	return d.expect(ctx, fmt.Sprintf("MoveTertiaryTo %.2f", angle), "MoveTertiaryAccepted", "Tertiary move command failed.")
}

// TertiaryJogBy is acknowledged with an empty message.
func (d *Driver) TertiaryJogBy(ctx context.Context, angle float64) error {
	return d.expect(ctx, fmt.Sprintf("JogTertiary %.2f", angle), "", "Tertiary jog command failed.")
}

func (d *Driver) Disconnect() error {
	return d.line.Close()
}

func (d *Driver) expect(ctx context.Context, command, ack, failure string) error {
	_, err := d.line.Expect(ctx, command, ack, failure)
	return err
}
