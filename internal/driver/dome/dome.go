// Package dome drives the dome controller over its line protocol.
package dome

import (
	"context"
	"fmt"

	"github.com/lesedi-io/lesedi/internal/driver"
)

const (
	Subsystem   = "dome"
	DefaultPort = 1963
)

// Status is the decoded GetDomeData reply.
type Status struct {
	Position float64

	ShutterClosed              bool
	ShutterOpened              bool
	ShutterMotorOn             bool
	ShutterFault               bool
	Moving                     bool
	RotationFault              bool
	LightsOn                   bool
	LightsManual               bool
	ShutterOpeningManually     bool
	ShutterClosingManually     bool
	MovingRightManually        bool
	MovingLeftManually         bool
	ShutterPower               bool
	Power                      bool
	Remote                     bool
	IsRaining                  bool
	TCSLockedOut               bool
	EmergencyStop              bool
	ShutterClosedRain          bool
	PowerFailure               bool
	ShutterClosedPowerFailure  bool
	WatchdogTripped            bool
	NoCommsWithServoController bool
	NoCommsWithSitechExe       bool
	NoCommsWithPLC             bool
	AtPositionSetpoint         bool
	Following                  bool
	DriverMoving               bool
	ShutterMoving              bool
	SlewLightsOn               bool
	DomeLightsOn               bool
}

func (s *Status) bits() []driver.Bit {
	return []driver.Bit{
		{Pos: 0, Flag: &s.ShutterClosed},
		{Pos: 1, Flag: &s.ShutterOpened},
		{Pos: 2, Flag: &s.ShutterMotorOn},
		{Pos: 3, Flag: &s.ShutterFault},
		{Pos: 4, Flag: &s.Moving},
		{Pos: 5, Flag: &s.RotationFault},
		{Pos: 7, Flag: &s.LightsOn},
		{Pos: 8, Flag: &s.LightsManual},
		{Pos: 9, Flag: &s.ShutterOpeningManually},
		{Pos: 10, Flag: &s.ShutterClosingManually},
		{Pos: 11, Flag: &s.MovingRightManually},
		{Pos: 12, Flag: &s.MovingLeftManually},
		{Pos: 14, Flag: &s.ShutterPower},
		{Pos: 15, Flag: &s.Power},
		{Pos: 16, Flag: &s.Remote},
		{Pos: 17, Flag: &s.IsRaining},
		{Pos: 18, Flag: &s.TCSLockedOut},
		{Pos: 26, Flag: &s.EmergencyStop},
		{Pos: 28, Flag: &s.ShutterClosedRain},
		{Pos: 29, Flag: &s.PowerFailure},
		{Pos: 30, Flag: &s.ShutterClosedPowerFailure},
		{Pos: 31, Flag: &s.WatchdogTripped},
		{Pos: 32, Flag: &s.NoCommsWithServoController},
		{Pos: 33, Flag: &s.NoCommsWithSitechExe},
		{Pos: 34, Flag: &s.NoCommsWithPLC},
		{Pos: 35, Flag: &s.AtPositionSetpoint},
		{Pos: 36, Flag: &s.Following},
		{Pos: 37, Flag: &s.DriverMoving},
		{Pos: 38, Flag: &s.ShutterMoving},
		{Pos: 39, Flag: &s.SlewLightsOn},
		{Pos: 40, Flag: &s.DomeLightsOn},
	}
}

// Word packs the flags into the 48-bit status word.
func (s Status) Word() uint64 {
	return driver.EncodeBits(s.bits())
}

// Split returns the three register values the controller reports: the low
// and high 16-bit status registers and the drive status.
func (s Status) Split() (status0, status1, drive uint64) {
	w := s.Word()
	return w & 0xffff, (w >> 16) & 0xffff, w >> 32
}

// ParseStatus decodes a GetDomeData reply.
func ParseStatus(resp *driver.Response) (*Status, error) {
	if err := resp.Expect(4); err != nil {
		return nil, err
	}
	angle, err := resp.Float(0)
	if err != nil {
		return nil, err
	}
	var words [3]uint64
	for i := range words {
		if words[i], err = resp.Uint(i + 1); err != nil {
			return nil, err
		}
	}

	s := &Status{Position: angle / 10}
	driver.DecodeBits(words[2]<<32|words[1]<<16|words[0], s.bits())
	return s, nil
}

// Driver issues dome commands.
type Driver struct {
	line *driver.Line
}

func New(exec driver.Executor) *Driver {
	return &Driver{line: driver.NewLine(exec, Subsystem, driver.Space)}
}

func (d *Driver) Status(ctx context.Context) (*Status, error) {
	resp, err := d.line.Exec(ctx, "GetDomeData")
	if err != nil {
		return nil, err
	}
	return ParseStatus(resp)
}

func (d *Driver) EmergencyStop(ctx context.Context) error   { return d.exec(ctx, "EmergencyStop") }
func (d *Driver) RemoteControlOn(ctx context.Context) error { return d.exec(ctx, "ToRemoteControl") }
func (d *Driver) FollowTelescopeStart(ctx context.Context) error {
	return d.exec(ctx, "FollowTelescopeStart")
}
func (d *Driver) FollowTelescopeStop(ctx context.Context) error {
	return d.exec(ctx, "FollowTelescopeStop")
}
func (d *Driver) MotorsOn(ctx context.Context) error      { return d.exec(ctx, "PowerMotorsOn") }
func (d *Driver) MotorsOff(ctx context.Context) error     { return d.exec(ctx, "PowerMotorsOff") }
func (d *Driver) Park(ctx context.Context) error          { return d.exec(ctx, "GoParkAndClose") }
func (d *Driver) Open(ctx context.Context) error          { return d.exec(ctx, "OpenShutters") }
func (d *Driver) Close(ctx context.Context) error         { return d.exec(ctx, "CloseShutters") }
func (d *Driver) LightsOn(ctx context.Context) error      { return d.exec(ctx, "DomeLightsOn") }
func (d *Driver) LightsOff(ctx context.Context) error     { return d.exec(ctx, "DomeLightsOff") }
func (d *Driver) SlewLightsOn(ctx context.Context) error  { return d.exec(ctx, "SlewLightsOn") }
func (d *Driver) SlewLightsOff(ctx context.Context) error { return d.exec(ctx, "SlewLightsOff") }

// Rotate moves the dome to azimuth degrees.
func (d *Driver) Rotate(ctx context.Context, azimuth float64) error {
	return d.exec(ctx, fmt.Sprintf("MoveDomeTo %.1f", azimuth))
}

// Disconnect drops the connection to the controller.
func (d *Driver) Disconnect() error {
	return d.line.Close()
}

func (d *Driver) exec(ctx context.Context, command string) error {
	_, err := d.line.Exec(ctx, command)
	return err
}
