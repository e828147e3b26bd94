// Package rotator drives the two instrument rotators.
package rotator

import (
	"context"
	"fmt"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver"
)

const (
	Subsystem = "rotator"

	DefaultLeftPort  = 1958
	DefaultRightPort = 1959

	DefaultLeftLimitsFile  = "/usr/share/SiTech/ServoSCommunicator/RotatorCfgFileLeft.txt"
	DefaultRightLimitsFile = "/usr/share/SiTech/ServoSCommunicator/RotatorCfgFileRight.txt"
)

// Status is the decoded GetRotatorData reply plus the configured limits.
type Status struct {
	Moving                      bool
	Tracking                    bool
	Auto                        bool
	AtLimit                     bool
	CommsFaultServocommunicator bool
	CommsFaultServocontroller   bool
	MovingByButtons             bool

	Angle            float64
	ParallacticAngle float64
	// ParallacticRate is in revolutions per sidereal day.
	ParallacticRate float64

	LimitMin float64
	LimitMax float64
}

func (s *Status) bits() []driver.Bit {
	return []driver.Bit{
		{Pos: 0, Flag: &s.Moving},
		{Pos: 1, Flag: &s.Tracking},
		{Pos: 2, Flag: &s.Auto},
		{Pos: 4, Flag: &s.AtLimit},
		{Pos: 8, Flag: &s.CommsFaultServocommunicator},
		{Pos: 9, Flag: &s.CommsFaultServocontroller},
		{Pos: 10, Flag: &s.MovingByButtons},
	}
}

func (s Status) Word() uint64 {
	return driver.EncodeBits(s.bits())
}

// API converts the status into its wire form.
func (s *Status) API() v1.RotatorStatus {
	return v1.RotatorStatus{
		LimitMin:                    s.LimitMin,
		LimitMax:                    s.LimitMax,
		Moving:                      s.Moving,
		Tracking:                    s.Tracking,
		Auto:                        s.Auto,
		AtLimit:                     s.AtLimit,
		CommsFaultServocommunicator: s.CommsFaultServocommunicator,
		CommsFaultServocontroller:   s.CommsFaultServocontroller,
		MovingByButtons:             s.MovingByButtons,
		Angle:                       s.Angle,
		ParallacticAngle:            s.ParallacticAngle,
		ParallacticRate:             s.ParallacticRate,
	}
}

func ParseStatus(resp *driver.Response) (*Status, error) {
	if err := resp.Expect(4); err != nil {
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
	s := &Status{Angle: v[0], ParallacticAngle: v[1], ParallacticRate: v[2]}
	driver.DecodeBits(word, s.bits())
	return s, nil
}

// Driver issues rotator commands.
type Driver struct {
	line   *driver.Line
	limits LimitsSource
}

// LimitsSource provides the current rotator travel limits.
type LimitsSource interface {
	Limits() Limits
}

func New(exec driver.Executor, limits LimitsSource) *Driver {
	if limits == nil {
		limits = DefaultLimits
	}
	return &Driver{line: driver.NewLine(exec, Subsystem, driver.Semicolon), limits: limits}
}

func (d *Driver) Status(ctx context.Context) (*Status, error) {
	resp, err := d.line.Exec(ctx, "GetRotatorData")
	if err != nil {
		return nil, err
	}
	s, err := ParseStatus(resp)
	if err != nil {
		return nil, err
	}
	l := d.limits.Limits()
	s.LimitMin, s.LimitMax = l.Min, l.Max
	return s, nil
}

func (d *Driver) ToAuto(ctx context.Context) error {
	return d.expect(ctx, "RotatorToAuto", "RotatorToAutoAccepted", "Auto command failed.")
}

func (d *Driver) ToManual(ctx context.Context) error {
	return d.expect(ctx, "RotatorToBlinky", "RotatorToBlinkyAccepted", "Manual command failed.")
}

// JogBy changes the angle by degrees. The controller echoes the command name
// as its acknowledgement.
func (d *Driver) JogBy(ctx context.Context, degrees float64) error {
	return d.expect(ctx, fmt.Sprintf("JogRotatorDegs %.2f", degrees), "JogRotatorDegs", "Jog command failed.")
}

func (d *Driver) MoveTo(ctx context.Context, angle float64) error {
	return d.expect(ctx, fmt.Sprintf("MoveRotatorToAngle %.2f", angle), "MoveRotatorToAngleAccepted", "Move command failed.")
}

// MoveToParallacticAngle puts north up. It is acknowledged with an empty
// message.
func (d *Driver) MoveToParallacticAngle(ctx context.Context) error {
	return d.expect(ctx, "MoveRotatorToParallacticAngle", "", "Move to parallactic angle command failed.")
}

// MoveToLimit spins towards the limit at degreesPerSecond.
func (d *Driver) MoveToLimit(ctx context.Context, degreesPerSecond float64) error {
	return d.expect(ctx, fmt.Sprintf("SpinRotator %.2f", degreesPerSecond), "SpinRotatorAccepted", "Move command failed.")
}

func (d *Driver) TrackingOn(ctx context.Context) error {
	return d.expect(ctx, "RotatorTrackingOn", "TrackingOnAccepted", "Tracking on command failed.")
}

func (d *Driver) TrackingOff(ctx context.Context) error {
	return d.expect(ctx, "RotatorTrackingOff", "TrackingOffAccepted", "Tracking off command failed.")
}

func (d *Driver) Park(ctx context.Context) error {
	return d.expect(ctx, "ParkRotator", "ParkRotatorAccepted", "Park command failed.")
}

func (d *Driver) Unpark(ctx context.Context) error {
	return d.expect(ctx, "UnParkRotator", "UnParkRotatorAccepted", "Unpark command failed.")
}

func (d *Driver) Disconnect() error {
	return d.line.Close()
}

func (d *Driver) expect(ctx context.Context, command, ack, failure string) error {
	_, err := d.line.Expect(ctx, command, ack, failure)
	return err
}
