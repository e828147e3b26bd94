// Package telescope drives the SiTech mount controller.
package telescope

import (
	"context"
	"fmt"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver"
)

const (
	Subsystem   = "telescope"
	DefaultPort = 1956
)

// Status is the decoded ReadScopeStatus reply.
type Status struct {
	Initialized                  bool
	Tracking                     bool
	Slewing                      bool
	Parking                      bool
	Parked                       bool
	PointingEast                 bool
	Manual                       bool
	CommunicationFault           bool
	LimitSwitchPrimaryPlus       bool
	LimitSwitchPrimaryMinus      bool
	LimitSwitchSecondaryPlus     bool
	LimitSwitchSecondaryMinus    bool
	HomingSwitchPrimaryAxis      bool
	HomingSwitchSecondaryAxis    bool
	GotoCommandedRotatorPosition bool
	NonSiderealTracking          bool

	RA                 float64 // hours, JNow
	Dec                float64 // degrees, JNow
	Alt                float64
	Az                 float64
	SecondaryAxisAngle float64
	PrimaryAxisAngle   float64
	SiderealTime       float64
	JulianDate         float64
	Time               float64
	Airmass            float64

	Location v1.Location
}

func (s *Status) bits() []driver.Bit {
	return []driver.Bit{
		{Pos: 0, Flag: &s.Initialized},
		{Pos: 1, Flag: &s.Tracking},
		{Pos: 2, Flag: &s.Slewing},
		{Pos: 3, Flag: &s.Parking},
		{Pos: 4, Flag: &s.Parked},
		{Pos: 5, Flag: &s.PointingEast},
		{Pos: 6, Flag: &s.Manual},
		{Pos: 7, Flag: &s.CommunicationFault},
		{Pos: 8, Flag: &s.LimitSwitchPrimaryPlus},
		{Pos: 9, Flag: &s.LimitSwitchPrimaryMinus},
		{Pos: 10, Flag: &s.LimitSwitchSecondaryPlus},
		{Pos: 11, Flag: &s.LimitSwitchSecondaryMinus},
		{Pos: 12, Flag: &s.HomingSwitchPrimaryAxis},
		{Pos: 13, Flag: &s.HomingSwitchSecondaryAxis},
		{Pos: 14, Flag: &s.GotoCommandedRotatorPosition},
		{Pos: 15, Flag: &s.NonSiderealTracking},
	}
}

// Word packs the status flags.
func (s Status) Word() uint64 {
	return driver.EncodeBits(s.bits())
}

// ParseStatus decodes a ReadScopeStatus reply. Location is left empty.
func ParseStatus(resp *driver.Response) (*Status, error) {
	if err := resp.Expect(11); err != nil {
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

	s := &Status{
		RA:                 v[0],
		Dec:                v[1],
		Alt:                v[2],
		Az:                 v[3],
		SecondaryAxisAngle: v[4],
		PrimaryAxisAngle:   v[5],
		SiderealTime:       v[6],
		JulianDate:         v[7],
		Time:               v[8],
		Airmass:            v[9],
	}
	driver.DecodeBits(word, s.bits())
	return s, nil
}

// Driver issues mount commands. Most commands report problems in the reply
// message; those are returned as-is and not checked here.
type Driver struct {
	line *driver.Line
}

func New(exec driver.Executor) *Driver {
	return &Driver{line: driver.NewLine(exec, Subsystem, driver.Semicolon)}
}

// Status reads the mount status followed by the site location.
func (d *Driver) Status(ctx context.Context) (*Status, error) {
	resp, err := d.line.Exec(ctx, "ReadScopeStatus")
	if err != nil {
		return nil, err
	}
	s, err := ParseStatus(resp)
	if err != nil {
		return nil, err
	}
	loc, err := d.Location(ctx)
	if err != nil {
		return nil, err
	}
	s.Location = *loc
	return s, nil
}

// Location returns the site latitude, longitude and elevation.
func (d *Driver) Location(ctx context.Context) (*v1.Location, error) {
	resp, err := d.line.Exec(ctx, "SiteLocations")
	if err != nil {
		return nil, err
	}
	if err := resp.Expect(3); err != nil {
		return nil, err
	}
	v, err := resp.Floats(0)
	if err != nil {
		return nil, err
	}
	return &v1.Location{Latitude: v[0], Longitude: v[1], Elevation: v[2]}, nil
}

func (d *Driver) Park(ctx context.Context) error   { return d.exec(ctx, "Park") }
func (d *Driver) Unpark(ctx context.Context) error { return d.exec(ctx, "UnPark") }
func (d *Driver) Abort(ctx context.Context) error  { return d.exec(ctx, "Abort") }

// MotorsToManual removes power from the motors; they coast to a stop.
func (d *Driver) MotorsToManual(ctx context.Context) error { return d.exec(ctx, "MotorsToBlinky") }
func (d *Driver) MotorsToAuto(ctx context.Context) error   { return d.exec(ctx, "MotorsToAuto") }

// GotoAltAz slews to the given altitude and azimuth. The controller takes
// azimuth first.
func (d *Driver) GotoAltAz(ctx context.Context, alt, az float64) error {
	return d.exec(ctx, fmt.Sprintf("GoToAltAz %v %v", az, alt))
}

// GotoRaDec slews to J2000 coordinates.
func (d *Driver) GotoRaDec(ctx context.Context, ra, dec float64) error {
	return d.exec(ctx, fmt.Sprintf("GoTo %v %v J2K", ra, dec))
}

// SetTrackMode starts or stops tracking. With custom rates set, raRate and
// decRate are in arcsec per second; otherwise the sidereal rate is used.
func (d *Driver) SetTrackMode(ctx context.Context, tracking, customRates bool, raRate, decRate float64) error {
	return d.exec(ctx, fmt.Sprintf("SetTrackMode %d %d %v %v", b2i(tracking), b2i(customRates), raRate, decRate))
}

// Jog nudges the mount by arcsec in direction (N, S, E or W).
func (d *Driver) Jog(ctx context.Context, direction string, arcsec float64) error {
	return d.exec(ctx, fmt.Sprintf("JogArcSeconds %s %v", direction, arcsec))
}

// PulseGuide nudges the mount at the guide rate for ms milliseconds.
// Directions are 0 north, 1 south, 2 east, 3 west.
func (d *Driver) PulseGuide(ctx context.Context, direction, ms int) error {
	return d.exec(ctx, fmt.Sprintf("PulseGuide %d %d", direction, ms))
}

func (d *Driver) SyncToAltAz(ctx context.Context, alt, az float64) error {
	return d.exec(ctx, fmt.Sprintf("SyncToAltAz %v %v", alt, az))
}

func (d *Driver) SyncToRaDec(ctx context.Context, ra, dec float64) error {
	return d.exec(ctx, fmt.Sprintf("Sync %v %v 0 J2000", ra, dec))
}

// CookCoordinates returns the controller's JNow conversion of J2000 ra/dec.
func (d *Driver) CookCoordinates(ctx context.Context, ra, dec float64) (string, error) {
	return d.message(ctx, fmt.Sprintf("CookCoordinates %v %v", ra, dec))
}

// UncookCoordinates returns the J2000 conversion of JNow ra/dec.
func (d *Driver) UncookCoordinates(ctx context.Context, ra, dec float64) (string, error) {
	return d.message(ctx, fmt.Sprintf("UnCookCoordinates %v %v", ra, dec))
}

// Destination returns the raw ReadScopeDestination reply.
func (d *Driver) Destination(ctx context.Context) (*driver.Response, error) {
	return d.line.Exec(ctx, "ReadScopeDestination")
}

func (d *Driver) Disconnect() error {
	return d.line.Close()
}

func (d *Driver) exec(ctx context.Context, command string) error {
	_, err := d.line.Exec(ctx, command)
	return err
}

func (d *Driver) message(ctx context.Context, command string) (string, error) {
	resp, err := d.line.Exec(ctx, command)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
