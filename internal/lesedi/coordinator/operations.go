package coordinator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver/covers"
	"github.com/lesedi-io/lesedi/internal/driver/dome"
	"github.com/lesedi-io/lesedi/internal/driver/focuser"
	"github.com/lesedi-io/lesedi/internal/driver/rotator"
	"github.com/lesedi-io/lesedi/internal/driver/telescope"
)

// Status reads every subsystem and aggregates the result. It bypasses the
// safety gate.
func (c *Coordinator) Status(ctx context.Context) (*v1.Status, error) {
	var (
		d      *dome.Status
		t      *telescope.Status
		f      *focuser.Status
		left   *rotator.Status
		right  *rotator.Status
		cov    *covers.Status
		g, gtx = errgroup.WithContext(ctx)
	)
	g.Go(func() (err error) { d, err = c.hw.Dome.Status(gtx); return wrap("dome", err) })
	g.Go(func() (err error) { t, err = c.hw.Telescope.Status(gtx); return wrap("telescope", err) })
	g.Go(func() (err error) { f, err = c.hw.Focuser.Status(gtx); return wrap("focuser", err) })
	g.Go(func() (err error) { left, err = c.hw.RotatorLeft.Status(gtx); return wrap("left rotator", err) })
	g.Go(func() (err error) { right, err = c.hw.RotatorRight.Status(gtx); return wrap("right rotator", err) })
	g.Go(func() (err error) { cov, err = c.hw.Covers.Status(gtx); return wrap("covers", err) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	trackType := v1.TrackSidereal
	if t.NonSiderealTracking {
		trackType = v1.TrackNonSidereal
	}

	c.mu.Lock()
	stopped, state := c.stopped, c.machine.state()
	c.mu.Unlock()

	return &v1.Status{
		Stopped:   stopped,
		State:     state,
		LastError: c.LastError(),

		Airmass:    t.Airmass,
		JulianDate: t.JulianDate,
		Focus:      f.SecondaryMirrorPosition,

		CoversMoving: cov.Moving,
		CoversOpen:   cov.Open(),

		DomeAngle:         d.Position,
		DomeRemote:        d.Remote,
		DomeTracking:      d.Following,
		DomeShutterMoving: d.ShutterMoving,
		DomeShutterOpen:   d.ShutterOpened && !d.ShutterClosed,
		DomeMoving:        d.Moving,
		DomeTCSLockout:    d.TCSLockedOut,
		DomeLightsOn:      d.DomeLightsOn,
		SlewLightsOn:      d.SlewLightsOn,

		SecondaryMirrorAuto:   f.SecondaryMirrorAuto,
		SecondaryMirrorMoving: f.SecondaryMirrorMoving,
		TertiaryMirrorAuto:    f.TertiaryMirrorAuto,
		TertiaryMirrorMoving:  f.TertiaryMirrorMoving,

		Rotators: map[v1.Instrument]v1.RotatorStatus{
			v1.InstrumentWINCAM: left.API(),
			v1.InstrumentSHOC:   right.API(),
		},
		Instrument: f.Instrument(),

		TelescopeAuto:         !t.Manual,
		TelescopeParked:       t.Parked,
		TelescopeAlt:          t.Alt,
		TelescopeAz:           t.Az,
		TelescopeRA:           t.RA,
		TelescopeDec:          t.Dec,
		TelescopeSlewing:      t.Slewing,
		TelescopeTracking:     t.Tracking,
		TelescopeTrackingType: trackType,

		Location: t.Location,
	}, nil
}

func wrap(subsystem string, err error) error {
	if err != nil {
		return fmt.Errorf("read %s status: %w", subsystem, err)
	}
	return nil
}

func (c *Coordinator) OpenCovers(ctx context.Context) error {
	return c.gated(ctx, "open_covers", c.hw.Covers.OpenCovers)
}

func (c *Coordinator) CloseCovers(ctx context.Context) error {
	return c.gated(ctx, "close_covers", c.hw.Covers.CloseCovers)
}

func (c *Coordinator) DomeRemoteEnable(ctx context.Context) error {
	return c.gated(ctx, "dome_remote_enable", c.hw.Dome.RemoteControlOn)
}

func (c *Coordinator) ParkDome(ctx context.Context) error {
	return c.gated(ctx, "park_dome", c.remoteDome("parked", c.hw.Dome.Park))
}

func (c *Coordinator) OpenDome(ctx context.Context) error {
	return c.gated(ctx, "open_dome", c.remoteDome("opened", c.hw.Dome.Open))
}

func (c *Coordinator) CloseDome(ctx context.Context) error {
	return c.gated(ctx, "close_dome", c.remoteDome("closed", c.hw.Dome.Close))
}

func (c *Coordinator) RotateDome(ctx context.Context, azimuth float64) error {
	req := v1.RotateDomeRequest{Azimuth: azimuth}
	if err := req.Validate(); err != nil {
		return c.observe("rotate_dome", err)
	}
	return c.gated(ctx, "rotate_dome", c.remoteDome("rotated", func(ctx context.Context) error {
		return c.hw.Dome.Rotate(ctx, azimuth)
	}))
}

// StopDome halts all dome movement. It only stops motion, so it bypasses the
// gate.
func (c *Coordinator) StopDome(ctx context.Context) error {
	return c.observe("stop_dome", c.hw.Dome.EmergencyStop(ctx))
}

func (c *Coordinator) remoteDome(verb string, fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		d, err := c.hw.Dome.Status(ctx)
		if err != nil {
			return err
		}
		if !d.Remote {
			return v1.Domainf("Dome cannot be %s while not in remote mode.", verb)
		}
		return fn(ctx)
	}
}

func (c *Coordinator) DomeFollowTelescopeStart(ctx context.Context) error {
	return c.gated(ctx, "dome_follow_telescope_start", c.hw.Dome.FollowTelescopeStart)
}

func (c *Coordinator) DomeFollowTelescopeStop(ctx context.Context) error {
	return c.gated(ctx, "dome_follow_telescope_stop", c.hw.Dome.FollowTelescopeStop)
}

func (c *Coordinator) DomeLightsOn(ctx context.Context) error {
	return c.gated(ctx, "dome_lights_on", c.hw.Dome.LightsOn)
}

func (c *Coordinator) DomeLightsOff(ctx context.Context) error {
	return c.gated(ctx, "dome_lights_off", c.hw.Dome.LightsOff)
}

func (c *Coordinator) SlewLightsOn(ctx context.Context) error {
	return c.gated(ctx, "slew_lights_on", c.hw.Dome.SlewLightsOn)
}

func (c *Coordinator) SlewLightsOff(ctx context.Context) error {
	return c.gated(ctx, "slew_lights_off", c.hw.Dome.SlewLightsOff)
}

func (c *Coordinator) RotatorTrackingOn(ctx context.Context) error {
	return c.gated(ctx, "rotator_tracking_on", c.selectedRotator(Rotator.TrackingOn))
}

func (c *Coordinator) RotatorTrackingOff(ctx context.Context) error {
	return c.gated(ctx, "rotator_tracking_off", c.selectedRotator(Rotator.TrackingOff))
}

func (c *Coordinator) RotatorAutoOn(ctx context.Context) error {
	return c.gated(ctx, "rotator_auto_on", c.selectedRotator(Rotator.ToAuto))
}

func (c *Coordinator) RotatorAutoOff(ctx context.Context) error {
	return c.gated(ctx, "rotator_auto_off", c.selectedRotator(Rotator.ToManual))
}

// selectedRotator applies fn to the rotator feeding the instrument the
// tertiary mirror currently points at. Nothing happens when the mirror sits
// between the forks.
func (c *Coordinator) selectedRotator(fn func(Rotator, context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		f, err := c.hw.Focuser.Status(ctx)
		if err != nil {
			return err
		}
		r := c.rotatorFor(f.Instrument())
		if r == nil {
			c.logger.Info("No instrument selected, rotator command skipped")
			return nil
		}
		return fn(r, ctx)
	}
}

func (c *Coordinator) rotatorFor(instrument v1.Instrument) Rotator {
	switch instrument {
	case v1.InstrumentWINCAM:
		return c.hw.RotatorLeft
	case v1.InstrumentSHOC:
		return c.hw.RotatorRight
	}
	return nil
}

func (c *Coordinator) SecondaryMirrorStop(ctx context.Context) error {
	return c.gated(ctx, "secondary_mirror_stop", c.hw.Focuser.SecondaryStop)
}

func (c *Coordinator) SecondaryMirrorAutoOn(ctx context.Context) error {
	return c.gated(ctx, "secondary_mirror_auto_on", c.hw.Focuser.SecondaryToAuto)
}

func (c *Coordinator) SecondaryMirrorAutoOff(ctx context.Context) error {
	return c.gated(ctx, "secondary_mirror_auto_off", c.hw.Focuser.SecondaryToManual)
}

func (c *Coordinator) TertiaryMirrorAutoOn(ctx context.Context) error {
	return c.gated(ctx, "tertiary_mirror_auto_on", c.hw.Focuser.TertiaryToAuto)
}

func (c *Coordinator) TertiaryMirrorAutoOff(ctx context.Context) error {
	return c.gated(ctx, "tertiary_mirror_auto_off", c.hw.Focuser.TertiaryToManual)
}

// SetFocus moves the secondary mirror to inches. The mirror must be in auto.
func (c *Coordinator) SetFocus(ctx context.Context, inches float64) error {
	return c.gated(ctx, "set_focus", func(ctx context.Context) error {
		f, err := c.hw.Focuser.Status(ctx)
		if err != nil {
			return err
		}
		if !f.SecondaryMirrorAuto {
			return v1.Domainf("Cannot set focus. Secondary mirror is in manual mode.")
		}
		return c.hw.Focuser.SecondaryMoveTo(ctx, inches)
	})
}

// SelectInstrument hands tracking over to the rotator of instrument and then
// turns the tertiary mirror towards it.
func (c *Coordinator) SelectInstrument(ctx context.Context, instrument v1.Instrument) error {
	req := v1.SelectInstrumentRequest{Instrument: instrument}
	if err := req.Validate(); err != nil {
		return c.observe("select_instrument", err)
	}
	return c.gated(ctx, "select_instrument", func(ctx context.Context) error {
		f, err := c.hw.Focuser.Status(ctx)
		if err != nil {
			return err
		}
		if !f.TertiaryMirrorAuto {
			return v1.Domainf("Cannot select instrument. Tertiary mirror is in manual mode.")
		}

		selected, other := c.hw.RotatorRight, c.hw.RotatorLeft
		if instrument == v1.InstrumentWINCAM {
			selected, other = c.hw.RotatorLeft, c.hw.RotatorRight
		}
		if err := other.TrackingOff(ctx); err != nil {
			return err
		}
		if err := selected.TrackingOn(ctx); err != nil {
			return err
		}
		return c.hw.Focuser.SelectInstrument(ctx, instrument)
	})
}

func (c *Coordinator) AutoOn(ctx context.Context) error {
	return c.gated(ctx, "auto_on", c.hw.Telescope.MotorsToAuto)
}

func (c *Coordinator) AutoOff(ctx context.Context) error {
	return c.gated(ctx, "auto_off", c.hw.Telescope.MotorsToManual)
}

func (c *Coordinator) Park(ctx context.Context) error {
	return c.gated(ctx, "park", c.hw.Telescope.Park)
}

// Unpark releases the telescope and disables the tracking the mount turns on
// after unparking.
func (c *Coordinator) Unpark(ctx context.Context) error {
	return c.gated(ctx, "unpark", func(ctx context.Context) error {
		if err := c.hw.Telescope.Unpark(ctx); err != nil {
			return err
		}
		return c.hw.Telescope.SetTrackMode(ctx, false, false, 0, 0)
	})
}

func (c *Coordinator) GotoAltAz(ctx context.Context, alt, az float64) error {
	req := v1.GotoAltAzRequest{Alt: alt, Az: az}
	if err := req.Validate(); err != nil {
		return c.observe("goto_altaz", err)
	}
	return c.gated(ctx, "goto_altaz", c.movable(func(ctx context.Context) error {
		return c.hw.Telescope.GotoAltAz(ctx, alt, az)
	}))
}

func (c *Coordinator) GotoRaDec(ctx context.Context, ra, dec float64) error {
	req := v1.GotoRaDecRequest{RA: ra, Dec: dec}
	if err := req.Validate(); err != nil {
		return c.observe("goto_radec", err)
	}
	return c.gated(ctx, "goto_radec", c.movable(func(ctx context.Context) error {
		return c.hw.Telescope.GotoRaDec(ctx, ra, dec)
	}))
}

// Move jogs the telescope by arcsec in direction.
func (c *Coordinator) Move(ctx context.Context, direction v1.Direction, arcsec float64) error {
	req := v1.MoveRequest{Direction: direction, Arcsec: arcsec}
	if err := req.Validate(); err != nil {
		return c.observe("move", err)
	}
	letter, _ := direction.Letter()
	return c.gated(ctx, "move", c.movable(func(ctx context.Context) error {
		return c.hw.Telescope.Jog(ctx, letter, arcsec)
	}))
}

// movable rejects fn while the telescope is parked or in manual.
func (c *Coordinator) movable(fn func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		t, err := c.hw.Telescope.Status(ctx)
		if err != nil {
			return err
		}
		if t.Parked {
			return v1.Domainf("Telescope cannot be slewed while parked.")
		}
		if t.Manual {
			return v1.Domainf("Cannot move telescope. Motors are in manual mode.")
		}
		return fn(ctx)
	}
}

func (c *Coordinator) SetTrackingMode(ctx context.Context, req v1.SetTrackingModeRequest) error {
	if err := req.Validate(); err != nil {
		return c.observe("set_tracking_mode", err)
	}
	return c.gated(ctx, "set_tracking_mode", func(ctx context.Context) error {
		return c.hw.Telescope.SetTrackMode(ctx, req.Tracking, req.TrackType == v1.TrackNonSidereal, req.RARate, req.DecRate)
	})
}

func (c *Coordinator) Abort(ctx context.Context) error {
	return c.gated(ctx, "abort", c.hw.Telescope.Abort)
}
