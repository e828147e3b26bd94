package coordinator_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver"
	"github.com/lesedi-io/lesedi/internal/driver/covers"
	"github.com/lesedi-io/lesedi/internal/driver/dome"
	"github.com/lesedi-io/lesedi/internal/driver/focuser"
	"github.com/lesedi-io/lesedi/internal/driver/rotator"
	"github.com/lesedi-io/lesedi/internal/driver/telescope"
	"github.com/lesedi-io/lesedi/internal/lesedi/coordinator"
	"github.com/lesedi-io/lesedi/internal/sim"
)

func startObservatory(t *testing.T, clk *clocktesting.FakeClock) (*sim.Observatory, coordinator.Hardware) {
	t.Helper()
	o := sim.NewObservatory(sim.DefaultScenario(), "127.0.0.1", sim.Ports{}, clk)
	require.NoError(t, o.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = o.Start(ctx) }()

	addrs := o.Addrs()
	conn := func(subsystem, name string) *driver.Conn {
		c := driver.NewConn(subsystem, addrs[name], time.Second)
		t.Cleanup(func() { _ = c.Close() })
		return c
	}
	host, port, err := net.SplitHostPort(addrs["covers"])
	require.NoError(t, err)
	coversPort, err := strconv.Atoi(port)
	require.NoError(t, err)

	return o, coordinator.Hardware{
		Dome:         dome.New(conn(dome.Subsystem, "dome")),
		Telescope:    telescope.New(conn(telescope.Subsystem, "telescope")),
		Focuser:      focuser.New(conn(focuser.Subsystem, "focuser")),
		RotatorLeft:  rotator.New(conn("rotator-left", "rotator-left"), nil),
		RotatorRight: rotator.New(conn("rotator-right", "rotator-right"), nil),
		Covers:       covers.New(host, coversPort, time.Second),
	}
}

// advance steps the fake clock past any pending sequence wait until cond holds.
func advance(t *testing.T, clk *clocktesting.FakeClock, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		if clk.HasWaiters() {
			clk.Step(time.Minute)
		}
		return cond()
	}, 5*time.Second, time.Millisecond)
}

func TestStartupAndShutdownAgainstSimulators(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC))
	o, hw := startObservatory(t, clk)

	c := coordinator.New(hw, coordinator.DefaultConfig(), coordinator.WithClock(clk))
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Startup(ctx))
	advance(t, clk, func() bool { return c.State() == v1.StateReady })
	require.Nil(t, c.LastError())

	s, err := c.Status(ctx)
	require.NoError(t, err)
	assert.True(t, s.DomeShutterOpen)
	assert.True(t, s.DomeTracking)
	assert.True(t, s.CoversOpen)
	assert.False(t, s.TelescopeParked)
	assert.False(t, s.SlewLightsOn)
	assert.False(t, s.DomeLightsOn)
	assert.True(t, s.TertiaryMirrorAuto)
	assert.Equal(t, v1.InstrumentSHOC, s.Instrument)
	assert.True(t, s.Rotators[v1.InstrumentSHOC].Tracking)
	assert.False(t, s.Rotators[v1.InstrumentWINCAM].Tracking)

	require.NoError(t, c.Shutdown(ctx))
	advance(t, clk, func() bool { return c.State() == v1.StateOff })
	require.Nil(t, c.LastError())

	assert.True(t, o.Telescope.Status().Parked)
	d := o.Dome.Status()
	assert.True(t, d.ShutterClosed)
	assert.False(t, d.Following)
	assert.Equal(t, 270.0, d.Position)
	cov := o.Covers.Status()
	assert.False(t, cov.Open())
	assert.True(t, cov.BaffleClosed)
	assert.False(t, o.RotatorLeft.Status().Tracking)
	assert.False(t, o.RotatorRight.Status().Tracking)
}

func TestLockoutIssuesNoHardwareCommands(t *testing.T) {
	clk := clocktesting.NewFakeClock(time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC))
	o, hw := startObservatory(t, clk)
	o.Dome.SetLockout(true)

	c := coordinator.New(hw, coordinator.DefaultConfig(), coordinator.WithClock(clk))
	defer c.Close()

	err := c.OpenDome(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, v1.ErrSafety)

	// Only the lockout check reached the dome.
	assert.Equal(t, []string{"GetDomeData"}, o.Dome.Commands())
	assert.Empty(t, o.Telescope.Commands())
}
