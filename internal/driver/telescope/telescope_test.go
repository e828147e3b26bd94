package telescope_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/lesedi-io/lesedi/internal/driver"
	"github.com/lesedi-io/lesedi/internal/driver/telescope"
	"github.com/lesedi-io/lesedi/internal/sim"
)

func TestParseStatus(t *testing.T) {
	resp, err := driver.ParseResponse("18;12.5;-45;60;180;1;2;3.5;2460000.5;4;1.1547;_", driver.Semicolon)
	require.NoError(t, err)

	s, err := telescope.ParseStatus(resp)
	require.NoError(t, err)
	assert.True(t, s.Tracking)
	assert.True(t, s.Parked)
	assert.False(t, s.Slewing)
	assert.InDelta(t, 12.5, s.RA, 1e-9)
	assert.InDelta(t, -45, s.Dec, 1e-9)
	assert.InDelta(t, 60, s.Alt, 1e-9)
	assert.InDelta(t, 180, s.Az, 1e-9)
	assert.InDelta(t, 2460000.5, s.JulianDate, 1e-9)
	assert.InDelta(t, 1.1547, s.Airmass, 1e-9)
}

func TestDriverAgainstSimulator(t *testing.T) {
	clk := clocktesting.NewFakePassiveClock(time.Date(2026, 3, 20, 22, 0, 0, 0, time.UTC))
	dev := sim.NewTelescope(sim.DefaultScenario().Telescope, clk)
	srv := sim.NewLineServer("telescope", "127.0.0.1:0", dev)
	require.NoError(t, srv.Listen())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Start(ctx) }()

	d := telescope.New(driver.NewConn(telescope.Subsystem, srv.Addr(), time.Second))
	defer d.Disconnect()

	s, err := d.Status(ctx)
	require.NoError(t, err)
	assert.True(t, s.Parked)
	assert.InDelta(t, -32.3798, s.Location.Latitude, 1e-9)
	assert.InDelta(t, 1822, s.Location.Elevation, 1e-9)
	assert.Greater(t, s.JulianDate, 2461000.0)

	require.NoError(t, d.Unpark(ctx))
	require.NoError(t, d.SetTrackMode(ctx, false, false, 0, 0))
	require.NoError(t, d.GotoAltAz(ctx, 30, 200))

	s, err = d.Status(ctx)
	require.NoError(t, err)
	assert.False(t, s.Parked)
	assert.InDelta(t, 30, s.Alt, 1e-9)
	assert.InDelta(t, 200, s.Az, 1e-9)
	assert.InDelta(t, 2, s.Airmass, 1e-9)

	require.NoError(t, d.GotoRaDec(ctx, 5.5, -60))
	require.NoError(t, d.Jog(ctx, "N", 36))
	s, err = d.Status(ctx)
	require.NoError(t, err)
	assert.True(t, s.Tracking)
	assert.InDelta(t, 5.5, s.RA, 1e-9)
	assert.InDelta(t, -59.99, s.Dec, 1e-9)

	require.NoError(t, d.Abort(ctx))
	require.NoError(t, d.Park(ctx))
	s, err = d.Status(ctx)
	require.NoError(t, err)
	assert.True(t, s.Parked)
	assert.False(t, s.Tracking)

	assert.Equal(t, []string{
		"ReadScopeStatus", "SiteLocations", "UnPark", "SetTrackMode", "GoToAltAz",
		"ReadScopeStatus", "SiteLocations", "GoTo", "JogArcSeconds",
		"ReadScopeStatus", "SiteLocations", "Abort", "Park",
		"ReadScopeStatus", "SiteLocations",
	}, dev.Commands())
}
