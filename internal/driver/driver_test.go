package driver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver"
	"github.com/lesedi-io/lesedi/internal/sim"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		sep     string
		params  []string
		message string
		wantErr bool
	}{
		{
			name:    "site location",
			reply:   "32.3798;20.8107;1822;_SiteLocations",
			sep:     driver.Semicolon,
			params:  []string{"32.3798", "20.8107", "1822"},
			message: "SiteLocations",
		},
		{
			name:   "dome uses spaces",
			reply:  "2700 1 65536 16;_\n",
			sep:    driver.Space,
			params: []string{"2700", "1", "65536", "16"},
		},
		{
			name:    "message only",
			reply:   "_Error, scope is parked",
			sep:     driver.Semicolon,
			message: "Error, scope is parked",
		},
		{
			name:    "missing marker",
			reply:   "1;2;3;",
			sep:     driver.Semicolon,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := driver.ParseResponse(tt.reply, tt.sep)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, v1.ErrHardware)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params, resp.Params)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestResponseAccessors(t *testing.T) {
	resp, err := driver.ParseResponse("5;1.5;abc;_", driver.Semicolon)
	require.NoError(t, err)

	require.NoError(t, resp.Expect(3))
	assert.Error(t, resp.Expect(4))

	u, err := resp.Uint(0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, u)

	f, err := resp.Float(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-9)

	_, err = resp.Float(2)
	assert.Error(t, err)
	_, err = resp.Float(7)
	assert.Error(t, err)
}

func TestBitsRoundTrip(t *testing.T) {
	var a, b, c bool
	bits := []driver.Bit{{Pos: 0, Flag: &a}, {Pos: 5, Flag: &b}, {Pos: 40, Flag: &c}}

	driver.DecodeBits(1<<40|1, bits)
	assert.True(t, a)
	assert.False(t, b)
	assert.True(t, c)
	assert.EqualValues(t, uint64(1<<40|1), driver.EncodeBits(bits))
}

func startFocuser(t *testing.T) (*sim.Focuser, string) {
	t.Helper()
	dev := sim.NewFocuser(sim.FocuserScenario{})
	srv := sim.NewLineServer("focuser", "127.0.0.1:0", dev)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Start(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return dev, srv.Addr()
}

func TestConnExecute(t *testing.T) {
	_, addr := startFocuser(t)
	conn := driver.NewConn("focuser", addr, time.Second)
	defer conn.Close()

	reply, err := conn.Execute(context.Background(), "ToAutoTertiary")
	require.NoError(t, err)
	assert.Equal(t, "8;0;0;_ToAutoTertiaryAccepted", reply)
}

func TestConnRedialsAfterFailure(t *testing.T) {
	dev, addr := startFocuser(t)
	dev.FailOn("StopFocuser")
	conn := driver.NewConn("focuser", addr, time.Second)
	defer conn.Close()

	_, err := conn.Execute(context.Background(), "StopFocuser")
	require.Error(t, err)
	var ioErr *driver.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "StopFocuser", ioErr.Command)
	assert.ErrorIs(t, err, v1.ErrHardware)

	_, err = conn.Execute(context.Background(), "ToAutoFocuser")
	require.NoError(t, err)
	assert.Equal(t, []string{"StopFocuser", "ToAutoFocuser"}, dev.Commands())
}

func TestConnUnreachable(t *testing.T) {
	conn := driver.NewConn("dome", "127.0.0.1:1", 200*time.Millisecond)
	_, err := conn.Execute(context.Background(), "GetDomeData")
	require.Error(t, err)
	assert.ErrorIs(t, err, v1.ErrHardware)
}

func TestConnHonoursCanceledContext(t *testing.T) {
	_, addr := startFocuser(t)
	conn := driver.NewConn("focuser", addr, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conn.Execute(ctx, "StopFocuser")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineExpect(t *testing.T) {
	dev, addr := startFocuser(t)
	dev.RejectOn("ToAutoFocuser")
	line := driver.NewLine(driver.NewConn("focuser", addr, time.Second), "focuser", driver.Semicolon)
	defer line.Close()

	_, err := line.Expect(context.Background(), "ToAutoTertiary", "ToAutoTertiaryAccepted", "Tertiary auto command failed.")
	require.NoError(t, err)

	_, err = line.Expect(context.Background(), "ToAutoFocuser", "ToAutoFocuserAccepted", "Auto command failed.")
	require.Error(t, err)
	assert.Equal(t, "Auto command failed.", err.Error())
	assert.ErrorIs(t, err, v1.ErrDomain)

	var cmdErr *driver.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "ToAutoFocuser", cmdErr.Command)
}
