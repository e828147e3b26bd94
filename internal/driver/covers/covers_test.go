package covers_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/driver/covers"
	"github.com/lesedi-io/lesedi/internal/sim"
)

func TestStatusBits(t *testing.T) {
	s := covers.ParseStatus(0b0101010)
	assert.True(t, s.MirrorCover1Open)
	assert.True(t, s.MirrorCover2Open)
	assert.True(t, s.BaffleOpen)
	assert.False(t, s.Moving)
	assert.True(t, s.Open())
	assert.EqualValues(t, 0b0101010, s.Word())

	assert.False(t, covers.ParseStatus(0b0010101).Open())
}

func TestDriverAgainstSimulator(t *testing.T) {
	srv := sim.NewCovers(sim.CoversScenario{}, "127.0.0.1:0")
	require.NoError(t, srv.Listen())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Start(ctx) }()

	host, portStr, err := net.SplitHostPort(srv.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	d := covers.New(host, port, time.Second)

	s, err := d.Status(ctx)
	require.NoError(t, err)
	assert.False(t, s.Open())
	assert.True(t, s.BaffleClosed)

	require.NoError(t, d.OpenCovers(ctx))
	s, err = d.Status(ctx)
	require.NoError(t, err)
	assert.True(t, s.Open())

	require.NoError(t, d.CloseCovers(ctx))
	s, err = d.Status(ctx)
	require.NoError(t, err)
	assert.True(t, s.MirrorCover1Closed)
	assert.False(t, s.Open())
}

func TestDriverUnreachable(t *testing.T) {
	d := covers.New("127.0.0.1", 1, 200*time.Millisecond)
	_, err := d.Status(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, v1.ErrHardware)
}
