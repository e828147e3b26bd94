package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/camera"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
)

func frame(exposure float64, data ...float64) *store.Frame {
	f := &store.Frame{Width: 2, Height: len(data) / 2, Data: data}
	if exposure >= 0 {
		f.SetCard(v1.FloatCard(keyExposure, exposure, ""))
	}
	return f
}

func calibration() *Calibration {
	return &Calibration{
		Bias:     frame(-1, 100, 100, 100, 100),
		Dark:     frame(10, 5, 5, 10, 0),
		Flat:     frame(-1, 1, 0.5, 2, 0),
		BiasName: "cal/bias.fits",
		DarkName: "cal/dark.fits",
		FlatName: "cal/flat.fits",
	}
}

func TestReduce(t *testing.T) {
	raw := frame(20, 210, 210, 300, 500)
	raw.SetCard(v1.StringCard("OBJECT", "M42", ""))

	out, err := Reduce(raw, calibration())
	require.NoError(t, err)
	// (raw - bias - 2*dark) / flat, zero where the flat is zero.
	assert.Equal(t, []float64{100, 200, 90, 0}, out.Data)
	assert.Equal(t, raw.Width, out.Width)

	for kw, want := range map[string]string{
		"L1":     "True",
		"L1BIAS": "cal/bias.fits",
		"L1DARK": "cal/dark.fits",
		"L1FLAT": "cal/flat.fits",
		"OBJECT": "M42",
	} {
		c, ok := out.Card(kw)
		require.True(t, ok, kw)
		assert.Equal(t, want, c.Value, kw)
	}
	// The raw frame is untouched.
	_, ok := raw.Card("L1")
	assert.False(t, ok)
}

func TestReduceErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  *store.Frame
		cal  func(*Calibration)
	}{
		{"raw size", frame(1, 1, 2), nil},
		{"dark size", frame(1, 1, 2, 3, 4), func(c *Calibration) { c.Dark = frame(1, 1, 2) }},
		{"flat size", frame(1, 1, 2, 3, 4), func(c *Calibration) { c.Flat = frame(-1, 1, 2) }},
		{"zero dark exposure", frame(1, 1, 2, 3, 4), func(c *Calibration) { c.Dark = frame(0, 1, 2, 3, 4) }},
		{"dark without exposure", frame(1, 1, 2, 3, 4), func(c *Calibration) { c.Dark = frame(-1, 1, 2, 3, 4) }},
		{"raw without exposure", frame(-1, 1, 2, 3, 4), nil},
		{"missing flat", frame(1, 1, 2, 3, 4), func(c *Calibration) { c.Flat = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := calibration()
			if tt.cal != nil {
				tt.cal(cal)
			}
			_, err := Reduce(tt.raw, cal)
			assert.Error(t, err)
		})
	}
}

func seed(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()
	cal := calibration()
	require.NoError(t, st.Save(ctx, cal.BiasName, cal.Bias))
	require.NoError(t, st.Save(ctx, cal.DarkName, cal.Dark))
	require.NoError(t, st.Save(ctx, cal.FlatName, cal.Flat))
}

func imageOptions() *Options {
	opts := NewOptions()
	opts.Image = &CalibrationOptions{Bias: "cal/bias.fits", Dark: "cal/dark.fits", Flat: "cal/flat.fits"}
	return opts
}

func TestPipelineReduceRaw(t *testing.T) {
	st, err := store.NewLocal(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	seed(t, st)
	ctx := context.Background()

	p, err := New(ctx, st, imageOptions())
	require.NoError(t, err)
	assert.Equal(t, []Mode{ModeImage}, p.Modes())

	raw := "MKD_e_20260601_1_1_0_0.fits"
	require.NoError(t, st.Save(ctx, raw, frame(20, 210, 210, 300, 500)))

	out, err := p.ReduceRaw(ctx, ModeImage, raw)
	require.NoError(t, err)
	assert.Equal(t, "MKD_e_20260601_1_1_0_1.fits", out)
	f, err := st.Load(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 90, 0}, f.Data)

	_, err = p.ReduceRaw(ctx, ModeSpectrum, raw)
	assert.Error(t, err)
	_, err = p.ReduceRaw(ctx, ModeImage, "MKD_e_20260601_9_1_0_0.fits")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNewRejectsBadCalibration(t *testing.T) {
	st, err := store.NewLocal(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	_, err = New(context.Background(), st, imageOptions())
	assert.ErrorIs(t, err, store.ErrNotFound)

	seed(t, st)
	require.NoError(t, st.Save(context.Background(), "cal/dark.fits", frame(0, 1, 1, 1, 1)))
	_, err = New(context.Background(), st, imageOptions())
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	assert.Empty(t, NewOptions().Validate())
	assert.Empty(t, imageOptions().Validate())

	opts := NewOptions()
	opts.Spectrum.Bias = "bias.fits"
	assert.Len(t, opts.Validate(), 1)

	_, err := ParseMode("spectrum")
	assert.NoError(t, err)
	_, err = ParseMode("polarimetry")
	assert.Error(t, err)
}

func TestFrameHookReducesExposures(t *testing.T) {
	st, err := store.NewLocal(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	seed(t, st)
	ctx := context.Background()
	p, err := New(ctx, st, imageOptions())
	require.NoError(t, err)

	bias := "MKD_b_20260601_1_1_0_0.fits"
	exp := "MKD_e_20260601_2_1_0_0.fits"
	require.NoError(t, st.Save(ctx, bias, frame(0, 1, 1, 1, 1)))
	require.NoError(t, st.Save(ctx, exp, frame(20, 210, 210, 300, 500)))

	hook := p.FrameHook(ModeImage)
	hook(ctx, bias, camera.FrameBias)
	hook(ctx, exp, camera.FrameExposure)

	names, err := st.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "MKD_e_20260601_2_1_0_1.fits")
	assert.NotContains(t, names, "MKD_b_20260601_1_1_0_1.fits")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewLocal(afero.NewOsFs(), dir)
	require.NoError(t, err)
	seed(t, st)
	p, err := New(context.Background(), st, imageOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx, dir, ModeImage) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher time to register before the frame lands.
	raw := "MKD_e_20260601_1_1_0_0.fits"
	require.Eventually(t, func() bool {
		if err := st.Save(context.Background(), raw, frame(20, 210, 210, 300, 500)); err != nil {
			return false
		}
		_, err := st.Load(context.Background(), "MKD_e_20260601_1_1_0_1.fits")
		return err == nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRawExposure(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/data/MKD_e_20260601_1_1_0_0.fits", "MKD_e_20260601_1_1_0_0.fits", true},
		{"/data/MKD_e_20260601_1_1_0_1.fits", "", false},
		{"/data/MKD_d_20260601_1_1_0_0.fits", "", false},
		{"/data/.frame-123456", "", false},
	}
	for _, tt := range tests {
		got, ok := rawExposure("/data", tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
