package mookodi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
	"github.com/lesedi-io/lesedi/pkg/options"
)

func testConfig(t *testing.T) (*Config, store.Store) {
	t.Helper()
	st, err := store.NewLocal(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	cam := NewCameraOptions()
	cam.NCols, cam.NRows = 4, 4
	return &Config{
		CameraOptions:   cam,
		PipelineOptions: NewPipelineOptions(),
		StoreOptions:    options.NewStoreOptions("/data"),
		GrpcOptions:     options.NewGrpcOptions("127.0.0.1:0"),
		HttpOptions:     options.NewHttpOptions("127.0.0.1:0"),
		Store:           st,
	}, st
}

func TestCameraOptionsValidate(t *testing.T) {
	o := NewCameraOptions()
	assert.Empty(t, o.Validate())
	assert.Equal(t, int32(1024), o.Config().NCols)

	o.NCols, o.Instrument = 1, ""
	assert.Len(t, o.Validate(), 2)
}

func TestPipelineOptionsValidate(t *testing.T) {
	o := NewPipelineOptions()
	assert.Empty(t, o.Validate())

	o.Enabled = true
	assert.Len(t, o.Validate(), 1)

	o.Reduction.Image.Bias, o.Reduction.Image.Dark, o.Reduction.Image.Flat = "b", "d", "f"
	assert.Empty(t, o.Validate())

	o.Mode = "polarimetry"
	assert.Len(t, o.Validate(), 1)
}

func TestNewCameraServer(t *testing.T) {
	cfg, _ := testConfig(t)
	s, err := cfg.NewCameraServer(context.Background())
	require.NoError(t, err)
	t.Cleanup(s.camera.Close)
	assert.Equal(t, int32(1), s.camera.State().XBin)
	assert.Empty(t, s.camera.LastImageFilename())
}

func TestNewCameraServerPipelineNeedsCalibration(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.PipelineOptions.Enabled = true
	cfg.PipelineOptions.Reduction.Image.Bias = "cal/bias.fits"
	cfg.PipelineOptions.Reduction.Image.Dark = "cal/dark.fits"
	cfg.PipelineOptions.Reduction.Image.Flat = "cal/flat.fits"

	_, err := cfg.NewCameraServer(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCameraServerReducesExposures(t *testing.T) {
	cfg, st := testConfig(t)
	ctx := context.Background()
	flat := &store.Frame{Width: 4, Height: 4, Data: make([]float64, 16)}
	for i := range flat.Data {
		flat.Data[i] = 1
	}
	dark := &store.Frame{Width: 4, Height: 4, Data: make([]float64, 16)}
	dark.SetCard(v1.FloatCard("EXPOSURE", 1, ""))
	require.NoError(t, st.Save(ctx, "cal/bias.fits", &store.Frame{Width: 4, Height: 4, Data: make([]float64, 16)}))
	require.NoError(t, st.Save(ctx, "cal/dark.fits", dark))
	require.NoError(t, st.Save(ctx, "cal/flat.fits", flat))

	cfg.PipelineOptions.Enabled = true
	cfg.PipelineOptions.Reduction.Image.Bias = "cal/bias.fits"
	cfg.PipelineOptions.Reduction.Image.Dark = "cal/dark.fits"
	cfg.PipelineOptions.Reduction.Image.Flat = "cal/flat.fits"

	s, err := cfg.NewCameraServer(ctx)
	require.NoError(t, err)
	t.Cleanup(s.camera.Close)

	require.NoError(t, s.camera.StartExpose(0, true))
	require.Eventually(t, func() bool {
		return !s.camera.State().ExposureInProgress
	}, 5*time.Second, 10*time.Millisecond)

	raw := s.camera.LastImageFilename()
	require.NotEmpty(t, raw)
	names, err := st.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, raw)
	assert.Contains(t, names, raw[:len(raw)-len("0.fits")]+"1.fits")
}

func TestStateEndpoint(t *testing.T) {
	cfg, _ := testConfig(t)
	s, err := cfg.NewCameraServer(context.Background())
	require.NoError(t, err)
	t.Cleanup(s.camera.Close)
	s.camera.CoolDown()

	rec := httptest.NewRecorder()
	s.http.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var st v1.CameraState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, -100.0, st.CCDTemperature)
	assert.Equal(t, v1.ExposureIdle, st.ExposureState)
}
