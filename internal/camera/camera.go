// Package camera emulates the Mookodi CCD camera. Exposures run in a
// background goroutine that walks through the EXPOSING and READOUT phases
// and optionally saves each frame to a frame store.
package camera

import (
	"context"
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/pkg/metrics"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
	"github.com/lesedi-io/lesedi/pkg/log"
)

const (
	// tick is the exposure countdown step.
	tick = 1000 * time.Millisecond
	// readoutTime emulates the CCD readout.
	readoutTime = time.Second

	warmTemperature = 10.0
	maxBinning      = 16
)

// Config describes the detector.
type Config struct {
	NCols             int32
	NRows             int32
	TargetTemperature float64
	// Instrument prefixes every filename.
	Instrument string
}

func DefaultConfig() Config {
	return Config{
		NCols:             1024,
		NRows:             1024,
		TargetTemperature: -100,
		Instrument:        "MKD",
	}
}

// FrameHook is called after a frame has been saved.
type FrameHook func(ctx context.Context, name string, kind FrameType)

type Option func(*Camera)

func WithClock(clk clock.Clock) Option {
	return func(c *Camera) { c.clock = clk }
}

// WithStore saves frames to s. Without a store frames are only kept in
// memory.
func WithStore(s store.Store) Option {
	return func(c *Camera) { c.store = s }
}

// WithFrameHook calls hook for every saved frame.
func WithFrameHook(hook FrameHook) Option {
	return func(c *Camera) { c.hook = hook }
}

// Camera is the emulated camera. All methods are safe for concurrent use.
type Camera struct {
	cfg    Config
	clock  clock.Clock
	store  store.Store
	hook   FrameHook
	logger log.Logger

	mu        sync.Mutex
	state     v1.CameraState
	headers   []v1.FitsHeaderCard
	image     v1.ImageData
	multrun   int
	last      string
	filenames []string
	abort     chan struct{}

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg Config, opts ...Option) *Camera {
	c := &Camera{
		cfg:    cfg,
		clock:  clock.RealClock{},
		logger: log.WithName("camera"),
		state: v1.CameraState{
			XBin:          1,
			YBin:          1,
			ExposureState: v1.ExposureIdle,
			ReadoutSpeed:  v1.ReadoutSlow,
			Gain:          v1.GainOne,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

// Close aborts any exposure and waits for it to finish.
func (c *Camera) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Camera) SetBinning(xbin, ybin int32) error {
	if xbin < 1 || xbin > maxBinning || ybin < 1 || ybin > maxBinning {
		return v1.InvalidArgumentf("Binning %dx%d out of range 1 .. %d", xbin, ybin, maxBinning)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.XBin, c.state.YBin = xbin, ybin
	c.logger.Info("Binning set", "xbin", xbin, "ybin", ybin)
	return nil
}

func (c *Camera) SetWindow(w v1.Window) error {
	if err := checkAxis("x", w.XStart, w.XEnd, c.cfg.NCols); err != nil {
		return err
	}
	if err := checkAxis("y", w.YStart, w.YEnd, c.cfg.NRows); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Window = w
	c.state.UseWindow = true
	c.logger.Info("Window set", "window", w)
	return nil
}

func checkAxis(axis string, start, end, size int32) error {
	if start < 0 || start >= size {
		return v1.InvalidArgumentf("Window %s start %d out of range 0 .. %d", axis, start, size-1)
	}
	if end <= start || end >= size {
		return v1.InvalidArgumentf("Window %s end %d must be after start %d and below %d", axis, end, start, size)
	}
	return nil
}

func (c *Camera) ClearWindow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.UseWindow = false
	c.state.Window = v1.Window{}
}

func (c *Camera) SetReadoutSpeed(speed v1.ReadoutSpeed) error {
	if speed != v1.ReadoutSlow && speed != v1.ReadoutFast {
		return v1.InvalidArgumentf("Unknown readout speed %d", int32(speed))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ReadoutSpeed = speed
	return nil
}

func (c *Camera) SetGain(gain v1.Gain) error {
	if gain < v1.GainOne || gain > v1.GainThree {
		return v1.InvalidArgumentf("Unknown gain %d", int32(gain))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Gain = gain
	return nil
}

// SetFitsHeaders replaces the header list written into saved frames.
func (c *Camera) SetFitsHeaders(cards []v1.FitsHeaderCard) error {
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers = append([]v1.FitsHeaderCard(nil), cards...)
	return nil
}

func (c *Camera) AddFitsHeader(card v1.FitsHeaderCard) error {
	if err := card.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers = append(c.headers, card)
	return nil
}

func (c *Camera) ClearFitsHeaders() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers = nil
}

// FitsHeaders returns a copy of the header list.
func (c *Camera) FitsHeaders() []v1.FitsHeaderCard {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]v1.FitsHeaderCard(nil), c.headers...)
}

func (c *Camera) CoolDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CCDTemperature = c.cfg.TargetTemperature
	c.logger.Info("Camera temperature setpoint reached", "temperature", c.state.CCDTemperature)
}

func (c *Camera) WarmUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CCDTemperature = warmTemperature
	c.logger.Info("Camera warmed up", "temperature", c.state.CCDTemperature)
}

func (c *Camera) State() v1.CameraState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ImageData returns the last frame read out.
func (c *Camera) ImageData() v1.ImageData {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := c.image
	img.Data = append([]int32(nil), c.image.Data...)
	return img
}

func (c *Camera) LastImageFilename() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// ImageFilenames lists the frames saved by the current or last run.
func (c *Camera) ImageFilenames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.filenames...)
}

// AbortExposure stops the running exposure. It is a no-op when idle.
func (c *Camera) AbortExposure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.ExposureInProgress && c.abort != nil {
		close(c.abort)
		c.abort = nil
		c.logger.Info("Exposure aborted")
	}
}

// StartExpose takes one exposure of length milliseconds.
func (c *Camera) StartExpose(length int32, save bool) error {
	if length < 0 {
		return v1.InvalidArgumentf("Exposure length %d must not be negative", length)
	}
	return c.start(run{kind: FrameExposure, count: 1, length: length, save: save})
}

func (c *Camera) StartMultbias(count int32) error {
	if count < 1 {
		return v1.InvalidArgumentf("Exposure count %d must be at least 1", count)
	}
	return c.start(run{kind: FrameBias, count: count, save: true})
}

func (c *Camera) StartMultdark(count, length int32) error {
	if err := checkMultrun(count, length); err != nil {
		return err
	}
	return c.start(run{kind: FrameDark, count: count, length: length, save: true})
}

func (c *Camera) StartMultrun(count, length int32) error {
	if err := checkMultrun(count, length); err != nil {
		return err
	}
	return c.start(run{kind: FrameExposure, count: count, length: length, save: true})
}

func checkMultrun(count, length int32) error {
	if count < 1 {
		return v1.InvalidArgumentf("Exposure count %d must be at least 1", count)
	}
	if length < 1 {
		return v1.InvalidArgumentf("Exposure length %d must be at least 1", length)
	}
	return nil
}

// run is one start call: count frames of the same type.
type run struct {
	kind    FrameType
	count   int32
	length  int32
	save    bool
	multrun int
	// geometry is fixed when the run starts.
	width, height int32
	window        bool
	xbin, ybin    int32
	headers       []v1.FitsHeaderCard
	abort         <-chan struct{}
}

func (c *Camera) start(r run) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.ExposureInProgress {
		return v1.Busyf("Cannot start a new exposure while an exposure is in progress")
	}

	r.width, r.height = c.cfg.NCols, c.cfg.NRows
	if c.state.UseWindow {
		w := c.state.Window
		r.width, r.height = w.XEnd-w.XStart+1, w.YEnd-w.YStart+1
		r.window = true
	}
	r.xbin, r.ybin = c.state.XBin, c.state.YBin
	r.width, r.height = max(r.width/r.xbin, 1), max(r.height/r.ybin, 1)
	r.headers = append([]v1.FitsHeaderCard(nil), c.headers...)

	c.multrun++
	r.multrun = c.multrun
	abort := make(chan struct{})
	c.abort, r.abort = abort, abort

	c.filenames = nil
	c.state.ExposureInProgress = true
	c.state.ExposureLength = r.length
	c.state.ExposureCount = r.count
	c.state.ExposureIndex = 0

	c.logger.Info("Starting exposures", "type", r.kind.String(), "count", r.count, "length", r.length)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.expose(r)
	}()
	return nil
}

func (c *Camera) expose(r run) {
	defer func() {
		c.mu.Lock()
		c.state.ExposureState = v1.ExposureIdle
		c.state.ExposureInProgress = false
		c.abort = nil
		c.mu.Unlock()
	}()

	for i := int32(0); i < r.count; i++ {
		c.mu.Lock()
		c.state.ExposureState = v1.ExposureExposing
		c.state.ExposureIndex = i
		c.state.ElapsedExposureLength = 0
		c.state.RemainingExposureLength = r.length
		c.mu.Unlock()

		remaining := r.length
		for remaining > 0 {
			if !c.wait(tick, r.abort) {
				return
			}
			remaining -= int32(tick / time.Millisecond)
			c.mu.Lock()
			c.state.RemainingExposureLength = max(remaining, 0)
			c.state.ElapsedExposureLength += int32(tick / time.Millisecond)
			c.mu.Unlock()
		}

		c.mu.Lock()
		c.state.ExposureState = v1.ExposureReadout
		c.mu.Unlock()
		if !c.wait(readoutTime, r.abort) {
			return
		}

		img := readout(r.width, r.height)
		c.mu.Lock()
		c.image = img
		c.mu.Unlock()
		metrics.ExposuresTotal.WithLabelValues(r.kind.String()).Inc()

		if r.save {
			if err := c.save(r, int(i)+1, img); err != nil {
				c.logger.Error(err, "Failed to save frame", "type", r.kind.String(), "index", i)
				return
			}
		}
	}
	c.logger.Info("Exposures complete", "type", r.kind.String(), "count", r.count)
}

// wait returns false when the run was aborted or the camera closed.
func (c *Camera) wait(d time.Duration, abort <-chan struct{}) bool {
	t := c.clock.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C():
		return true
	case <-abort:
		return false
	case <-c.ctx.Done():
		return false
	}
}

// readout fills pixel (i, j) with i*j*2^14/total.
func readout(width, height int32) v1.ImageData {
	total := int64(width) * int64(height)
	data := make([]int32, total)
	for i := int64(0); i < int64(height); i++ {
		for j := int64(0); j < int64(width); j++ {
			data[i*int64(width)+j] = int32(i * j * (1 << 14) / total)
		}
	}
	return v1.ImageData{XSize: width, YSize: height, Data: data}
}

func (c *Camera) save(r run, index int, img v1.ImageData) error {
	name := Filename{
		Instrument: c.cfg.Instrument,
		Type:       r.kind,
		Date:       c.clock.Now().UTC(),
		Multrun:    r.multrun,
		Run:        index,
		Window:     r.window,
	}.String()

	f := &store.Frame{
		Header: append([]v1.FitsHeaderCard(nil), r.headers...),
		Width:  int(img.XSize),
		Height: int(img.YSize),
		Data:   make([]float64, len(img.Data)),
	}
	for k, v := range img.Data {
		f.Data[k] = float64(v)
	}
	f.SetCard(v1.FloatCard("EXPOSURE", float64(r.length)/1000, "Exposure length in seconds"))
	f.SetCard(v1.StringCard("EXPTYPE", r.kind.HeaderValue(), "Exposure type"))
	f.SetCard(v1.IntCard("CCDXBIN", int64(r.xbin), "Binning in x"))
	f.SetCard(v1.IntCard("CCDYBIN", int64(r.ybin), "Binning in y"))

	if c.store != nil {
		if err := c.store.Save(c.ctx, name, f); err != nil {
			return fmt.Errorf("save frame %s: %w", name, err)
		}
	}

	c.mu.Lock()
	c.last = name
	c.filenames = append(c.filenames, name)
	c.mu.Unlock()
	c.logger.Info("Frame saved", "filename", name)

	if c.hook != nil {
		c.hook(c.ctx, name, r.kind)
	}
	return nil
}
