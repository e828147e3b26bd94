package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lesedi-io/lesedi/internal/camera"
	"github.com/lesedi-io/lesedi/internal/pkg/metrics"
	"github.com/lesedi-io/lesedi/internal/pkg/store"
	"github.com/lesedi-io/lesedi/pkg/log"
)

// Pipeline reduces frames held in a store with the calibration set of the
// requested mode.
type Pipeline struct {
	store  store.Store
	sets   map[Mode]*Calibration
	logger log.Logger
}

// New loads the calibration frames of every configured mode from st.
func New(ctx context.Context, st store.Store, opts *Options) (*Pipeline, error) {
	p := &Pipeline{
		store:  st,
		sets:   make(map[Mode]*Calibration),
		logger: log.WithName("pipeline"),
	}
	for mode, o := range opts.modes() {
		if !o.configured() {
			continue
		}
		cal, err := loadCalibration(ctx, st, o)
		if err != nil {
			return nil, fmt.Errorf("load %s calibration: %w", mode, err)
		}
		p.sets[mode] = cal
		p.logger.Info("Loaded calibration set", "mode", mode, "bias", o.Bias, "dark", o.Dark, "flat", o.Flat)
	}
	return p, nil
}

func loadCalibration(ctx context.Context, st store.Store, o *CalibrationOptions) (*Calibration, error) {
	cal := &Calibration{BiasName: o.Bias, DarkName: o.Dark, FlatName: o.Flat}
	var err error
	if cal.Bias, err = st.Load(ctx, o.Bias); err != nil {
		return nil, err
	}
	if cal.Dark, err = st.Load(ctx, o.Dark); err != nil {
		return nil, err
	}
	if cal.Flat, err = st.Load(ctx, o.Flat); err != nil {
		return nil, err
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return cal, nil
}

// Modes returns the modes with a calibration set.
func (p *Pipeline) Modes() []Mode {
	modes := make([]Mode, 0, len(p.sets))
	for m := range p.sets {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Calibration returns the calibration set of mode.
func (p *Pipeline) Calibration(mode Mode) (*Calibration, error) {
	cal, ok := p.sets[mode]
	if !ok {
		return nil, fmt.Errorf("no calibration set for %s mode", mode)
	}
	return cal, nil
}

// Reduce loads the raw frame name, reduces it and saves the result as out.
func (p *Pipeline) Reduce(ctx context.Context, mode Mode, name, out string) (err error) {
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.ReductionsTotal.WithLabelValues(string(mode), result).Inc()
	}()

	cal, err := p.Calibration(mode)
	if err != nil {
		return err
	}
	raw, err := p.store.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	reduced, err := Reduce(raw, cal)
	if err != nil {
		return fmt.Errorf("reduce %s: %w", name, err)
	}
	if err := p.store.Save(ctx, out, reduced); err != nil {
		return err
	}
	p.logger.Info("Reduced frame", "mode", mode, "raw", name, "reduced", out)
	return nil
}

// ReduceRaw reduces a raw camera frame into its pipeline output name and
// returns that name.
func (p *Pipeline) ReduceRaw(ctx context.Context, mode Mode, name string) (string, error) {
	out, err := camera.ReducedName(name)
	if err != nil {
		return "", err
	}
	return out, p.Reduce(ctx, mode, name, out)
}

// FrameHook returns a camera frame hook that reduces every saved exposure.
// Bias and dark frames are left alone. Failures are logged.
func (p *Pipeline) FrameHook(mode Mode) camera.FrameHook {
	return func(ctx context.Context, name string, kind camera.FrameType) {
		if kind != camera.FrameExposure {
			return
		}
		if _, err := p.ReduceRaw(ctx, mode, name); err != nil && !errors.Is(err, context.Canceled) {
			p.logger.Error(err, "Failed to reduce frame", "frame", name)
		}
	}
}
