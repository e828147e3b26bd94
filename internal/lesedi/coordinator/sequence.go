package coordinator

import (
	"context"
	"errors"
	"time"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/pkg/metrics"
)

type step struct {
	name string
	run  func(ctx context.Context) error
}

func (c *Coordinator) startupSteps() []step {
	return []step{
		{"dome_remote_enable", c.DomeRemoteEnable},
		{"dome_lights_off", c.DomeLightsOff},
		{"slew_lights_on", c.SlewLightsOn},
		{"open_dome", c.OpenDome},
		{"wait_dome_open", c.waitFor(c.cfg.DomeOpenWait)},
		{"open_covers", c.OpenCovers},
		{"unpark", c.Unpark},
		{"dome_follow_telescope_start", c.DomeFollowTelescopeStart},
		{"tertiary_mirror_auto_on", c.TertiaryMirrorAutoOn},
		{"select_instrument", func(ctx context.Context) error {
			return c.SelectInstrument(ctx, c.cfg.DefaultInstrument)
		}},
		{"slew_lights_off", c.SlewLightsOff},
	}
}

func (c *Coordinator) shutdownSteps() []step {
	return []step{
		{"dome_remote_enable", c.DomeRemoteEnable},
		{"dome_lights_off", c.DomeLightsOff},
		{"slew_lights_on", c.SlewLightsOn},
		{"close_covers", c.CloseCovers},
		{"wait_covers_closed", c.waitFor(c.cfg.CoversCloseWait)},
		{"close_dome", c.CloseDome},
		{"wait_dome_closed", c.waitFor(c.cfg.DomeCloseWait)},
		{"dome_follow_telescope_stop", c.DomeFollowTelescopeStop},
		{"park_dome", c.ParkDome},
		{"park", c.Park},
		{"park_rotator_left", c.parkRotator("park_rotator_left", c.hw.RotatorLeft)},
		{"park_rotator_right", c.parkRotator("park_rotator_right", c.hw.RotatorRight)},
		{"slew_lights_off", c.SlewLightsOff},
		{"dome_lights_off", c.DomeLightsOff},
	}
}

// begin moves the machine to the sequence's running state and hands the
// steps to the worker.
func (c *Coordinator) begin(sequence, start, success, revert string, steps []step) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.machine.state()
	if err := c.fireLocked(start); err != nil {
		return v1.Busyf("Cannot %s from %s", sequence, from)
	}
	ctx, cancel := context.WithCancelCause(c.ctx)
	if !c.worker.TryGo(func() error {
		defer cancel(nil)
		c.run(ctx, sequence, steps, success, revert)
		return nil
	}) {
		cancel(nil)
		_ = c.fireLocked(revert)
		return v1.Busyf("Cannot %s while the previous sequence is still winding down", sequence)
	}
	c.cancelRun = cancel
	return nil
}

// run executes steps in order. The first failing step aborts the sequence,
// reverts the state and is recorded as the last error. Once ctx is cancelled
// by an emergency stop no further step is issued, even after a reset.
func (c *Coordinator) run(ctx context.Context, sequence string, steps []step, success, revert string) {
	start := c.clock.Now()
	logger := c.logger.WithValues("sequence", sequence)
	logger.Info("Sequence started")

	for _, s := range steps {
		if stopped(ctx) {
			c.abandon(sequence, s.name, nil, start)
			return
		}
		c.publish(v1.Event{Type: v1.EventStep, Sequence: sequence, Step: s.name})
		err := s.run(ctx)
		if stopped(ctx) {
			c.abandon(sequence, s.name, err, start)
			return
		}
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		if err != nil {
			c.fail(sequence, s.name, err, revert)
			metrics.SequenceDuration.WithLabelValues(sequence, "failure").Observe(c.clock.Since(start).Seconds())
			return
		}
	}

	c.mu.Lock()
	err := context.Cause(ctx)
	if !stopped(ctx) {
		err = c.fireLocked(success)
		c.cancelRun = nil
	}
	c.mu.Unlock()
	if err != nil {
		logger.Info("Sequence finished after the state was reverted", "state", c.State().String())
		metrics.SequenceDuration.WithLabelValues(sequence, "reverted").Observe(c.clock.Since(start).Seconds())
		return
	}
	logger.Info("Sequence completed", "duration", c.clock.Since(start))
	metrics.SequenceDuration.WithLabelValues(sequence, "success").Observe(c.clock.Since(start).Seconds())
}

// errEmergencyStop is the cancellation cause Stop gives a running sequence.
var errEmergencyStop = errors.New("emergency stop")

func stopped(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), errEmergencyStop)
}

// abandon records a sequence cut short by an emergency stop. Stop has
// already reverted the state.
func (c *Coordinator) abandon(sequence, step string, err error, start time.Time) {
	msg := "Sequence abandoned by emergency stop"
	if err != nil && !errors.Is(err, context.Canceled) {
		msg = err.Error()
	}
	c.record(sequence, step, msg)
	metrics.SequenceDuration.WithLabelValues(sequence, "stopped").Observe(c.clock.Since(start).Seconds())
}

func (c *Coordinator) fail(sequence, step string, err error, revert string) {
	c.mu.Lock()
	_ = c.fireLocked(revert)
	c.cancelRun = nil
	c.mu.Unlock()

	c.logger.Error(err, "Sequence failed", "sequence", sequence, "step", step)
	c.record(sequence, step, err.Error())
}

// record keeps the failure as the last error and publishes it.
func (c *Coordinator) record(sequence, step, msg string) {
	e := &v1.SequenceError{
		Sequence: sequence,
		Step:     step,
		Message:  msg,
		Time:     c.clock.Now(),
	}
	c.mu.Lock()
	c.lastErr = e
	c.mu.Unlock()

	c.publish(v1.Event{
		Type:     v1.EventSequenceFailed,
		Sequence: sequence,
		Step:     step,
		Message:  msg,
		Time:     e.Time,
	})
}

// waitFor returns a step that pauses for d. The pause ends early with a
// safety error when the interlock is set.
func (c *Coordinator) waitFor(d time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		c.mu.Lock()
		stopped, interrupt := c.stopped, c.interrupt
		c.mu.Unlock()
		if stopped {
			return v1.Safetyf("Emergency stop has been triggered. Please reset to continue.")
		}

		timer := c.clock.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C():
			return nil
		case <-interrupt:
			return v1.Safetyf("Emergency stop triggered during wait")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Coordinator) parkRotator(command string, r Rotator) func(context.Context) error {
	return func(ctx context.Context) error {
		return c.gated(ctx, command, func(ctx context.Context) error {
			if err := r.TrackingOff(ctx); err != nil {
				return err
			}
			return r.Park(ctx)
		})
	}
}
