// Package coordinator sequences the telescope subsystems and enforces the
// safety gate in front of every command that can move hardware.
package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/utils/clock"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/internal/pkg/metrics"
	"github.com/lesedi-io/lesedi/pkg/log"
)

const (
	SequenceStartup  = "startup"
	SequenceShutdown = "shutdown"
)

// Config holds the sequence timings and defaults.
type Config struct {
	// DomeOpenWait is the pause after opening the shutters, before the
	// covers are opened.
	DomeOpenWait time.Duration
	// CoversCloseWait is the pause after closing the covers.
	CoversCloseWait time.Duration
	// DomeCloseWait is the pause after closing the shutters.
	DomeCloseWait time.Duration
	// DefaultInstrument is selected at the end of startup.
	DefaultInstrument v1.Instrument
}

func DefaultConfig() Config {
	return Config{
		DomeOpenWait:      55 * time.Second,
		CoversCloseWait:   20 * time.Second,
		DomeCloseWait:     55 * time.Second,
		DefaultInstrument: v1.InstrumentSHOC,
	}
}

// abortTimeout bounds the emergency stop aborts, which outlive the request.
const abortTimeout = 5 * time.Second

// Hardware is the set of subsystem drivers the coordinator commands.
type Hardware struct {
	Dome         Dome
	Telescope    Telescope
	Focuser      Focuser
	RotatorLeft  Rotator
	RotatorRight Rotator
	Covers       Covers
}

type Option func(*Coordinator)

// WithClock replaces the clock used for sequence waits.
func WithClock(clk clock.Clock) Option {
	return func(c *Coordinator) { c.clock = clk }
}

// WithEventSink publishes coordinator events to sink.
func WithEventSink(sink EventSink) Option {
	return func(c *Coordinator) { c.sink = sink }
}

func WithLogger(logger log.Logger) Option {
	return func(c *Coordinator) { c.logger = logger }
}

// Coordinator owns the observatory state. Transitions happen under mu; the
// startup and shutdown sequences run on a single background worker.
type Coordinator struct {
	hw     Hardware
	cfg    Config
	clock  clock.Clock
	sink   EventSink
	logger log.Logger

	mu        sync.Mutex
	machine   *stateMachine
	stopped   bool
	interrupt chan struct{}
	lastErr   *v1.SequenceError
	// cancelRun abandons the running sequence, if any.
	cancelRun context.CancelCauseFunc

	worker errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

func New(hw Hardware, cfg Config, opts ...Option) *Coordinator {
	c := &Coordinator{
		hw:        hw,
		cfg:       cfg,
		clock:     clock.RealClock{},
		logger:    log.WithName("coordinator"),
		interrupt: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.worker.SetLimit(1)
	c.machine = newStateMachine(c.onEnter)

	metrics.CoordinatorState.Set(float64(v1.StateOff))
	metrics.EmergencyStop.Set(0)
	return c
}

// Start blocks until ctx is done, then cancels any running sequence and
// waits for the worker to exit.
func (c *Coordinator) Start(ctx context.Context) error {
	<-ctx.Done()
	c.Close()
	return nil
}

// Close cancels any running sequence and waits for the worker to exit.
func (c *Coordinator) Close() {
	c.cancel()
	_ = c.worker.Wait()
}

// State returns the current coordinator state.
func (c *Coordinator) State() v1.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine.state()
}

// Stopped reports whether the emergency stop interlock is set.
func (c *Coordinator) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// LastError returns the most recent sequence failure, if any.
func (c *Coordinator) LastError() *v1.SequenceError {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastErr == nil {
		return nil
	}
	e := *c.lastErr
	return &e
}

// Startup runs the startup sequence in the background. It is a no-op when
// the observatory is already READY and is refused while a sequence runs.
func (c *Coordinator) Startup(ctx context.Context) error {
	switch st := c.State(); st {
	case v1.StateReady:
		c.logger.Info("Startup requested while ready, nothing to do")
		return nil
	case v1.StateStartup, v1.StateShutdown:
		return c.observe("startup", v1.Busyf("Cannot start up while %s is in progress", st))
	}
	if err := c.guard(ctx); err != nil {
		return c.observe("startup", err)
	}
	return c.observe("startup", c.begin(SequenceStartup, EventStartup, EventStarted, EventRevertStartup, c.startupSteps()))
}

// Shutdown runs the shutdown sequence in the background. It is refused while
// a sequence runs.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	switch st := c.State(); st {
	case v1.StateStartup, v1.StateShutdown:
		return c.observe("shutdown", v1.Busyf("Cannot shut down while %s is in progress", st))
	}
	if err := c.guard(ctx); err != nil {
		return c.observe("shutdown", err)
	}
	return c.observe("shutdown", c.begin(SequenceShutdown, EventShutdown, EventFinished, EventRevertShutdown, c.shutdownSteps()))
}

// Stop sets the interlock, abandons any running sequence and halts the
// telescope, the dome and the secondary mirror. The aborts bypass the gate
// and every one is attempted, even when ctx is already done.
func (c *Coordinator) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.stopped {
		c.stopped = true
		close(c.interrupt)
	}
	if c.cancelRun != nil {
		c.cancelRun(errEmergencyStop)
		c.cancelRun = nil
	}
	switch c.machine.state() {
	case v1.StateStartup:
		c.fireLocked(EventRevertStartup)
	case v1.StateShutdown:
		c.fireLocked(EventRevertShutdown)
	}
	c.mu.Unlock()

	metrics.EmergencyStop.Set(1)
	c.logger.Warn("Emergency stop triggered")
	c.publish(v1.Event{Type: v1.EventEmergencyStop})

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), abortTimeout)
	defer cancel()

	var errs []error
	if err := c.hw.Telescope.Abort(ctx); err != nil {
		errs = append(errs, fmt.Errorf("telescope abort: %w", err))
	}
	if err := c.hw.Dome.EmergencyStop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("dome emergency stop: %w", err))
	}
	if err := c.hw.Focuser.SecondaryStop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("secondary mirror stop: %w", err))
	}
	return c.observe("stop", utilerrors.NewAggregate(errs))
}

// Reset clears the interlock.
func (c *Coordinator) Reset(_ context.Context) error {
	c.mu.Lock()
	if c.stopped {
		c.stopped = false
		c.interrupt = make(chan struct{})
	}
	c.mu.Unlock()

	metrics.EmergencyStop.Set(0)
	c.logger.Info("Emergency stop reset")
	c.publish(v1.Event{Type: v1.EventReset})
	return c.observe("reset", nil)
}

// guard is the safety gate: the interlock must be clear and the dome must
// not report a TCS lockout.
func (c *Coordinator) guard(ctx context.Context) error {
	if c.Stopped() {
		return v1.Safetyf("Emergency stop has been triggered. Please reset to continue.")
	}
	d, err := c.hw.Dome.Status(ctx)
	if err != nil {
		return fmt.Errorf("check dome lockout: %w", err)
	}
	if d.TCSLockedOut {
		return v1.Safetyf("Lockout engaged. Command not allowed.")
	}
	return nil
}

// gated runs fn behind the safety gate.
func (c *Coordinator) gated(ctx context.Context, command string, fn func(context.Context) error) error {
	err := c.guard(ctx)
	if err == nil {
		err = fn(ctx)
	}
	return c.observe(command, err)
}

func (c *Coordinator) observe(command string, err error) error {
	result := "success"
	if err != nil {
		result = "error"
		c.logger.Error(err, "Command failed", "command", command)
	} else {
		c.logger.Debug("Command succeeded", "command", command)
	}
	metrics.CommandsTotal.WithLabelValues(command, result).Inc()
	return err
}

func (c *Coordinator) onEnter(from, to v1.State, event string) {
	metrics.CoordinatorState.Set(float64(to))
	c.logger.Info("State changed", "from", from.String(), "to", to.String(), "event", event)
	c.publish(v1.Event{Type: v1.EventTransition, From: from.String(), To: to.String(), Message: event})
}

// fireLocked runs a transition event. Callers hold c.mu.
func (c *Coordinator) fireLocked(event string) error {
	if err := c.machine.fire(context.Background(), event); err != nil {
		c.logger.Debug("Transition refused", "event", event, "state", c.machine.Current(), "error", err)
		return err
	}
	return nil
}

func (c *Coordinator) publish(e v1.Event) {
	if c.sink == nil {
		return
	}
	if e.Time.IsZero() {
		e.Time = c.clock.Now()
	}
	c.sink.PublishEvent(e)
}
