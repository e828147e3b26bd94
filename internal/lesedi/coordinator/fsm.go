package coordinator

import (
	"context"
	"errors"

	"github.com/looplab/fsm"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	fsmutil "github.com/lesedi-io/lesedi/internal/pkg/util/fsm"
)

const (
	// EventStartup begins the startup sequence.
	EventStartup = "startup"
	// EventStarted completes the startup sequence.
	EventStarted = "started"
	// EventRevertStartup abandons the startup sequence.
	EventRevertStartup = "revert_startup"
	// EventShutdown begins the shutdown sequence.
	EventShutdown = "shutdown"
	// EventFinished completes the shutdown sequence.
	EventFinished = "finished"
	// EventRevertShutdown abandons the shutdown sequence.
	EventRevertShutdown = "revert_shutdown"
)

var (
	stateOff      = v1.StateOff.String()
	stateStartup  = v1.StateStartup.String()
	stateReady    = v1.StateReady.String()
	stateShutdown = v1.StateShutdown.String()
)

type stateMachine struct {
	*fsm.FSM
	onEnter func(from, to v1.State, event string)
}

func newStateMachine(onEnter func(from, to v1.State, event string)) *stateMachine {
	m := &stateMachine{onEnter: onEnter}

	events := fsm.Events{
		{Name: EventStartup, Src: []string{stateOff}, Dst: stateStartup},
		{Name: EventStarted, Src: []string{stateStartup}, Dst: stateReady},
		{Name: EventRevertStartup, Src: []string{stateStartup}, Dst: stateOff},

		{Name: EventShutdown, Src: []string{stateOff, stateReady}, Dst: stateShutdown},
		{Name: EventFinished, Src: []string{stateShutdown}, Dst: stateOff},
		{Name: EventRevertShutdown, Src: []string{stateShutdown}, Dst: stateReady},
	}

	callbacks := fsm.Callbacks{
		"enter_state": fsmutil.WrapEvent(m.actionEnterState),
	}

	m.FSM = fsm.NewFSM(stateOff, events, callbacks)
	return m
}

// state returns the current state. It must not be called from a callback.
func (m *stateMachine) state() v1.State {
	return parseState(m.Current())
}

// fire runs event. Same-state and canceled transitions are not errors.
func (m *stateMachine) fire(ctx context.Context, event string) error {
	err := m.Event(ctx, event)
	if isFsmRealError(err) {
		return err
	}
	return nil
}

func (m *stateMachine) actionEnterState(_ context.Context, e *fsm.Event) error {
	if m.onEnter != nil {
		m.onEnter(parseState(e.Src), parseState(e.Dst), e.Event)
	}
	return nil
}

func parseState(s string) v1.State {
	var st v1.State
	_ = st.UnmarshalText([]byte(s))
	return st
}

func isFsmRealError(err error) bool {
	if err == nil {
		return false
	}

	var noTransition fsm.NoTransitionError
	var canceled fsm.CanceledError
	if errors.As(err, &noTransition) || errors.As(err, &canceled) {
		return false
	}
	return true
}
