package app

import (
	"bytes"
	"context"
	"errors"
	"net"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	middleware "github.com/lesedi-io/lesedi/internal/pkg/middleware/grpc"
)

type fakeConsoleClient struct {
	calls  []string
	status *v1.Status
	err    error
}

func (f *fakeConsoleClient) GetState(context.Context) (*v1.Status, error) {
	f.calls = append(f.calls, "status")
	return f.status, nil
}

func (f *fakeConsoleClient) call(name string) (*emptypb.Empty, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeConsoleClient) Startup(context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error) {
	return f.call("startup")
}

func (f *fakeConsoleClient) Shutdown(context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error) {
	return f.call("shutdown")
}

func (f *fakeConsoleClient) Stop(context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error) {
	return f.call("stop")
}

func (f *fakeConsoleClient) Reset(context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error) {
	return f.call("reset")
}

// enter types s at the prompt and presses enter.
func enter(t *testing.T, m consoleModel, s string) (consoleModel, tea.Cmd) {
	t.Helper()
	var model tea.Model = m
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(consoleModel), cmd
}

func TestConsoleMenu(t *testing.T) {
	fake := &fakeConsoleClient{status: &v1.Status{State: v1.StateReady}}
	m := newConsoleModel(context.Background(), fake)
	assert.Contains(t, m.View(), "Lesedi >>")
	assert.Contains(t, m.View(), "Emergency stop")

	tests := []struct {
		key  string
		call string
	}{
		{"1", "startup"},
		{"2", "shutdown"},
		{"3", "stop"},
		{"4", "reset"},
		{"5", "status"},
		{"s", "status"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			fake.calls = nil
			next, cmd := enter(t, m, tt.key)
			require.NotNil(t, cmd)
			msg := cmd()
			assert.Equal(t, []string{tt.call}, fake.calls)

			model, _ := next.Update(msg)
			view := model.(consoleModel).View()
			if tt.call != "status" {
				assert.Contains(t, view, "accepted")
			} else {
				assert.Contains(t, view, "READY")
			}
		})
	}
}

func TestConsoleQuitAndErrors(t *testing.T) {
	fake := &fakeConsoleClient{err: v1.Safetyf("Lockout engaged. Command not allowed.")}
	m := newConsoleModel(context.Background(), fake)

	_, cmd := enter(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	next, cmd := enter(t, m, "1")
	model, _ := next.Update(cmd())
	assert.Contains(t, model.(consoleModel).View(), "Lockout engaged")

	next, cmd = enter(t, m, "9")
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), `unknown option "9"`)
}

func TestStatusTable(t *testing.T) {
	s := &v1.Status{
		State:           v1.StateReady,
		TelescopeAlt:    45,
		DomeShutterOpen: true,
		CoversOpen:      true,
		Instrument:      v1.InstrumentSHOC,
		LastError:       &v1.SequenceError{Sequence: "startup", Step: "open_dome", Message: "timeout"},
		Rotators: map[v1.Instrument]v1.RotatorStatus{
			v1.InstrumentSHOC:   {Angle: 90, Tracking: true},
			v1.InstrumentWINCAM: {Angle: 10},
		},
	}
	out := statusTable(s).String()
	assert.Contains(t, out, "READY")
	assert.Contains(t, out, "startup/open_dome: timeout")
	assert.Contains(t, out, "45.0000")
	assert.Contains(t, out, "open")
	assert.Less(t, strings.Index(out, "ROTATOR WINCAM"), strings.Index(out, "ROTATOR SHOC"))
}

func TestFormatEvent(t *testing.T) {
	ts := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	clock := ts.Local().Format(time.TimeOnly)

	assert.Equal(t, clock+"  transition  OFF -> STARTUP",
		formatEvent(v1.Event{Time: ts, Type: v1.EventTransition, From: "OFF", To: "STARTUP", Message: "startup"}))
	assert.Equal(t, clock+"  step  startup: open_dome",
		formatEvent(v1.Event{Time: ts, Type: v1.EventStep, Sequence: "startup", Step: "open_dome"}))
	assert.Equal(t, clock+"  sequence_failed  shutdown failed at park: no reply",
		formatEvent(v1.Event{Time: ts, Type: v1.EventSequenceFailed, Sequence: "shutdown", Step: "park", Message: "no reply"}))
	assert.Equal(t, clock+"  emergency_stop", formatEvent(v1.Event{Time: ts, Type: v1.EventEmergencyStop}))
}

func TestArgumentParsing(t *testing.T) {
	v, err := parseFloats([]string{"45.5", "-3"}, "alt", "az")
	require.NoError(t, err)
	assert.Equal(t, []float64{45.5, -3}, v)
	_, err = parseFloats([]string{"x"}, "alt")
	assert.EqualError(t, err, `alt: "x" is not a number`)

	n, err := parseInts([]string{"2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3}, n)
	_, err = parseInts([]string{"1.5"})
	assert.Error(t, err)

	card, err := parseCard("object", "M42", "target", "string")
	require.NoError(t, err)
	assert.Equal(t, "OBJECT", card.Keyword)
	_, err = parseCard("RUN", "x", "", "integer")
	assert.Error(t, err)
	_, err = parseCard("RUN", "1", "", "complex")
	assert.Error(t, err)
}

func TestEveryRPCHasACommand(t *testing.T) {
	c := &cli{}
	n := reflect.TypeOf((*v1.LesediServiceClient)(nil)).Elem().NumMethod()
	// GetStatus is served by the status command.
	assert.Equal(t, n, len(c.lesediCommands())+1)
}

type fakeServer struct {
	v1.LesediServiceServer
	startups atomic.Int32
}

func (f *fakeServer) Startup(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	f.startups.Add(1)
	return &emptypb.Empty{}, nil
}

func (f *fakeServer) GotoAltAz(context.Context, *v1.GotoAltAzRequest) (*emptypb.Empty, error) {
	return nil, v1.Domainf("Telescope cannot be slewed while parked.")
}

func (f *fakeServer) GetStatus(context.Context, *emptypb.Empty) (*v1.Status, error) {
	return &v1.Status{State: v1.StateOff, TelescopeParked: true}, nil
}

func runCLI(t *testing.T, port int, args ...string) (string, error) {
	t.Helper()
	a := NewApp()
	var out bytes.Buffer
	cmd := a.Command()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--lesedi.port", strconv.Itoa(port)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsAgainstServer(t *testing.T) {
	fake := &fakeServer{}
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := grpc.NewServer(grpc.UnaryInterceptor(middleware.UnaryErrorInterceptor))
	v1.RegisterLesediServiceServer(s, fake)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)
	port := lis.Addr().(*net.TCPAddr).Port

	out, err := runCLI(t, port, "startup")
	require.NoError(t, err)
	assert.Equal(t, "startup: ok\n", out)
	assert.Equal(t, int32(1), fake.startups.Load())

	out, err = runCLI(t, port, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "OFF")

	_, err = runCLI(t, port, "goto-altaz", "45", "10")
	assert.True(t, errors.Is(err, v1.ErrDomain))

	_, err = runCLI(t, port, "goto-altaz", "95", "10")
	assert.ErrorIs(t, err, v1.ErrInvalidArgument)
	assert.Equal(t, int32(1), fake.startups.Load())
}
