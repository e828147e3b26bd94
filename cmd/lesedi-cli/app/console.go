package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	genericapiserver "k8s.io/apiserver/pkg/server"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/client"
)

const consoleRefresh = 2 * time.Second

// consoleClient is the part of the Lesedi client the console drives.
type consoleClient interface {
	GetState(ctx context.Context) (*v1.Status, error)
	Startup(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Stop(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

var consoleMenu = []struct {
	key, label string
}{
	{"1", "Startup"},
	{"2", "Shutdown"},
	{"3", "Emergency stop"},
	{"4", "Reset"},
	{"5", "Status"},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type (
	statusMsg struct {
		status *v1.Status
		err    error
	}
	resultMsg struct {
		action string
		err    error
	}
	tickMsg time.Time
)

type consoleModel struct {
	ctx     context.Context
	client  consoleClient
	refresh time.Duration

	input   textinput.Model
	status  *v1.Status
	updated time.Time
	message string
	err     error
}

func newConsoleModel(ctx context.Context, c consoleClient) consoleModel {
	ti := textinput.New()
	ti.Prompt = "Lesedi >> "
	ti.CharLimit = 8
	ti.Focus()
	return consoleModel{ctx: ctx, client: c, refresh: consoleRefresh, input: ti}
}

func (m consoleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchStatus(), m.tick())
}

func (m consoleModel) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m consoleModel) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		s, err := m.client.GetState(m.ctx)
		return statusMsg{status: s, err: err}
	}
}

func (m consoleModel) run(action string, call func(context.Context, *emptypb.Empty, ...grpc.CallOption) (*emptypb.Empty, error)) tea.Cmd {
	return func() tea.Msg {
		_, err := call(m.ctx, &emptypb.Empty{})
		return resultMsg{action: action, err: err}
	}
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			choice := strings.ToLower(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			return m.choose(choice)
		}

	case tickMsg:
		return m, tea.Batch(m.fetchStatus(), m.tick())

	case statusMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status, m.err = msg.status, nil
		m.updated = time.Now()
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.message, m.err = "", fmt.Errorf("%s: %w", msg.action, msg.err)
		} else {
			m.message, m.err = msg.action+" accepted", nil
		}
		return m, m.fetchStatus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) choose(choice string) (tea.Model, tea.Cmd) {
	switch choice {
	case "":
		return m, nil
	case "1":
		return m, m.run("Startup", m.client.Startup)
	case "2":
		return m, m.run("Shutdown", m.client.Shutdown)
	case "3":
		return m, m.run("Emergency stop", m.client.Stop)
	case "4":
		return m, m.run("Reset", m.client.Reset)
	case "5", "s":
		return m, m.fetchStatus()
	case "q":
		return m, tea.Quit
	}
	m.message, m.err = "", fmt.Errorf("unknown option %q", choice)
	return m, nil
}

func (m consoleModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lesedi telescope control"))
	b.WriteString("\n\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	for _, e := range consoleMenu {
		fmt.Fprintf(&b, "  %s  %s\n", e.key, e.label)
	}
	b.WriteString(labelStyle.Render("  s  refresh   q  quit"))
	b.WriteString("\n\n")
	switch {
	case m.err != nil:
		b.WriteString(alertStyle.Render(m.err.Error()))
	case m.message != "":
		b.WriteString(okStyle.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func (m consoleModel) statusView() string {
	s := m.status
	if s == nil {
		return labelStyle.Render("Waiting for status...") + "\n"
	}
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), value)
	}
	state := s.State.String()
	if s.Stopped {
		state += " " + alertStyle.Render("EMERGENCY STOP")
	}
	row("State", state)
	if s.LastError != nil {
		row("Last error", alertStyle.Render(fmt.Sprintf("%s/%s: %s", s.LastError.Sequence, s.LastError.Step, s.LastError.Message)))
	}
	row("Telescope", fmt.Sprintf("alt %s az %s parked %s", deg(s.TelescopeAlt), deg(s.TelescopeAz), yesNo(s.TelescopeParked)))
	row("Dome", fmt.Sprintf("angle %s shutter open %s", deg(s.DomeAngle), yesNo(s.DomeShutterOpen)))
	row("Covers", coversState(s))
	row("Instrument", s.Instrument.String())
	row("Updated", m.updated.Format(time.TimeOnly))
	return b.String()
}

func (c *cli) consoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive operator console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := genericapiserver.SetupSignalContext()
			return c.withLesedi(ctx, func(ctx context.Context, l *client.Lesedi) error {
				p := tea.NewProgram(newConsoleModel(ctx, l), tea.WithContext(ctx))
				_, err := p.Run()
				return err
			})
		},
	}
}
