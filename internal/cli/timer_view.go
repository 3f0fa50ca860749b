package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const tickInterval = time.Second

type timerKeyMap struct {
	Pause  key.Binding
	Resume key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Resume: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
		Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop early")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Resume, k.Stop, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type (
	tickMsg  time.Time
	stateMsg struct {
		state *domain.TimerState
		err   error
	}
	stoppedMsg struct {
		session *domain.FocusSession
		err     error
	}
)

// timerModel is the live countdown. The store is re-read on every tick so
// pause, resume and stop from another terminal show up here. Quitting leaves
// the session running in the store; expiry records it as completed.
type timerModel struct {
	ctx      context.Context
	app      *App
	keys     timerKeyMap
	help     help.Model
	bar      progress.Model
	state    *domain.TimerState
	stopped  *domain.FocusSession
	err      error
	stopping bool
	quitting bool
}

func newTimerModel(ctx context.Context, app *App) *timerModel {
	return &timerModel{
		ctx:   ctx,
		app:   app,
		keys:  defaultTimerKeys(),
		help:  help.New(),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		state: domain.IdleTimer(),
	}
}

func (m *timerModel) Init() tea.Cmd {
	return tea.Batch(m.loadState, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *timerModel) loadState() tea.Msg {
	state, err := m.app.Sessions.CurrentTimer(m.ctx)
	return stateMsg{state: state, err: err}
}

func (m *timerModel) transition(fn func(ctx context.Context) (*domain.TimerState, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := fn(m.ctx)
		return stateMsg{state: state, err: err}
	}
}

func (m *timerModel) stop(completed bool) tea.Cmd {
	m.stopping = true
	return func() tea.Msg {
		s, err := m.app.Sessions.StopSession(m.ctx, completed)
		return stoppedMsg{session: s, err: err}
	}
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 10 {
			m.bar.Width = w
		}
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.loadState, tick())

	case stateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.state != nil {
			m.state = msg.state
		}
		if m.state.Status == domain.TimerRunning && m.state.RemainingSeconds == 0 && !m.stopping {
			return m, m.stop(true)
		}
		return m, nil

	case stoppedMsg:
		m.stopping = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stopped = msg.session
		m.state = domain.IdleTimer()
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			return m, m.transition(m.app.Sessions.PauseSession)
		case key.Matches(msg, m.keys.Resume):
			return m, m.transition(m.app.Sessions.ResumeSession)
		case key.Matches(msg, m.keys.Stop):
			if !m.state.IsActive() || m.stopping {
				return m, nil
			}
			return m, m.stop(false)
		}
	}
	return m, nil
}

func (m *timerModel) View() string {
	var b strings.Builder

	if m.stopped != nil {
		verb := "Stopped early"
		if m.stopped.Completed {
			verb = "Session complete"
		}
		b.WriteString(formatter.StyleSuccess.Render(verb) + ": " + stats.FormatMinutes(m.stopped.Duration) + " recorded\n")
		return b.String()
	}

	b.WriteString(formatter.FormatTimer(m.state, m.app.clock().Now()))
	b.WriteString("\n")
	if m.state.IsActive() {
		b.WriteString(m.bar.ViewAs(m.state.ProgressAt(m.app.clock().Now())))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleError.Render("Error: "+m.err.Error()) + "\n")
	}
	if !m.quitting {
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}
	return b.String()
}

func newTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Show the live countdown (prints once when not on a terminal)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimerView(cmd, app)
		},
	}
}

func runTimerView(cmd *cobra.Command, app *App) error {
	if !app.interactive() {
		return printStatus(cmd, app)
	}

	final, err := app.runProgram(cmd.Context(), newTimerModel(cmd.Context(), app), cmd)
	if err != nil {
		return fmt.Errorf("running timer view: %w", err)
	}
	if m, ok := final.(*timerModel); ok && m.stopped != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s (%s)\n", stats.FormatMinutes(m.stopped.Duration), formatter.TruncID(m.stopped.ID))
	}
	return nil
}
