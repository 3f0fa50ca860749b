package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/service"
	"github.com/alexanderramin/focusflow/internal/settings"
	"github.com/alexanderramin/focusflow/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to the services used by CLI commands.
type App struct {
	Sessions service.SessionService
	Stats    service.StatsService
	Settings *settings.Store
	Clock    timer.Clock

	// Config is the effective configuration, written by "config init" to
	// ConfigPath.
	Config     config.Config
	ConfigPath string

	// IsInteractive reports whether stdin/stdout are a terminal. Nil means no.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Nil uses tea.NewProgram.
	RunProgram func(ctx context.Context, m tea.Model, cmd *cobra.Command) (tea.Model, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) clock() timer.Clock {
	if a.Clock == nil {
		return timer.SystemClock{}
	}
	return a.Clock
}

func (a *App) runProgram(ctx context.Context, m tea.Model, cmd *cobra.Command) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(ctx, m, cmd)
	}
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	return p.Run()
}

// NewRootCmd creates the top-level "focusflow" command and registers all
// subcommands against the provided App. Running it bare opens the timer view.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "focusflow",
		Short:         "Pomodoro-style focus timer with history and statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimerView(cmd, app)
		},
	}
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	root.AddCommand(
		newTimerCmd(app),
		newHistoryCmd(app),
		newStatisticsCmd(app),
		newSettingsCmd(app),
		newOpenCmd(app),
		newStartCmd(app),
		newPauseCmd(app),
		newResumeCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newConfigCmd(app),
	)

	return root
}

// normalizeFlagName accepts --default_duration for --default-duration.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
