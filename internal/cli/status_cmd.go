package cli

import (
	"fmt"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd, app)
		},
	}
}

func printStatus(cmd *cobra.Command, app *App) error {
	state, err := app.Sessions.CurrentTimer(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatTimer(state, app.clock().Now()))
	if state.Status == domain.TimerRunning && state.RemainingSeconds == 0 {
		fmt.Fprintln(out, formatter.StyleSuccess.Render("Time is up.")+" Record it with: focusflow stop")
	}
	return nil
}

func newStatisticsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "statistics",
		Aliases: []string{"stats"},
		Short:   "Show focus totals, a daily chart and the tag breakdown",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatistics(cmd, app, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Number of days in the daily chart")

	return cmd
}

func printStatistics(cmd *cobra.Command, app *App, days int) error {
	ov, err := app.Stats.Overview(cmd.Context(), days)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatistics(ov.Summary, ov.Daily, ov.Tags))
	return nil
}
