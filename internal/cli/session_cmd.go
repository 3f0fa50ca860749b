package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/stats"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var minutes int
	var tags []string

	cmd := &cobra.Command{
		Use:   "start [task]",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("duration") {
				minutes = app.Settings.Get().DefaultDuration
			}

			state, err := app.Sessions.StartSession(ctx, minutes, strings.Join(args, " "), tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s focus session%s\n",
				stats.FormatMinutes(state.PlannedMinutes), taskSuffix(state.Task))
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "duration", "d", domain.DefaultFocusDuration, "Session length in minutes (defaults to the settings value)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag for the session (repeatable or comma-separated)")

	return cmd
}

func newPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Sessions.PauseSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paused with %s remaining\n", formatter.Countdown(state.RemainingSeconds))
			return nil
		},
	}
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Sessions.ResumeSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resumed, %s remaining\n", formatter.Countdown(state.RemainingSeconds))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the current session and record it",
		Long: "Stop the current session and record it. A session whose countdown " +
			"has already reached zero is recorded as completed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !completed {
				current, err := app.Sessions.CurrentTimer(ctx)
				if err != nil {
					return err
				}
				completed = current.Status == domain.TimerRunning && current.RemainingSeconds == 0
			}

			s, err := app.Sessions.StopSession(ctx, completed)
			if err != nil {
				return err
			}
			verb := "Stopped"
			if s.Completed {
				verb = "Completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s: %s recorded (%s)\n",
				verb, taskSuffix(s.Task), stats.FormatMinutes(s.Duration), formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "Record the session as completed even if stopped early")

	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded focus sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHistory(cmd, app, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N sessions (0 = all)")

	return cmd
}

func printHistory(cmd *cobra.Command, app *App, limit int) error {
	sessions, err := app.Sessions.GetSessions(cmd.Context(), limit)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(sessions, app.clock().Now()))
	return nil
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <session-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a recorded session (full ID or unique prefix)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.DeleteSession(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Sessions.ExportData(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), data)
				return nil
			}
			if err := os.WriteFile(out, []byte(data), 0644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported sessions to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import sessions from a JSON export (existing IDs are replaced)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}
			n, err := app.Sessions.ImportData(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions\n", n)
			return nil
		},
	}
}

func taskSuffix(task string) string {
	if task == "" {
		return ""
	}
	return fmt.Sprintf(" %q", task)
}
