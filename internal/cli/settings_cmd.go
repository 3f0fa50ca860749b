package cli

import (
	"fmt"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		newSettingsSetCmd(app),
		newSettingsToggleSoundCmd(app),
		newSettingsResetCmd(app),
		newSettingsEditCmd(app),
	)

	return cmd
}

func printSettings(cmd *cobra.Command, app *App) error {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(app.Settings.Get()))
	return nil
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var sound bool
	var volume float64
	var duration int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("sound") && !flags.Changed("volume") && !flags.Changed("default-duration") {
				return fmt.Errorf("nothing to change: pass --sound, --volume or --default-duration")
			}

			if flags.Changed("default-duration") {
				if err := app.Settings.SetDefaultDuration(duration); err != nil {
					return err
				}
			}
			if flags.Changed("sound") {
				app.Settings.SetSoundEnabled(sound)
			}
			if flags.Changed("volume") {
				app.Settings.SetVolume(volume)
			}
			return saveAndPrintSettings(cmd, app)
		},
	}

	cmd.Flags().BoolVar(&sound, "sound", true, "Enable the completion sound")
	cmd.Flags().Float64Var(&volume, "volume", 0.7, "Sound volume between 0 and 1 (clamped)")
	cmd.Flags().IntVar(&duration, "default-duration", 25, "Default session length in minutes")

	return cmd
}

func newSettingsToggleSoundCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-sound",
		Short: "Turn the completion sound on or off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Settings.ToggleSound()
			return saveAndPrintSettings(cmd, app)
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Settings.Reset()
			return saveAndPrintSettings(cmd, app)
		},
	}
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("settings edit needs a terminal; use 'focusflow settings set' instead")
			}
			values := newSettingsFormValues(app.Settings.Get())
			if err := settingsForm(values).Run(); err != nil {
				return err
			}
			next, err := values.apply(app.Settings.Get())
			if err != nil {
				return err
			}
			app.Settings.Replace(next)
			return saveAndPrintSettings(cmd, app)
		},
	}
}

func saveAndPrintSettings(cmd *cobra.Command, app *App) error {
	if err := app.Settings.Save(cmd.Context()); err != nil {
		return err
	}
	return printSettings(cmd, app)
}
