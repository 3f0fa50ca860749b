package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Config.YAML()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if app.ConfigPath != "" {
				fmt.Fprintf(out, "# %s\n", app.ConfigPath)
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigPath == "" {
				return fmt.Errorf("no config file location known")
			}
			if !force {
				if _, err := os.Stat(app.ConfigPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", app.ConfigPath)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking config file: %w", err)
				}
			}
			if err := app.Config.Save(app.ConfigPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
