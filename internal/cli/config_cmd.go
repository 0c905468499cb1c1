package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/artscollective/grantbook/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings and where they come from",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Settings
			s.ApplyDefaults()

			source := a.SettingsPath
			if _, err := os.Stat(a.SettingsPath); err != nil {
				source += " (not found, using defaults)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("# "+source))

			dbPath, err := config.DBPath(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("# database: "+dbPath))
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(s)
		},
	}

	cmd.AddCommand(newConfigInitCmd(a))
	return cmd
}

func newConfigInitCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with every default spelled out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.SettingsPath); err == nil && !force {
				return fmt.Errorf("settings file %s already exists (use --force to overwrite)", a.SettingsPath)
			}
			s := a.Settings
			s.ApplyDefaults()
			if err := config.Save(a.SettingsPath, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.SettingsPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
