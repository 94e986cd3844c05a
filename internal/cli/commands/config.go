package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the settings file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.format.JSON() {
				return a.format.Value(struct {
					Path     string `json:"path"`
					LogFile  string `json:"logFile,omitempty"`
					Settings any    `json:"settings"`
				}{a.store.Path(), a.log.FilePath(), a.settings})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config:  %s\n", a.store.Path())
			fmt.Fprintf(out, "  Strict:  %v\n", a.settings.Strict)
			fmt.Fprintf(out, "  Format:  %s\n", a.settings.Format)
			fmt.Fprintf(out, "  Color:   %v\n", a.settings.Color)
			fmt.Fprintf(out, "  Log dir: %s\n", a.settings.LogDir)
			if path := a.log.FilePath(); path != "" {
				fmt.Fprintf(out, "  Log:     %s\n", path)
			}
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.store.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists; use --force to overwrite", path)
			}
			if err := a.store.Save(a.settings); err != nil {
				return err
			}
			a.log.Infof("wrote %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}
