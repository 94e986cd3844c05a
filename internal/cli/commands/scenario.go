package commands

import (
	"fmt"
	"os"

	"github.com/asclient/asclient/internal/scenario"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newScenarioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario <file-or-dir>...",
		Short: "Run codec conformance scenarios written in YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenarios []*scenario.Scenario
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return err
				}
				if info.IsDir() {
					loaded, err := scenario.LoadDirectory(path)
					if err != nil {
						return err
					}
					scenarios = append(scenarios, loaded...)
					continue
				}
				s, err := scenario.LoadScenario(path)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, s)
			}

			var results []scenario.Result
			failed := 0
			for _, s := range scenarios {
				a.log.Infof("running scenario %s", s.Name)
				for _, r := range scenario.Run(s) {
					if !r.Passed {
						failed++
						a.log.Errorf("%s / %s: %s", r.Scenario, r.Step, r.Message)
					}
					results = append(results, r)
				}
			}

			if a.format.JSON() {
				if err := a.format.Value(results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, r := range results {
					if r.Passed {
						fmt.Fprintf(out, "✓ %s / %s\n", r.Scenario, r.Step)
						continue
					}
					line := fmt.Sprintf("✗ %s / %s: %s", r.Scenario, r.Step, r.Message)
					if a.settings.Color {
						line = color.RedString("%s", line)
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintf(out, "\nSummary: %d passed, %d failed\n", len(results)-failed, failed)
			}

			if failed > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}
