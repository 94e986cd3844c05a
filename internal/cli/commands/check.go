package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check recorded messages in files or directories",
		Long: `Check decodes every recorded message and reports the first error in each.
A file holds edit.getRefactoring params, a request frame, a request paired with
its result or response, or a flutter.outline notification. Directories are
searched for *.json files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := a.check(cmd.ErrOrStderr(), args, quiet)
			if err != nil {
				return err
			}
			if code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only output files with findings")
	return cmd
}

func (a *app) check(stderr io.Writer, paths []string, quiet bool) (int, error) {
	strict := a.settings.Strict
	exitCode := 0
	allReports := make(map[string]*codec.Report)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			a.log.Errorf("%s: %v", path, err)
			exitCode = 1
			continue
		}

		if info.IsDir() {
			reports, err := codec.CheckDirectory(path, strict)
			if err != nil {
				fmt.Fprintf(stderr, "Error checking directory %s: %v\n", path, err)
				exitCode = 1
				continue
			}
			for name, report := range reports {
				allReports[filepath.Join(path, name)] = report
			}
		} else {
			report, err := codec.CheckFile(path, strict)
			if err != nil {
				fmt.Fprintf(stderr, "Error checking file %s: %v\n", path, err)
				exitCode = 1
				continue
			}
			allReports[path] = report
		}
	}

	for path, report := range allReports {
		for _, e := range report.Errors {
			a.log.Errorf("%s: %s", path, e)
		}
		for _, w := range report.Warnings {
			a.log.Warnf("%s: %s", path, w)
		}
		if !report.Valid {
			exitCode = 1
		}
		if strict && len(report.Warnings) > 0 {
			exitCode = 1
		}
	}
	a.log.Infof("checked %d files", len(allReports))

	if err := a.format.FormatReports(allReports, quiet); err != nil {
		return 1, err
	}
	return exitCode, nil
}
