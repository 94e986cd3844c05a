package output

import (
	"fmt"
	"sort"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/fatih/color"
)

// Summary counts the reports written by FormatReports.
type Summary struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Invalid  int `json:"invalid"`
	Warnings int `json:"warnings"`
}

// Summarize counts valid and invalid reports.
func Summarize(reports map[string]*codec.Report) Summary {
	var s Summary
	for _, r := range reports {
		s.Total++
		if r.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
		s.Warnings += len(r.Warnings)
	}
	return s
}

// FormatReports writes one line per checked file followed by its findings.
// In quiet mode, files without findings and the summary are left out.
func (f *Formatter) FormatReports(reports map[string]*codec.Report, quiet bool) error {
	summary := Summarize(reports)

	if f.format == FormatJSON {
		return f.writeJSON(struct {
			Results map[string]*codec.Report `json:"results"`
			Summary Summary                  `json:"summary"`
		}{reports, summary})
	}

	paths := make([]string, 0, len(reports))
	for path := range reports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		report := reports[path]
		if report.Valid && len(report.Warnings) == 0 && quiet {
			continue
		}

		label := path
		if report.Kind != "" {
			label += " (" + string(report.Kind) + ")"
		} else if report.Event != "" {
			label += " (" + report.Event + ")"
		}
		if report.Valid {
			fmt.Fprintln(f.out, f.paint(color.GreenString, "✓ %s", label))
		} else {
			fmt.Fprintln(f.out, f.paint(color.RedString, "✗ %s", label))
		}

		for _, e := range report.Errors {
			fmt.Fprintf(f.out, "  ERROR: %s: %s\n", e.Field, e.Message)
		}
		for _, w := range report.Warnings {
			fmt.Fprintln(f.out, f.paint(color.YellowString, "  WARN:  %s: %s", w.Field, w.Message))
		}
	}

	if !quiet {
		fmt.Fprintln(f.out)
		fmt.Fprintf(f.out, "Summary: %d valid, %d invalid, %d warnings\n", summary.Valid, summary.Invalid, summary.Warnings)
	}
	return nil
}
