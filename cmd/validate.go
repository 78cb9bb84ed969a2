package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/porkbrain/harriet-vision/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report_path>",
	Short: "Validate a harriet-vision report and check referenced crops exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	reportPath := args[0]

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	baseDir := filepath.Dir(reportPath)
	errs := validateReport(&r, baseDir)

	if len(errs) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d sources, %d highlights — all crops present\n", r.Stats.TotalSources, r.Stats.TotalHighlights)
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateReport(r *report.Report, baseDir string) []string {
	var errs []string

	if r.Version != report.SupportedReportVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	for _, entry := range r.Entries {
		if entry.Error != "" {
			continue // failed sources have no crops to check
		}

		seenPaths := map[string]bool{}
		for i, h := range entry.Highlights {
			if h.Width <= 0 || h.Height <= 0 {
				errs = append(errs, fmt.Sprintf("source %q highlight[%d]: invalid dimensions %dx%d",
					entry.Source, i, h.Width, h.Height))
			}
			if h.Hash == "" {
				errs = append(errs, fmt.Sprintf("source %q highlight[%d]: missing hash", entry.Source, i))
			}
			if h.Path == "" {
				errs = append(errs, fmt.Sprintf("source %q highlight[%d]: missing path", entry.Source, i))
				continue
			}
			if seenPaths[h.Path] {
				errs = append(errs, fmt.Sprintf("source %q highlight[%d]: duplicate path %q", entry.Source, i, h.Path))
			}
			seenPaths[h.Path] = true

			fullPath := filepath.Join(baseDir, h.Path)
			info, err := os.Stat(fullPath)
			if err != nil {
				errs = append(errs, fmt.Sprintf("source %q highlight[%d]: crop not found: %s", entry.Source, i, h.Path))
			} else if h.Size > 0 && info.Size() != h.Size {
				errs = append(errs, fmt.Sprintf("source %q highlight[%d]: size mismatch: report=%d, disk=%d",
					entry.Source, i, h.Size, info.Size()))
			}
		}
	}

	totalHighlights := 0
	totalFailures := 0
	for _, e := range r.Entries {
		if e.Error != "" {
			totalFailures++
			continue
		}
		totalHighlights += len(e.Highlights)
	}
	if r.Stats.TotalSources != len(r.Entries) {
		errs = append(errs, fmt.Sprintf("stats.total_sources mismatch: %d != %d", r.Stats.TotalSources, len(r.Entries)))
	}
	if r.Stats.TotalHighlights != totalHighlights {
		errs = append(errs, fmt.Sprintf("stats.total_highlights mismatch: %d != %d", r.Stats.TotalHighlights, totalHighlights))
	}
	if r.Stats.TotalFailures != totalFailures {
		errs = append(errs, fmt.Sprintf("stats.total_failures mismatch: %d != %d", r.Stats.TotalFailures, totalFailures))
	}

	return errs
}
