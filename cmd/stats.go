package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/porkbrain/harriet-vision/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_report>",
	Short: "Display statistics for a processed highlight directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, report.ReportFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	printStats(&r)
	return nil
}

func printStats(r *report.Report) {
	fmt.Println()
	fmt.Printf("  Report version:   %d\n", r.Version)
	fmt.Printf("  Generated:        %s\n", r.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", r.Profile)
	fmt.Println()

	s := r.Stats
	fmt.Printf("  Total sources:    %d\n", s.TotalSources)
	fmt.Printf("  Total highlights: %d\n", s.TotalHighlights)
	fmt.Printf("  Total failures:   %d\n", s.TotalFailures)
	fmt.Println()

	// Per-source highlight counts, heaviest first.
	type srcInfo struct {
		source string
		count  int
		failed bool
	}
	var items []srcInfo
	for _, e := range r.Entries {
		items = append(items, srcInfo{e.Source, len(e.Highlights), e.Error != ""})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].count > items[j].count
	})

	fmt.Println("  Sources:")
	for _, it := range items {
		status := fmt.Sprintf("%d highlights", it.count)
		if it.failed {
			status = "FAILED"
		}
		fmt.Printf("    %-40s %s\n", truncKey(it.source, 40), status)
	}
	fmt.Println()
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
