package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "harriet-vision",
	Short: "Highlight-detection service for bright photographic images",
	Long: `harriet-vision finds visually prominent objects ("highlights") in
bright photographic images and writes each as a cropped PNG.

Run "serve" to start the HTTP ingress and worker pool, "stats" to
summarize a previous run's report, or "validate" to check one against
the crops it claims to have written.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"harriet-vision %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[harriet-vision] "+format+"\n", args...)
	}
}
