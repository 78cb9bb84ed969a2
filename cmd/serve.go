package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/porkbrain/harriet-vision/internal/config"
	"github.com/porkbrain/harriet-vision/internal/httpapi"
	"github.com/porkbrain/harriet-vision/internal/queue"
	"github.com/porkbrain/harriet-vision/internal/report"
	"github.com/porkbrain/harriet-vision/internal/worker"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP ingress and worker pool",
	Long: `Loads INPUT, OUTPUT, WORKER_THREADS and HIGHLIGHT_PROFILE from the
environment (and an optional .env file), then starts the dispatcher and
a POST /highlights/ endpoint that enqueues directories for processing.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(log)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logVerbose("input:   %s", cfg.InputDir)
	logVerbose("output:  %s", cfg.OutputDir)
	logVerbose("workers: %d", cfg.WorkerThreads)

	q := queue.New(cfg.WorkerThreads * 4)
	reports := report.NewManager(cfg.OutputDir, cfg.ProfileName)
	w := worker.New(cfg.InputDir, cfg.OutputDir, cfg.Params, reports, log)

	dispatcher := queue.NewDispatcher(q, cfg.WorkerThreads, w.Process, log)
	go dispatcher.Run()

	server := httpapi.New(cfg.InputDir, cfg.OutputDir, q, log)

	log.Info().Str("addr", serveAddr).Msg("listening")
	return http.ListenAndServe(serveAddr, server.Engine())
}
