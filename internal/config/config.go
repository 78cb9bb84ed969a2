// Package config loads the service's process configuration from
// environment variables, mirroring the original service's startup
// behavior: an optional .env file, then strict validation of the
// required directories.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/porkbrain/harriet-vision/internal/highlights"
)

// Config holds the three environment-derived settings the service needs
// to run, plus the detection profile resolved from the optional
// HIGHLIGHT_PROFILE variable.
type Config struct {
	InputDir      string
	OutputDir     string
	WorkerThreads int
	ProfileName   string
	Params        highlights.Params
}

// Load reads INPUT and OUTPUT (required), WORKER_THREADS (optional,
// default runtime.NumCPU(), floored to 1) and HIGHLIGHT_PROFILE
// (optional, default "default") from the environment.
//
// A .env file in the working directory is loaded first, best-effort,
// mirroring the original service's dotenv::dotenv().ok() — a missing
// file is not an error.
func Load(log zerolog.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	input := os.Getenv("INPUT")
	if input == "" {
		return Config{}, fmt.Errorf("config: INPUT is required")
	}
	output := os.Getenv("OUTPUT")
	if output == "" {
		return Config{}, fmt.Errorf("config: OUTPUT is required")
	}

	workers := runtime.NumCPU()
	if raw := os.Getenv("WORKER_THREADS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: WORKER_THREADS: %w", err)
		}
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	profileName := os.Getenv("HIGHLIGHT_PROFILE")
	if profileName == "" {
		profileName = "default"
	}
	params, ok := highlights.ParamsFor(profileName)
	if !ok {
		log.Warn().Str("profile", profileName).Msg("unknown HIGHLIGHT_PROFILE, falling back to default")
		params = highlights.DefaultParams()
		profileName = "default"
	}

	return Config{
		InputDir:      input,
		OutputDir:     output,
		WorkerThreads: workers,
		ProfileName:   profileName,
		Params:        params,
	}, nil
}
