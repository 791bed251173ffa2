package smoke

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/okian/futebol/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to the console and, when logFile is set,
// to that file as well.
func SetupLogging(logFile string) error {
	if logFile == "" {
		if err := logger.Init(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	if err := logger.InitWith(io.MultiWriter(os.Stdout, file), "text"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Futebol API Smoke Tool
======================

Runs end-to-end checks against a running Futebol API.

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -match int
        Match id to analyse (default 3869685)
  -player string
        Player to profile (default "Lionel Andrés Messi Cuccittini")
  -style string
        Narration style: Formal, Humorístico or Técnico (default "Formal")
  -from int
        Timeline window start minute (default 0)
  -to int
        Timeline window end minute (default 90)
  -timeout duration
        HTTP request timeout (default 90s)
  -log string
        Also write output to this file
  -verbose
        Log every response
  -help
        Show this help message

Examples:
  go run ./cmd/smoke -url http://localhost:8000 -match 3788741 -player "Lorenzo Insigne"
  go run ./cmd/smoke -style Técnico -from 45 -to 90 -verbose
`)
}
