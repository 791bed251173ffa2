package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/futebol/internal/smoke"
)

// Default configuration constants.
const (
	defaultMatchID     = 3869685
	defaultPlayer      = "Lionel Andrés Messi Cuccittini"
	defaultTimeout     = 90 * time.Second
	defaultTestTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8000", "Base URL of the service")
		matchID = flag.Int("match", defaultMatchID, "Match id to analyse")
		player  = flag.String("player", defaultPlayer, "Player to profile")
		style   = flag.String("style", "Formal", "Narration style")
		from    = flag.Int("from", 0, "Timeline window start minute")
		to      = flag.Int("to", 90, "Timeline window end minute")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Also write output to this file")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := smoke.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	config := &smoke.Config{
		BaseURL: *baseURL,
		MatchID: *matchID,
		Player:  *player,
		Style:   *style,
		From:    *from,
		To:      *to,
		Timeout: *timeout,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	if err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke run failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
