package seasonharness

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/owenfield/frontoffice/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "fastforward_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the fast-forward tool.
func ShowHelp() {
	os.Stdout.WriteString(`Front Office Fast-Forward Tool
==============================

Simulates whole campaigns through the weekly engine across many seeds,
auto-resolving decisions and checking snapshot invariants.

Usage:
  go run cmd/fastforward/main.go [options]

Options:
  -trials int
        Number of independent campaigns to simulate (default 32)
  -years int
        Seasons to fast-forward per campaign (default 5)
  -workers int
        Number of concurrent trial workers (default CPU cores)
  -seed int
        Base seed; trial i runs on seed+i (default 1)
  -log string
        Log file for harness output (default: fastforward_TIMESTAMP.log)
  -verbose
        Enable verbose per-trial logging
  -help
        Show this help message

Examples:
  # Quick smoke across 8 campaigns
  go run cmd/fastforward/main.go -trials 8 -years 2

  # Long soak with replayable seeds
  go run cmd/fastforward/main.go -trials 128 -years 10 -seed 42

  # Verbose single campaign
  go run cmd/fastforward/main.go -trials 1 -verbose
`)
}
