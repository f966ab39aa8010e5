package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/owenfield/frontoffice/internal/seasonharness"
)

// Default configuration constants.
const (
	defaultTrials     = 32
	defaultYears      = 5
	defaultSeed       = 1
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		trials  = flag.Int("trials", defaultTrials, "Number of independent campaigns to simulate")
		years   = flag.Int("years", defaultYears, "Seasons to fast-forward per campaign")
		workers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent trial workers")
		seed    = flag.Int64("seed", defaultSeed, "Base seed; trial i runs on seed+i")
		logFile = flag.String("log", "", "Log file for harness output (default: fastforward_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable verbose per-trial logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seasonharness.ShowHelp()
		return
	}

	if err := seasonharness.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seasonharness.Config{
		Trials:  *trials,
		Years:   *years,
		Workers: *workers,
		Seed:    *seed,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	if err := seasonharness.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Fast-forward failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
