package seasonharness

// Config holds configuration for the fast-forward harness
type Config struct {
	Trials  int    // Number of independent campaigns to simulate
	Years   int    // Seasons to fast-forward per campaign
	Workers int    // Number of concurrent trial workers
	Seed    int64  // Base seed; trial i runs on Seed+i
	LogFile string // Log file for harness output
	Verbose bool   // Enable verbose logging
}

// TrialResult summarizes one simulated campaign.
type TrialResult struct {
	Trial         int
	Seed          int64
	WeeksAdvanced int
	Decisions     int
	Retirements   int
	Graduates     int
	FinalCash     float64
	WentBankrupt  bool
	Champion      string
	Violations    []string
}

// Report aggregates every trial of one harness run.
type Report struct {
	Trials        int
	WeeksAdvanced int
	Decisions     int
	Retirements   int
	Graduates     int
	Bankruptcies  int
	MeanFinalCash float64
	Violations    int
	Champions     map[string]int
}
