package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/innerlens/innerlens/internal/simulate"
)

// Default configuration constants.
const (
	defaultRespondents = 100
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultRunTimeout  = 10 * time.Minute
	defaultLocale      = "en"
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		respondents = flag.Int("respondents", defaultRespondents, "Number of simulated respondents")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		locale      = flag.String("locale", defaultLocale, "Locale requested for sessions")
		outputFile  = flag.String("output", "", "Output file for completed assessments (default: assessments_TIMESTAMP.json)")
		logFile     = flag.String("log", "", "Log file for simulation output (default: simulation_log_TIMESTAMP.log)")
		keep        = flag.Bool("keep", false, "Keep sessions on the server instead of deleting them")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simulate.ShowHelp()
		return
	}

	// Setup logging
	if err := simulate.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create simulation configuration
	config := &simulate.Config{
		BaseURL:     *baseURL,
		Respondents: *respondents,
		Workers:     *workers,
		Timeout:     *timeout,
		Locale:      *locale,
		OutputFile:  *outputFile,
		LogFile:     *logFile,
		Keep:        *keep,
		Verbose:     *verbose,
	}

	// Run the simulation
	if err := simulate.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		return
	}
}
