package simulate

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/innerlens/innerlens/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "simulation_log_" + timestamp + ".log"
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

// ShowHelp prints usage information for the simulation tool.
func ShowHelp() {
	os.Stdout.WriteString(`InnerLens Assessment Simulator
==============================

A concurrent tool for exercising the InnerLens assessment service with
simulated respondents and verifying results against a local recompute.

Usage:
  go run cmd/simulate/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -respondents int
        Number of simulated respondents (default 100)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -locale string
        Locale requested for sessions (default "en")
  -output string
        Output file for completed assessments (default: assessments_TIMESTAMP.json)
  -log string
        Log file for simulation output (default: simulation_log_TIMESTAMP.log)
  -keep
        Keep sessions on the server instead of deleting them
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Simulate with default settings
  go run cmd/simulate/main.go

  # Simulate a large population with more workers
  go run cmd/simulate/main.go -respondents 5000 -workers 16

  # Simulate Chinese-locale respondents and keep their sessions
  go run cmd/simulate/main.go -locale zh -keep

  # Simulate with verbose output and a custom log file
  go run cmd/simulate/main.go -verbose -log my_simulation.log
`)
}
