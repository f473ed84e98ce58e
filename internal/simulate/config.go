package simulate

import (
	"time"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
)

// Config holds configuration for the assessment simulation
type Config struct {
	BaseURL     string        // Base URL of the service
	Respondents int           // Number of simulated respondents
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Locale      string        // Locale requested for sessions
	OutputFile  string        // Output file for completed assessments
	LogFile     string        // Log file for simulation output
	Verbose     bool          // Enable verbose logging
	Keep        bool          // Keep sessions instead of deleting them
}

// Respondent is one simulated participant: a profile plus an answering style.
type Respondent struct {
	Profile model.UserProfile
	Style   answerStyle
}

// Assessment captures the full round trip for one respondent.
type Assessment struct {
	SessionID string            `json:"sessionId"`
	Profile   model.UserProfile `json:"profile"`
	Answers   []mbti.Answer     `json:"answers"`
	Result    *mbti.Result      `json:"result,omitempty"`
	Verified  bool              `json:"verified"`
}

// Stats holds simulation statistics
type Stats struct {
	RespondentsGenerated int
	SessionsCreated      int
	SessionsFailed       int
	AnswersRecorded      int
	ResultsRetrieved     int
	ResultsVerified      int
	ResultsMismatched    int
	SessionsDeleted      int
	TypeDistribution     map[string]int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
