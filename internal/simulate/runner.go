package simulate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete assessment simulation.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting assessment simulation",
		logger.String("baseURL", config.BaseURL),
		logger.Int("respondents", config.Respondents),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("locale", config.Locale),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Check the catalog the service is running with
	if err := checkQuestionCatalog(ctx, config); err != nil {
		return fmt.Errorf("question catalog check failed: %w", err)
	}

	// Step 3: Generate respondents
	respondents, err := generateRespondents(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("respondent generation failed: %w", err)
	}

	// Step 4: Run assessments concurrently
	assessments, err := runAssessments(ctx, config, respondents, stats)
	if err != nil {
		return fmt.Errorf("assessment run failed: %w", err)
	}

	// Step 5: Verify results against a local recompute
	if err := verifyResults(ctx, config, assessments, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 6: Save assessments to file
	if err := saveAssessmentsToFile(ctx, config, assessments); err != nil {
		logger.Get().Warn(ctx, "failed to save assessments to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "simulation completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// checkQuestionCatalog verifies the service serves the same catalog this
// binary was built against, so local recomputes are meaningful.
func checkQuestionCatalog(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/questions")
	if err != nil {
		return fmt.Errorf("failed to fetch questions: %w", err)
	}
	var questions []mbti.Question
	if err := decodeResponse(resp, &questions); err != nil {
		return err
	}

	if len(questions) != len(mbti.AllQuestions()) {
		return fmt.Errorf("service serves %d questions, this binary expects %d", len(questions), len(mbti.AllQuestions()))
	}
	for _, q := range questions {
		if _, ok := mbti.QuestionByID(q.ID); !ok {
			return fmt.Errorf("service serves unknown question %q", q.ID)
		}
	}

	logger.Get().Info(ctx, "question catalog matches", logger.Int("questions", len(questions)))
	return nil
}

// saveAssessmentsToFile saves completed assessments as a JSON array.
func saveAssessmentsToFile(ctx context.Context, config *Config, assessments []Assessment) error {
	if len(assessments) == 0 {
		return fmt.Errorf("no assessments to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "assessments_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(assessments); err != nil {
		return fmt.Errorf("failed to encode assessments: %w", err)
	}

	logger.Get().Info(ctx, "assessments saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final simulation statistics.
func displayFinalStats(stats *Stats) {
	var successRate, assessmentsPerSecond float64

	if stats.SessionsCreated+stats.SessionsFailed > 0 {
		successRate = float64(stats.SessionsCreated) / float64(stats.SessionsCreated+stats.SessionsFailed) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		assessmentsPerSecond = float64(stats.SessionsCreated) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("respondentsGenerated", stats.RespondentsGenerated),
		logger.Int("sessionsCreated", stats.SessionsCreated),
		logger.Int("sessionsFailed", stats.SessionsFailed),
		logger.Int("answersRecorded", stats.AnswersRecorded),
		logger.Int("resultsRetrieved", stats.ResultsRetrieved),
		logger.Int("resultsVerified", stats.ResultsVerified),
		logger.Int("resultsMismatched", stats.ResultsMismatched),
		logger.Int("sessionsDeleted", stats.SessionsDeleted),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("assessmentsPerSecond", assessmentsPerSecond))
}
