package simulate

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/pkg/logger"
)

// createSessionRequest mirrors the POST /sessions wire schema.
type createSessionRequest struct {
	model.UserProfile
	Locale string `json:"locale,omitempty"`
}

// answersRequest mirrors the PUT /sessions/{id}/answers wire schema.
type answersRequest struct {
	Answers []mbti.Answer `json:"answers"`
}

// runAssessments drives the full assessment round trip for every respondent
// using a worker pool.
func runAssessments(ctx context.Context, config *Config, respondents []Respondent, stats *Stats) ([]Assessment, error) {
	logger.Get().Info(ctx, "running assessments",
		logger.Int("respondents", len(respondents)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)

	assessments := make([]Assessment, len(respondents))
	var (
		created  int64
		failed   int64
		results  int64
		answered int64
		deleted  int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	indexChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
					assessment, err := runSingleAssessment(ctx, client, config, respondents[index])
					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							logger.Get().Warn(ctx, "assessment failed", logger.Int("respondent", index), logger.Error(err))
						}
						continue
					}

					assessments[index] = assessment
					atomic.AddInt64(&created, 1)
					atomic.AddInt64(&answered, int64(len(assessment.Answers)))
					if assessment.Result != nil {
						atomic.AddInt64(&results, 1)
					}
					if !config.Keep {
						atomic.AddInt64(&deleted, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						logger.Get().Info(ctx, "progress",
							logger.Int("completed", int(atomic.LoadInt64(&created))),
							logger.Int("failed", int(atomic.LoadInt64(&failed))),
							logger.Int("total", len(respondents)))
					}
				}
			}
		}()
	}

	go func() {
		defer close(indexChan)
		for i := range respondents {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()

	stats.SessionsCreated = int(atomic.LoadInt64(&created))
	stats.SessionsFailed = int(atomic.LoadInt64(&failed))
	stats.AnswersRecorded = int(atomic.LoadInt64(&answered))
	stats.ResultsRetrieved = int(atomic.LoadInt64(&results))
	stats.SessionsDeleted = int(atomic.LoadInt64(&deleted))

	logger.Get().Info(ctx, "assessments completed",
		logger.Int("created", stats.SessionsCreated),
		logger.Int("failed", stats.SessionsFailed),
		logger.Int("answersRecorded", stats.AnswersRecorded))

	// Compact out failed slots.
	completed := make([]Assessment, 0, len(assessments))
	for _, a := range assessments {
		if a.SessionID != "" {
			completed = append(completed, a)
		}
	}
	return completed, nil
}

// runSingleAssessment walks one respondent through the whole flow:
// create session, record answers in two batches, complete, and optionally
// delete the session afterwards.
func runSingleAssessment(ctx context.Context, client *HTTPClient, config *Config, r Respondent) (Assessment, error) {
	resp, err := client.Post(ctx, config.BaseURL+"/sessions", createSessionRequest{
		UserProfile: r.Profile,
		Locale:      config.Locale,
	})
	if err != nil {
		return Assessment{}, fmt.Errorf("create session: %w", err)
	}
	var sess model.Session
	if resp.StatusCode != StatusCreated {
		_, _ = readResponseBody(resp)
		return Assessment{}, fmt.Errorf("create session: unexpected status %d", resp.StatusCode)
	}
	if err := decodeResponse(resp, &sess); err != nil {
		return Assessment{}, fmt.Errorf("create session: %w", err)
	}

	answers := answersFor(r, sess.Scenarios)

	// Two batches exercises the upsert path the way a paging client would.
	half := len(answers) / 2
	for _, batch := range [][]mbti.Answer{answers[:half], answers[half:]} {
		if len(batch) == 0 {
			continue
		}
		resp, err := client.Put(ctx, config.BaseURL+"/sessions/"+sess.ID+"/answers", answersRequest{Answers: batch})
		if err != nil {
			return Assessment{}, fmt.Errorf("record answers: %w", err)
		}
		if resp.StatusCode != StatusOK {
			_, _ = readResponseBody(resp)
			return Assessment{}, fmt.Errorf("record answers: unexpected status %d", resp.StatusCode)
		}
		_, _ = readResponseBody(resp)
	}

	resp, err = client.Post(ctx, config.BaseURL+"/sessions/"+sess.ID+"/result", nil)
	if err != nil {
		return Assessment{}, fmt.Errorf("complete session: %w", err)
	}
	if resp.StatusCode != StatusOK {
		_, _ = readResponseBody(resp)
		return Assessment{}, fmt.Errorf("complete session: unexpected status %d", resp.StatusCode)
	}
	var completed model.Session
	if err := decodeResponse(resp, &completed); err != nil {
		return Assessment{}, fmt.Errorf("complete session: %w", err)
	}

	if !config.Keep {
		resp, err := client.Delete(ctx, config.BaseURL+"/sessions/"+sess.ID)
		if err == nil {
			_, _ = readResponseBody(resp)
		}
	}

	return Assessment{
		SessionID: sess.ID,
		Profile:   r.Profile,
		Answers:   answers,
		Result:    completed.Result,
	}, nil
}
