// Package llm generates personalized scenario pairs through an
// OpenAI-compatible chat completion endpoint. The client satisfies the
// scenario.Generator contract: any error on a single question is absorbed
// upstream by the template fallback, so this package never retries.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/innerlens/innerlens/internal/domain/mbti"
	"github.com/innerlens/innerlens/internal/domain/model"
	"github.com/innerlens/innerlens/internal/i18n"
	"github.com/innerlens/innerlens/pkg/logger"
)

const defaultTimeout = 20 * time.Second

// Client talks to an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient creates a generation client. Without a base URL and API key the
// client reports itself unavailable and the resolver serves templates only.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the client has enough configuration to attempt
// generation at all.
func (c *Client) Available() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// chatRequest is the OpenAI-compatible completion request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// scenarioPayload is the JSON object the model is instructed to emit.
type scenarioPayload struct {
	LeftScenario  string `json:"leftScenario"`
	RightScenario string `json:"rightScenario"`
}

// Generate produces the left (-3) and right (+3) scenario texts for one
// question.
func (c *Client) Generate(ctx context.Context, profile model.UserProfile, q mbti.Question, locale string) (string, string, error) {
	if !c.Available() {
		return "", "", ErrUnavailable
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: i18n.T(locale, "scenarios.systemPrompt", nil)},
			{Role: "user", Content: c.buildPrompt(profile, q, locale)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    0.8,
		MaxTokens:      300,
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", fmt.Errorf("%w: marshal: %w", ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && c.log != nil {
			c.log.Debug(ctx, "closing generation response body", logger.Error(cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", "", fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
	}
	if len(completion.Choices) == 0 {
		return "", "", ErrEmptyCompletion
	}

	var pair scenarioPayload
	content := stripCodeFence(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &pair); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrMalformedCompletion, err)
	}

	left := strings.TrimSpace(pair.LeftScenario)
	right := strings.TrimSpace(pair.RightScenario)
	if left == "" || right == "" {
		return "", "", fmt.Errorf("%w: blank scenario text", ErrMalformedCompletion)
	}
	return left, right, nil
}

// buildPrompt renders the localized single-question prompt template.
func (c *Client) buildPrompt(profile model.UserProfile, q mbti.Question, locale string) string {
	ageGroup := profile.AgeGroup
	if ageGroup == "" {
		ageGroup = model.AgeGroupAdult
	}
	occupation := profile.Occupation
	if occupation == "" {
		occupation = model.OccupationOther
	}

	occupationDesc := i18n.T(locale, "scenarios.occupations."+occupation, nil)
	if detail := strings.TrimSpace(profile.OccupationDetail); detail != "" {
		occupationDesc = i18n.T(locale, "scenarios.occupationDetailFormat", map[string]string{
			"base":   occupationDesc,
			"detail": detail,
		})
	}

	interests := strings.Join(profile.Interests, ", ")
	if interests == "" {
		interests = "everyday life"
	}

	return i18n.T(locale, "scenarios.singlePromptTemplate", map[string]string{
		"ageDescription":        i18n.T(locale, "scenarios.ageDescriptions."+ageGroup, nil),
		"occupationDescription": occupationDesc,
		"interests":             interests,
		"questionText":          q.Text,
		"dimension":             string(q.Dimension),
		"polarity":              string(q.Polarity),
	})
}

// stripCodeFence tolerates models that wrap the JSON object in a markdown
// fence despite the response_format hint.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
