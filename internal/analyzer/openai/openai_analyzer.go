package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"moim/internal/analyzer"
	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/port"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Analyzer implements port.ChatAnalyzer using the OpenAI Chat Completions
// API with a strict JSON schema response format, so the service itself
// enforces the AnalysisResult shape.
type Analyzer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewAnalyzer creates an OpenAI-based transcript analyzer from config.
func NewAnalyzer(cfg *config.AnalyzerConfig) *Analyzer {
	return newAnalyzer(cfg, apiURL)
}

// NewAnalyzerWithEndpoint creates an analyzer pointing at a custom API endpoint (for testing).
func NewAnalyzerWithEndpoint(cfg *config.AnalyzerConfig, endpoint string) *Analyzer {
	return newAnalyzer(cfg, endpoint)
}

func newAnalyzer(cfg *config.AnalyzerConfig, endpoint string) *Analyzer {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Analyzer{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Model reports the model version tag used for cache key derivation.
func (a *Analyzer) Model() string {
	return a.model
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	if a.apiKey == "" {
		return nil, domain.ErrAnalyzerNotConfigured
	}

	reqBody := map[string]interface{}{
		"model": a.model,
		"messages": []map[string]interface{}{
			{"role": "system", "content": analyzer.SystemPrompt()},
			{"role": "user", "content": "Chat Log:\n\n" + text},
		},
		"response_format": map[string]interface{}{
			"type": "json_schema",
			"json_schema": map[string]interface{}{
				"name":   "analysis_result",
				"strict": true,
				"schema": analysisSchema(),
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := analyzer.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, analyzer.NewRateLimitError("openai", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return parseResponse(respBody)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte) (*domain.AnalysisResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}
	if resp.Choices[0].FinishReason == "length" {
		return nil, fmt.Errorf("output truncated (finish_reason: length)")
	}

	content := resp.Choices[0].Message.Content
	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("parsing analysis JSON: %w (raw: %s)", err, truncate(content, 500))
	}
	return &result, nil
}

// analysisSchema is the JSON schema the service is asked to enforce; it
// mirrors domain.AnalysisResult field for field.
func analysisSchema() map[string]interface{} {
	stringArray := map[string]interface{}{
		"type":  "array",
		"items": map[string]interface{}{"type": "string"},
	}
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"metadata", "personas", "courses"},
		"properties": map[string]interface{}{
			"metadata": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"location", "group_name", "date"},
				"properties": map[string]interface{}{
					"location":   map[string]interface{}{"type": "string"},
					"group_name": map[string]interface{}{"type": "string"},
					"date":       map[string]interface{}{"type": "string"},
				},
			},
			"personas": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"name", "likes", "dislikes"},
					"properties": map[string]interface{}{
						"name":     map[string]interface{}{"type": "string"},
						"likes":    stringArray,
						"dislikes": stringArray,
					},
				},
			},
			"courses": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"step", "category", "final_query"},
					"properties": map[string]interface{}{
						"step":        map[string]interface{}{"type": "integer"},
						"category":    map[string]interface{}{"type": "string"},
						"final_query": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

var _ port.ChatAnalyzer = (*Analyzer)(nil)
