package analyzer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moim/internal/analyzer"
	"moim/internal/analyzer/openai"
	"moim/internal/config"
	"moim/internal/domain"
)

func testAnalyzerConfig() *config.AnalyzerConfig {
	return &config.AnalyzerConfig{
		Provider:     "openai",
		APIKey:       "test-key",
		DefaultModel: "gpt-4o-mini",
		TimeoutSecs:  5,
	}
}

func completionBody(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]string{"content": content},
				"finish_reason": "stop",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestOpenAIAnalyzer_Analyze_Success(t *testing.T) {
	analysisJSON := `{
		"metadata": {"location": "강남", "group_name": "친구 2인", "date": "2025년 12월 7일"},
		"personas": [{"name": "철수", "likes": ["조용한"], "dislikes": ["매운"]}],
		"courses": [{"step": 1, "category": "맛집", "final_query": "강남 조용한 파스타"}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])
		messages := req["messages"].([]interface{})
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		rf := req["response_format"].(map[string]interface{})
		assert.Equal(t, "json_schema", rf["type"])

		w.Write([]byte(completionBody(analysisJSON)))
	}))
	defer server.Close()

	a := openai.NewAnalyzerWithEndpoint(testAnalyzerConfig(), server.URL)
	result, err := a.Analyze(context.Background(), "주말 약속 대화")

	require.NoError(t, err)
	assert.Equal(t, "강남", result.Metadata.Location)
	assert.Equal(t, "친구 2인", result.Metadata.GroupLabel)
	require.Len(t, result.Personas, 1)
	assert.Equal(t, []string{"조용한"}, result.Personas[0].Likes)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "강남 조용한 파스타", result.Courses[0].FinalQuery)
}

func TestOpenAIAnalyzer_MissingAPIKey(t *testing.T) {
	cfg := testAnalyzerConfig()
	cfg.APIKey = ""
	a := openai.NewAnalyzer(cfg)

	_, err := a.Analyze(context.Background(), "대화")

	assert.ErrorIs(t, err, domain.ErrAnalyzerNotConfigured)
}

func TestOpenAIAnalyzer_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		http.Error(w, `{"error": "rate limit"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	a := openai.NewAnalyzerWithEndpoint(testAnalyzerConfig(), server.URL)
	_, err := a.Analyze(context.Background(), "대화")

	var rle *analyzer.RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, "openai", rle.Provider)
	assert.Equal(t, 30*time.Second, rle.RetryAfter)
}

func TestOpenAIAnalyzer_TruncatedOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"{"},"finish_reason":"length"}]}`))
	}))
	defer server.Close()

	a := openai.NewAnalyzerWithEndpoint(testAnalyzerConfig(), server.URL)
	_, err := a.Analyze(context.Background(), "대화")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
}

func TestOpenAIAnalyzer_Model(t *testing.T) {
	a := openai.NewAnalyzer(testAnalyzerConfig())
	assert.Equal(t, "gpt-4o-mini", a.Model())

	cfg := testAnalyzerConfig()
	cfg.DefaultModel = ""
	assert.Equal(t, "gpt-4o-mini", openai.NewAnalyzer(cfg).Model())
}
