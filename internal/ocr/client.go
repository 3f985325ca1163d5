package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/port"
)

// Client implements port.OCRClient against the remote OCR service. Image
// and video payloads use different operations; both are critical-path for
// the caller.
type Client struct {
	endpoint string
	secret   string
	client   *http.Client
}

// NewClient creates an OCR client from config. An unconfigured client is
// still constructible: every call then fails with ErrOCRNotConfigured so
// absence at startup is a warning, not a crash.
func NewClient(cfg *config.OCRConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		secret:   cfg.Secret,
		client:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the client has credentials to call the service.
func (c *Client) Configured() bool {
	return c.endpoint != "" && c.secret != ""
}

// ExtractImage runs OCR over an image. The service answers with either a
// plain string or an array of recognized lines, which are joined with
// newlines.
func (c *Client) ExtractImage(ctx context.Context, data []byte) (string, error) {
	body, err := c.post(ctx, "/image", data)
	if err != nil {
		return "", err
	}

	var lines []string
	if err := json.Unmarshal(body, &lines); err == nil {
		return strings.Join(lines, "\n"), nil
	}
	var text string
	if err := json.Unmarshal(body, &text); err == nil {
		return text, nil
	}
	return "", fmt.Errorf("unexpected image OCR response: %s", truncate(string(body), 200))
}

// ExtractVideo runs OCR over a video. The service answers with either a
// structured record whose "text" field is projected out, or a plain
// string used as-is.
func (c *Client) ExtractVideo(ctx context.Context, data []byte) (string, error) {
	body, err := c.post(ctx, "/video", data)
	if err != nil {
		return "", err
	}

	var record struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &record); err == nil && record.Text != "" {
		return record.Text, nil
	}
	var text string
	if err := json.Unmarshal(body, &text); err == nil {
		return text, nil
	}
	// Not JSON at all: fall back to the response's string form.
	return string(body), nil
}

func (c *Client) post(ctx context.Context, path string, data []byte) ([]byte, error) {
	if !c.Configured() {
		return nil, domain.ErrOCRNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-OCR-Secret", c.secret)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling ocr service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading ocr response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr service error (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

var _ port.OCRClient = (*Client)(nil)
