package ocr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/ocr"
)

func newTestClient(serverURL string) *ocr.Client {
	return ocr.NewClient(&config.OCRConfig{
		Endpoint:    serverURL,
		Secret:      "test-secret",
		TimeoutSecs: 5,
	})
}

func TestExtractImage_ArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/image", r.URL.Path)
		assert.Equal(t, "test-secret", r.Header.Get("X-OCR-Secret"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		w.Write([]byte(`["첫 줄","둘째 줄","셋째 줄"]`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).ExtractImage(context.Background(), []byte{0x89})

	assert.NoError(t, err)
	assert.Equal(t, "첫 줄\n둘째 줄\n셋째 줄", text)
}

func TestExtractImage_StringResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"전체 텍스트"`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).ExtractImage(context.Background(), []byte{0x89})

	assert.NoError(t, err)
	assert.Equal(t, "전체 텍스트", text)
}

func TestExtractImage_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExtractImage(context.Background(), []byte{0x89})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestExtractVideo_TextFieldResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/video", r.URL.Path)
		w.Write([]byte(`{"text":"자막 내용","duration":12.5}`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).ExtractVideo(context.Background(), []byte{0x00})

	assert.NoError(t, err)
	assert.Equal(t, "자막 내용", text)
}

func TestExtractVideo_StringResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"그냥 문자열"`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).ExtractVideo(context.Background(), []byte{0x00})

	assert.NoError(t, err)
	assert.Equal(t, "그냥 문자열", text)
}

func TestExtractVideo_NonJSONFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("raw transcript output"))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).ExtractVideo(context.Background(), []byte{0x00})

	assert.NoError(t, err)
	assert.Equal(t, "raw transcript output", text)
}

func TestExtract_Unconfigured(t *testing.T) {
	client := ocr.NewClient(&config.OCRConfig{})

	_, err := client.ExtractImage(context.Background(), []byte{0x89})
	assert.ErrorIs(t, err, domain.ErrOCRNotConfigured)

	_, err = client.ExtractVideo(context.Background(), []byte{0x00})
	assert.ErrorIs(t, err, domain.ErrOCRNotConfigured)
}
