package extract

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/port"
)

// decodeFailureText is returned as the extracted text when a .txt payload
// is not valid UTF-8. Extraction degrades rather than aborting.
const decodeFailureText = "텍스트 변환 실패 (바이너리 파일)"

// Extractor turns raw file bytes into plain text. Plain text is decoded
// locally; images and videos go through the OCR service. The OCR call is
// critical-path; the archive upload to object storage that follows a
// successful OCR is best-effort and can only widen the result with a
// source URL, never fail it.
type Extractor struct {
	ocr       port.OCRClient
	storage   port.ObjectStorage
	bucket    string
	envPrefix string
	logger    *zap.Logger
}

// NewExtractor creates an Extractor. storage may be nil when object
// storage is not configured; ocr may be nil when the OCR service is not
// configured, in which case image and video inputs fail at call time.
func NewExtractor(ocr port.OCRClient, storage port.ObjectStorage, cfg *config.Config, logger *zap.Logger) *Extractor {
	return &Extractor{
		ocr:       ocr,
		storage:   storage,
		bucket:    cfg.S3.Bucket,
		envPrefix: cfg.Server.EnvPrefix(),
		logger:    logger,
	}
}

// Extract produces an ExtractionResult for the given file. It fails only
// for unsupported extensions and for OCR failures on image/video input.
func (e *Extractor) Extract(ctx context.Context, content []byte, filename, contentType string) (*domain.ExtractionResult, error) {
	kind, ok := domain.MediaKindForFilename(filename)
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if kind == domain.MediaText {
		text := string(content)
		if !utf8.ValidString(text) {
			text = decodeFailureText
		}
		return &domain.ExtractionResult{Text: text}, nil
	}

	if e.ocr == nil {
		return nil, domain.ErrOCRNotConfigured
	}

	var (
		text string
		err  error
	)
	switch kind {
	case domain.MediaImage:
		text, err = e.ocr.ExtractImage(ctx, content)
	case domain.MediaVideo:
		text, err = e.ocr.ExtractVideo(ctx, content)
	}
	if err != nil {
		return nil, fmt.Errorf("ocr extraction for %s: %w", filename, err)
	}

	// OCR succeeded; only now archive the original, best effort.
	sourceURL := e.archiveOriginal(ctx, content, filename, contentType)

	return &domain.ExtractionResult{Text: text, SourceURL: sourceURL}, nil
}

// archiveOriginal uploads the raw bytes to object storage and returns the
// public URL, or nil on any failure. Failures are logged and swallowed:
// downstream recommendation only needs the text.
func (e *Extractor) archiveOriginal(ctx context.Context, content []byte, filename, contentType string) *string {
	if e.storage == nil {
		e.logger.Debug("object storage not configured, skipping archive upload",
			zap.String("filename", filename))
		return nil
	}

	key := fmt.Sprintf("%s/%s/%s_%s",
		e.envPrefix,
		time.Now().UTC().Format("20060102"),
		uuid.New(),
		filename,
	)

	out, err := e.storage.Upload(ctx, port.UploadInput{
		Bucket:      e.bucket,
		Key:         key,
		Body:        bytes.NewReader(content),
		ContentType: contentType,
		Size:        int64(len(content)),
	})
	if err != nil {
		e.logger.Warn("archive upload failed, continuing without source URL",
			zap.String("filename", filename), zap.String("key", key), zap.Error(err))
		return nil
	}
	if out.Location == "" {
		e.logger.Warn("archive upload returned empty URL, continuing without source URL",
			zap.String("filename", filename), zap.String("key", key))
		return nil
	}
	return &out.Location
}
