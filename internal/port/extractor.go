package port

import (
	"context"

	"moim/internal/domain"
)

// TextExtractor turns raw uploaded bytes into plain text, dispatching on
// the filename's extension.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte, filename, contentType string) (*domain.ExtractionResult, error)
}
