package port

import (
	"context"

	"moim/internal/domain"
)

// ChatAnalyzer abstracts the structured-reasoning service that turns a
// transcript into a typed analysis. The service enforces the output shape;
// implementations only decode it.
type ChatAnalyzer interface {
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
	// Model reports the model version tag, used for cache key derivation.
	Model() string
}
