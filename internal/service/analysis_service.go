package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"moim/internal/analyzer"
	"moim/internal/cache"
	"moim/internal/domain"
	"moim/internal/port"
)

// AnalysisService turns transcript text into a structured analysis,
// consulting the cache before calling the reasoning service.
type AnalysisService interface {
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
}

type analysisService struct {
	llm    port.ChatAnalyzer
	cache  *cache.AnalysisCache
	logger *zap.Logger
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(llm port.ChatAnalyzer, analysisCache *cache.AnalysisCache, logger *zap.Logger) AnalysisService {
	return &analysisService{
		llm:    llm,
		cache:  analysisCache,
		logger: logger,
	}
}

func (s *analysisService) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyExtractedText
	}
	if s.llm == nil {
		return nil, domain.ErrAnalyzerNotConfigured
	}

	key := cache.Key(analyzer.PromptVersion, s.llm.Model(), text)
	if cached := s.cache.Get(ctx, key); cached != nil {
		s.logger.Debug("analysis cache hit", zap.String("key", key))
		return cached, nil
	}

	result, err := s.llm.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyzing transcript: %w", err)
	}

	s.cache.Put(ctx, key, result)
	return result, nil
}
