package service

import (
	"context"

	"github.com/google/uuid"

	"moim/internal/domain"
	"moim/internal/port"
)

// RecommendationInput is the DTO for recommendation requests. Either a
// course list (typically one the client edited after a previous analysis)
// or a file reference must be present; when both are, the course list
// wins and the file is never touched.
type RecommendationInput struct {
	OwnerID  uuid.UUID
	FileID   *uuid.UUID
	Courses  []domain.CourseStep
	Metadata *domain.Metadata
	Personas []domain.Persona
}

// Recommendation is the full response: the analysis that drove the
// search plus the synthesized itineraries.
type Recommendation struct {
	Analysis    domain.AnalysisResult `json:"analysis"`
	Itineraries []domain.Itinerary    `json:"itineraries"`
}

// RecommendationService orchestrates the transcript-to-itineraries
// pipeline end to end.
type RecommendationService interface {
	Recommend(ctx context.Context, input RecommendationInput) (*Recommendation, error)
}

type recommendationService struct {
	fileRepo    port.FileRepository
	analysis    AnalysisService
	synthesizer RouteSynthesizer
}

// NewRecommendationService creates a new RecommendationService implementation.
func NewRecommendationService(
	fileRepo port.FileRepository,
	analysis AnalysisService,
	synthesizer RouteSynthesizer,
) RecommendationService {
	return &recommendationService{
		fileRepo:    fileRepo,
		analysis:    analysis,
		synthesizer: synthesizer,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, input RecommendationInput) (*Recommendation, error) {
	analysis, err := s.resolveAnalysis(ctx, input)
	if err != nil {
		return nil, err
	}

	itineraries, err := s.synthesizer.Synthesize(ctx, analysis.Courses)
	if err != nil {
		return nil, err
	}

	return &Recommendation{
		Analysis:    *analysis,
		Itineraries: itineraries,
	}, nil
}

// resolveAnalysis picks the analysis source: an explicit course list
// short-circuits everything else, then a file reference, then failure.
func (s *recommendationService) resolveAnalysis(ctx context.Context, input RecommendationInput) (*domain.AnalysisResult, error) {
	if len(input.Courses) > 0 {
		result := &domain.AnalysisResult{
			Personas: input.Personas,
			Courses:  input.Courses,
		}
		if input.Metadata != nil {
			result.Metadata = *input.Metadata
		}
		return result, nil
	}

	if input.FileID != nil {
		meta, err := s.fileRepo.GetByID(ctx, input.OwnerID, *input.FileID)
		if err != nil {
			return nil, err
		}
		return s.analysis.Analyze(ctx, meta.ExtractedText)
	}

	return nil, domain.ErrInvalidRecommendationInput
}
