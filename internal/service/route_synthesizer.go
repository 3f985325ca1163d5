package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"moim/internal/domain"
	"moim/internal/port"
)

const (
	// candidatePoolSize is how many places are fetched per course step.
	candidatePoolSize = 5
	// itineraryCount is how many alternative routes are produced.
	itineraryCount = 3
)

// RouteSynthesizer expands an ordered course list into alternative
// itineraries by fanning each step's query out to place search and
// weaving the candidate pools back together.
type RouteSynthesizer interface {
	Synthesize(ctx context.Context, courses []domain.CourseStep) ([]domain.Itinerary, error)
}

type routeSynthesizer struct {
	places port.PlaceSearch
	logger *zap.Logger
}

// NewRouteSynthesizer creates a new RouteSynthesizer implementation.
func NewRouteSynthesizer(places port.PlaceSearch, logger *zap.Logger) RouteSynthesizer {
	return &routeSynthesizer{places: places, logger: logger}
}

// Synthesize builds up to itineraryCount routes. The k-th route takes the
// k-th candidate from each step's pool, falling back to the pool's first
// candidate when the pool is shorter than k+1. Steps whose search failed
// or returned nothing are skipped in every route; a route is only emitted
// if at least one step has a candidate.
func (s *routeSynthesizer) Synthesize(ctx context.Context, courses []domain.CourseStep) ([]domain.Itinerary, error) {
	if len(courses) == 0 {
		return nil, domain.ErrInvalidRecommendationInput
	}

	// One search per step, in course order. Failures degrade the step to
	// an empty pool rather than failing the whole request.
	pools := make([][]domain.Place, len(courses))
	for i, course := range courses {
		places, err := s.places.Search(ctx, course.FinalQuery, candidatePoolSize)
		if err != nil {
			s.logger.Warn("place search failed, skipping course step",
				zap.Int("step", course.Step),
				zap.String("query", course.FinalQuery),
				zap.Error(err))
			continue
		}
		pools[i] = places
	}

	var itineraries []domain.Itinerary
	for k := 0; k < itineraryCount; k++ {
		var route []domain.Place
		for i := range courses {
			pool := pools[i]
			if len(pool) == 0 {
				continue
			}
			idx := k
			if idx >= len(pool) {
				idx = 0
			}
			route = append(route, pool[idx])
		}
		if len(route) == 0 {
			continue
		}
		n := len(itineraries) + 1
		itineraries = append(itineraries, domain.Itinerary{
			ID:     n,
			Label:  fmt.Sprintf("추천 경로 %d", n),
			Places: route,
		})
	}

	return itineraries, nil
}
