package port

import (
	"context"

	"moim/internal/domain"
)

// PlaceSearch abstracts a keyword place-search service. Results are
// randomized among matches rather than relevance-ranked; the synthesizer
// relies on that for diversity across itineraries.
type PlaceSearch interface {
	Search(ctx context.Context, query string, count int) ([]domain.Place, error)
}
