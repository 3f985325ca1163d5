package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moim/internal/domain"
)

// MockRouteSynthesizer is a mock implementation of service.RouteSynthesizer.
type MockRouteSynthesizer struct {
	mock.Mock
}

func (m *MockRouteSynthesizer) Synthesize(ctx context.Context, courses []domain.CourseStep) ([]domain.Itinerary, error) {
	args := m.Called(ctx, courses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Itinerary), args.Error(1)
}
