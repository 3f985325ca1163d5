package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moim/internal/service"
)

// MockRecommendationService is a mock implementation of service.RecommendationService.
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, input service.RecommendationInput) (*service.Recommendation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Recommendation), args.Error(1)
}
