package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moim/internal/domain"
)

// MockPlaceSearch is a mock implementation of port.PlaceSearch.
type MockPlaceSearch struct {
	mock.Mock
}

func (m *MockPlaceSearch) Search(ctx context.Context, query string, count int) ([]domain.Place, error) {
	args := m.Called(ctx, query, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}
