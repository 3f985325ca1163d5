package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moim/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, content []byte, filename, contentType string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, content, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}
