package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moim/internal/domain"
)

// MockChatAnalyzer is a mock implementation of port.ChatAnalyzer.
type MockChatAnalyzer struct {
	mock.Mock
}

func (m *MockChatAnalyzer) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

func (m *MockChatAnalyzer) Model() string {
	args := m.Called()
	return args.String(0)
}
