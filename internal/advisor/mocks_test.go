package advisor

import (
	"context"

	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm"
	"github.com/stretchr/testify/mock"
)

// MockProvider mocks llm.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) AvailableModels() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// MockConversationStore mocks domain.ConversationStore
type MockConversationStore struct {
	mock.Mock
}

func (m *MockConversationStore) History(ctx context.Context, key domain.ConversationKey) ([]domain.Turn, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Turn), args.Error(1)
}

func (m *MockConversationStore) Append(ctx context.Context, key domain.ConversationKey, turns ...domain.Turn) error {
	callArgs := make([]any, 0, len(turns)+2)
	callArgs = append(callArgs, ctx, key)
	for _, turn := range turns {
		callArgs = append(callArgs, turn)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

func (m *MockConversationStore) Trim(ctx context.Context, key domain.ConversationKey, n int) error {
	args := m.Called(ctx, key, n)
	return args.Error(0)
}

func (m *MockConversationStore) Clear(ctx context.Context, key domain.ConversationKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockChartPublisher mocks domain.ChartPublisher
type MockChartPublisher struct {
	mock.Mock
}

func (m *MockChartPublisher) Publish(ctx context.Context, updates []domain.ChartUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}
