package settings

import (
	"context"
	"sendyourfiles/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of port.SettingsStore
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) HostConfig(ctx context.Context) (domain.HostConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HostConfig), args.Error(1)
}

func (m *MockStore) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
