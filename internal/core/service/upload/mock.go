package upload

import (
	"context"
	"sendyourfiles/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Dispatch(ctx context.Context, file domain.UploadableFile, cfg domain.HostConfig) (*domain.UploadOutcome, error) {
	args := m.Called(ctx, file, cfg)
	outcome, _ := args.Get(0).(*domain.UploadOutcome)
	return outcome, args.Error(1)
}

func (m *MockUploadService) BaseThreshold() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}
