package metrics

import (
	"sendyourfiles/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockObserver is a mock implementation of port.UploadObserver
type MockObserver struct {
	mock.Mock
}

// NewMockObserver creates a new MockObserver
func NewMockObserver() *MockObserver {
	return &MockObserver{}
}

func (m *MockObserver) RecordUpload(host domain.HostID, duration time.Duration, sizeBytes int64, err error) {
	m.Called(host, duration, sizeBytes, err)
}

func (m *MockObserver) RecordLocal() {
	m.Called()
}
