package transport

import (
	"context"
	"io"
	"sendyourfiles/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock implementation of port.Transport
type MockTransport struct {
	mock.Mock
}

// NewMockTransport creates a new MockTransport
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Execute drains the request body like a real transport would, then returns the configured response
func (m *MockTransport) Execute(ctx context.Context, req *domain.UploadRequest) (*domain.TransportResponse, error) {
	if req.Body != nil {
		_, _ = io.Copy(io.Discard, req.Body)
	}
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.TransportResponse)
	return resp, args.Error(1)
}
