package port

import (
	"context"
	"sendyourfiles/internal/core/domain"
)

// Transport executes a single HTTP request and buffers the response
type Transport interface {
	Execute(ctx context.Context, req *domain.UploadRequest) (*domain.TransportResponse, error)
}
