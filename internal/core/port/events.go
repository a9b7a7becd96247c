package port

import (
	"context"
	"sendyourfiles/internal/core/domain"
)

// EventPublisher is an interface to define an upload event publisher (nats, kafka, ...)
type EventPublisher interface {
	PublishUploadCompleted(ctx context.Context, event domain.UploadCompletedEvent) error
	Close() error
}
