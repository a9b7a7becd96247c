package port

import (
	"context"
	"sendyourfiles/internal/core/domain"
	"time"
)

// UploadService is an interface to define the upload dispatcher
type UploadService interface {
	Dispatch(ctx context.Context, file domain.UploadableFile, cfg domain.HostConfig) (*domain.UploadOutcome, error)
	BaseThreshold() int64
}

// UploadObserver records telemetry for dispatches
type UploadObserver interface {
	RecordUpload(host domain.HostID, duration time.Duration, sizeBytes int64, err error)
	RecordLocal()
}
