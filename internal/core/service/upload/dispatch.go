package upload

import (
	"context"
	"errors"
	"fmt"
	"sendyourfiles/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

func (s *uploadService) Dispatch(ctx context.Context, file domain.UploadableFile, cfg domain.HostConfig) (*domain.UploadOutcome, error) {

	if !NeedsExternalHost(file, s.baseThreshold) {
		s.logger.Info("file under base threshold, using direct upload", "file_name", file.FileName(), "size_bytes", file.Size)
		if s.observer != nil {
			s.observer.RecordLocal()
		}
		return &domain.UploadOutcome{External: false}, nil
	}

	s.logger.Info("uploading to external host", "host", cfg.Host, "file_name", file.FileName(), "size_bytes", file.Size)

	start := time.Now()
	url, err := s.upload(ctx, file, cfg)
	if s.observer != nil {
		s.observer.RecordUpload(cfg.Host, time.Since(start), file.Size, err)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("upload completed", "host", cfg.Host, "url", url, "duration", time.Since(start))
	s.publishCompleted(ctx, file, cfg.Host, url)

	return &domain.UploadOutcome{External: true, URL: url, Host: cfg.Host}, nil
}

func (s *uploadService) upload(ctx context.Context, file domain.UploadableFile, cfg domain.HostConfig) (string, error) {
	adapter, ok := s.adapters[cfg.Host]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownHost, cfg.Host)
	}

	if ExceedsHostCeiling(file, cfg.Host) {
		limit, _ := cfg.Host.Ceiling()
		return "", fmt.Errorf("%w: %s accepts up to %d bytes, got %d", domain.ErrFileTooLarge, cfg.Host, limit, file.Size)
	}

	req, err := adapter.BuildRequest(file, cfg)
	if err != nil {
		return "", fmt.Errorf("could not build %s upload request: %w", cfg.Host, err)
	}

	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		if !errors.Is(err, domain.ErrTransport) {
			err = fmt.Errorf("%w: %w", domain.ErrTransport, err)
		}
		return "", fmt.Errorf("%s upload failed: %w", cfg.Host, err)
	}

	return adapter.ParseResponse(resp.StatusCode, resp.Body)
}

func (s *uploadService) publishCompleted(ctx context.Context, file domain.UploadableFile, host domain.HostID, url string) {
	if s.publisher == nil {
		return
	}

	event := domain.UploadCompletedEvent{
		ID:          uuid.New(),
		Host:        host,
		FileName:    file.FileName(),
		SizeBytes:   file.Size,
		ContentType: file.MimeType(),
		URL:         url,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishUploadCompleted(ctx, event); err != nil {
		s.logger.Warn("failed to publish upload completed event", "error", err, "event_id", event.ID)
	}
}
