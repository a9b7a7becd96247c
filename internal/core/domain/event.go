package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadCompletedEvent is published after a file was stored on an external host
type UploadCompletedEvent struct {
	ID          uuid.UUID `json:"id"`
	Host        HostID    `json:"host"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	URL         string    `json:"url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
