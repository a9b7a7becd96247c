package port

import (
	"context"
	"sendyourfiles/internal/core/domain"
)

// SettingsStore supplies the user's host selection
type SettingsStore interface {
	HostConfig(ctx context.Context) (domain.HostConfig, error)
	Enabled() bool
}
