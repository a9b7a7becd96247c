package settings

import (
	"context"
	"fmt"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/domain"
)

// Store is a read-only settings store backed by the environment configuration
type Store struct {
	cfg config.SettingsConfig
}

// NewStore creates a Store
func NewStore(cfg config.SettingsConfig) *Store {
	return &Store{cfg: cfg}
}

// HostConfig returns the configured host selection
func (s *Store) HostConfig(_ context.Context) (domain.HostConfig, error) {
	host, err := domain.ParseHostID(s.cfg.FileProvider)
	if err != nil {
		return domain.HostConfig{}, fmt.Errorf("invalid file provider setting: %w", err)
	}

	expiry, err := domain.ParseExpiryCode(s.cfg.LitterboxTimeLimit)
	if err != nil {
		return domain.HostConfig{}, fmt.Errorf("invalid litterbox time limit setting: %w", err)
	}

	return domain.HostConfig{
		Host:     host,
		Expiry:   expiry,
		UserHash: s.cfg.CatboxUserHash,
	}, nil
}

// Enabled reports whether large files are re-routed at all
func (s *Store) Enabled() bool {
	return s.cfg.Enabled
}
