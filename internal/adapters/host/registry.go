package host

import (
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/port"
)

// NewAdapters builds the adapter of every supported host
func NewAdapters(cfg config.HostsConfig) []port.HostAdapter {
	return []port.HostAdapter{
		NewBuzzHeavier(cfg.BuzzHeavierURL, cfg.BuzzHeavierPublicURL),
		NewCatbox(cfg.CatboxURL),
		NewLitterbox(cfg.LitterboxURL),
	}
}
