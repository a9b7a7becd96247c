package upload

import (
	"fmt"
	"log/slog"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/domain"
	"sendyourfiles/internal/core/port"
)

type uploadService struct {
	adapters      map[domain.HostID]port.HostAdapter
	transport     port.Transport
	publisher     port.EventPublisher
	observer      port.UploadObserver
	baseThreshold int64
	logger        *slog.Logger
}

// NewUploadService creates the upload dispatcher. publisher and observer are optional.
// Every supported host must be served by exactly one adapter.
func NewUploadService(
	adapters []port.HostAdapter,
	transport port.Transport,
	publisher port.EventPublisher,
	observer port.UploadObserver,
	cfg config.UploadConfig,
	logger *slog.Logger,
) (port.UploadService, error) {

	byHost := make(map[domain.HostID]port.HostAdapter, len(adapters))
	for _, adapter := range adapters {
		id := adapter.Host()
		if !id.Valid() {
			return nil, fmt.Errorf("%w: adapter registered for %q", domain.ErrUnknownHost, id)
		}
		if _, ok := byHost[id]; ok {
			return nil, fmt.Errorf("duplicate adapter for host %s", id)
		}
		byHost[id] = adapter
	}
	for _, id := range domain.Hosts {
		if _, ok := byHost[id]; !ok {
			return nil, fmt.Errorf("no adapter for host %s", id)
		}
	}

	threshold := cfg.BaseThreshold
	if threshold <= 0 {
		threshold = domain.DefaultBaseThreshold
	}

	return &uploadService{
		adapters:      byHost,
		transport:     transport,
		publisher:     publisher,
		observer:      observer,
		baseThreshold: threshold,
		logger:        logger,
	}, nil
}

func (s *uploadService) BaseThreshold() int64 {
	return s.baseThreshold
}
