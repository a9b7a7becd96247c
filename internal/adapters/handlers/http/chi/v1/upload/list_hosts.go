package upload

import (
	"net/http"
	"sendyourfiles/internal/core/domain"
)

// V1Host describes a supported host. CeilingBytes is null for hosts without a limit.
type V1Host struct {
	ID           string `json:"id"`
	CeilingBytes *int64 `json:"ceiling_bytes"`
}

// V1ListHostsResponse lists the supported hosts
type V1ListHostsResponse struct {
	Default            string   `json:"default,omitempty"`
	BaseThresholdBytes int64    `json:"base_threshold_bytes"`
	Hosts              []V1Host `json:"hosts"`
}

func (h *HandlerV1) ListHostsV1(w http.ResponseWriter, r *http.Request) {
	resp := V1ListHostsResponse{
		BaseThresholdBytes: h.uploadService.BaseThreshold(),
		Hosts:              make([]V1Host, 0, len(domain.Hosts)),
	}

	if cfg, err := h.settings.HostConfig(r.Context()); err == nil {
		resp.Default = string(cfg.Host)
	} else {
		h.logger.Warn("error reading host settings", "error", err)
	}

	for _, id := range domain.Hosts {
		host := V1Host{ID: string(id)}
		if limit, ok := id.Ceiling(); ok {
			host.CeilingBytes = &limit
		}
		resp.Hosts = append(resp.Hosts, host)
	}

	h.writeJSON(w, http.StatusOK, resp)
}
