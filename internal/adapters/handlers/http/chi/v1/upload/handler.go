package upload

import (
	"log/slog"
	"sendyourfiles/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// formMaxMemory is the part of a form kept in memory, the rest is spooled to temporary files
const formMaxMemory = 32 << 20

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	settings      port.SettingsStore
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, settings port.SettingsStore, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		settings:      settings,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadFileV1)
	router.Get("/hosts", h.ListHostsV1)

	return router
}
