package upload

import (
	"encoding/json"
	"errors"
	"net/http"
	"sendyourfiles/internal/adapters/filesource"
	"sendyourfiles/internal/core/domain"
)

// V1UploadFileResponse is the outcome of an upload
type V1UploadFileResponse struct {
	External bool   `json:"external"`
	URL      string `json:"url,omitempty"`
	Host     string `json:"host,omitempty"`
}

func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(formMaxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Error("error parsing upload form", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to remove temporary form files", "error", err)
		}
	}()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}

	file, closer, err := filesource.FromMultipart(headers[0])
	if err != nil {
		h.logger.Error("error opening uploaded file", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer closer.Close()

	if !h.settings.Enabled() {
		h.writeJSON(w, http.StatusOK, V1UploadFileResponse{External: false})
		return
	}

	base, err := h.settings.HostConfig(r.Context())
	if err != nil {
		h.logger.Error("error reading host settings", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	cfg, err := base.WithOverrides(r.FormValue("host"), r.FormValue("expiry"), r.FormValue("userhash"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, dispatchErr := h.uploadService.Dispatch(r.Context(), file, cfg)
	switch {
	case errors.Is(dispatchErr, domain.ErrUnknownHost), errors.Is(dispatchErr, domain.ErrInvalidExpiry):
		h.logger.Error("invalid request", "error", dispatchErr)
		http.Error(w, dispatchErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(dispatchErr, domain.ErrFileTooLarge):
		h.logger.Error("file too large for host", "error", dispatchErr)
		http.Error(w, dispatchErr.Error(), http.StatusRequestEntityTooLarge)
		return
	case errors.Is(dispatchErr, domain.ErrTransport), errors.Is(dispatchErr, domain.ErrResponseFormat):
		h.logger.Error("external host upload failed", "error", dispatchErr)
		http.Error(w, dispatchErr.Error(), http.StatusBadGateway)
		return
	case dispatchErr != nil:
		h.logger.Error("error dispatching upload", "error", dispatchErr)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	default:
		if !outcome.External {
			h.writeJSON(w, http.StatusOK, V1UploadFileResponse{External: false})
			return
		}
		h.writeJSON(w, http.StatusCreated, V1UploadFileResponse{
			External: true,
			URL:      outcome.URL,
			Host:     string(outcome.Host),
		})
	}

}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
