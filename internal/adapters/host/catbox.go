package host

import (
	"net/http"
	"sendyourfiles/internal/core/domain"
)

const (
	fileField      = "fileToUpload"
	reqTypeField   = "reqtype"
	reqTypeUpload  = "fileupload"
	userHashField  = "userhash"
	timeLimitField = "time"
)

// Catbox uploads to catbox.moe, a persistent host with an optional userhash
type Catbox struct {
	url string
}

// NewCatbox creates a Catbox adapter
func NewCatbox(url string) *Catbox {
	return &Catbox{url: url}
}

func (c *Catbox) Host() domain.HostID {
	return domain.HostCatbox
}

func (c *Catbox) BuildRequest(file domain.UploadableFile, cfg domain.HostConfig) (*domain.UploadRequest, error) {
	fields := []formField{{name: reqTypeField, value: reqTypeUpload}}
	if cfg.UserHash != "" {
		fields = append(fields, formField{name: userHashField, value: cfg.UserHash})
	}

	form, err := encodeForm(fields, fileField, file)
	if err != nil {
		return nil, err
	}

	return formRequest(c.url, form), nil
}

func (c *Catbox) ParseResponse(statusCode int, body []byte) (string, error) {
	return parseTextURL(domain.HostCatbox, statusCode, body)
}

func formRequest(url string, form *formBody) *domain.UploadRequest {
	return &domain.UploadRequest{
		URL:    url,
		Method: http.MethodPost,
		Header: map[string]string{
			"Content-Type": form.contentType,
		},
		Body:          form.body,
		ContentLength: form.length,
	}
}
