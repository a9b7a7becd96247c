package host

import (
	"sendyourfiles/internal/core/domain"
)

// Litterbox uploads to litterbox, the ephemeral sibling of catbox
type Litterbox struct {
	url string
}

// NewLitterbox creates a Litterbox adapter
func NewLitterbox(url string) *Litterbox {
	return &Litterbox{url: url}
}

func (l *Litterbox) Host() domain.HostID {
	return domain.HostLitterbox
}

func (l *Litterbox) BuildRequest(file domain.UploadableFile, cfg domain.HostConfig) (*domain.UploadRequest, error) {
	expiry, err := domain.ParseExpiryCode(string(cfg.Expiry))
	if err != nil {
		return nil, err
	}

	form, err := encodeForm([]formField{
		{name: reqTypeField, value: reqTypeUpload},
		{name: timeLimitField, value: string(expiry)},
	}, fileField, file)
	if err != nil {
		return nil, err
	}

	return formRequest(l.url, form), nil
}

func (l *Litterbox) ParseResponse(statusCode int, body []byte) (string, error) {
	return parseTextURL(domain.HostLitterbox, statusCode, body)
}
