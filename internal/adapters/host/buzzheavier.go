package host

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sendyourfiles/internal/core/domain"
	"strings"
)

// BuzzHeavier uploads the raw file with a PUT named after the file
type BuzzHeavier struct {
	uploadURL string
	publicURL string
}

// NewBuzzHeavier creates a BuzzHeavier adapter
func NewBuzzHeavier(uploadURL, publicURL string) *BuzzHeavier {
	return &BuzzHeavier{
		uploadURL: strings.TrimRight(uploadURL, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

type buzzHeavierResponse struct {
	Data *struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

func (b *BuzzHeavier) Host() domain.HostID {
	return domain.HostBuzzHeavier
}

func (b *BuzzHeavier) BuildRequest(file domain.UploadableFile, _ domain.HostConfig) (*domain.UploadRequest, error) {
	return &domain.UploadRequest{
		URL:    b.uploadURL + "/" + encodeURIComponent(file.FileName()),
		Method: http.MethodPut,
		Header: map[string]string{
			"Content-Type": file.MimeType(),
		},
		Body:          file.Reader(),
		ContentLength: file.Size,
	}, nil
}

func (b *BuzzHeavier) ParseResponse(statusCode int, body []byte) (string, error) {
	if err := checkStatus(domain.HostBuzzHeavier, statusCode, body); err != nil {
		return "", err
	}

	var resp buzzHeavierResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: buzzheavier returned invalid JSON: %w", domain.ErrResponseFormat, err)
	}
	if resp.Data == nil {
		return "", fmt.Errorf("%w: buzzheavier response has no data.id", domain.ErrResponseFormat)
	}

	id := rawID(resp.Data.ID)
	if id == "" {
		return "", fmt.Errorf("%w: buzzheavier response has no data.id", domain.ErrResponseFormat)
	}

	return b.publicURL + "/" + id, nil
}

// rawID accepts the identifier as a JSON string or number
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// encodeURIComponent escapes s for a single path segment, spaces become %20
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
