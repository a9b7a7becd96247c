package resty

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/domain"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client is a transport for host uploads built on resty
type Client struct {
	client *resty.Client
	logger *slog.Logger
}

// NewClient creates a Client. Retries are disabled, every upload is a one-shot attempt.
func NewClient(cfg config.TransportConfig, logger *slog.Logger) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetPreRequestHook(applyContentLength)

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{client: client, logger: logger}
}

// Execute sends req and buffers the whole response body
func (c *Client) Execute(ctx context.Context, req *domain.UploadRequest) (*domain.TransportResponse, error) {
	target, err := validateURL(req.URL)
	if err != nil {
		return nil, err
	}

	r := c.client.R().
		SetContext(ctx).
		SetHeaders(req.Header)
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	if req.ContentLength > 0 {
		r.SetHeader("Content-Length", strconv.FormatInt(req.ContentLength, 10))
	}

	c.logger.Debug("executing upload request", "method", req.Method, "url", target, "content_length", req.ContentLength)

	resp, err := r.Execute(req.Method, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, req.Method, target, err)
	}

	c.logger.Debug("upload request done", "url", target, "status", resp.StatusCode(), "duration", resp.Time())

	return &domain.TransportResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

// applyContentLength moves the declared length onto the raw request so streamed bodies are not sent chunked
func applyContentLength(_ *resty.Client, req *http.Request) error {
	raw := req.Header.Get("Content-Length")
	if raw == "" {
		return nil
	}
	req.Header.Del("Content-Length")

	length, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid content length %q: %w", raw, err)
	}
	req.ContentLength = length
	return nil
}

func validateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %w: empty url", domain.ErrTransport, domain.ErrInvalidURL)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", domain.ErrTransport, domain.ErrInvalidURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("%w: %w: url must be absolute, got: %s", domain.ErrTransport, domain.ErrInvalidURL, trimmed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: %w: url scheme must be http or https, got: %s", domain.ErrTransport, domain.ErrInvalidURL, parsed.Scheme)
	}

	return parsed.String(), nil
}
