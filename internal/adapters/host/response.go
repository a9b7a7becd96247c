package host

import (
	"fmt"
	"sendyourfiles/internal/core/domain"
	"strings"
)

const errorPrefix = "Error"

func checkStatus(host domain.HostID, statusCode int, body []byte) error {
	if statusCode < 200 || statusCode > 299 {
		return fmt.Errorf("%w: %s upload failed with status %d: %s",
			domain.ErrTransport, host, statusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// parseTextURL handles hosts answering with the URL as plain text, or an "Error..." message even on HTTP 200
func parseTextURL(host domain.HostID, statusCode int, body []byte) (string, error) {
	if err := checkStatus(host, statusCode, body); err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(body))
	if strings.HasPrefix(text, errorPrefix) {
		return "", fmt.Errorf("%w: %s upload failed: %s", domain.ErrResponseFormat, host, text)
	}
	if text == "" {
		return "", fmt.Errorf("%w: %s returned an empty response", domain.ErrResponseFormat, host)
	}

	return text, nil
}
