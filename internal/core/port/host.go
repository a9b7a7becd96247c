package port

import "sendyourfiles/internal/core/domain"

// HostAdapter translates an upload into one host's request/response contract
type HostAdapter interface {
	Host() domain.HostID
	BuildRequest(file domain.UploadableFile, cfg domain.HostConfig) (*domain.UploadRequest, error)
	ParseResponse(statusCode int, body []byte) (string, error)
}
