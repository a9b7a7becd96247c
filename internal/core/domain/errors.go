package domain

import "errors"

// ErrUnknownHost is an error thrown when a host identifier is not supported
var ErrUnknownHost = errors.New("unknown file host")

// ErrInvalidExpiry is an error thrown when an expiry code is not supported
var ErrInvalidExpiry = errors.New("invalid expiry code")

// ErrFileTooLarge is an error thrown when a file exceeds the host ceiling
var ErrFileTooLarge = errors.New("file too large for this host")

// ErrTransport is an error thrown when the upload request could not be executed or was rejected
var ErrTransport = errors.New("transport error")

// ErrInvalidURL is an error thrown when a request URL is malformed
var ErrInvalidURL = errors.New("invalid url")

// ErrResponseFormat is an error thrown when a host response holds no usable URL
var ErrResponseFormat = errors.New("unusable host response")

// Error kinds, used as metric labels and in API error payloads
const (
	KindOK             = "ok"
	KindUnknownHost    = "unknown_host"
	KindInvalidExpiry  = "invalid_expiry"
	KindTooLarge       = "too_large"
	KindTransport      = "transport"
	KindResponseFormat = "response_format"
	KindOther          = "other"
)

// ErrorKind classifies err into one of the Kind constants
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrUnknownHost):
		return KindUnknownHost
	case errors.Is(err, ErrInvalidExpiry):
		return KindInvalidExpiry
	case errors.Is(err, ErrFileTooLarge):
		return KindTooLarge
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrResponseFormat):
		return KindResponseFormat
	default:
		return KindOther
	}
}
