package domain

import (
	"io"
)

const (
	DefaultFileName    = "upload.bin"
	DefaultContentType = "application/octet-stream"
)

// UploadableFile is a file handed over for upload. Data is read from offset 0 up to Size on every attempt.
type UploadableFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        io.ReaderAt
}

// FileName returns the file name or DefaultFileName when empty
func (f UploadableFile) FileName() string {
	if f.Name == "" {
		return DefaultFileName
	}
	return f.Name
}

// MimeType returns the declared content type or DefaultContentType when empty
func (f UploadableFile) MimeType() string {
	if f.ContentType == "" {
		return DefaultContentType
	}
	return f.ContentType
}

// Reader returns a fresh reader over the file content
func (f UploadableFile) Reader() io.Reader {
	return io.NewSectionReader(f.Data, 0, f.Size)
}

// UploadRequest describes the request a host expects
type UploadRequest struct {
	URL           string
	Method        string
	Header        map[string]string
	Body          io.Reader
	ContentLength int64
}

// TransportResponse is a fully buffered host response
type TransportResponse struct {
	StatusCode int
	Body       []byte
}

// UploadOutcome is the result of a dispatch. URL is set only when External is true.
type UploadOutcome struct {
	External bool
	URL      string
	Host     HostID
}
