package filesource

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sendyourfiles/internal/core/domain"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen matches the read limit of mimetype.DetectReader
const sniffLen = 3072

// FromPath opens a local file for upload. The returned closer releases the file.
func FromPath(path string) (domain.UploadableFile, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.UploadableFile{}, nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return domain.UploadableFile{}, nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return domain.UploadableFile{}, nil, fmt.Errorf("%s is a directory", path)
	}

	return domain.UploadableFile{
		Name:        filepath.Base(path),
		Size:        info.Size(),
		ContentType: ContentType(f, ""),
		Data:        f,
	}, f, nil
}

// FromMultipart wraps a file part of an HTTP form. The returned closer releases the part.
func FromMultipart(header *multipart.FileHeader) (domain.UploadableFile, io.Closer, error) {
	f, err := header.Open()
	if err != nil {
		return domain.UploadableFile{}, nil, fmt.Errorf("failed to open form file: %w", err)
	}

	return domain.UploadableFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: ContentType(f, header.Header.Get("Content-Type")),
		Data:        f,
	}, f, nil
}

// ContentType returns declared unless it is empty or generic, in which case the type is sniffed from the content
func ContentType(r io.ReaderAt, declared string) string {
	if declared != "" && declared != domain.DefaultContentType {
		return declared
	}

	head := make([]byte, sniffLen)
	n, err := r.ReadAt(head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return domain.DefaultContentType
	}
	if n == 0 {
		return domain.DefaultContentType
	}

	return mimetype.Detect(head[:n]).String()
}
