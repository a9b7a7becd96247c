package domain_test

import (
	"io"
	"sendyourfiles/internal/core/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadableFile_Defaults(t *testing.T) {
	f := domain.UploadableFile{}

	assert.Equal(t, "upload.bin", f.FileName())
	assert.Equal(t, "application/octet-stream", f.MimeType())
}

func TestUploadableFile_ReaderIsFreshEachTime(t *testing.T) {
	//Arrange
	f := domain.UploadableFile{Name: "a.txt", Size: 5, ContentType: "text/plain", Data: strings.NewReader("hello world")}

	//Act
	first, err := io.ReadAll(f.Reader())
	require.NoError(t, err)
	second, err := io.ReadAll(f.Reader())
	require.NoError(t, err)

	//Assert
	assert.Equal(t, "hello", string(first))
	assert.Equal(t, first, second)
}
