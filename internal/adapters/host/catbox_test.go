package host_test

import (
	"net/http"
	"sendyourfiles/internal/adapters/host"
	"sendyourfiles/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatboxURL = "https://catbox.moe/user/api.php"

func newCatbox() *host.Catbox {
	return host.NewCatbox(testCatboxURL)
}

func TestCatbox_BuildRequest(t *testing.T) {
	t.Run("without userhash", func(t *testing.T) {
		//Arrange
		file := newFile("clip.webm", "video/webm", []byte("webm bytes"))

		//Act
		req, err := newCatbox().BuildRequest(file, domain.HostConfig{Host: domain.HostCatbox})
		require.NoError(t, err)
		parts, _ := readForm(t, req)

		//Assert
		assert.Equal(t, testCatboxURL, req.URL)
		assert.Equal(t, http.MethodPost, req.Method)
		require.Len(t, parts, 2)
		assert.Equal(t, "reqtype", parts[0].name)
		assert.Equal(t, "fileupload", string(parts[0].data))
		assert.Equal(t, "fileToUpload", parts[1].name)
		assert.Equal(t, "clip.webm", parts[1].fileName)
		assert.Equal(t, "video/webm", parts[1].contentType)
		assert.Equal(t, []byte("webm bytes"), parts[1].data)
	})

	t.Run("with userhash", func(t *testing.T) {
		//Arrange
		file := newFile("clip.webm", "video/webm", []byte("webm bytes"))

		//Act
		req, err := newCatbox().BuildRequest(file, domain.HostConfig{Host: domain.HostCatbox, UserHash: "hash123"})
		require.NoError(t, err)
		parts, _ := readForm(t, req)

		//Assert
		require.Len(t, parts, 3)
		assert.Equal(t, "reqtype", parts[0].name)
		assert.Equal(t, "userhash", parts[1].name)
		assert.Equal(t, "hash123", string(parts[1].data))
		assert.Equal(t, "fileToUpload", parts[2].name)
	})
}

func TestCatbox_ParseResponse(t *testing.T) {
	adapter := newCatbox()

	t.Run("url", func(t *testing.T) {
		url, err := adapter.ParseResponse(http.StatusOK, []byte("https://files.catbox.moe/xyz.png"))
		require.NoError(t, err)
		assert.Equal(t, "https://files.catbox.moe/xyz.png", url)
	})

	t.Run("url with trailing newline", func(t *testing.T) {
		url, err := adapter.ParseResponse(http.StatusOK, []byte("https://files.catbox.moe/xyz.png\n"))
		require.NoError(t, err)
		assert.Equal(t, "https://files.catbox.moe/xyz.png", url)
	})

	t.Run("error text with status 200", func(t *testing.T) {
		_, err := adapter.ParseResponse(http.StatusOK, []byte("Error: file too large"))
		assert.ErrorIs(t, err, domain.ErrResponseFormat)
		assert.Contains(t, err.Error(), "Error: file too large")
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := adapter.ParseResponse(http.StatusOK, nil)
		assert.ErrorIs(t, err, domain.ErrResponseFormat)
	})

	t.Run("non 2xx status", func(t *testing.T) {
		_, err := adapter.ParseResponse(http.StatusPreconditionFailed, []byte("No files given"))
		assert.ErrorIs(t, err, domain.ErrTransport)
		assert.NotErrorIs(t, err, domain.ErrResponseFormat)
		assert.Contains(t, err.Error(), "412")
		assert.Contains(t, err.Error(), "No files given")
	})
}
