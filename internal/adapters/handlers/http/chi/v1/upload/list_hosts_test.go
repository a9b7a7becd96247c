package upload_test

import (
	"encoding/json"
	"errors"
	http2 "net/http"
	"net/http/httptest"
	upload2 "sendyourfiles/internal/adapters/handlers/http/chi/v1/upload"
	"sendyourfiles/internal/adapters/settings"
	"sendyourfiles/internal/core/domain"
	"sendyourfiles/internal/core/service/upload"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListHostsV1(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		//Arrange
		mockService := upload.NewMockUploadService()
		mockService.On("BaseThreshold").Return(10 * domain.MiB)
		mockStore := settings.NewMockStore()
		mockStore.On("HostConfig", mock.Anything).Return(defaultHostConfig, nil)

		h := newTestRouter(mockService, mockStore, 10<<20)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/api/v1/hosts", nil))

		//Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var response upload2.V1ListHostsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "catbox", response.Default)
		assert.Equal(t, 10*domain.MiB, response.BaseThresholdBytes)
		require.Len(t, response.Hosts, 3)
		assert.Equal(t, "buzzheavier", response.Hosts[0].ID)
		assert.Nil(t, response.Hosts[0].CeilingBytes)
		require.NotNil(t, response.Hosts[1].CeilingBytes)
		assert.Equal(t, 200*domain.MiB, *response.Hosts[1].CeilingBytes)
		require.NotNil(t, response.Hosts[2].CeilingBytes)
		assert.Equal(t, 1024*domain.MiB, *response.Hosts[2].CeilingBytes)
	})

	t.Run("broken settings still list hosts", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		mockService.On("BaseThreshold").Return(10 * domain.MiB)
		mockStore := settings.NewMockStore()
		mockStore.On("HostConfig", mock.Anything).Return(domain.HostConfig{}, errors.New("bad provider"))

		h := newTestRouter(mockService, mockStore, 10<<20)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/api/v1/hosts", nil))

		assert.Equal(t, http2.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"default"`)
	})
}

func TestHealth(t *testing.T) {
	h := newTestRouter(upload.NewMockUploadService(), settings.NewMockStore(), 10<<20)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http2.MethodGet, "/health", nil))

	assert.Equal(t, http2.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
