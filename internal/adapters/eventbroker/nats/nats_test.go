package nats_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	nats2 "sendyourfiles/internal/adapters/eventbroker/nats"
	"sendyourfiles/internal/config"
	"sendyourfiles/internal/core/domain"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func TestPublisher_PublishUploadCompleted(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.NATSConfig{
		URL:        natsURL,
		Name:       "test-publisher",
		StreamName: "TEST_UPLOADS",
		Subject:    "uploads.completed",
	}
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, discardLogger)
	require.NoError(t, err)
	defer publisher.Close()

	event := domain.UploadCompletedEvent{
		ID:          uuid.New(),
		Host:        domain.HostCatbox,
		FileName:    "match.mp4",
		SizeBytes:   42 * domain.MiB,
		ContentType: "video/mp4",
		URL:         "https://files.catbox.moe/abc.mp4",
		UploadedAt:  time.Now().UTC().Truncate(time.Second),
	}

	// Act
	require.NoError(t, publisher.PublishUploadCompleted(ctx, event))
	// duplicate message IDs are dropped by the stream
	require.NoError(t, publisher.PublishUploadCompleted(ctx, event))

	// Assert
	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()
	js, err := jetstream.New(nc)
	require.NoError(t, err)

	stream, err := js.Stream(ctx, cfg.StreamName)
	require.NoError(t, err)
	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)

	msg, err := stream.GetMsg(ctx, info.State.FirstSeq)
	require.NoError(t, err)
	assert.Equal(t, cfg.Subject, msg.Subject)

	var received domain.UploadCompletedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &received))
	assert.Equal(t, event.ID, received.ID)
	assert.Equal(t, event.URL, received.URL)
	assert.Equal(t, event.Host, received.Host)
	assert.Equal(t, event.SizeBytes, received.SizeBytes)
	assert.True(t, event.UploadedAt.Equal(received.UploadedAt))
}

func TestNewNATSPublisher_ConnectionError(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := nats2.NewNATSPublisher(context.Background(), config.NATSConfig{
		URL:        "nats://127.0.0.1:1",
		StreamName: "X",
		Subject:    "x",
	}, discardLogger)

	assert.Error(t, err)
}
