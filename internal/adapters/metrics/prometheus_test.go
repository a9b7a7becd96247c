package metrics_test

import (
	"fmt"
	"sendyourfiles/internal/adapters/metrics"
	"sendyourfiles/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusObserver(t *testing.T) {
	//Arrange
	reg := prometheus.NewRegistry()
	observer, err := metrics.NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	//Act
	observer.RecordUpload(domain.HostCatbox, time.Second, 100, nil)
	observer.RecordUpload(domain.HostCatbox, time.Second, 50, nil)
	observer.RecordUpload(domain.HostCatbox, time.Second, 999, fmt.Errorf("%w: boom", domain.ErrResponseFormat))
	observer.RecordUpload("dropbox", time.Millisecond, 1, fmt.Errorf("%w: dropbox", domain.ErrUnknownHost))
	observer.RecordLocal()
	observer.RecordLocal()

	//Assert
	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.ElementsMatch(t, []string{
		"test_upload_duration_seconds",
		"test_uploads_total",
		"test_uploaded_bytes_total",
		"test_local_uploads_total",
	}, names)

	count, err := testutil.GatherAndCount(reg, "test_uploads_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNewPrometheusObserver_RegistersTwice(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := metrics.NewPrometheusObserver("twice", reg)
	require.NoError(t, err)
	_, err = metrics.NewPrometheusObserver("twice", reg)

	assert.NoError(t, err)
}

func TestPrometheusObserver_NilSafe(t *testing.T) {
	var observer *metrics.PrometheusObserver

	assert.NotPanics(t, func() {
		observer.RecordUpload(domain.HostCatbox, time.Second, 1, nil)
		observer.RecordLocal()
	})
}

func TestNewPrometheusObserver_SharesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := metrics.NewPrometheusObserver("shared", reg)
	require.NoError(t, err)
	second, err := metrics.NewPrometheusObserver("shared", reg)
	require.NoError(t, err)

	first.RecordLocal()
	second.RecordLocal()

	expected := `
# HELP shared_local_uploads_total Count of files small enough for the platform's own upload.
# TYPE shared_local_uploads_total counter
shared_local_uploads_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "shared_local_uploads_total"))
}
