package metrics

import (
	"errors"
	"fmt"
	"sendyourfiles/internal/core/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports dispatch metrics to Prometheus
type PrometheusObserver struct {
	uploadDuration *prometheus.HistogramVec
	uploads        *prometheus.CounterVec
	uploadedBytes  *prometheus.CounterVec
	localUploads   prometheus.Counter
}

// NewPrometheusObserver registers the upload metrics on reg, or on the default registerer when reg is nil
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "sendyourfiles"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	uploadDuration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_duration_seconds",
		Help:      "Latency of external host uploads.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"host"}))
	if err != nil {
		return nil, err
	}
	uploads, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Count of external upload attempts by outcome.",
	}, []string{"host", "result"}))
	if err != nil {
		return nil, err
	}
	uploadedBytes, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploaded_bytes_total",
		Help:      "Cumulative payload size successfully uploaded to external hosts.",
	}, []string{"host"}))
	if err != nil {
		return nil, err
	}
	localUploads, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "local_uploads_total",
		Help:      "Count of files small enough for the platform's own upload.",
	}))
	if err != nil {
		return nil, err
	}

	return &PrometheusObserver{
		uploadDuration: uploadDuration,
		uploads:        uploads,
		uploadedBytes:  uploadedBytes,
		localUploads:   localUploads,
	}, nil
}

// register returns the already registered collector when an identical one exists
func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return collector, fmt.Errorf("register upload metric: %w", err)
	}
	return collector, nil
}

// RecordUpload tracks upload duration, size, and outcome
func (o *PrometheusObserver) RecordUpload(host domain.HostID, duration time.Duration, sizeBytes int64, err error) {
	if o == nil {
		return
	}
	label := hostLabel(host)
	o.uploadDuration.WithLabelValues(label).Observe(duration.Seconds())
	o.uploads.WithLabelValues(label, domain.ErrorKind(err)).Inc()
	if err == nil {
		o.uploadedBytes.WithLabelValues(label).Add(float64(sizeBytes))
	}
}

// RecordLocal counts a file kept on the direct upload path
func (o *PrometheusObserver) RecordLocal() {
	if o == nil {
		return
	}
	o.localUploads.Inc()
}

// hostLabel bounds label cardinality to the supported hosts
func hostLabel(host domain.HostID) string {
	if host.Valid() {
		return string(host)
	}
	return "unknown"
}
