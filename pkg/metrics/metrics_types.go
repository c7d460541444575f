package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the frame-data engine
type Registry struct {
	// Ingestion metrics
	FramesAppendedTotal *prometheus.CounterVec
	FrameAppendDuration *prometheus.HistogramVec

	// Interpolation metrics
	InterpolationsTotal   *prometheus.CounterVec
	InterpolationDuration *prometheus.HistogramVec

	// Read-phase metrics
	FrameReadsTotal *prometheus.CounterVec

	// Width-encoding metrics
	WidthRescalesTotal *prometheus.CounterVec

	// Session metrics
	SessionsActive prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
