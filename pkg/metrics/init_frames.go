package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry creates a metrics registry with all engine metrics registered
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.FramesAppendedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowvis_frames_appended_total",
			Help: "Total number of frames appended to a series",
		},
		[]string{"entity_kind", "track", "status"},
	)

	r.FrameAppendDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowvis_frame_append_duration_seconds",
			Help:    "Frame reduction and append duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"entity_kind"},
	)

	r.InterpolationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowvis_interpolations_total",
			Help: "Total number of frame-sequence interpolation runs",
		},
		[]string{"entity_kind", "status"},
	)

	r.InterpolationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowvis_interpolation_duration_seconds",
			Help:    "Cubic-spline resampling duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"entity_kind"},
	)

	r.FrameReadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowvis_frame_reads_total",
			Help: "Total number of frame-attribute reads",
		},
		[]string{"entity_kind"},
	)

	r.WidthRescalesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowvis_width_rescales_total",
			Help: "Total number of width rescale operations",
		},
		[]string{"status"},
	)

	r.SessionsActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "flowvis_sessions_active",
			Help: "Number of visualization sessions currently open",
		},
	)

	return r
}

// Gatherer exposes the underlying prometheus registry for scraping
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
