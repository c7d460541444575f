// Package metrics instruments frame ingestion, interpolation and
// read-phase access with Prometheus collectors.
package metrics

import (
	"time"
)

// RecordFrameAppend records one AddFrame call with its duration
func (r *Registry) RecordFrameAppend(entityKind, track, status string, duration time.Duration) {
	r.FramesAppendedTotal.WithLabelValues(entityKind, track, status).Inc()
	r.FrameAppendDuration.WithLabelValues(entityKind).Observe(duration.Seconds())
}

// RecordInterpolation records one interpolation run with its duration
func (r *Registry) RecordInterpolation(entityKind, status string, duration time.Duration) {
	r.InterpolationsTotal.WithLabelValues(entityKind, status).Inc()
	r.InterpolationDuration.WithLabelValues(entityKind).Observe(duration.Seconds())
}

// RecordFrameRead records one frame-attribute read
func (r *Registry) RecordFrameRead(entityKind string) {
	r.FrameReadsTotal.WithLabelValues(entityKind).Inc()
}

// RecordWidthRescale records one width rescale operation
func (r *Registry) RecordWidthRescale(status string) {
	r.WidthRescalesTotal.WithLabelValues(status).Inc()
}

// SessionOpened increments the active-session gauge
func (r *Registry) SessionOpened() {
	r.SessionsActive.Inc()
}

// SessionClosed decrements the active-session gauge
func (r *Registry) SessionClosed() {
	r.SessionsActive.Dec()
}
