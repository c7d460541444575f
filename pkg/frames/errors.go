package frames

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNoEntities          = errors.New("entity list is empty")
	ErrMissingPositions    = errors.New("entity has no position")
	ErrEntityCountMismatch = errors.New("frame length does not match entity count")
	ErrUnknownTrack        = errors.New("edge parameter must be edge_color or edge_width")
	ErrUnknownParameter    = errors.New("parameter must be flow_rate, link_quality, diameter or custom_data")
	ErrMissingOutput       = errors.New("simulation output required for this parameter")
	ErrMissingCustomData   = errors.New("custom data matrix required for custom_data parameter")
	ErrNoWidthFrames       = errors.New("no width frames recorded; add an edge_width frame before rescaling")
)

// SeriesError provides structured error information for frame-series
// operations.
type SeriesError struct {
	Op    string // Operation that failed (e.g., "AddFrame", "RescaleWidths")
	Kind  string // Entity kind ("node" or "link")
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *SeriesError) Error() string {
	return fmt.Sprintf("%s %s series: %v", e.Op, e.Kind, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *SeriesError) Unwrap() error {
	return e.Cause
}

func opErr(op, kind string, cause error) *SeriesError {
	return &SeriesError{Op: op, Kind: kind, Cause: cause}
}
