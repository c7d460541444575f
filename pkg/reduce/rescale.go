package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Range is a closed numeric interval.
type Range struct {
	Lo float64
	Hi float64
}

// Rescale maps values affinely into the target range:
//
//	target.Lo + (x - source.Lo) / (source.Hi - source.Lo) * (target.Hi - target.Lo)
//
// If source is nil the observed min/max of values is used. A zero-width
// source range is rejected with ErrDegenerateRange instead of dividing
// by zero.
func Rescale(values []float64, target Range, source *Range) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}

	var lo, hi float64
	if source != nil {
		lo, hi = source.Lo, source.Hi
	} else {
		lo, hi = floats.Min(values), floats.Max(values)
	}
	if hi == lo {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrDegenerateRange, lo, hi)
	}

	span := target.Hi - target.Lo
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = target.Lo + (v-lo)/(hi-lo)*span
	}
	return out, nil
}
