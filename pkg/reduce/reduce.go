// Package reduce turns raw per-timestep simulation arrays into single
// per-entity value vectors: statistic reduction over the time axis,
// discretization into bins, and affine rescaling for visual encoding.
package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistic names a time-axis reduction rule.
type Statistic string

const (
	StatMean     Statistic = "mean"
	StatMin      Statistic = "min"
	StatMax      Statistic = "max"
	StatTimeStep Statistic = "time_step"
)

// Reduce collapses a (timesteps x entities) matrix to one value per entity.
//
// StatMean, StatMin and StatMax reduce along the time axis. StatTimeStep
// selects the row at *pit; pit must be non-nil for it, and zero is a valid
// index. The returned vector is always freshly allocated.
func Reduce(values [][]float64, statistic Statistic, pit *int) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	width := len(values[0])
	for i, row := range values {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedSeries, i, len(row), width)
		}
	}

	switch statistic {
	case StatMean, StatMin, StatMax:
		out := make([]float64, width)
		col := make([]float64, len(values))
		for e := 0; e < width; e++ {
			for t, row := range values {
				col[t] = row[e]
			}
			switch statistic {
			case StatMean:
				out[e] = stat.Mean(col, nil)
			case StatMin:
				out[e] = floats.Min(col)
			case StatMax:
				out[e] = floats.Max(col)
			}
		}
		return out, nil

	case StatTimeStep:
		if pit == nil {
			return nil, ErrMissingPointInTime
		}
		if *pit < 0 || *pit >= len(values) {
			return nil, fmt.Errorf("%w: index %d with %d rows", ErrPointInTimeOutOfRange, *pit, len(values))
		}
		out := make([]float64, width)
		copy(out, values[*pit])
		return out, nil

	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnknownStatistic, statistic)
	}
}
