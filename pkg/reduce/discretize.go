package reduce

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Intervals specifies how continuous values are grouped into bins.
// A nil Intervals means no binning. The two implementations are
// BinCount (equal-width partitioning of the observed range) and
// Boundaries (explicit boundary points).
type Intervals interface {
	intervals()
}

// BinCount partitions [min(values), max(values)] into that many
// equal-width bins.
type BinCount int

// Boundaries bins values against explicit, strictly increasing
// boundary points. The widths need not be equal.
type Boundaries []float64

func (BinCount) intervals()   {}
func (Boundaries) intervals() {}

// Discretize maps values to integer bin indices (returned as floats so
// they can feed color tracks directly). A value exactly on a boundary
// falls into the bin whose lower edge equals that boundary. With a
// BinCount the observed maximum is clamped into the top bin, so indices
// span exactly 0..k-1; with explicit Boundaries no clamping is applied
// and a value below the first boundary yields index -1.
func Discretize(values []float64, intervals Intervals) ([]float64, error) {
	if intervals == nil {
		return values, nil
	}
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}

	switch iv := intervals.(type) {
	case BinCount:
		if iv < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidBinCount, iv)
		}
		bounds := make([]float64, int(iv)+1)
		floats.Span(bounds, floats.Min(values), floats.Max(values))
		out := make([]float64, len(values))
		for i, v := range values {
			idx := digitize(v, bounds) - 1
			if idx > int(iv)-1 {
				idx = int(iv) - 1
			}
			out[i] = float64(idx)
		}
		return out, nil

	case Boundaries:
		for i := 1; i < len(iv); i++ {
			if iv[i] <= iv[i-1] {
				return nil, ErrUnsortedBoundaries
			}
		}
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = float64(digitize(v, iv) - 1)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnknownIntervals, intervals)
	}
}

// digitize returns the number of boundaries less than or equal to v,
// i.e. the insertion index keeping bounds sorted with v placed after
// any equal boundary.
func digitize(v float64, bounds []float64) int {
	return sort.Search(len(bounds), func(i int) bool { return bounds[i] > v })
}
