package reduce

import "errors"

// Common sentinel errors for reduction, binning and rescaling
var (
	ErrEmptySeries           = errors.New("time series has no rows")
	ErrRaggedSeries          = errors.New("time series rows differ in length")
	ErrUnknownStatistic      = errors.New("statistic must be one of mean, min, max, time_step")
	ErrMissingPointInTime    = errors.New("time_step statistic requires a point in time")
	ErrPointInTimeOutOfRange = errors.New("point in time outside series range")
	ErrEmptyValues           = errors.New("values vector is empty")
	ErrInvalidBinCount       = errors.New("bin count must be positive")
	ErrUnsortedBoundaries    = errors.New("interval boundaries must be strictly increasing")
	ErrUnknownIntervals      = errors.New("intervals must be a bin count or a boundary list")
	ErrDegenerateRange       = errors.New("source range has zero width")
)
