// Package interp resamples a discrete sequence of per-entity frames to a
// denser (or sparser) sequence using cubic splines, for smooth animation
// playback.
package interp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	gointerp "gonum.org/v1/gonum/interp"
)

// Sentinel errors for frame resampling
var (
	ErrInvalidFrameCount = errors.New("target frame count must be positive")
	ErrRaggedFrames      = errors.New("frames differ in entity count")
)

// Resample fits a not-a-knot cubic spline per entity through the frame
// sequence, treating frame indices 0..steps-1 as a uniform sample axis,
// and evaluates it at targetFrames evenly spaced points spanning the
// same axis. The first and last output frames therefore reproduce the
// first and last input frames. Two input frames degenerate to linear
// interpolation.
//
// With fewer than two frames the input is returned unchanged; smoothing
// is undefined below two samples. targetFrames smaller than the input
// count is valid and simply under-samples.
func Resample(frames [][]float64, targetFrames int) ([][]float64, error) {
	if targetFrames < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrameCount, targetFrames)
	}
	if len(frames) < 2 {
		return frames, nil
	}

	steps := len(frames)
	entities := len(frames[0])
	for i, f := range frames {
		if len(f) != entities {
			return nil, fmt.Errorf("%w: frame %d has %d values, want %d", ErrRaggedFrames, i, len(f), entities)
		}
	}

	xs := make([]float64, steps)
	floats.Span(xs, 0, float64(steps-1))

	newXs := make([]float64, targetFrames)
	if targetFrames == 1 {
		newXs[0] = 0
	} else {
		floats.Span(newXs, 0, float64(steps-1))
	}

	out := make([][]float64, targetFrames)
	for j := range out {
		out[j] = make([]float64, entities)
	}

	col := make([]float64, steps)
	for e := 0; e < entities; e++ {
		for t, f := range frames {
			col[t] = f[e]
		}
		pred, err := fitColumn(xs, col)
		if err != nil {
			return nil, err
		}
		for j, x := range newXs {
			out[j][e] = pred.Predict(x)
		}
	}
	return out, nil
}

// fitColumn fits one entity's value column. Two samples pin the spline
// down to a straight line, so the linear fitter is used directly there.
func fitColumn(xs, ys []float64) (gointerp.Predictor, error) {
	if len(xs) == 2 {
		var pl gointerp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return nil, err
		}
		return &pl, nil
	}
	var cs gointerp.NotAKnotCubic
	if err := cs.Fit(xs, ys); err != nil {
		return nil, err
	}
	return &cs, nil
}
