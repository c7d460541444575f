package frames

import (
	"math"

	"github.com/hydroviz/flowvis/pkg/interp"
	"gonum.org/v1/gonum/floats"
)

// track is one dynamic attribute channel (color or width) of a frame
// series: the ordered frame sequence, the running extrema over every
// value ever appended, and the optional densified cache produced by
// interpolation. A track is inactive until its first append; color
// tracks fall back to a shared color string while inactive.
//
// The cache is a per-instance field, never shared between series.
type track struct {
	frames   [][]float64
	vmin     float64
	vmax     float64
	smoothed [][]float64
}

// active reports whether any frame has been appended.
func (t *track) active() bool { return t.frames != nil }

// append adds one per-entity vector and widens the running extrema.
// Bounds are monotone across the whole series; a later frame never
// shrinks them.
func (t *track) append(vec []float64) {
	lo, hi := floats.Min(vec), floats.Max(vec)
	if t.frames == nil {
		t.vmin, t.vmax = lo, hi
	} else {
		t.vmin = math.Min(t.vmin, lo)
		t.vmax = math.Max(t.vmax, hi)
	}
	t.frames = append(t.frames, vec)
}

// frameAt returns the vector for the requested frame, preferring the
// interpolated cache when present. Requests beyond the stored count
// clamp to the last frame; negative requests clamp to the first. This
// keeps animation scrubbing past the end well-defined instead of
// failing.
func (t *track) frameAt(n int) []float64 {
	src := t.frames
	if t.smoothed != nil {
		src = t.smoothed
	}
	if len(src) == 0 {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if n >= len(src) {
		n = len(src) - 1
	}
	return src[n]
}

// interpolate densifies the frame sequence into the cache. Below two
// frames there is nothing to smooth and the cache stays empty.
func (t *track) interpolate(targetFrames int) error {
	if len(t.frames) < 2 {
		return nil
	}
	out, err := interp.Resample(t.frames, targetFrames)
	if err != nil {
		return err
	}
	t.smoothed = out
	return nil
}

// frameCount returns the number of frames a reader can address,
// counting the interpolated cache when present.
func (t *track) frameCount() int {
	if t.smoothed != nil {
		return len(t.smoothed)
	}
	return len(t.frames)
}
