// Package frames is the stateful core of the visualization engine: it
// accumulates per-frame draw attributes (color and, for links, width)
// for a fixed entity list, densifies them for animation, and serves
// renderer-ready attribute maps.
package frames

import (
	"github.com/hydroviz/flowvis/pkg/reduce"
	"github.com/hydroviz/flowvis/pkg/topology"
)

// DefaultNodeSize is the node marker size used when none is configured.
const DefaultNodeSize = 10.0

// defaultSharedColor is the shared color before any dynamic coloring.
const defaultSharedColor = "#000000"

// NodeSeriesConfig configures the static draw attributes of a node
// series. Zero values fall back to defaults.
type NodeSeriesConfig struct {
	Shape       string  // renderer marker name; empty keeps the renderer default
	Size        float64 // marker size, default DefaultNodeSize
	SharedColor string  // color while no dynamic coloring is active, default black
	Extras      NodeExtras
}

// NodeSeries accumulates per-frame color values for an ordered node
// list. The entity list and positions are fixed at construction and
// define the required length of every appended vector.
//
// AddFrame and Interpolate mutate the series and must be serialized by
// the caller; Frame is safe for concurrent readers once ingestion and
// interpolation have completed.
type NodeSeries struct {
	entities    []string
	pos         map[string]topology.Position
	shape       string
	size        float64
	sharedColor string
	extras      NodeExtras

	color track
}

// NewNodeSeries builds a node series from an ordered identifier list
// and a position per identifier (the sensor/entity configuration).
func NewNodeSeries(ids []string, pos map[string]topology.Position, config *NodeSeriesConfig) (*NodeSeries, error) {
	if len(ids) == 0 {
		return nil, opErr("NewNodeSeries", "node", ErrNoEntities)
	}
	owned := make(map[string]topology.Position, len(ids))
	for _, id := range ids {
		p, ok := pos[id]
		if !ok {
			return nil, opErr("NewNodeSeries", "node", ErrMissingPositions)
		}
		owned[id] = p
	}

	s := &NodeSeries{
		entities:    append([]string(nil), ids...),
		pos:         owned,
		size:        DefaultNodeSize,
		sharedColor: defaultSharedColor,
	}
	if config != nil {
		s.shape = config.Shape
		if config.Size != 0 {
			s.size = config.Size
		}
		if config.SharedColor != "" {
			s.sharedColor = config.SharedColor
		}
		s.extras = config.Extras
	}
	return s, nil
}

// NodeFrameInput describes one node frame to ingest: the raw
// per-timestep matrix and the reduction/binning rules to apply.
type NodeFrameInput struct {
	Values    [][]float64 // (timesteps x nodes) in entity order
	Statistic reduce.Statistic
	Pit       *int             // point in time for StatTimeStep; zero is valid
	Intervals reduce.Intervals // optional binning
}

// AddFrame reduces the raw matrix to one value per node, optionally
// discretizes it, and appends it as the next color frame. The first
// call switches the series from the shared color to dynamic coloring;
// the transition is one-way. Validation happens before any mutation.
func (s *NodeSeries) AddFrame(in NodeFrameInput) error {
	statistic := in.Statistic
	if statistic == "" {
		statistic = reduce.StatMean
	}

	vec, err := reduce.Reduce(in.Values, statistic, in.Pit)
	if err != nil {
		return opErr("AddFrame", "node", err)
	}
	vec, err = reduce.Discretize(vec, in.Intervals)
	if err != nil {
		return opErr("AddFrame", "node", err)
	}
	if len(vec) != len(s.entities) {
		return opErr("AddFrame", "node", ErrEntityCountMismatch)
	}

	s.color.append(vec)
	return nil
}

// Interpolate densifies the color sequence to targetFrames frames for
// smooth animation. With fewer than two frames it is a no-op.
func (s *NodeSeries) Interpolate(targetFrames int) error {
	if err := s.color.interpolate(targetFrames); err != nil {
		return opErr("Interpolate", "node", err)
	}
	return nil
}

// Frame returns the draw attributes for the requested frame, filtered
// to DefaultNodeParams. See FrameFor.
func (s *NodeSeries) Frame(frameNumber int) map[string]any {
	return s.FrameFor(frameNumber, DefaultNodeParams)
}

// FrameFor returns the draw attributes for the requested frame,
// restricted to the given renderer allow-list. The interpolated cache
// is used when present, otherwise the raw sequence; while no dynamic
// coloring is active every frame carries the shared color. Frame
// numbers at or beyond the stored count clamp to the last frame.
func (s *NodeSeries) FrameFor(frameNumber int, allowed Params) map[string]any {
	attrs := map[string]any{
		"nodelist":  s.entities,
		"pos":       s.pos,
		"node_size": s.size,
	}
	if s.shape != "" {
		attrs["node_shape"] = s.shape
	}

	if s.color.active() {
		attrs["node_color"] = s.color.frameAt(frameNumber)
		attrs["vmin"] = s.color.vmin
		attrs["vmax"] = s.color.vmax
	} else {
		attrs["node_color"] = s.sharedColor
	}

	s.extras.apply(attrs)
	return filterParams(attrs, allowed)
}

// Entities returns the node identifiers in series order.
func (s *NodeSeries) Entities() []string {
	return append([]string(nil), s.entities...)
}

// FrameCount returns the number of addressable frames, counting the
// interpolated cache when present. Zero while uncolored.
func (s *NodeSeries) FrameCount() int {
	return s.color.frameCount()
}

// Bounds returns the running color extrema. The boolean is false while
// no dynamic coloring is active.
func (s *NodeSeries) Bounds() (vmin, vmax float64, ok bool) {
	if !s.color.active() {
		return 0, 0, false
	}
	return s.color.vmin, s.color.vmax, true
}
