package frames

import (
	"fmt"

	"github.com/hydroviz/flowvis/pkg/reduce"
	"github.com/hydroviz/flowvis/pkg/scada"
	"github.com/hydroviz/flowvis/pkg/topology"
)

// Track selects which dynamic attribute channel a link frame feeds.
type Track string

const (
	TrackColor Track = "edge_color"
	TrackWidth Track = "edge_width"
)

// Parameter selects the data source for a link frame.
type Parameter string

const (
	ParamFlowRate    Parameter = "flow_rate"
	ParamLinkQuality Parameter = "link_quality"
	ParamCustomData  Parameter = "custom_data"
	ParamDiameter    Parameter = "diameter"
)

// LinkSeriesConfig configures the static draw attributes of a link
// series. Zero values fall back to defaults.
type LinkSeriesConfig struct {
	SharedColor string // color while no dynamic coloring is active, default black
	Extras      LinkExtras
}

// LinkSeries accumulates per-frame color and width values for the
// ordered link list of a network. Color and width are independent
// tracks with independent lifecycles, extrema and interpolation
// caches; a series may have either, both or neither populated.
//
// The same concurrency contract as NodeSeries applies: writes are
// caller-serialized, reads are safe once ingestion has completed.
type LinkSeries struct {
	topo        *topology.Network
	entities    []string
	edgeList    [][2]string
	pos         map[string]topology.Position
	sharedColor string
	extras      LinkExtras

	color track
	width track
}

// NewLinkSeries builds a link series over the network's links in
// topology order.
func NewLinkSeries(topo *topology.Network, config *LinkSeriesConfig) (*LinkSeries, error) {
	if topo == nil || topo.LinkCount() == 0 {
		return nil, opErr("NewLinkSeries", "link", ErrNoEntities)
	}

	s := &LinkSeries{
		topo:        topo,
		entities:    topo.LinkIDs(),
		edgeList:    topo.Endpoints(),
		pos:         topo.Positions(),
		sharedColor: defaultSharedColor,
	}
	if config != nil {
		if config.SharedColor != "" {
			s.sharedColor = config.SharedColor
		}
		s.extras = config.Extras
	}
	return s, nil
}

// LinkFrameInput describes one link frame to ingest: which track it
// feeds, where the values come from, and the reduction/binning rules.
type LinkFrameInput struct {
	Track     Track                  // default TrackColor
	Parameter Parameter              // default ParamFlowRate
	Output    scada.SimulationOutput // source for flow_rate / link_quality
	Custom    [][]float64            // already-shaped matrix for custom_data
	Statistic reduce.Statistic       // default StatMean
	Pit       *int
	Intervals reduce.Intervals
}

// AddFrame appends the next frame to the selected track. Flow-rate and
// link-quality matrices are pulled from the simulation output and run
// through the reduce/discretize pipeline; custom data supplies the
// matrix directly; diameter is a static per-link property appended as a
// constant-valued frame without statistic reduction. Every path updates
// the running extrema of its track. Validation happens before any
// mutation.
func (s *LinkSeries) AddFrame(in LinkFrameInput) error {
	tr, err := s.trackFor(in.Track)
	if err != nil {
		return opErr("AddFrame", "link", err)
	}

	var values [][]float64
	switch param := paramOrDefault(in.Parameter); param {
	case ParamFlowRate, ParamLinkQuality:
		if in.Output == nil {
			return opErr("AddFrame", "link", fmt.Errorf("%w: %s", ErrMissingOutput, param))
		}
		if param == ParamFlowRate {
			values = in.Output.FlowRates()
		} else {
			values = in.Output.LinkQuality()
		}
	case ParamCustomData:
		if in.Custom == nil {
			return opErr("AddFrame", "link", ErrMissingCustomData)
		}
		values = in.Custom
	case ParamDiameter:
		vec := s.topo.Diameters()
		if len(vec) != len(s.entities) {
			return opErr("AddFrame", "link", ErrEntityCountMismatch)
		}
		tr.append(vec)
		return nil
	default:
		return opErr("AddFrame", "link", fmt.Errorf("%w: got %q", ErrUnknownParameter, param))
	}

	statistic := in.Statistic
	if statistic == "" {
		statistic = reduce.StatMean
	}
	vec, err := reduce.Reduce(values, statistic, in.Pit)
	if err != nil {
		return opErr("AddFrame", "link", err)
	}
	vec, err = reduce.Discretize(vec, in.Intervals)
	if err != nil {
		return opErr("AddFrame", "link", err)
	}
	if len(vec) != len(s.entities) {
		return opErr("AddFrame", "link", ErrEntityCountMismatch)
	}

	tr.append(vec)
	return nil
}

func (s *LinkSeries) trackFor(t Track) (*track, error) {
	switch t {
	case TrackColor, "":
		return &s.color, nil
	case TrackWidth:
		return &s.width, nil
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnknownTrack, t)
	}
}

func paramOrDefault(p Parameter) Parameter {
	if p == "" {
		return ParamFlowRate
	}
	return p
}

// RescaleWidths affinely remaps every recorded width frame into the
// target range using the global min/max across all width frames, so
// the whole animation shares one width-to-pixel mapping. It requires
// at least one width frame and a non-degenerate global range. The
// width interpolation cache is discarded; it would be stale.
func (s *LinkSeries) RescaleWidths(target reduce.Range) error {
	if !s.width.active() {
		return opErr("RescaleWidths", "link", ErrNoWidthFrames)
	}

	source := reduce.Range{Lo: s.width.frames[0][0], Hi: s.width.frames[0][0]}
	for _, frame := range s.width.frames {
		for _, v := range frame {
			if v < source.Lo {
				source.Lo = v
			}
			if v > source.Hi {
				source.Hi = v
			}
		}
	}

	rescaled := make([][]float64, len(s.width.frames))
	for i, frame := range s.width.frames {
		out, err := reduce.Rescale(frame, target, &source)
		if err != nil {
			return opErr("RescaleWidths", "link", err)
		}
		rescaled[i] = out
	}

	s.width.frames = rescaled
	s.width.vmin = target.Lo
	s.width.vmax = target.Hi
	s.width.smoothed = nil
	return nil
}

// Interpolate densifies the color and width sequences independently.
// A track below two frames is left untouched; the other may still be
// densified.
func (s *LinkSeries) Interpolate(targetFrames int) error {
	if err := s.color.interpolate(targetFrames); err != nil {
		return opErr("Interpolate", "link", err)
	}
	if err := s.width.interpolate(targetFrames); err != nil {
		return opErr("Interpolate", "link", err)
	}
	return nil
}

// Frame returns the draw attributes for the requested frame, filtered
// to DefaultEdgeParams. See FrameFor.
func (s *LinkSeries) Frame(frameNumber int) map[string]any {
	return s.FrameFor(frameNumber, DefaultEdgeParams)
}

// FrameFor returns the draw attributes for the requested frame,
// restricted to the given renderer allow-list. Each track prefers its
// own interpolated cache; the two caches are independent. Frame numbers
// at or beyond a track's count clamp to its last frame.
func (s *LinkSeries) FrameFor(frameNumber int, allowed Params) map[string]any {
	attrs := map[string]any{
		"edgelist": s.edgeList,
		"pos":      s.pos,
	}

	if s.color.active() {
		attrs["edge_color"] = s.color.frameAt(frameNumber)
		attrs["edge_vmin"] = s.color.vmin
		attrs["edge_vmax"] = s.color.vmax
	} else {
		attrs["edge_color"] = s.sharedColor
	}

	if s.width.active() {
		attrs["width"] = s.width.frameAt(frameNumber)
	}

	s.extras.apply(attrs)
	return filterParams(attrs, allowed)
}

// Entities returns the link identifiers in series order.
func (s *LinkSeries) Entities() []string {
	return append([]string(nil), s.entities...)
}

// FrameCount returns the number of addressable color frames, counting
// the interpolated cache when present.
func (s *LinkSeries) FrameCount() int {
	return s.color.frameCount()
}

// WidthFrameCount returns the number of addressable width frames.
func (s *LinkSeries) WidthFrameCount() int {
	return s.width.frameCount()
}

// ColorBounds returns the running color extrema; false while the color
// track is inactive.
func (s *LinkSeries) ColorBounds() (vmin, vmax float64, ok bool) {
	if !s.color.active() {
		return 0, 0, false
	}
	return s.color.vmin, s.color.vmax, true
}

// WidthBounds returns the running width extrema; false while the width
// track is inactive. Width extrema are tracked separately from color
// because the two tracks may encode different physical quantities.
func (s *LinkSeries) WidthBounds() (vmin, vmax float64, ok bool) {
	if !s.width.active() {
		return 0, 0, false
	}
	return s.width.vmin, s.width.vmax, true
}
