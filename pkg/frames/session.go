package frames

import (
	"time"

	"github.com/google/uuid"

	"github.com/hydroviz/flowvis/pkg/colors"
	"github.com/hydroviz/flowvis/pkg/logging"
	"github.com/hydroviz/flowvis/pkg/metrics"
	"github.com/hydroviz/flowvis/pkg/reduce"
	"github.com/hydroviz/flowvis/pkg/topology"
)

// SessionConfig configures a visualization session. All fields are
// optional; zero values fall back to the default color scheme, a
// no-op logger and the global metrics registry.
type SessionConfig struct {
	Scheme     *colors.Scheme
	Logger     logging.Logger
	Metrics    *metrics.Registry
	NodeConfig *NodeSeriesConfig
	LinkConfig *LinkSeriesConfig
}

// Session is one visualization session: a node series and a link
// series built from the same topology, identified by a UUID and
// instrumented with structured logging and Prometheus metrics.
//
// Lifecycle: created once per session, mutated by repeated AddFrame
// calls during data collection, optionally densified once by
// Interpolate, then read-only for the rendering phase. Frame ingestion
// is single-producer; frame reads are safe for concurrent readers
// afterwards.
type Session struct {
	ID    uuid.UUID
	Nodes *NodeSeries
	Links *LinkSeries

	log     logging.Logger
	metrics *metrics.Registry
}

// NewSession builds a session from the network topology. The color
// scheme supplies the shared node and pipe colors used while no
// dynamic coloring is active.
func NewSession(topo *topology.Network, config *SessionConfig) (*Session, error) {
	if config == nil {
		config = &SessionConfig{}
	}

	scheme := colors.Default()
	if config.Scheme != nil {
		scheme = *config.Scheme
	}
	log := config.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	reg := config.Metrics
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}

	nodeCfg := NodeSeriesConfig{}
	if config.NodeConfig != nil {
		nodeCfg = *config.NodeConfig
	}
	if nodeCfg.SharedColor == "" {
		nodeCfg.SharedColor = scheme.NodeColor
	}
	nodes, err := NewNodeSeries(topo.NodeIDs(), topo.Positions(), &nodeCfg)
	if err != nil {
		return nil, err
	}

	linkCfg := LinkSeriesConfig{}
	if config.LinkConfig != nil {
		linkCfg = *config.LinkConfig
	}
	if linkCfg.SharedColor == "" {
		linkCfg.SharedColor = scheme.PipeColor
	}
	links, err := NewLinkSeries(topo, &linkCfg)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	s := &Session{
		ID:      id,
		Nodes:   nodes,
		Links:   links,
		log:     log.With(logging.SessionID(id.String())),
		metrics: reg,
	}
	s.metrics.SessionOpened()
	s.log.Info("visualization session opened",
		logging.Int("nodes", topo.NodeCount()),
		logging.Int("links", topo.LinkCount()))
	return s, nil
}

// Close marks the session discarded. It only updates instrumentation;
// the series stay readable.
func (s *Session) Close() {
	s.metrics.SessionClosed()
	s.log.Info("visualization session closed",
		logging.Frames(s.Nodes.FrameCount()))
}

// AddNodeFrame ingests one node frame with instrumentation.
func (s *Session) AddNodeFrame(in NodeFrameInput) error {
	start := time.Now()
	err := s.Nodes.AddFrame(in)
	s.metrics.RecordFrameAppend("node", string(TrackColor), statusOf(err), time.Since(start))
	if err != nil {
		s.log.Error("node frame rejected", logging.Error(err),
			logging.Statistic(string(in.Statistic)))
		return err
	}
	s.log.Debug("node frame appended",
		logging.Statistic(string(in.Statistic)),
		logging.Frames(s.Nodes.FrameCount()))
	return nil
}

// AddLinkFrame ingests one link frame with instrumentation.
func (s *Session) AddLinkFrame(in LinkFrameInput) error {
	start := time.Now()
	err := s.Links.AddFrame(in)
	track := in.Track
	if track == "" {
		track = TrackColor
	}
	s.metrics.RecordFrameAppend("link", string(track), statusOf(err), time.Since(start))
	if err != nil {
		s.log.Error("link frame rejected", logging.Error(err),
			logging.Track(string(track)),
			logging.Parameter(string(paramOrDefault(in.Parameter))))
		return err
	}
	s.log.Debug("link frame appended",
		logging.Track(string(track)),
		logging.Parameter(string(paramOrDefault(in.Parameter))))
	return nil
}

// RescaleWidths remaps all recorded link widths into the target range.
func (s *Session) RescaleWidths(target reduce.Range) error {
	err := s.Links.RescaleWidths(target)
	s.metrics.RecordWidthRescale(statusOf(err))
	if err != nil {
		s.log.Error("width rescale failed", logging.Error(err))
		return err
	}
	s.log.Debug("widths rescaled",
		logging.Float64("lo", target.Lo),
		logging.Float64("hi", target.Hi))
	return nil
}

// Interpolate densifies both series to targetFrames frames.
func (s *Session) Interpolate(targetFrames int) error {
	timer := logging.StartTimer(s.log, "frame interpolation",
		logging.Int("target_frames", targetFrames))

	start := time.Now()
	err := s.Nodes.Interpolate(targetFrames)
	s.metrics.RecordInterpolation("node", statusOf(err), time.Since(start))
	if err != nil {
		timer.EndError(err)
		return err
	}

	start = time.Now()
	err = s.Links.Interpolate(targetFrames)
	s.metrics.RecordInterpolation("link", statusOf(err), time.Since(start))
	if err != nil {
		timer.EndError(err)
		return err
	}

	timer.End()
	return nil
}

// NodeFrame returns the node draw attributes for the requested frame.
func (s *Session) NodeFrame(frameNumber int) map[string]any {
	s.metrics.RecordFrameRead("node")
	return s.Nodes.Frame(frameNumber)
}

// LinkFrame returns the link draw attributes for the requested frame.
func (s *Session) LinkFrame(frameNumber int) map[string]any {
	s.metrics.RecordFrameRead("link")
	return s.Links.Frame(frameNumber)
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
