package frames

import (
	"errors"
	"math"
	"testing"

	"github.com/hydroviz/flowvis/pkg/reduce"
	"github.com/hydroviz/flowvis/pkg/scada"
	"github.com/hydroviz/flowvis/pkg/topology"
)

func testNetwork(t *testing.T) *topology.Network {
	t.Helper()
	net, err := topology.NewNetwork(
		[]topology.Node{
			{ID: "n1", Pos: topology.Position{X: 0, Y: 0}},
			{ID: "n2", Pos: topology.Position{X: 1, Y: 0}},
			{ID: "n3", Pos: topology.Position{X: 2, Y: 1}},
		},
		[]topology.Link{
			{ID: "p1", FromNode: "n1", ToNode: "n2", Diameter: 100},
			{ID: "p2", FromNode: "n2", ToNode: "n3", Diameter: 250},
		},
	)
	if err != nil {
		t.Fatalf("NewNetwork failed: %v", err)
	}
	return net
}

func testLinkSeries(t *testing.T) *LinkSeries {
	t.Helper()
	s, err := NewLinkSeries(testNetwork(t), nil)
	if err != nil {
		t.Fatalf("NewLinkSeries failed: %v", err)
	}
	return s
}

func TestLinkAddFrameFlowRate(t *testing.T) {
	s := testLinkSeries(t)
	output := &scada.Results{
		Flow: [][]float64{
			{1, 10},
			{3, 20},
		},
	}

	err := s.AddFrame(LinkFrameInput{
		Parameter: ParamFlowRate,
		Output:    output,
		Statistic: reduce.StatMean,
	})
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	got := s.Frame(0)["edge_color"].([]float64)
	if got[0] != 2 || got[1] != 15 {
		t.Errorf("edge_color = %v, want [2 15]", got)
	}
	if _, _, ok := s.WidthBounds(); ok {
		t.Error("A color frame must not activate the width track")
	}
}

func TestLinkAddFrameLinkQuality(t *testing.T) {
	s := testLinkSeries(t)
	output := &scada.Results{
		Quality: [][]float64{
			{0.5, 0.9},
			{0.1, 0.3},
		},
	}

	err := s.AddFrame(LinkFrameInput{
		Parameter: ParamLinkQuality,
		Output:    output,
		Statistic: reduce.StatMin,
	})
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	got := s.Frame(0)["edge_color"].([]float64)
	if got[0] != 0.1 || got[1] != 0.3 {
		t.Errorf("edge_color = %v, want [0.1 0.3]", got)
	}
}

func TestLinkAddFrameCustomData(t *testing.T) {
	s := testLinkSeries(t)

	err := s.AddFrame(LinkFrameInput{
		Track:     TrackWidth,
		Parameter: ParamCustomData,
		Custom:    [][]float64{{4, 8}},
		Statistic: reduce.StatMean,
	})
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	got := s.Frame(0)["width"].([]float64)
	if got[0] != 4 || got[1] != 8 {
		t.Errorf("width = %v, want [4 8]", got)
	}
	if _, _, ok := s.ColorBounds(); ok {
		t.Error("A width frame must not activate the color track")
	}
}

func TestLinkAddFrameDiameter(t *testing.T) {
	s := testLinkSeries(t)

	// Diameter is static: no simulation output, no statistic reduction.
	err := s.AddFrame(LinkFrameInput{
		Track:     TrackWidth,
		Parameter: ParamDiameter,
	})
	if err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	got := s.Frame(0)["width"].([]float64)
	if got[0] != 100 || got[1] != 250 {
		t.Errorf("width = %v, want diameters [100 250]", got)
	}
	vmin, vmax, ok := s.WidthBounds()
	if !ok || vmin != 100 || vmax != 250 {
		t.Errorf("WidthBounds = (%v, %v, %v), want (100, 250, true)", vmin, vmax, ok)
	}
}

func TestLinkAddFrameValidation(t *testing.T) {
	s := testLinkSeries(t)

	tests := []struct {
		name string
		in   LinkFrameInput
		want error
	}{
		{"unknown parameter", LinkFrameInput{Parameter: "velocity"}, ErrUnknownParameter},
		{"unknown track", LinkFrameInput{Track: "edge_style"}, ErrUnknownTrack},
		{"missing output", LinkFrameInput{Parameter: ParamFlowRate}, ErrMissingOutput},
		{"missing custom data", LinkFrameInput{Parameter: ParamCustomData}, ErrMissingCustomData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddFrame(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if s.FrameCount() != 0 || s.WidthFrameCount() != 0 {
		t.Error("Rejected calls must not append frames")
	}
}

func TestLinkRescaleWidthsGlobalMapping(t *testing.T) {
	s := testLinkSeries(t)

	for _, row := range [][]float64{{1, 2}, {3, 4}} {
		if err := s.AddFrame(LinkFrameInput{
			Track:     TrackWidth,
			Parameter: ParamCustomData,
			Custom:    [][]float64{row},
		}); err != nil {
			t.Fatalf("AddFrame failed: %v", err)
		}
	}

	if err := s.RescaleWidths(reduce.Range{Lo: 0, Hi: 1}); err != nil {
		t.Fatalf("RescaleWidths failed: %v", err)
	}

	// One mapping across all frames: global range is [1, 4].
	want := [][]float64{{0, 1.0 / 3}, {2.0 / 3, 1}}
	for i, wantFrame := range want {
		got := s.Frame(i)["width"].([]float64)
		for j := range wantFrame {
			if math.Abs(got[j]-wantFrame[j]) > 1e-9 {
				t.Errorf("Frame %d width %d = %v, want %v", i, j, got[j], wantFrame[j])
			}
		}
	}

	vmin, vmax, _ := s.WidthBounds()
	if vmin != 0 || vmax != 1 {
		t.Errorf("WidthBounds after rescale = (%v, %v), want (0, 1)", vmin, vmax)
	}
}

func TestLinkRescaleWidthsPrecondition(t *testing.T) {
	s := testLinkSeries(t)

	err := s.RescaleWidths(reduce.Range{Lo: 1, Hi: 2})
	if !errors.Is(err, ErrNoWidthFrames) {
		t.Errorf("Expected ErrNoWidthFrames, got %v", err)
	}

	// Color frames alone do not satisfy the precondition.
	if err := s.AddFrame(LinkFrameInput{
		Parameter: ParamCustomData,
		Custom:    [][]float64{{1, 2}},
	}); err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}
	if err := s.RescaleWidths(reduce.Range{Lo: 1, Hi: 2}); !errors.Is(err, ErrNoWidthFrames) {
		t.Errorf("Expected ErrNoWidthFrames with only color frames, got %v", err)
	}
}

func TestLinkRescaleWidthsDegenerate(t *testing.T) {
	s := testLinkSeries(t)

	if err := s.AddFrame(LinkFrameInput{
		Track:     TrackWidth,
		Parameter: ParamCustomData,
		Custom:    [][]float64{{5, 5}},
	}); err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	err := s.RescaleWidths(reduce.Range{Lo: 1, Hi: 2})
	if !errors.Is(err, reduce.ErrDegenerateRange) {
		t.Errorf("Expected ErrDegenerateRange, got %v", err)
	}
}

func TestLinkIndependentTrackCaches(t *testing.T) {
	s := testLinkSeries(t)

	// Two width frames, one color frame: only the width track can be
	// densified.
	for _, row := range [][]float64{{1, 2}, {3, 4}} {
		if err := s.AddFrame(LinkFrameInput{
			Track:     TrackWidth,
			Parameter: ParamCustomData,
			Custom:    [][]float64{row},
		}); err != nil {
			t.Fatalf("AddFrame failed: %v", err)
		}
	}
	if err := s.AddFrame(LinkFrameInput{
		Parameter: ParamCustomData,
		Custom:    [][]float64{{7, 9}},
	}); err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	if err := s.Interpolate(5); err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}

	if s.WidthFrameCount() != 5 {
		t.Errorf("Width frames = %d, want 5", s.WidthFrameCount())
	}
	if s.FrameCount() != 1 {
		t.Errorf("Color frames = %d, want 1 (no smoothing below 2 frames)", s.FrameCount())
	}

	frame := s.Frame(4)
	if got := frame["width"].([]float64); math.Abs(got[0]-3) > 1e-9 {
		t.Errorf("Last interpolated width = %v, want 3", got[0])
	}
	if got := frame["edge_color"].([]float64); got[0] != 7 {
		t.Errorf("edge_color clamps to its own last frame, got %v", got)
	}
}

func TestLinkSharedColorAndAllowList(t *testing.T) {
	net := testNetwork(t)
	s, err := NewLinkSeries(net, &LinkSeriesConfig{
		SharedColor: "#0403ee",
		Extras:      LinkExtras{Style: "dashed"},
	})
	if err != nil {
		t.Fatalf("NewLinkSeries failed: %v", err)
	}

	frame := s.Frame(0)
	if frame["edge_color"] != "#0403ee" {
		t.Errorf("edge_color = %v, want shared color", frame["edge_color"])
	}
	if _, ok := frame["width"]; ok {
		t.Error("width should be absent until a width frame exists")
	}
	if frame["style"] != "dashed" {
		t.Errorf("style = %v, want dashed", frame["style"])
	}
	for key := range frame {
		if _, ok := DefaultEdgeParams[key]; !ok {
			t.Errorf("Frame leaked non-allow-listed key %q", key)
		}
	}

	edges, ok := frame["edgelist"].([][2]string)
	if !ok || len(edges) != 2 || edges[0] != [2]string{"n1", "n2"} {
		t.Errorf("edgelist = %v, want topology endpoint pairs", frame["edgelist"])
	}
}

func TestLinkColorExtremaSeparateFromWidth(t *testing.T) {
	s := testLinkSeries(t)

	if err := s.AddFrame(LinkFrameInput{
		Parameter: ParamCustomData,
		Custom:    [][]float64{{-5, 10}},
	}); err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}
	if err := s.AddFrame(LinkFrameInput{
		Track:     TrackWidth,
		Parameter: ParamCustomData,
		Custom:    [][]float64{{100, 200}},
	}); err != nil {
		t.Fatalf("AddFrame failed: %v", err)
	}

	cmin, cmax, _ := s.ColorBounds()
	wmin, wmax, _ := s.WidthBounds()
	if cmin != -5 || cmax != 10 {
		t.Errorf("ColorBounds = (%v, %v), want (-5, 10)", cmin, cmax)
	}
	if wmin != 100 || wmax != 200 {
		t.Errorf("WidthBounds = (%v, %v), want (100, 200)", wmin, wmax)
	}
}
