package frames

// Params is an explicit allow-list of attribute names a renderer
// accepts for one entity kind. The list is an external contract,
// declared at the boundary; nothing is discovered from a renderer at
// runtime.
type Params map[string]struct{}

// NewParams builds an allow-list from attribute names.
func NewParams(names ...string) Params {
	p := make(Params, len(names))
	for _, n := range names {
		p[n] = struct{}{}
	}
	return p
}

// Default allow-lists matching the networkx-style node and edge drawing
// parameter sets the original renderer accepts.
var (
	DefaultNodeParams = NewParams(
		"nodelist", "pos", "node_shape", "node_size", "node_color",
		"vmin", "vmax", "cmap", "alpha", "label", "linewidths", "edgecolors",
	)

	DefaultEdgeParams = NewParams(
		"edgelist", "pos", "edge_color", "edge_vmin", "edge_vmax",
		"edge_cmap", "width", "style", "alpha", "label",
	)
)

// filterParams restricts attrs to the allow-listed keys, dropping any
// attribute whose value is nil.
func filterParams(attrs map[string]any, allowed Params) map[string]any {
	out := make(map[string]any, len(attrs))
	for key, value := range attrs {
		if _, ok := allowed[key]; !ok {
			continue
		}
		if value == nil {
			continue
		}
		out[key] = value
	}
	return out
}
