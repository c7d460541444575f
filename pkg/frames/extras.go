package frames

// NodeExtras carries the optional node drawing attributes a caller may
// set beyond the core ones. Fields are named and typed; there is no
// open-ended attribute injection.
type NodeExtras struct {
	Alpha      *float64
	Label      string
	Colormap   string   // colormap name for numeric node colors
	LineWidths *float64 // marker border width
	EdgeColors string   // marker border color
}

func (e NodeExtras) apply(attrs map[string]any) {
	if e.Alpha != nil {
		attrs["alpha"] = *e.Alpha
	}
	if e.Label != "" {
		attrs["label"] = e.Label
	}
	if e.Colormap != "" {
		attrs["cmap"] = e.Colormap
	}
	if e.LineWidths != nil {
		attrs["linewidths"] = *e.LineWidths
	}
	if e.EdgeColors != "" {
		attrs["edgecolors"] = e.EdgeColors
	}
}

// LinkExtras carries the optional edge drawing attributes.
type LinkExtras struct {
	Alpha    *float64
	Label    string
	Colormap string // colormap name for numeric edge colors
	Style    string // line style, e.g. "solid" or "dashed"
}

func (e LinkExtras) apply(attrs map[string]any) {
	if e.Alpha != nil {
		attrs["alpha"] = *e.Alpha
	}
	if e.Label != "" {
		attrs["label"] = e.Label
	}
	if e.Colormap != "" {
		attrs["edge_cmap"] = e.Colormap
	}
	if e.Style != "" {
		attrs["style"] = e.Style
	}
}
