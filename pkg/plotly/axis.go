package plotly

// =============================================================================
// Axis
// =============================================================================

// Axis describes one coordinate axis of a layout. A default axis serializes
// to an empty object; every field is optional.
type Axis struct {
	Range    *[2]float64 `json:"range,omitempty"`
	Title    *string     `json:"title,omitempty"`
	ShowGrid *bool       `json:"showgrid,omitempty"`
	ZeroLine *bool       `json:"zeroline,omitempty"`
	Visible  *bool       `json:"visible,omitempty"`
	TickVals []any       `json:"tickvals,omitempty"`
	TickText []string    `json:"ticktext,omitempty"`
}

// NewAxis returns an axis with every field absent.
func NewAxis() Axis { return Axis{} }

// WithRange returns a copy with the axis range fixed to [min, max].
func (a Axis) WithRange(min, max float64) Axis {
	a.Range = &[2]float64{min, max}
	return a
}

// WithTitle returns a copy with the axis title set.
func (a Axis) WithTitle(title string) Axis {
	a.Title = &title
	return a
}

// WithShowGrid returns a copy with grid-line visibility set.
func (a Axis) WithShowGrid(show bool) Axis {
	a.ShowGrid = &show
	return a
}

// WithZeroLine returns a copy with zero-line visibility set.
func (a Axis) WithZeroLine(show bool) Axis {
	a.ZeroLine = &show
	return a
}

// WithVisible returns a copy with axis visibility set.
func (a Axis) WithVisible(visible bool) Axis {
	a.Visible = &visible
	return a
}

// WithTicks returns a copy with explicit tick positions and labels. Labels
// pair with positions index by index; the renderer ignores extras.
func (a Axis) WithTicks(vals []any, text []string) Axis {
	a.TickVals = vals
	a.TickText = text
	return a
}

// =============================================================================
// Margin
// =============================================================================

// Margin is the pixel padding around the plotting area. Unlike the other
// records it has no optional fields: once a layout carries a margin, all five
// offsets are emitted.
type Margin struct {
	L   int `json:"l"`
	R   int `json:"r"`
	B   int `json:"b"`
	T   int `json:"t"`
	Pad int `json:"pad"`
}

// NewMargin builds a margin from left, right, bottom, top, and pad offsets.
func NewMargin(l, r, b, t, pad int) Margin {
	return Margin{L: l, R: r, B: b, T: t, Pad: pad}
}

// CompactMargin is a preset with minimal padding, for figures without
// titles or outside tick labels.
func CompactMargin() Margin { return Margin{L: 10, R: 10, B: 10, T: 10, Pad: 0} }

// TitledMargin is a preset that leaves room for a title and axis labels.
func TitledMargin() Margin { return Margin{L: 50, R: 25, B: 30, T: 40, Pad: 4} }
