package plotly

// Trace is one plottable data series. The trace type is fixed by the
// constructor; every other field is optional and omitted from the JSON
// output until set. Field order here matches the schema's customary output
// order.
//
// The package does not check that coordinate arrays (x, y, z, text, per-point
// marker fields) agree in length; mismatches surface in the renderer.
type Trace struct {
	Type         TraceType           `json:"type"`
	X            []float64           `json:"x,omitempty"`
	Y            []float64           `json:"y,omitempty"`
	Z            []float64           `json:"z,omitempty"`
	I            []int               `json:"i,omitempty"`
	J            []int               `json:"j,omitempty"`
	K            []int               `json:"k,omitempty"`
	Mode         Mode                `json:"mode,omitempty"`
	Name         *string             `json:"name,omitempty"`
	Text         []string            `json:"text,omitempty"`
	TextPosition *TextPosition       `json:"textposition,omitempty"`
	Marker       *Marker             `json:"marker,omitempty"`
	Line         *Line               `json:"line,omitempty"`
	Fill         *Fill               `json:"fill,omitempty"`
	Orientation  *Orientation        `json:"orientation,omitempty"`
	Visible      *Visibility         `json:"visible,omitempty"`
	ShowLegend   *bool               `json:"showlegend,omitempty"`
	LegendGroup  *string             `json:"legendgroup,omitempty"`
	HoverInfo    *HoverInfo          `json:"hoverinfo,omitempty"`
	HoverText    *ListOrElem[string] `json:"hovertext,omitempty"`
	HoverOn      HoverOn             `json:"hoveron,omitempty"`
	ConnectGaps  *bool               `json:"connectgaps,omitempty"`
	Color        *Color              `json:"color,omitempty"`
	Opacity      *float64            `json:"opacity,omitempty"`
}

// =============================================================================
// Constructors
// =============================================================================

// Scatter returns a 2d scatter trace with every optional field absent.
func Scatter() Trace { return Trace{Type: TypeScatter} }

// Scatter3D returns a 3d scatter trace with every optional field absent.
func Scatter3D() Trace { return Trace{Type: TypeScatter3D} }

// Bars returns a bar trace with every optional field absent.
func Bars() Trace { return Trace{Type: TypeBar} }

// Mesh3D returns a 3d mesh trace with every optional field absent.
func Mesh3D() Trace { return Trace{Type: TypeMesh3D} }

// =============================================================================
// Setters
// =============================================================================

// WithX returns a copy with the x coordinates set.
func (t Trace) WithX(xs []float64) Trace {
	t.X = xs
	return t
}

// WithY returns a copy with the y coordinates set.
func (t Trace) WithY(ys []float64) Trace {
	t.Y = ys
	return t
}

// WithZ returns a copy with the z coordinates set.
func (t Trace) WithZ(zs []float64) Trace {
	t.Z = zs
	return t
}

// WithI returns a copy with the first mesh vertex indices set.
func (t Trace) WithI(is []int) Trace {
	t.I = is
	return t
}

// WithJ returns a copy with the second mesh vertex indices set.
func (t Trace) WithJ(js []int) Trace {
	t.J = js
	return t
}

// WithK returns a copy with the third mesh vertex indices set.
func (t Trace) WithK(ks []int) Trace {
	t.K = ks
	return t
}

// WithMode returns a copy with the display mode set. Flags are encoded in
// the given order.
func (t Trace) WithMode(flags ...ModeFlag) Trace {
	t.Mode = Mode(flags)
	return t
}

// WithName returns a copy with the trace name set, shown in the legend.
func (t Trace) WithName(name string) Trace {
	t.Name = &name
	return t
}

// WithText returns a copy with per-point text labels set.
func (t Trace) WithText(text []string) Trace {
	t.Text = text
	return t
}

// WithTextPosition returns a copy with the text anchor set.
func (t Trace) WithTextPosition(pos TextPosition) Trace {
	t.TextPosition = &pos
	return t
}

// WithMarker returns a copy with the marker styling set.
func (t Trace) WithMarker(m Marker) Trace {
	t.Marker = &m
	return t
}

// WithLine returns a copy with the line styling set.
func (t Trace) WithLine(l Line) Trace {
	t.Line = &l
	return t
}

// WithFill returns a copy with the area fill target set.
func (t Trace) WithFill(f Fill) Trace {
	t.Fill = &f
	return t
}

// WithOrientation returns a copy with the bar orientation set.
func (t Trace) WithOrientation(o Orientation) Trace {
	t.Orientation = &o
	return t
}

// WithVisible returns a copy with the visibility state set.
func (t Trace) WithVisible(v Visibility) Trace {
	t.Visible = &v
	return t
}

// WithShowLegend returns a copy with legend inclusion set.
func (t Trace) WithShowLegend(show bool) Trace {
	t.ShowLegend = &show
	return t
}

// WithLegendGroup returns a copy with the legend group name set. Traces in
// the same group toggle together.
func (t Trace) WithLegendGroup(group string) Trace {
	t.LegendGroup = &group
	return t
}

// WithHoverInfo returns a copy with the hover label content set.
func (t Trace) WithHoverInfo(h HoverInfo) Trace {
	t.HoverInfo = &h
	return t
}

// WithHoverText returns a copy with hover text set, uniform or per point.
func (t Trace) WithHoverText(text ListOrElem[string]) Trace {
	t.HoverText = &text
	return t
}

// WithHoverOn returns a copy with hover trigger targets set, encoded in the
// given order.
func (t Trace) WithHoverOn(targets ...HoverTarget) Trace {
	t.HoverOn = HoverOn(targets)
	return t
}

// WithConnectGaps returns a copy with gap connection across missing points
// set.
func (t Trace) WithConnectGaps(connect bool) Trace {
	t.ConnectGaps = &connect
	return t
}

// WithColor returns a copy with the trace-level color set.
func (t Trace) WithColor(c Color) Trace {
	t.Color = &c
	return t
}

// WithOpacity returns a copy with the trace opacity set (0 to 1).
func (t Trace) WithOpacity(opacity float64) Trace {
	t.Opacity = &opacity
	return t
}
