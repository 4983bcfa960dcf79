package plotly

// =============================================================================
// Marker - Per-Point Styling
// =============================================================================

// Marker styles the points of a trace. All fields are optional and omitted
// from the JSON output until set. Size and color accept either a uniform
// value or one value per point.
type Marker struct {
	Size    *ListOrElem[float64] `json:"size,omitempty"`
	Color   *ListOrElem[Color]   `json:"color,omitempty"`
	Symbol  *Symbol              `json:"symbol,omitempty"`
	Opacity *float64             `json:"opacity,omitempty"`
}

// NewMarker returns a marker with every field absent.
func NewMarker() Marker { return Marker{} }

// WithSize returns a copy with the point size set, uniform or per point.
func (m Marker) WithSize(size ListOrElem[float64]) Marker {
	m.Size = &size
	return m
}

// WithColor returns a copy with the point color set, uniform or per point.
func (m Marker) WithColor(color ListOrElem[Color]) Marker {
	m.Color = &color
	return m
}

// WithSymbol returns a copy with the marker symbol set.
func (m Marker) WithSymbol(symbol Symbol) Marker {
	m.Symbol = &symbol
	return m
}

// WithOpacity returns a copy with the marker opacity set (0 to 1).
func (m Marker) WithOpacity(opacity float64) Marker {
	m.Opacity = &opacity
	return m
}

// =============================================================================
// Line - Stroke Styling
// =============================================================================

// Line styles the connecting stroke of a trace. The color must be a solid
// RGB/RGBA color; category indices are not meaningful for strokes.
type Line struct {
	Width *float64 `json:"width,omitempty"`
	Color *Color   `json:"color,omitempty"`
	Dash  *Dash    `json:"dash,omitempty"`
}

// NewLine returns a line with every field absent.
func NewLine() Line { return Line{} }

// WithWidth returns a copy with the stroke width set, in pixels.
func (l Line) WithWidth(width float64) Line {
	l.Width = &width
	return l
}

// WithColor returns a copy with the stroke color set.
func (l Line) WithColor(color Color) Line {
	l.Color = &color
	return l
}

// WithDash returns a copy with the dash style set.
func (l Line) WithDash(dash Dash) Line {
	l.Dash = &dash
	return l
}
