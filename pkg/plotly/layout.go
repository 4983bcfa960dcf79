package plotly

// Layout is the whole-figure chrome: axes, title, legend visibility, pixel
// dimensions, bar stacking, and margins. A default layout serializes to an
// empty object.
type Layout struct {
	XAxis      *Axis    `json:"xaxis,omitempty"`
	YAxis      *Axis    `json:"yaxis,omitempty"`
	ZAxis      *Axis    `json:"zaxis,omitempty"`
	Title      *string  `json:"title,omitempty"`
	ShowLegend *bool    `json:"showlegend,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	BarMode    *BarMode `json:"barmode,omitempty"`
	Margin     *Margin  `json:"margin,omitempty"`
}

// NewLayout returns a layout with every field absent.
func NewLayout() Layout { return Layout{} }

// WithXAxis returns a copy with the x axis set.
func (l Layout) WithXAxis(a Axis) Layout {
	l.XAxis = &a
	return l
}

// WithYAxis returns a copy with the y axis set.
func (l Layout) WithYAxis(a Axis) Layout {
	l.YAxis = &a
	return l
}

// WithZAxis returns a copy with the z axis set.
func (l Layout) WithZAxis(a Axis) Layout {
	l.ZAxis = &a
	return l
}

// WithTitle returns a copy with the figure title set.
func (l Layout) WithTitle(title string) Layout {
	l.Title = &title
	return l
}

// WithShowLegend returns a copy with legend visibility set.
func (l Layout) WithShowLegend(show bool) Layout {
	l.ShowLegend = &show
	return l
}

// WithHeight returns a copy with the figure height set, in pixels.
func (l Layout) WithHeight(height float64) Layout {
	l.Height = &height
	return l
}

// WithWidth returns a copy with the figure width set, in pixels.
func (l Layout) WithWidth(width float64) Layout {
	l.Width = &width
	return l
}

// WithBarMode returns a copy with the bar stacking mode set.
func (l Layout) WithBarMode(mode BarMode) Layout {
	l.BarMode = &mode
	return l
}

// WithMargin returns a copy with the margin set.
func (l Layout) WithMargin(m Margin) Layout {
	l.Margin = &m
	return l
}
