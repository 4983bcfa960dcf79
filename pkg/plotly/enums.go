package plotly

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// TraceType - Trace Discriminator
// =============================================================================

// TraceType identifies the kind of a trace. It is fixed by the trace
// constructors and serializes as the schema's "type" field.
type TraceType int

// Supported trace kinds.
const (
	TypeScatter TraceType = iota
	TypeScatter3D
	TypeBar
	TypeMesh3D
)

var traceTypeTokens = map[TraceType]string{
	TypeScatter:   "scatter",
	TypeScatter3D: "scatter3d",
	TypeBar:       "bar",
	TypeMesh3D:    "mesh3d",
}

// String returns the schema token for the trace type.
func (t TraceType) String() string { return traceTypeTokens[t] }

// MarshalJSON encodes the trace type as its schema token.
func (t TraceType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// =============================================================================
// Mode - Display Mode Flags
// =============================================================================

// ModeFlag is one display element of a scatter trace.
type ModeFlag int

// Display elements combinable in a Mode.
const (
	ModeMarkers ModeFlag = iota
	ModeLines
	ModeText
)

var modeTokens = map[ModeFlag]string{
	ModeMarkers: "markers",
	ModeLines:   "lines",
	ModeText:    "text",
}

// String returns the schema token for the flag.
func (f ModeFlag) String() string { return modeTokens[f] }

// Mode is an ordered combination of display elements. The encoded order and
// any repetition follow the caller exactly; flags are never deduplicated.
type Mode []ModeFlag

// String joins the flags with "+" (e.g. "markers+lines").
func (m Mode) String() string {
	parts := make([]string, len(m))
	for i, f := range m {
		parts[i] = f.String()
	}
	return strings.Join(parts, "+")
}

// MarshalJSON encodes the mode as its joined token string.
func (m Mode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// =============================================================================
// Dash - Line Dash Style
// =============================================================================

// Dash is the dash style of a line.
type Dash int

// Supported dash styles.
const (
	DashSolid Dash = iota
	DashDot
	DashDash
	DashLongDash
	DashDashDot
	DashLongDashDot
)

var dashTokens = map[Dash]string{
	DashSolid:       "solid",
	DashDot:         "dot",
	DashDash:        "dash",
	DashLongDash:    "longdash",
	DashDashDot:     "dashdot",
	DashLongDashDot: "longdashdot",
}

// String returns the schema token for the dash style.
func (d Dash) String() string { return dashTokens[d] }

// MarshalJSON encodes the dash style as its schema token.
func (d Dash) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// =============================================================================
// Symbol - Marker Symbol
// =============================================================================

// Symbol is the glyph drawn for each marker point.
type Symbol int

// Supported marker symbols.
const (
	SymbolCircle Symbol = iota
	SymbolCircleOpen
	SymbolSquare
	SymbolSquareOpen
	SymbolDiamond
	SymbolDiamondOpen
	SymbolCross
	SymbolX
	SymbolTriangleUp
	SymbolTriangleDown
)

var symbolTokens = map[Symbol]string{
	SymbolCircle:       "circle",
	SymbolCircleOpen:   "circle-open",
	SymbolSquare:       "square",
	SymbolSquareOpen:   "square-open",
	SymbolDiamond:      "diamond",
	SymbolDiamondOpen:  "diamond-open",
	SymbolCross:        "cross",
	SymbolX:            "x",
	SymbolTriangleUp:   "triangle-up",
	SymbolTriangleDown: "triangle-down",
}

// String returns the schema token for the symbol.
func (s Symbol) String() string { return symbolTokens[s] }

// MarshalJSON encodes the symbol as its schema token.
func (s Symbol) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// =============================================================================
// Orientation
// =============================================================================

// Orientation selects horizontal or vertical bars.
type Orientation int

// Bar orientations.
const (
	Horizontal Orientation = iota
	Vertical
)

var orientationTokens = map[Orientation]string{
	Horizontal: "h",
	Vertical:   "v",
}

// String returns the schema token for the orientation.
func (o Orientation) String() string { return orientationTokens[o] }

// MarshalJSON encodes the orientation as its schema token.
func (o Orientation) MarshalJSON() ([]byte, error) { return json.Marshal(o.String()) }

// =============================================================================
// Fill - Area Fill Target
// =============================================================================

// Fill selects the area a scatter trace fills.
type Fill int

// Supported fill targets.
const (
	FillNone Fill = iota
	FillToZeroY
	FillToZeroX
	FillToNextY
	FillToNextX
	FillToSelf
	FillToNext
)

var fillTokens = map[Fill]string{
	FillNone:    "none",
	FillToZeroY: "tozeroy",
	FillToZeroX: "tozerox",
	FillToNextY: "tonexty",
	FillToNextX: "tonextx",
	FillToSelf:  "toself",
	FillToNext:  "tonext",
}

// String returns the schema token for the fill target.
func (f Fill) String() string { return fillTokens[f] }

// MarshalJSON encodes the fill target as its schema token.
func (f Fill) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// =============================================================================
// HoverInfo - Hover Label Content
// =============================================================================

// HoverFlag is one piece of information shown in a hover label.
type HoverFlag int

// Hover label pieces combinable with HoverCombo.
const (
	HoverX HoverFlag = iota
	HoverY
	HoverZ
	HoverTextFlag
	HoverName
)

var hoverFlagTokens = map[HoverFlag]string{
	HoverX:        "x",
	HoverY:        "y",
	HoverZ:        "z",
	HoverTextFlag: "text",
	HoverName:     "name",
}

// String returns the schema token for the flag.
func (f HoverFlag) String() string { return hoverFlagTokens[f] }

// HoverInfo describes what a trace's hover labels contain: either one of the
// fixed keywords (all, none, skip) or an ordered "+"-joined combination of
// hover flags. Combination order and repetition follow the caller exactly.
type HoverInfo struct {
	keyword string
	flags   []HoverFlag
}

// HoverAll shows every available hover field.
func HoverAll() HoverInfo { return HoverInfo{keyword: "all"} }

// HoverNone shows empty hover labels.
func HoverNone() HoverInfo { return HoverInfo{keyword: "none"} }

// HoverSkip disables hover events for the trace entirely.
func HoverSkip() HoverInfo { return HoverInfo{keyword: "skip"} }

// HoverCombo shows exactly the given flags, joined in the given order.
func HoverCombo(flags ...HoverFlag) HoverInfo { return HoverInfo{flags: flags} }

// String returns the keyword or the joined flag tokens.
func (h HoverInfo) String() string {
	if h.keyword != "" {
		return h.keyword
	}
	parts := make([]string, len(h.flags))
	for i, f := range h.flags {
		parts[i] = f.String()
	}
	return strings.Join(parts, "+")
}

// MarshalJSON encodes the hover info as its token string.
func (h HoverInfo) MarshalJSON() ([]byte, error) { return json.Marshal(h.String()) }

// =============================================================================
// HoverOn - Hover Trigger Targets
// =============================================================================

// HoverTarget is one geometry a hover event can trigger on.
type HoverTarget int

// Hover trigger geometries.
const (
	HoverPoints HoverTarget = iota
	HoverFills
)

var hoverTargetTokens = map[HoverTarget]string{
	HoverPoints: "points",
	HoverFills:  "fills",
}

// String returns the schema token for the target.
func (t HoverTarget) String() string { return hoverTargetTokens[t] }

// HoverOn is an ordered combination of hover trigger targets, encoded like
// Mode as a "+"-joined token string.
type HoverOn []HoverTarget

// String joins the targets with "+" (e.g. "points+fills").
func (h HoverOn) String() string {
	parts := make([]string, len(h))
	for i, t := range h {
		parts[i] = t.String()
	}
	return strings.Join(parts, "+")
}

// MarshalJSON encodes the targets as their joined token string.
func (h HoverOn) MarshalJSON() ([]byte, error) { return json.Marshal(h.String()) }

// =============================================================================
// TextPosition - Text Anchor
// =============================================================================

// TextPosition anchors per-point text relative to its data point.
type TextPosition int

// Text anchor positions, vertical anchor first.
const (
	TopLeft TextPosition = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

var textPositionTokens = map[TextPosition]string{
	TopLeft:      "top left",
	TopCenter:    "top center",
	TopRight:     "top right",
	MiddleLeft:   "middle left",
	MiddleCenter: "middle center",
	MiddleRight:  "middle right",
	BottomLeft:   "bottom left",
	BottomCenter: "bottom center",
	BottomRight:  "bottom right",
}

// String returns the two-word anchor token (e.g. "top left").
func (p TextPosition) String() string { return textPositionTokens[p] }

// MarshalJSON encodes the anchor as its schema token.
func (p TextPosition) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

// =============================================================================
// BarMode - Bar Stacking
// =============================================================================

// BarMode controls how bar traces sharing an axis position combine.
type BarMode int

// Bar combination modes.
const (
	BarGroup BarMode = iota
	BarStack
)

var barModeTokens = map[BarMode]string{
	BarGroup: "group",
	BarStack: "stack",
}

// String returns the schema token for the bar mode.
func (m BarMode) String() string { return barModeTokens[m] }

// MarshalJSON encodes the bar mode as its schema token.
func (m BarMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

// =============================================================================
// Visibility
// =============================================================================

// Visibility is the three-way trace visibility accepted by the schema:
// shown, hidden, or present only as a legend entry.
type Visibility int

// Trace visibility states.
const (
	Shown Visibility = iota
	Hidden
	LegendOnly
)

// MarshalJSON encodes Shown as true, Hidden as false, and LegendOnly as the
// literal string "legendonly".
func (v Visibility) MarshalJSON() ([]byte, error) {
	switch v {
	case Hidden:
		return json.Marshal(false)
	case LegendOnly:
		return json.Marshal("legendonly")
	default:
		return json.Marshal(true)
	}
}
