package plotly

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTraceTypeTokens(t *testing.T) {
	cases := []struct {
		tt   TraceType
		want string
	}{
		{TypeScatter, "scatter"},
		{TypeScatter3D, "scatter3d"},
		{TypeBar, "bar"},
		{TypeMesh3D, "mesh3d"},
	}
	for _, c := range cases {
		if got := c.tt.String(); got != c.want {
			t.Errorf("TraceType.String() = %q, want %q", got, c.want)
		}
	}
}

func TestModeJoinPreservesOrder(t *testing.T) {
	m := Mode{ModeText, ModeMarkers, ModeLines}
	want := "text+markers+lines"
	if got := m.String(); got != want {
		t.Errorf("Mode.String() = %q, want %q", got, want)
	}
}

func TestModeJoinKeepsRepeats(t *testing.T) {
	m := Mode{ModeLines, ModeLines, ModeMarkers}
	got := m.String()
	parts := strings.Split(got, "+")
	if len(parts) != 3 {
		t.Fatalf("token count = %d, want 3 (got %q)", len(parts), got)
	}
	if parts[0] != "lines" || parts[1] != "lines" || parts[2] != "markers" {
		t.Errorf("tokens = %v, want [lines lines markers]", parts)
	}
}

func TestModeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Mode{ModeMarkers, ModeLines})
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != `"markers+lines"` {
		t.Errorf("marshal = %s, want %q", data, `"markers+lines"`)
	}
}

func TestDashTokens(t *testing.T) {
	cases := []struct {
		d    Dash
		want string
	}{
		{DashSolid, "solid"},
		{DashDot, "dot"},
		{DashDash, "dash"},
		{DashLongDash, "longdash"},
		{DashDashDot, "dashdot"},
		{DashLongDashDot, "longdashdot"},
	}
	for _, c := range cases {
		if got := c.d.String(); got != c.want {
			t.Errorf("Dash.String() = %q, want %q", got, c.want)
		}
	}
}

func TestSymbolTokens(t *testing.T) {
	cases := []struct {
		s    Symbol
		want string
	}{
		{SymbolCircle, "circle"},
		{SymbolCircleOpen, "circle-open"},
		{SymbolSquare, "square"},
		{SymbolSquareOpen, "square-open"},
		{SymbolDiamond, "diamond"},
		{SymbolDiamondOpen, "diamond-open"},
		{SymbolCross, "cross"},
		{SymbolX, "x"},
		{SymbolTriangleUp, "triangle-up"},
		{SymbolTriangleDown, "triangle-down"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("Symbol.String() = %q, want %q", got, c.want)
		}
	}
}

func TestOrientationTokens(t *testing.T) {
	if got := Horizontal.String(); got != "h" {
		t.Errorf("Horizontal.String() = %q, want %q", got, "h")
	}
	if got := Vertical.String(); got != "v" {
		t.Errorf("Vertical.String() = %q, want %q", got, "v")
	}
}

func TestFillTokens(t *testing.T) {
	cases := []struct {
		f    Fill
		want string
	}{
		{FillNone, "none"},
		{FillToZeroY, "tozeroy"},
		{FillToZeroX, "tozerox"},
		{FillToNextY, "tonexty"},
		{FillToNextX, "tonextx"},
		{FillToSelf, "toself"},
		{FillToNext, "tonext"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Errorf("Fill.String() = %q, want %q", got, c.want)
		}
	}
}

func TestHoverInfoKeywords(t *testing.T) {
	cases := []struct {
		h    HoverInfo
		want string
	}{
		{HoverAll(), "all"},
		{HoverNone(), "none"},
		{HoverSkip(), "skip"},
	}
	for _, c := range cases {
		if got := c.h.String(); got != c.want {
			t.Errorf("HoverInfo.String() = %q, want %q", got, c.want)
		}
	}
}

func TestHoverComboPreservesOrderAndRepeats(t *testing.T) {
	h := HoverCombo(HoverName, HoverX, HoverX, HoverTextFlag)
	want := "name+x+x+text"
	if got := h.String(); got != want {
		t.Errorf("HoverCombo().String() = %q, want %q", got, want)
	}
}

func TestHoverOnJoin(t *testing.T) {
	h := HoverOn{HoverPoints, HoverFills}
	if got := h.String(); got != "points+fills" {
		t.Errorf("HoverOn.String() = %q, want %q", got, "points+fills")
	}
}

func TestTextPositionTokens(t *testing.T) {
	cases := []struct {
		p    TextPosition
		want string
	}{
		{TopLeft, "top left"},
		{TopCenter, "top center"},
		{TopRight, "top right"},
		{MiddleLeft, "middle left"},
		{MiddleCenter, "middle center"},
		{MiddleRight, "middle right"},
		{BottomLeft, "bottom left"},
		{BottomCenter, "bottom center"},
		{BottomRight, "bottom right"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("TextPosition.String() = %q, want %q", got, c.want)
		}
	}
}

func TestBarModeTokens(t *testing.T) {
	if got := BarGroup.String(); got != "group" {
		t.Errorf("BarGroup.String() = %q, want %q", got, "group")
	}
	if got := BarStack.String(); got != "stack" {
		t.Errorf("BarStack.String() = %q, want %q", got, "stack")
	}
}

func TestVisibilityMarshal(t *testing.T) {
	cases := []struct {
		v    Visibility
		want string
	}{
		{Shown, "true"},
		{Hidden, "false"},
		{LegendOnly, `"legendonly"`},
	}
	for _, c := range cases {
		data, err := json.Marshal(c.v)
		if err != nil {
			t.Fatalf("json.Marshal() error: %v", err)
		}
		if string(data) != c.want {
			t.Errorf("marshal = %s, want %s", data, c.want)
		}
	}
}
