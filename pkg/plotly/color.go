package plotly

import (
	"encoding/json"
	"fmt"
)

type colorKind int

const (
	colorRGB colorKind = iota
	colorRGBA
	colorCategory
)

// Color is either a solid color ("rgb(r,g,b)" / "rgba(r,g,b,a)" string in the
// output) or a category index (a bare integer the consuming renderer resolves
// against its palette).
type Color struct {
	kind       colorKind
	r, g, b, a uint8
	index      int
}

// RGB builds a solid color from red, green, and blue components.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// RGBA builds a solid color with an explicit alpha component.
func RGBA(r, g, b, a uint8) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, a: a}
}

// Category builds a palette index color. The index is handed through to the
// renderer unchanged; this package assigns no meaning to it.
func Category(index int) Color {
	return Color{kind: colorCategory, index: index}
}

// String returns the rendered form: an rgb/rgba string for solid colors or
// the decimal index for category colors.
func (c Color) String() string {
	switch c.kind {
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.r, c.g, c.b, c.a)
	case colorCategory:
		return fmt.Sprintf("%d", c.index)
	default:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	}
}

// MarshalJSON emits solid colors as quoted rgb/rgba strings and category
// colors as bare integers.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.kind == colorCategory {
		return json.Marshal(c.index)
	}
	return json.Marshal(c.String())
}

// CategoryColors maps a sequence of categorical values to per-point category
// colors. Equal values receive the same index and distinct values receive
// indices in order of first appearance: the first value seen gets index 0,
// the next new value index 1, and so on. The encoding is deterministic and
// depends only on the input order, never on value ordering or hashing.
func CategoryColors[T comparable](values []T) ListOrElem[Color] {
	seen := make(map[T]int, len(values))
	colors := make([]Color, len(values))
	for i, v := range values {
		idx, ok := seen[v]
		if !ok {
			idx = len(seen)
			seen[v] = idx
		}
		colors[i] = Category(idx)
	}
	return List(colors)
}
