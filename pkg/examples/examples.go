// Package examples registers the figures bundled with the CLI. Each example
// pairs a name with a builder so listings stay cheap and figures are only
// assembled when rendered.
package examples

import (
	"github.com/plotspec/plotspec/pkg/datasets"
	"github.com/plotspec/plotspec/pkg/errors"
	"github.com/plotspec/plotspec/pkg/plotly"
)

// Example is one bundled figure.
type Example struct {
	Name        string
	Description string
	Build       func() plotly.Plot
}

// All returns the bundled examples in display order.
func All() []Example {
	return []Example{
		{
			Name:        "iris",
			Description: "Iris measurements, species as marker colors",
			Build:       irisScatter,
		},
		{
			Name:        "revenue",
			Description: "Monthly revenue lines with filled area",
			Build:       revenueLines,
		},
		{
			Name:        "revenue-bars",
			Description: "Monthly revenue as stacked bars",
			Build:       revenueBars,
		},
		{
			Name:        "helix",
			Description: "3d helix line",
			Build:       helix3D,
		},
		{
			Name:        "pyramid",
			Description: "3d pyramid mesh",
			Build:       pyramidMesh,
		},
		{
			Name:        "annotated",
			Description: "Scatter with per-point text labels and hover text",
			Build:       annotatedScatter,
		},
	}
}

// Find returns the example registered under name.
func Find(name string) (Example, error) {
	for _, ex := range All() {
		if ex.Name == name {
			return ex, nil
		}
	}
	return Example{}, errors.New(errors.ErrCodeExampleNotFound, "unknown example: %q", name)
}

func irisScatter() plotly.Plot {
	sepalLength, sepalWidth, _, species := datasets.Iris()

	trace := plotly.Scatter().
		WithX(sepalLength).
		WithY(sepalWidth).
		WithMode(plotly.ModeMarkers).
		WithName("iris").
		WithMarker(plotly.NewMarker().
			WithColor(plotly.CategoryColors(species)).
			WithSize(plotly.Elem(9.0)).
			WithSymbol(plotly.SymbolCircle)).
		WithHoverText(plotly.List(species)).
		WithHoverInfo(plotly.HoverCombo(plotly.HoverX, plotly.HoverY, plotly.HoverTextFlag))

	layout := plotly.NewLayout().
		WithTitle("Iris sepals").
		WithXAxis(plotly.NewAxis().WithTitle("sepal length (cm)")).
		WithYAxis(plotly.NewAxis().WithTitle("sepal width (cm)")).
		WithMargin(plotly.TitledMargin())

	return plotly.NewPlot("iris", trace).WithLayout(layout)
}

func revenueLines() plotly.Plot {
	months, labels, hardware, services := datasets.MonthlyRevenue()

	hw := plotly.Scatter().
		WithX(months).
		WithY(hardware).
		WithMode(plotly.ModeLines, plotly.ModeMarkers).
		WithName("hardware").
		WithLine(plotly.NewLine().WithColor(plotly.RGB(31, 119, 180)).WithWidth(2)).
		WithFill(plotly.FillToZeroY)

	svc := plotly.Scatter().
		WithX(months).
		WithY(services).
		WithMode(plotly.ModeLines).
		WithName("services").
		WithLine(plotly.NewLine().WithColor(plotly.RGB(255, 127, 14)).WithDash(plotly.DashDash)).
		WithConnectGaps(true)

	ticks := make([]any, len(months))
	for i, m := range months {
		ticks[i] = m
	}
	layout := plotly.NewLayout().
		WithTitle("Monthly revenue").
		WithShowLegend(true).
		WithXAxis(plotly.NewAxis().WithTicks(ticks, labels)).
		WithYAxis(plotly.NewAxis().WithTitle("kUSD").WithZeroLine(true)).
		WithMargin(plotly.TitledMargin())

	return plotly.NewPlot("revenue", hw, svc).WithLayout(layout)
}

func revenueBars() plotly.Plot {
	months, labels, hardware, services := datasets.MonthlyRevenue()

	hw := plotly.Bars().
		WithX(months).
		WithY(hardware).
		WithName("hardware").
		WithOrientation(plotly.Vertical)

	svc := plotly.Bars().
		WithX(months).
		WithY(services).
		WithName("services").
		WithOrientation(plotly.Vertical)

	ticks := make([]any, len(months))
	for i, m := range months {
		ticks[i] = m
	}
	layout := plotly.NewLayout().
		WithTitle("Monthly revenue (stacked)").
		WithBarMode(plotly.BarStack).
		WithShowLegend(true).
		WithXAxis(plotly.NewAxis().WithTicks(ticks, labels)).
		WithMargin(plotly.TitledMargin())

	return plotly.NewPlot("revenue-bars", hw, svc).WithLayout(layout)
}

func helix3D() plotly.Plot {
	x, y, z := datasets.Helix(200, 4)

	trace := plotly.Scatter3D().
		WithX(x).
		WithY(y).
		WithZ(z).
		WithMode(plotly.ModeLines).
		WithLine(plotly.NewLine().WithColor(plotly.RGB(44, 160, 44)).WithWidth(4)).
		WithHoverInfo(plotly.HoverCombo(plotly.HoverZ))

	layout := plotly.NewLayout().
		WithTitle("Helix").
		WithZAxis(plotly.NewAxis().WithTitle("height")).
		WithMargin(plotly.CompactMargin())

	return plotly.NewPlot("helix", trace).WithLayout(layout)
}

func pyramidMesh() plotly.Plot {
	x, y, z, i, j, k := datasets.Pyramid()

	trace := plotly.Mesh3D().
		WithX(x).
		WithY(y).
		WithZ(z).
		WithI(i).
		WithJ(j).
		WithK(k).
		WithColor(plotly.RGBA(148, 103, 189, 200)).
		WithOpacity(0.9).
		WithHoverInfo(plotly.HoverNone())

	layout := plotly.NewLayout().
		WithTitle("Pyramid").
		WithMargin(plotly.CompactMargin())

	return plotly.NewPlot("pyramid", trace).WithLayout(layout)
}

func annotatedScatter() plotly.Plot {
	trace := plotly.Scatter().
		WithX([]float64{1, 2, 3, 4}).
		WithY([]float64{3, 1, 4, 2}).
		WithMode(plotly.ModeMarkers, plotly.ModeText).
		WithText([]string{"alpha", "beta", "gamma", "delta"}).
		WithTextPosition(plotly.TopCenter).
		WithHoverText(plotly.Elem("greek letters")).
		WithHoverOn(plotly.HoverPoints).
		WithVisible(plotly.Shown).
		WithLegendGroup("letters").
		WithShowLegend(false)

	layout := plotly.NewLayout().
		WithXAxis(plotly.NewAxis().WithRange(0, 5).WithShowGrid(false)).
		WithYAxis(plotly.NewAxis().WithRange(0, 5)).
		WithMargin(plotly.CompactMargin())

	return plotly.NewPlot("annotated", trace).WithLayout(layout)
}
