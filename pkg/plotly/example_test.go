package plotly_test

import (
	"fmt"

	"github.com/plotspec/plotspec/pkg/plotly"
)

func Example() {
	trace := plotly.Scatter().
		WithX([]float64{1, 2, 3}).
		WithY([]float64{4, 5, 6}).
		WithMode(plotly.ModeMarkers, plotly.ModeLines)

	data, err := plotly.NewPlot("chart1", trace).JSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"id":"chart1","data":[{"type":"scatter","x":[1,2,3],"y":[4,5,6],"mode":"markers+lines"}],"layout":{}}
}

func ExampleCategoryColors() {
	species := []string{"setosa", "setosa", "versicolor", "virginica", "versicolor"}

	trace := plotly.Scatter().
		WithMode(plotly.ModeMarkers).
		WithMarker(plotly.NewMarker().WithColor(plotly.CategoryColors(species)))

	data, err := plotly.NewPlot("iris", trace).JSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"id":"iris","data":[{"type":"scatter","mode":"markers","marker":{"color":[0,0,1,2,1]}}],"layout":{}}
}

func ExampleLayout() {
	layout := plotly.NewLayout().
		WithTitle("Monthly revenue").
		WithBarMode(plotly.BarStack).
		WithMargin(plotly.TitledMargin())

	data, err := plotly.NewPlot("revenue").WithLayout(layout).JSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output:
	// {"id":"revenue","data":[],"layout":{"title":"Monthly revenue","barmode":"stack","margin":{"l":50,"r":25,"b":30,"t":40,"pad":4}}}
}
