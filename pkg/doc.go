// Package pkg provides the core libraries for building plotly figure
// specifications.
//
// # Overview
//
// Plotspec assembles the JSON documents that plotly.js consumes: traces,
// layout, and an element id, encoded exactly the way the browser library
// expects. The pkg directory is organized into:
//
//  1. [plotly] - The figure model: traces, layout, enums, wrappers, colors
//  2. [render] - Delivery formats: JSON documents and embeddable HTML pages
//  3. [store] - Named figure persistence (file, memory, redis, mongo)
//  4. [datasets] and [examples] - Bundled sample data and example figures
//  5. [config], [errors], [buildinfo] - Shared plumbing
//
// # Quick Start
//
// Build a figure and write it as an HTML page:
//
//	import (
//	    "os"
//	    "github.com/plotspec/plotspec/pkg/plotly"
//	    "github.com/plotspec/plotspec/pkg/render"
//	)
//
//	trace := plotly.Scatter().
//	    WithX([]float64{1, 2, 3}).
//	    WithY([]float64{4, 5, 6}).
//	    WithMode(plotly.ModeMarkers, plotly.ModeLines)
//
//	p := plotly.NewPlot("chart", trace).
//	    WithLayout(plotly.NewLayout().WithTitle("Demo"))
//
//	render.WriteHTML(p, os.Stdout)
//
// # Main Packages
//
// [plotly] - The typed figure model. Values are built with With* setters
// that return modified copies, so partial figures can be shared and
// extended without aliasing surprises. Absent fields are omitted from the
// encoded document.
//
// [render] - Writes figures as indented JSON documents or self-contained
// HTML pages that load plotly.js from a CDN.
//
// [store] - Persists encoded figure documents under user-chosen names,
// with interchangeable backends behind one interface.
//
// [examples] - The figures bundled with the CLI, built from [datasets].
//
// [plotly]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/plotly
// [render]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/render
// [store]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/store
// [datasets]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/datasets
// [examples]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/examples
// [config]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/config
// [errors]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/plotspec/plotspec/pkg/buildinfo
package pkg
