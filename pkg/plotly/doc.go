// Package plotly builds declarative Plotly figure specifications.
//
// The package models the subset of the plotly.js schema needed for scatter,
// 3d scatter, bar, and mesh3d figures: traces, markers, lines, axes, margins,
// and a whole-figure layout. Values are assembled with per-field setters that
// return modified copies, so a partially built trace can be shared and
// extended without interference:
//
//	trace := plotly.Scatter().
//		WithX([]float64{1, 2, 3}).
//		WithY([]float64{4, 5, 6}).
//		WithMode(plotly.ModeMarkers, plotly.ModeLines)
//
//	plot := plotly.NewPlot("chart1", trace)
//	data, err := plot.JSON()
//
// Serialization is the compatibility boundary: every record marshals to a
// JSON object containing exactly the fields that were set, using the field
// names plotly.js expects. Absent optional fields are omitted, never null.
// The package performs no cross-field validation (for example, it does not
// check that x and y have the same length); the consuming renderer reports
// such mismatches.
package plotly
