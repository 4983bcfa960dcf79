package cli

import (
	"reflect"
	"testing"

	"github.com/plotspec/plotspec/pkg/config"
	"github.com/plotspec/plotspec/pkg/plotly"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to json", "", []string{"json"}},
		{"single format", "html", []string{"html"}},
		{"multiple formats", "json,html", []string{"json", "html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"json", "html"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := validateFormats([]string{"svg"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		figure string
		want   string
	}{
		{"empty output uses figure name", "", "iris", "iris"},
		{"strips known extension", "out.json", "iris", "out"},
		{"strips html extension", "chart.html", "iris", "chart"},
		{"keeps unknown extension", "out.txt", "iris", "out.txt"},
		{"plain base path", "figures/iris", "iris", "figures/iris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.figure)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.figure, got, tt.want)
			}
		})
	}
}

func TestApplyFigureDefaults(t *testing.T) {
	cfg := config.FigureConfig{Width: 800, Height: 600}

	p := applyFigureDefaults(plotly.NewPlot("", plotly.Scatter()), cfg)
	if p.Layout.Width == nil || *p.Layout.Width != 800 {
		t.Errorf("Width = %v, want 800", p.Layout.Width)
	}
	if p.Layout.Height == nil || *p.Layout.Height != 600 {
		t.Errorf("Height = %v, want 600", p.Layout.Height)
	}
}

func TestApplyFigureDefaultsKeepsExplicit(t *testing.T) {
	cfg := config.FigureConfig{Width: 800, Height: 600}

	base := plotly.NewPlot("", plotly.Scatter()).
		WithLayout(plotly.NewLayout().WithWidth(1024))
	p := applyFigureDefaults(base, cfg)

	if p.Layout.Width == nil || *p.Layout.Width != 1024 {
		t.Errorf("Width = %v, want explicit 1024 preserved", p.Layout.Width)
	}
	if p.Layout.Height == nil || *p.Layout.Height != 600 {
		t.Errorf("Height = %v, want default 600", p.Layout.Height)
	}
}

func TestApplyFigureDefaultsZeroConfig(t *testing.T) {
	p := applyFigureDefaults(plotly.NewPlot("", plotly.Scatter()), config.FigureConfig{})
	if p.Layout.Width != nil || p.Layout.Height != nil {
		t.Error("zero config should leave dimensions absent")
	}
}
