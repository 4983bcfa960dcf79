package plotly

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDefaultAxisSerializesToEmptyObject(t *testing.T) {
	data, err := json.Marshal(NewAxis())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("marshal = %s, want {}", data)
	}
}

func TestAxisFields(t *testing.T) {
	a := NewAxis().
		WithRange(-1, 1).
		WithTitle("time").
		WithShowGrid(true).
		WithZeroLine(false).
		WithVisible(true).
		WithTicks([]any{0.0, 1.0}, []string{"start", "end"})

	m := marshalToMap(t, a)
	want := map[string]any{
		"range":    []any{-1.0, 1.0},
		"title":    "time",
		"showgrid": true,
		"zeroline": false,
		"visible":  true,
		"tickvals": []any{0.0, 1.0},
		"ticktext": []any{"start", "end"},
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("marshal = %v, want %v", m, want)
	}
}

func TestDefaultLayoutSerializesToEmptyObject(t *testing.T) {
	data, err := json.Marshal(NewLayout())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("marshal = %s, want {}", data)
	}
}

func TestLayoutAxesUseExternalNames(t *testing.T) {
	l := NewLayout().
		WithXAxis(NewAxis().WithTitle("x")).
		WithYAxis(NewAxis().WithTitle("y")).
		WithZAxis(NewAxis().WithTitle("z"))

	m := marshalToMap(t, l)
	for _, key := range []string{"xaxis", "yaxis", "zaxis"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing %s key (keys: %v)", key, m)
		}
	}
}

func TestLayoutBarModeAndDimensions(t *testing.T) {
	l := NewLayout().
		WithBarMode(BarStack).
		WithWidth(640).
		WithHeight(480).
		WithShowLegend(true).
		WithTitle("revenue")

	m := marshalToMap(t, l)
	if m["barmode"] != "stack" {
		t.Errorf("barmode = %v, want stack", m["barmode"])
	}
	if m["width"] != 640.0 || m["height"] != 480.0 {
		t.Errorf("dimensions = %vx%v, want 640x480", m["width"], m["height"])
	}
	if m["showlegend"] != true {
		t.Errorf("showlegend = %v, want true", m["showlegend"])
	}
	if m["title"] != "revenue" {
		t.Errorf("title = %v, want revenue", m["title"])
	}
}

func TestTitledMarginPreset(t *testing.T) {
	data, err := json.Marshal(TitledMargin())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"l":50,"r":25,"b":30,"t":40,"pad":4}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestMarginAlwaysEmitsAllOffsets(t *testing.T) {
	data, err := json.Marshal(NewMargin(0, 0, 0, 0, 0))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"l":0,"r":0,"b":0,"t":0,"pad":0}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestLayoutMargin(t *testing.T) {
	m := marshalToMap(t, NewLayout().WithMargin(CompactMargin()))
	margin, ok := m["margin"].(map[string]any)
	if !ok {
		t.Fatalf("margin = %v, want object", m["margin"])
	}
	if len(margin) != 5 {
		t.Errorf("margin key count = %d, want 5", len(margin))
	}
}
