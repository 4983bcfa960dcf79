package plotly

import (
	"encoding/json"
	"testing"
)

func TestElemMarshalsAsScalar(t *testing.T) {
	data, err := json.Marshal(Elem(12.5))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "12.5" {
		t.Errorf("marshal = %s, want 12.5", data)
	}
}

func TestListMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(List([]float64{1, 2, 3}))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "[1,2,3]" {
		t.Errorf("marshal = %s, want [1,2,3]", data)
	}
}

func TestListOfStrings(t *testing.T) {
	data, err := json.Marshal(List([]string{"a", "b"}))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != `["a","b"]` {
		t.Errorf("marshal = %s, want %q", data, `["a","b"]`)
	}
}

func TestSingleElementListStaysArray(t *testing.T) {
	// A one-element list is still per-point styling, not a uniform value.
	data, err := json.Marshal(List([]float64{5}))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "[5]" {
		t.Errorf("marshal = %s, want [5]", data)
	}
}
