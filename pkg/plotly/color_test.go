package plotly

import (
	"encoding/json"
	"testing"
)

func TestRGBMarshal(t *testing.T) {
	data, err := json.Marshal(RGB(10, 20, 30))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != `"rgb(10,20,30)"` {
		t.Errorf("marshal = %s, want %q", data, `"rgb(10,20,30)"`)
	}
}

func TestRGBAMarshal(t *testing.T) {
	data, err := json.Marshal(RGBA(10, 20, 30, 255))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != `"rgba(10,20,30,255)"` {
		t.Errorf("marshal = %s, want %q", data, `"rgba(10,20,30,255)"`)
	}
}

func TestCategoryMarshalsAsBareInteger(t *testing.T) {
	data, err := json.Marshal(Category(2))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != "2" {
		t.Errorf("marshal = %s, want 2", data)
	}
}

func TestCategoryColorsFirstOccurrenceOrder(t *testing.T) {
	got, err := json.Marshal(CategoryColors([]string{"b", "a", "b", "c", "a"}))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	// b is first seen, so b=0, then a=1, then c=2.
	want := "[0,1,0,2,1]"
	if string(got) != want {
		t.Errorf("indices = %s, want %s", got, want)
	}
}

func TestCategoryColorsEqualValuesShareIndex(t *testing.T) {
	got, err := json.Marshal(CategoryColors([]int{7, 7, 7}))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(got) != "[0,0,0]" {
		t.Errorf("indices = %s, want [0,0,0]", got)
	}
}

func TestCategoryColorsEmptyInput(t *testing.T) {
	got, err := json.Marshal(CategoryColors([]string{}))
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("indices = %s, want []", got)
	}
}
