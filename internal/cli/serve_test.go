package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotspec/plotspec/pkg/config"
	"github.com/plotspec/plotspec/pkg/store"
)

func testRouter(t *testing.T) (http.Handler, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	t.Cleanup(func() { s.Close() })

	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	return newRouter(s, config.FigureConfig{Width: 800, Height: 600}, logger), s
}

func TestServeIndex(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/example/iris") {
		t.Error("index should link to the iris example")
	}
}

func TestServeIndexListsSavedFigures(t *testing.T) {
	router, s := testRouter(t)

	fig := store.Figure{
		Name:    "my-chart",
		SavedAt: time.Now().UTC(),
		Doc:     json.RawMessage(`{"id":"plot-1","data":[],"layout":{}}`),
	}
	if err := s.Put(context.Background(), fig); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(rec.Body.String(), "/figure/my-chart") {
		t.Error("index should link to the saved figure")
	}
}

func TestServeExampleHTML(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/example/iris", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "Plotly.newPlot") {
		t.Error("page should call Plotly.newPlot")
	}
}

func TestServeExampleJSON(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/example/iris.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := doc["data"]; !ok {
		t.Error("document should have a data field")
	}
	// The router applies the configured default dimensions.
	layout, ok := doc["layout"].(map[string]any)
	if !ok {
		t.Fatal("document should have a layout object")
	}
	if layout["width"] != float64(800) {
		t.Errorf("layout.width = %v, want 800", layout["width"])
	}
}

func TestServeExampleNotFound(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/example/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeFigureRoundTrip(t *testing.T) {
	router, s := testRouter(t)

	doc := json.RawMessage(`{"id":"plot-7","data":[{"type":"bar","x":["a"],"y":[1]}],"layout":{}}`)
	fig := store.Figure{Name: "bars", SavedAt: time.Now().UTC(), Doc: doc}
	if err := s.Put(context.Background(), fig); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/figure/bars.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("json status = %d, want 200", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got["id"] != "plot-7" {
		t.Errorf("id = %v, want plot-7", got["id"])
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/figure/bars", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("html status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<div id="plot-7">`) {
		t.Error("page should mount the figure into its element id")
	}
}

func TestServeFigureNotFound(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/figure/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
