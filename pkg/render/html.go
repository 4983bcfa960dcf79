package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/plotspec/plotspec/pkg/plotly"
)

// DefaultCDN is the plotly.js bundle loaded by generated pages.
const DefaultCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTMLOption configures HTML page generation via [WriteHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	cdn   string
	title string
}

// WithCDN overrides the plotly.js script URL, for pinned versions or
// self-hosted bundles.
func WithCDN(url string) HTMLOption { return func(r *htmlRenderer) { r.cdn = url } }

// WithPageTitle sets the HTML document title. Without this, the page falls
// back to the plot's element id.
func WithPageTitle(title string) HTMLOption { return func(r *htmlRenderer) { r.title = title } }

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.CDN}}"></script>
</head>
<body>
<div id="{{.ElemID}}"></div>
<script>
var fig = {{.Spec}};
Plotly.newPlot(fig.id, fig.data, fig.layout);
</script>
</body>
</html>
`))

type pageData struct {
	Title  string
	CDN    string
	ElemID string
	Spec   template.JS
}

// WriteHTML writes a self-contained HTML page that mounts the figure into a
// div named by the plot's element id. Plots without an id get a generated
// one. The figure JSON is embedded verbatim; plotly.js is loaded from a CDN.
func WriteHTML(p plotly.Plot, w io.Writer, opts ...HTMLOption) error {
	p = EnsureID(p)
	spec, err := marshalCompact(p)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return writePage(spec, p.ID, w, opts)
}

// WriteHTMLDoc is [WriteHTML] for figures that already exist as encoded JSON
// documents, such as those read back from a store. The document must carry a
// non-empty "id" field; documents written by this module always do.
func WriteHTMLDoc(doc []byte, w io.Writer, opts ...HTMLOption) error {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &head); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if head.ID == "" {
		return fmt.Errorf("document has no element id")
	}

	// Escape <, >, and & so the document cannot terminate the surrounding
	// script element, then strip the stored indentation.
	var escaped bytes.Buffer
	json.HTMLEscape(&escaped, doc)
	var compact bytes.Buffer
	if err := json.Compact(&compact, escaped.Bytes()); err != nil {
		return fmt.Errorf("compact: %w", err)
	}
	return writePage(compact.Bytes(), head.ID, w, opts)
}

func writePage(spec []byte, elemID string, w io.Writer, opts []HTMLOption) error {
	r := htmlRenderer{cdn: DefaultCDN}
	for _, opt := range opts {
		opt(&r)
	}

	title := r.title
	if title == "" {
		title = elemID
	}

	// encoding/json escapes <, >, and & inside strings, so the document
	// cannot terminate the surrounding script element early.
	return pageTemplate.Execute(w, pageData{
		Title:  title,
		CDN:    r.cdn,
		ElemID: elemID,
		Spec:   template.JS(spec),
	})
}

// ExportHTML writes a plot to an HTML file at path.
// This is a convenience wrapper around [WriteHTML] for file-based output.
func ExportHTML(p plotly.Plot, path string, opts ...HTMLOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteHTML(p, f, opts...)
}
