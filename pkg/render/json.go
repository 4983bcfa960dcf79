// Package render writes figure specifications to their delivery formats:
// raw JSON documents and self-contained HTML pages that hand the JSON to
// plotly.js in the browser. Nothing here draws; drawing belongs to the
// external renderer.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/plotspec/plotspec/pkg/plotly"
)

// EnsureID returns the plot with a usable element id: the plot's own id when
// set, otherwise a generated one. The embedding page needs a non-empty id to
// target its container div.
func EnsureID(p plotly.Plot) plotly.Plot {
	if p.ID != "" {
		return p
	}
	return p.WithID("plot-" + uuid.NewString())
}

// WriteJSON encodes a plot as an indented JSON document and writes it to w.
// The output is the complete figure specification and can be handed to
// plotly.js as-is.
func WriteJSON(p plotly.Plot, w io.Writer) error {
	data, err := p.IndentJSON()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteJSONDoc is [WriteJSON] for figures that already exist as encoded
// JSON documents, such as those read back from a store. The document is
// re-indented before writing.
func WriteJSONDoc(doc []byte, w io.Writer) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return fmt.Errorf("indent: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportJSON writes a plot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p plotly.Plot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}

// marshalCompact is the single-line encoding used when the document is
// embedded inside a page rather than written to its own file.
func marshalCompact(p plotly.Plot) ([]byte, error) {
	return json.Marshal(p)
}
