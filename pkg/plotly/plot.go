package plotly

import "encoding/json"

// Plot is the complete figure specification: the id of the DOM element the
// embedding layer mounts the chart into, the traces in layering order, and
// the layout. Trace order is preserved through serialization; later traces
// render on top of earlier ones.
type Plot struct {
	ID     string  `json:"id"`
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// NewPlot builds a plot from an element id and traces, with a default
// (empty) layout.
func NewPlot(id string, traces ...Trace) Plot {
	return Plot{ID: id, Data: traces}
}

// WithLayout returns a copy with the layout set.
func (p Plot) WithLayout(l Layout) Plot {
	p.Layout = l
	return p
}

// WithID returns a copy with the element id set.
func (p Plot) WithID(id string) Plot {
	p.ID = id
	return p
}

// AddTrace returns a copy with the trace appended after the existing ones.
// The trace list is copied, so plots derived from a common base never share
// backing storage.
func (p Plot) AddTrace(t Trace) Plot {
	data := make([]Trace, len(p.Data), len(p.Data)+1)
	copy(data, p.Data)
	p.Data = append(data, t)
	return p
}

// MarshalJSON emits the three top-level fields; a plot without traces still
// carries an empty data array rather than null.
func (p Plot) MarshalJSON() ([]byte, error) {
	type plot Plot // drop methods to avoid recursion
	q := plot(p)
	if q.Data == nil {
		q.Data = []Trace{}
	}
	return json.Marshal(q)
}

// JSON serializes the plot to a compact JSON document.
func (p Plot) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// IndentJSON serializes the plot to an indented JSON document, for files
// meant to be read by people.
func (p Plot) IndentJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
