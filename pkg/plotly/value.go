package plotly

import "encoding/json"

// ListOrElem holds a value that applies either uniformly to every data point
// (a single element, serialized as a JSON scalar) or per point (a list,
// serialized as a JSON array). The caller chooses the variant; the two are
// never converted into each other.
type ListOrElem[T any] struct {
	elem   T
	list   []T
	isList bool
}

// Elem wraps a single value applied to every point.
func Elem[T any](v T) ListOrElem[T] {
	return ListOrElem[T]{elem: v}
}

// List wraps one value per point.
func List[T any](vs []T) ListOrElem[T] {
	return ListOrElem[T]{list: vs, isList: true}
}

// MarshalJSON emits either the scalar or the array form.
func (le ListOrElem[T]) MarshalJSON() ([]byte, error) {
	if le.isList {
		return json.Marshal(le.list)
	}
	return json.Marshal(le.elem)
}
