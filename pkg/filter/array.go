package filter

import (
	"strings"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// DefaultSeparator splits array values when no separator is configured.
const DefaultSeparator = ","

// Array splits a value on Separator and trims every element.
// List values are trimmed element-wise without splitting.
// Null yields no value, "" yields an empty slice.
type Array struct {
	Separator string
}

// Apply implements Filter.
func (f Array) Apply(v value.Value) ([]string, bool, paramerr.Errors) {
	if v.IsNull() {
		return nil, false, nil
	}
	if v.IsEmpty() {
		return []string{}, true, nil
	}

	items := v.List()
	if !v.IsList() {
		sep := f.Separator
		if sep == "" {
			sep = DefaultSeparator
		}
		items = strings.Split(v.String(), sep)
	}
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items, true, nil
}
