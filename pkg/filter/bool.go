package filter

import (
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// Bool is true for "1", "true" and "yes" and false for anything else.
// It never rejects a value.
type Bool struct{}

// Apply implements Filter.
func (Bool) Apply(v value.Value) (bool, bool, paramerr.Errors) {
	if v.IsNull() {
		return false, false, nil
	}
	switch v.String() {
	case "1", "true", "yes":
		return true, true, nil
	default:
		return false, true, nil
	}
}
