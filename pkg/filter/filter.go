package filter

import (
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// Filter converts a raw value into T.
type Filter[T any] interface {
	Apply(v value.Value) (T, bool, paramerr.Errors)
}

// Func adapts a function to Filter.
type Func[T any] func(v value.Value) (T, bool, paramerr.Errors)

// Apply calls f(v).
func (f Func[T]) Apply(v value.Value) (T, bool, paramerr.Errors) {
	return f(v)
}

// Range is a bounds check applied to the output of a filter.
// ErrorsOf is only called for values Contains rejected.
type Range[T any] interface {
	Contains(v T) bool
	ErrorsOf(v T) paramerr.Errors
	AllowsTruncate(v T) bool
	TruncateToMaxBorder(v T) T
}

type rangeFilter[T any] struct {
	filter Filter[T]
	limit  Range[T]
}

// WithRange decorates f with r. Errors and null results of f pass through
// unchanged; a value outside r is truncated if r allows it, else rejected
// with the errors of r.
func WithRange[T any](f Filter[T], r Range[T]) Filter[T] {
	if r == nil {
		return f
	}
	return rangeFilter[T]{filter: f, limit: r}
}

func (rf rangeFilter[T]) Apply(v value.Value) (T, bool, paramerr.Errors) {
	var zero T
	result, ok, errs := rf.filter.Apply(v)
	if len(errs) > 0 {
		return zero, false, errs
	}
	if !ok {
		return zero, false, nil
	}
	if rf.limit.Contains(result) {
		return result, true, nil
	}
	if rf.limit.AllowsTruncate(result) {
		return rf.limit.TruncateToMaxBorder(result), true, nil
	}
	return zero, false, rf.limit.ErrorsOf(result)
}

// Callable wraps a function that reports errors by adding them to errs.
// Any error added rejects the value.
func Callable[T any](fn func(v value.Value, errs paramerr.Errors) (T, bool)) Filter[T] {
	return Func[T](func(v value.Value) (T, bool, paramerr.Errors) {
		var zero T
		errs := paramerr.Errors{}
		result, ok := fn(v, errs)
		if len(errs) > 0 {
			return zero, false, errs
		}
		if !ok {
			return zero, false, nil
		}
		return result, true, nil
	})
}
