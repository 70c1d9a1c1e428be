package limit

import (
	"golang.org/x/exp/constraints"

	"github.com/dmitrymomot/input/pkg/paramerr"
)

// Number is the set of types NumberRange works on.
type Number interface {
	constraints.Integer | constraints.Float
}

// NumberRange limits numbers to [min, max]. A nil border is unbounded.
type NumberRange[N Number] struct {
	min *N
	max *N
}

// NewNumber returns a NumberRange with optional borders.
func NewNumber[N Number](min, max *N) NumberRange[N] {
	return NumberRange[N]{min: min, max: max}
}

// Between returns a NumberRange with both borders.
func Between[N Number](min, max N) NumberRange[N] {
	return NumberRange[N]{min: &min, max: &max}
}

// AtLeast returns a NumberRange with a lower border only.
func AtLeast[N Number](min N) NumberRange[N] {
	return NumberRange[N]{min: &min}
}

// AtMost returns a NumberRange with an upper border only.
func AtMost[N Number](max N) NumberRange[N] {
	return NumberRange[N]{max: &max}
}

// Contains reports whether v lies within the borders.
func (r NumberRange[N]) Contains(v N) bool {
	if r.min != nil && v < *r.min {
		return false
	}
	if r.max != nil && v > *r.max {
		return false
	}
	return true
}

// ErrorsOf returns VALUE_TOO_SMALL or VALUE_TOO_GREAT for a value outside the range.
func (r NumberRange[N]) ErrorsOf(v N) paramerr.Errors {
	if r.min != nil && v < *r.min {
		return paramerr.Of(paramerr.ValueTooSmall, map[string]any{"minNumber": *r.min})
	}
	if r.max != nil && v > *r.max {
		return paramerr.Of(paramerr.ValueTooGreat, map[string]any{"maxNumber": *r.max})
	}
	return nil
}

// AllowsTruncate always returns false.
func (r NumberRange[N]) AllowsTruncate(N) bool {
	return false
}

// TruncateToMaxBorder panics, numbers are never truncated.
func (r NumberRange[N]) TruncateToMaxBorder(N) N {
	panic(notTruncatable("number range"))
}
