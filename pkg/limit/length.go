package limit

import (
	"unicode/utf8"

	"github.com/dmitrymomot/input/pkg/paramerr"
)

// StringLength limits the number of characters of a string.
// In truncate mode strings longer than max are cut instead of rejected.
type StringLength struct {
	min      *int
	max      *int
	truncate bool
}

// NewLength returns a StringLength with optional borders.
func NewLength(min, max *int) StringLength {
	return StringLength{min: min, max: max}
}

// NewTruncatingLength returns a StringLength in truncate mode.
// It panics if max is nil.
func NewTruncatingLength(min, max *int) StringLength {
	if max == nil {
		panic(ErrTruncateWithoutMax)
	}
	return StringLength{min: min, max: max, truncate: true}
}

// Length returns a StringLength with both borders.
func Length(min, max int) StringLength {
	return StringLength{min: &min, max: &max}
}

// MinLength returns a StringLength with a lower border only.
func MinLength(min int) StringLength {
	return StringLength{min: &min}
}

// MaxLength returns a StringLength with an upper border only.
func MaxLength(max int) StringLength {
	return StringLength{max: &max}
}

// Truncate returns a StringLength that cuts strings to max characters.
func Truncate(max int) StringLength {
	return NewTruncatingLength(nil, &max)
}

// Contains reports whether the length of s lies within the borders.
func (l StringLength) Contains(s string) bool {
	n := utf8.RuneCountInString(s)
	if l.min != nil && n < *l.min {
		return false
	}
	if l.max != nil && n > *l.max {
		return false
	}
	return true
}

// ErrorsOf returns STRING_TOO_SHORT or STRING_TOO_LONG for a string outside the range.
func (l StringLength) ErrorsOf(s string) paramerr.Errors {
	n := utf8.RuneCountInString(s)
	if l.min != nil && n < *l.min {
		return paramerr.Of(paramerr.StringTooShort, map[string]any{"minLength": *l.min})
	}
	if l.max != nil && n > *l.max {
		return paramerr.Of(paramerr.StringTooLong, map[string]any{"maxLength": *l.max})
	}
	return nil
}

// AllowsTruncate reports whether s is too long and may be cut.
func (l StringLength) AllowsTruncate(s string) bool {
	return l.truncate && l.max != nil && utf8.RuneCountInString(s) > *l.max
}

// TruncateToMaxBorder returns the first max characters of s.
// It panics unless the length is in truncate mode.
func (l StringLength) TruncateToMaxBorder(s string) string {
	if !l.truncate || l.max == nil {
		panic(notTruncatable("string length without truncate mode"))
	}
	if utf8.RuneCountInString(s) <= *l.max {
		return s
	}
	return string([]rune(s)[:*l.max])
}
