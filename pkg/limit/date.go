package limit

import (
	"github.com/dmitrymomot/input/pkg/date"
	"github.com/dmitrymomot/input/pkg/paramerr"
)

// DateRange limits dates to [min, max]. A nil border is unbounded.
type DateRange struct {
	min *date.Date
	max *date.Date
}

// NewDateRange returns a DateRange with optional borders.
func NewDateRange(min, max *date.Date) DateRange {
	return DateRange{min: min, max: max}
}

// Contains reports whether d lies within the borders.
func (r DateRange) Contains(d date.Date) bool {
	if r.min != nil && d.Before(*r.min) {
		return false
	}
	if r.max != nil && d.After(*r.max) {
		return false
	}
	return true
}

// ErrorsOf returns DATE_TOO_EARLY or DATE_TOO_LATE for a date outside the range.
func (r DateRange) ErrorsOf(d date.Date) paramerr.Errors {
	if r.min != nil && d.Before(*r.min) {
		return tooEarly(*r.min)
	}
	if r.max != nil && d.After(*r.max) {
		return tooLate(*r.max)
	}
	return nil
}

// AllowsTruncate always returns false.
func (r DateRange) AllowsTruncate(date.Date) bool {
	return false
}

// TruncateToMaxBorder panics, dates are never truncated.
func (r DateRange) TruncateToMaxBorder(date.Date) date.Date {
	panic(notTruncatable("date range"))
}

// DatespanRange limits date spans to lie within [min, max].
type DatespanRange[S date.Datespan] struct {
	min *date.Date
	max *date.Date
}

// NewDatespanRange returns a DatespanRange with optional borders.
func NewDatespanRange[S date.Datespan](min, max *date.Date) DatespanRange[S] {
	return DatespanRange[S]{min: min, max: max}
}

// Contains reports whether span neither starts before min nor ends after max.
func (r DatespanRange[S]) Contains(span S) bool {
	if r.min != nil && span.StartsBefore(*r.min) {
		return false
	}
	if r.max != nil && span.EndsAfter(*r.max) {
		return false
	}
	return true
}

// ErrorsOf returns DATE_TOO_EARLY or DATE_TOO_LATE for a span outside the range.
func (r DatespanRange[S]) ErrorsOf(span S) paramerr.Errors {
	if r.min != nil && span.StartsBefore(*r.min) {
		return tooEarly(*r.min)
	}
	if r.max != nil && span.EndsAfter(*r.max) {
		return tooLate(*r.max)
	}
	return nil
}

// AllowsTruncate always returns false.
func (r DatespanRange[S]) AllowsTruncate(S) bool {
	return false
}

// TruncateToMaxBorder panics, spans are never truncated.
func (r DatespanRange[S]) TruncateToMaxBorder(S) S {
	panic(notTruncatable("datespan range"))
}

func tooEarly(min date.Date) paramerr.Errors {
	return paramerr.Of(paramerr.DateTooEarly, map[string]any{"earliestDate": min.DayString()})
}

func tooLate(max date.Date) paramerr.Errors {
	return paramerr.Of(paramerr.DateTooLate, map[string]any{"latestDate": max.DayString()})
}
