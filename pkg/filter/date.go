package filter

import (
	"github.com/dmitrymomot/input/pkg/date"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// parseFilter builds a filter from a parse function: empty values yield no
// value, parse failures are rejected with errorID.
func parseFilter[T any](parse func(string) (T, error), errorID string) Func[T] {
	return func(v value.Value) (T, bool, paramerr.Errors) {
		var zero T
		if v.IsEmpty() {
			return zero, false, nil
		}
		result, err := parse(v.String())
		if err != nil {
			return zero, false, paramerr.Of(errorID, nil)
		}
		return result, true, nil
	}
}

// Date parses a date, see date.ParseDate. Failures are DATE_INVALID.
type Date struct{}

// Apply implements Filter.
func (Date) Apply(v value.Value) (date.Date, bool, paramerr.Errors) {
	return parseFilter(date.ParseDate, paramerr.DateInvalid)(v)
}

// Day parses a day, see date.ParseDay. Failures are DAY_INVALID.
type Day struct{}

// Apply implements Filter.
func (Day) Apply(v value.Value) (date.Day, bool, paramerr.Errors) {
	return parseFilter(date.ParseDay, paramerr.DayInvalid)(v)
}

// Week parses an ISO week, see date.ParseWeek. Failures are WEEK_INVALID.
type Week struct{}

// Apply implements Filter.
func (Week) Apply(v value.Value) (date.Week, bool, paramerr.Errors) {
	return parseFilter(date.ParseWeek, paramerr.WeekInvalid)(v)
}

// Month parses a month, see date.ParseMonth. Failures are MONTH_INVALID.
type Month struct{}

// Apply implements Filter.
func (Month) Apply(v value.Value) (date.Month, bool, paramerr.Errors) {
	return parseFilter(date.ParseMonth, paramerr.MonthInvalid)(v)
}

// Datespan parses any span, see date.ParseDatespan. Failures are DATESPAN_INVALID.
type Datespan struct{}

// Apply implements Filter.
func (Datespan) Apply(v value.Value) (date.Datespan, bool, paramerr.Errors) {
	return parseFilter(date.ParseDatespan, paramerr.DatespanInvalid)(v)
}
