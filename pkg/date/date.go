package date

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is returned when a string cannot be parsed into a date or span.
var ErrInvalid = errors.New("date: invalid value")

// DayLayout is the canonical string form of a day.
const DayLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DayLayout,
	"02.01.2006",
}

// Date is a point in time.
type Date struct {
	t time.Time
}

// New wraps t as a Date in UTC.
func New(t time.Time) Date {
	return Date{t: t.UTC()}
}

// Today returns the start of the current day.
func Today() Date {
	return New(startOfDay(time.Now()))
}

// ParseDate parses s as absolute date, with or without time and zone,
// or as one of the keywords now, today, yesterday and tomorrow.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return Date{}, fmt.Errorf("%w: empty date", ErrInvalid)
	case "now":
		return New(time.Now()), nil
	case "today":
		return Today(), nil
	case "yesterday":
		return Today().AddDays(-1), nil
	case "tomorrow":
		return Today().AddDays(1), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return New(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date as time.Time.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether d and other are the same instant.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns d moved by n days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

// DayString returns d as "2006-01-02".
func (d Date) DayString() string {
	return d.t.Format(DayLayout)
}

// String returns d in RFC 3339 form.
func (d Date) String() string {
	return d.t.Format(time.RFC3339)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
