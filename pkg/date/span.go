package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Datespan is a range of whole days.
type Datespan interface {
	// Start returns the first day of the span at midnight.
	Start() Date
	// End returns the last day of the span at midnight.
	End() Date
	// StartsBefore reports whether the span starts on a day before d.
	StartsBefore(d Date) bool
	// EndsAfter reports whether the span ends on a day after d.
	EndsAfter(d Date) bool
	// Contains reports whether d falls on a day of the span.
	Contains(d Date) bool
	// Days returns the number of days in the span.
	Days() int
	String() string
}

type span struct {
	start time.Time
	end   time.Time
}

func newSpan(start, end time.Time) span {
	return span{start: startOfDay(start), end: startOfDay(end)}
}

func (s span) Start() Date {
	return Date{t: s.start}
}

func (s span) End() Date {
	return Date{t: s.end}
}

func (s span) StartsBefore(d Date) bool {
	return s.start.Before(startOfDay(d.t))
}

func (s span) EndsAfter(d Date) bool {
	return s.end.After(startOfDay(d.t))
}

func (s span) Contains(d Date) bool {
	day := startOfDay(d.t)
	return !day.Before(s.start) && !day.After(s.end)
}

func (s span) Days() int {
	return int(s.end.Sub(s.start).Hours()/24) + 1
}

// Day is a single day.
type Day struct{ span }

// NewDay returns the day d falls on.
func NewDay(d Date) Day {
	return Day{newSpan(d.t, d.t)}
}

// ParseDay parses "2006-01-02" or one of today, yesterday and tomorrow.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "today":
		return NewDay(Today()), nil
	case "yesterday":
		return NewDay(Today().AddDays(-1)), nil
	case "tomorrow":
		return NewDay(Today().AddDays(1)), nil
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: day %q", ErrInvalid, s)
	}
	return NewDay(New(t)), nil
}

// String returns the day as "2006-01-02".
func (d Day) String() string {
	return d.start.Format(DayLayout)
}

// Week is an ISO 8601 week starting on Monday.
type Week struct{ span }

// NewWeek returns the ISO week d falls in.
func NewWeek(d Date) Week {
	day := startOfDay(d.t)
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return Week{newSpan(monday, monday.AddDate(0, 0, 6))}
}

// ParseWeek parses an ISO week such as "2024-W09".
func ParseWeek(s string) (Week, error) {
	s = strings.TrimSpace(s)
	yearPart, weekPart, ok := strings.Cut(strings.ToUpper(s), "-W")
	if !ok || len(yearPart) != 4 || len(weekPart) != 2 {
		return Week{}, fmt.Errorf("%w: week %q", ErrInvalid, s)
	}
	year, err1 := strconv.Atoi(yearPart)
	week, err2 := strconv.Atoi(weekPart)
	if err1 != nil || err2 != nil || week < 1 || week > 53 {
		return Week{}, fmt.Errorf("%w: week %q", ErrInvalid, s)
	}

	// January 4th always lies in week 1.
	w := NewWeek(New(time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)).AddDays((week - 1) * 7))
	if y, n := w.start.ISOWeek(); y != year || n != week {
		return Week{}, fmt.Errorf("%w: week %q does not exist", ErrInvalid, s)
	}
	return w, nil
}

// Number returns the ISO year and week number.
func (w Week) Number() (year, week int) {
	return w.start.ISOWeek()
}

// String returns the week as "2006-W01".
func (w Week) String() string {
	y, n := w.Number()
	return fmt.Sprintf("%04d-W%02d", y, n)
}

// Month is a calendar month.
type Month struct{ span }

// NewMonth returns the month d falls in.
func NewMonth(d Date) Month {
	t := d.t
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Month{newSpan(first, first.AddDate(0, 1, -1))}
}

// ParseMonth parses "2006-01" or one of current and last.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "current":
		return NewMonth(Today()), nil
	case "last":
		return NewMonth(NewMonth(Today()).Start().AddDays(-1)), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: month %q", ErrInvalid, s)
	}
	return NewMonth(New(t)), nil
}

// String returns the month as "2006-01".
func (m Month) String() string {
	return m.start.Format("2006-01")
}

// Custom is an arbitrary span between two days.
type Custom struct{ span }

// NewCustom returns the span from start to end.
// It fails if start is after end.
func NewCustom(start, end Date) (Custom, error) {
	s := newSpan(start.t, end.t)
	if s.start.After(s.end) {
		return Custom{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalid, start.DayString(), end.DayString())
	}
	return Custom{s}, nil
}

// ParseCustom parses "2006-01-02/2006-01-02".
func ParseCustom(s string) (Custom, error) {
	startPart, endPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Custom{}, fmt.Errorf("%w: span %q", ErrInvalid, s)
	}
	start, err := ParseDay(startPart)
	if err != nil {
		return Custom{}, err
	}
	end, err := ParseDay(endPart)
	if err != nil {
		return Custom{}, err
	}
	return NewCustom(start.Start(), end.Start())
}

// String returns the span as "2006-01-02/2006-01-02".
func (c Custom) String() string {
	return c.start.Format(DayLayout) + "/" + c.end.Format(DayLayout)
}

// ParseDatespan parses s as Day, Week, Month or Custom, in that order.
func ParseDatespan(s string) (Datespan, error) {
	if d, err := ParseDay(s); err == nil {
		return d, nil
	}
	if w, err := ParseWeek(s); err == nil {
		return w, nil
	}
	if m, err := ParseMonth(s); err == nil {
		return m, nil
	}
	if c, err := ParseCustom(s); err == nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w: datespan %q", ErrInvalid, s)
}
