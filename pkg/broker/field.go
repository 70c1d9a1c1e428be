package broker

import (
	"math"

	"github.com/dmitrymomot/input/pkg/date"
	"github.com/dmitrymomot/input/pkg/filter"
	"github.com/dmitrymomot/input/pkg/limit"
	"github.com/dmitrymomot/input/pkg/password"
	"github.com/dmitrymomot/input/pkg/reader"
	"github.com/dmitrymomot/input/pkg/secret"
)

// SourceParam is the source used when a Field does not name one.
const SourceParam = "param"

// Field describes how a single value is read.
// Only the settings relevant for the chosen Filter are used.
type Field struct {
	// Param is the name of the parameter, header, cookie or path segment.
	Param string
	// Source is the request source, SourceParam if empty.
	Source string
	// Filter is the registry key of the filter.
	Filter string

	// Required reports ErrorID, or FIELD_EMPTY, if the value is absent.
	Required bool
	ErrorID  string
	// Default is returned when the value is absent and not required.
	Default any

	MinNumber *float64
	MaxNumber *float64
	// Decimals switches the int filter to fixed point.
	Decimals int

	MinLength *int
	MaxLength *int
	// Truncate cuts strings longer than MaxLength instead of rejecting them.
	Truncate bool

	MinDate *date.Date
	MaxDate *date.Date

	Allowed       []string
	AllowedTags   []string
	Separator     string
	MaxJSONLength int
	// CheckDNS makes the httpuri filter require a resolvable host.
	CheckDNS bool
	Checker  password.Checker
}

// Num returns a pointer to n for number bounds.
func Num(n float64) *float64 {
	return &n
}

// Len returns a pointer to n for length bounds.
func Len(n int) *int {
	return &n
}

func (f Field) source() string {
	if f.Source == "" {
		return SourceParam
	}
	return f.Source
}

// presence applies Required or Default to r.
func (f Field) presence(r *reader.ValueReader) reader.CommonReader {
	switch {
	case f.Required && f.ErrorID != "":
		return r.RequiredWith(f.ErrorID)
	case f.Required:
		return r.Required()
	case f.Default != nil:
		return r.DefaultingTo(f.Default)
	default:
		return r.CommonReader
	}
}

func (f Field) intRange() []filter.Range[int] {
	if f.MinNumber == nil && f.MaxNumber == nil {
		return nil
	}
	return []filter.Range[int]{limit.NewNumber(lowerInt(f.MinNumber), upperInt(f.MaxNumber))}
}

func (f Field) floatRange() []filter.Range[float64] {
	if f.MinNumber == nil && f.MaxNumber == nil {
		return nil
	}
	return []filter.Range[float64]{limit.NewNumber(f.MinNumber, f.MaxNumber)}
}

// fixedPointRange scales the bounds like the value.
func (f Field) fixedPointRange() []filter.Range[int] {
	if f.MinNumber == nil && f.MaxNumber == nil {
		return nil
	}
	scale := 1.0
	for range f.Decimals {
		scale *= 10
	}
	scaled := func(p *float64) *float64 {
		if p == nil {
			return nil
		}
		return Num(*p * scale)
	}
	return []filter.Range[int]{limit.NewNumber(lowerInt(scaled(f.MinNumber)), upperInt(scaled(f.MaxNumber)))}
}

func (f Field) lengthRange() []filter.Range[string] {
	if f.MinLength == nil && f.MaxLength == nil {
		return nil
	}
	if f.Truncate {
		return []filter.Range[string]{limit.NewTruncatingLength(f.MinLength, f.MaxLength)}
	}
	return []filter.Range[string]{limit.NewLength(f.MinLength, f.MaxLength)}
}

func (f Field) secretRange() []filter.Range[*secret.Secret] {
	if f.MinLength == nil {
		return nil
	}
	return []filter.Range[*secret.Secret]{limit.SecretMinLength{Min: *f.MinLength}}
}

func (f Field) dateRange() []filter.Range[date.Date] {
	if f.MinDate == nil && f.MaxDate == nil {
		return nil
	}
	return []filter.Range[date.Date]{limit.NewDateRange(f.MinDate, f.MaxDate)}
}

func spanRange[S date.Datespan](f Field) []filter.Range[S] {
	if f.MinDate == nil && f.MaxDate == nil {
		return nil
	}
	return []filter.Range[S]{limit.NewDatespanRange[S](f.MinDate, f.MaxDate)}
}

// roundingSlack absorbs float noise from scaling, e.g. 0.29*100.
const roundingSlack = 1e-9

// lowerInt rounds a minimum up so that no smaller integer passes.
func lowerInt(p *float64) *int {
	if p == nil {
		return nil
	}
	n := int(math.Ceil(*p - roundingSlack))
	return &n
}

// upperInt rounds a maximum down so that no larger integer passes.
func upperInt(p *float64) *int {
	if p == nil {
		return nil
	}
	n := int(math.Floor(*p + roundingSlack))
	return &n
}
