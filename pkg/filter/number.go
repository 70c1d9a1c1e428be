package filter

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// numericPrefix matches the leading number of a string the way loosely typed
// form input is usually coerced: "12abc" is 12, " 3.5kg" is 3.5, "abc" is 0.
var numericPrefix = regexp.MustCompile(`^[ \t\n\r\v\f]*([+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)`)

// Integer converts a value to int. Non-numeric input becomes 0,
// out of range input saturates. Only null yields no value.
type Integer struct{}

// Apply implements Filter.
func (Integer) Apply(v value.Value) (int, bool, paramerr.Errors) {
	if v.IsNull() {
		return 0, false, nil
	}
	return parseInt(v.String()), true, nil
}

// Float converts a value to float64. Non-numeric input becomes 0.
// Only null yields no value.
type Float struct{}

// Apply implements Filter.
func (Float) Apply(v value.Value) (float64, bool, paramerr.Errors) {
	if v.IsNull() {
		return 0, false, nil
	}
	return parseFloat(v.String()), true, nil
}

// FixedPoint converts a value to a float and encodes it as integer with
// Decimals decimal places: with Decimals 2, "3.14159" becomes 314.
// Digits beyond the decimal places are truncated.
type FixedPoint struct {
	Decimals int
}

// Apply implements Filter.
func (f FixedPoint) Apply(v value.Value) (int, bool, paramerr.Errors) {
	if v.IsNull() {
		return 0, false, nil
	}
	return floatToInt(parseFloat(v.String()) * math.Pow10(f.Decimals)), true, nil
}

func parseFloat(s string) float64 {
	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	// ParseFloat returns ±Inf or 0 on range errors.
	f, _ := strconv.ParseFloat(m[1], 64)
	return f
}

func parseInt(s string) int {
	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	num := m[1]
	if strings.ContainsAny(num, ".eE") {
		return floatToInt(parseFloat(num))
	}
	// ParseInt returns the saturated value on range errors.
	i, _ := strconv.ParseInt(num, 10, strconv.IntSize)
	return int(i)
}

func floatToInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}
