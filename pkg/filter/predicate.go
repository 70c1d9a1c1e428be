package filter

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// Predicate passes the value through when pred holds and rejects it with
// errorID and details otherwise. Null values yield no value and no error.
func Predicate(pred func(value.Value) bool, errorID string, details map[string]any) Filter[string] {
	return Func[string](func(v value.Value) (string, bool, paramerr.Errors) {
		if v.IsNull() {
			return "", false, nil
		}
		if pred(v) {
			return v.String(), true, nil
		}
		return "", false, paramerr.Of(errorID, details)
	})
}

// OneOf accepts only values from allowed, else FIELD_NO_SELECT.
func OneOf(allowed []string) Filter[string] {
	return Predicate(
		func(v value.Value) bool { return v.IsOneOf(allowed) },
		paramerr.FieldNoSelect,
		map[string]any{"allowed": strings.Join(allowed, "|")},
	)
}

// Matches accepts only values matched by re, else FIELD_WRONG_VALUE.
func Matches(re *regexp.Regexp) Filter[string] {
	return Predicate(
		func(v value.Value) bool { return v.IsMatchedBy(re) },
		paramerr.FieldWrongValue,
		nil,
	)
}

// IPAddress accepts only IPv4 or IPv6 addresses, else INVALID_IP_ADDRESS.
func IPAddress() Filter[string] {
	return Predicate(value.Value.IsIPAddress, paramerr.InvalidIPAddress, nil)
}
