package reader

import (
	"context"
	"regexp"

	"github.com/dmitrymomot/input/pkg/date"
	"github.com/dmitrymomot/input/pkg/filter"
	"github.com/dmitrymomot/input/pkg/httpuri"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/password"
	"github.com/dmitrymomot/input/pkg/secret"
	"github.com/dmitrymomot/input/pkg/value"
)

// AsArray splits the value on sep, see filter.Array.
func (c CommonReader) AsArray(sep string) ([]string, bool) {
	return read(c, "AsArray", filter.Filter[[]string](filter.Array{Separator: sep}), "", nil)
}

// AsBool reads the value as bool. A default of any type is converted:
// non-zero numbers and strings other than "" and "0" are true.
func (c CommonReader) AsBool() (bool, bool) {
	if p, ok := c.presence.(defaulted); ok {
		return toBool(p.value), true
	}
	return read(c, "AsBool", filter.Filter[bool](filter.Bool{}), "", nil)
}

// AsInt reads the value as int.
func (c CommonReader) AsInt(ranges ...filter.Range[int]) (int, bool) {
	return read(c, "AsInt", filter.Filter[int](filter.Integer{}), "", ranges)
}

// AsFloat reads the value as float64.
func (c CommonReader) AsFloat(ranges ...filter.Range[float64]) (float64, bool) {
	return read(c, "AsFloat", filter.Filter[float64](filter.Float{}), "", ranges)
}

// AsFixedPoint reads a decimal value as int with the given number of decimal
// places, see filter.FixedPoint. Ranges apply to the encoded int.
func (c CommonReader) AsFixedPoint(decimals int, ranges ...filter.Range[int]) (int, bool) {
	return read(c, "AsFixedPoint", filter.Filter[int](filter.FixedPoint{Decimals: decimals}), "", ranges)
}

// AsString reads the value as single line plain text.
func (c CommonReader) AsString(ranges ...filter.Range[string]) (string, bool) {
	return read(c, "AsString", filter.Filter[string](filter.String{}), "", ranges)
}

// AsText reads the value as multi line text keeping allowedTags.
func (c CommonReader) AsText(allowedTags []string, ranges ...filter.Range[string]) (string, bool) {
	return read(c, "AsText", filter.Filter[string](filter.NewText(allowedTags...)), "", ranges)
}

// AsSecret reads the value as secret.
func (c CommonReader) AsSecret(ranges ...filter.Range[*secret.Secret]) (*secret.Secret, bool) {
	return read(c, "AsSecret", filter.Filter[*secret.Secret](filter.Secret{}), "", ranges)
}

// AsPassword reads the value as password checked by checker.
// A nil checker uses password.NewSimpleChecker. Panics on a defaulted reader.
func (c CommonReader) AsPassword(checker password.Checker) (*secret.Secret, bool) {
	if _, ok := c.presence.(defaulted); ok {
		panic(ErrPasswordDefault)
	}
	return read(c, "AsPassword", filter.Filter[*secret.Secret](filter.Password{Checker: checker}), "", nil)
}

// AsJSON decodes the value as JSON object or array of at most maxLength
// bytes; 0 uses filter.DefaultJSONMaxLength. A default of any type is returned as is.
func (c CommonReader) AsJSON(maxLength int) (any, bool) {
	return read(c, "AsJSON", filter.Filter[any](filter.JSON{MaxLength: maxLength}), "", nil)
}

// AsHTTPURI reads the value as http or https URI.
// A missing value is reported as HTTP_URI_MISSING.
func (c CommonReader) AsHTTPURI() (httpuri.URI, bool) {
	return read(c, "AsHTTPURI", filter.Filter[httpuri.URI](filter.HTTPURI{}), paramerr.HTTPURIMissing, nil)
}

// AsExistingHTTPURI reads the value as http or https URI whose host resolves.
// A missing value is reported as HTTP_URI_MISSING.
func (c CommonReader) AsExistingHTTPURI(ctx context.Context) (httpuri.URI, bool) {
	f := filter.NewExistingHTTPURI(ctx, c.cfg.resolver)
	return read(c, "AsExistingHTTPURI", filter.Filter[httpuri.URI](f), paramerr.HTTPURIMissing, nil)
}

// AsMailAddress reads the value as mail address.
// A missing value is reported as MAILADDRESS_MISSING.
func (c CommonReader) AsMailAddress() (string, bool) {
	return read(c, "AsMailAddress", filter.Filter[string](filter.Mail{}), paramerr.MailAddressMissing, nil)
}

// AsDate reads the value as date.
func (c CommonReader) AsDate(ranges ...filter.Range[date.Date]) (date.Date, bool) {
	return read(c, "AsDate", filter.Filter[date.Date](filter.Date{}), "", ranges)
}

// AsDay reads the value as day.
func (c CommonReader) AsDay(ranges ...filter.Range[date.Day]) (date.Day, bool) {
	return read(c, "AsDay", filter.Filter[date.Day](filter.Day{}), "", ranges)
}

// AsWeek reads the value as ISO week.
func (c CommonReader) AsWeek(ranges ...filter.Range[date.Week]) (date.Week, bool) {
	return read(c, "AsWeek", filter.Filter[date.Week](filter.Week{}), "", ranges)
}

// AsMonth reads the value as month.
func (c CommonReader) AsMonth(ranges ...filter.Range[date.Month]) (date.Month, bool) {
	return read(c, "AsMonth", filter.Filter[date.Month](filter.Month{}), "", ranges)
}

// AsDatespan reads the value as day, week, month or custom span.
func (c CommonReader) AsDatespan(ranges ...filter.Range[date.Datespan]) (date.Datespan, bool) {
	return read(c, "AsDatespan", filter.Filter[date.Datespan](filter.Datespan{}), "", ranges)
}

// IfIsOneOf returns the value if it is one of allowed, else reports FIELD_NO_SELECT.
func (c CommonReader) IfIsOneOf(allowed []string) (string, bool) {
	return read(c, "IfIsOneOf", filter.OneOf(allowed), "", nil)
}

// IfMatches returns the value if re matches it, else reports FIELD_WRONG_VALUE.
func (c CommonReader) IfMatches(re *regexp.Regexp) (string, bool) {
	return read(c, "IfMatches", filter.Matches(re), "", nil)
}

// IfIsIPAddress returns the value if it is an IP address, else reports INVALID_IP_ADDRESS.
func (c CommonReader) IfIsIPAddress() (string, bool) {
	return read(c, "IfIsIPAddress", filter.IPAddress(), "", nil)
}

// WithPredicate returns the value if pred holds, else reports errorID with details.
func (c CommonReader) WithPredicate(pred func(value.Value) bool, errorID string, details map[string]any) (string, bool) {
	return read(c, "WithPredicate", filter.Predicate(pred, errorID, details), "", nil)
}

// Unsecure returns the raw value without any filtering.
func (c CommonReader) Unsecure() (string, bool) {
	raw := filter.Func[string](func(v value.Value) (string, bool, paramerr.Errors) {
		return v.String(), !v.IsNull(), nil
	})
	return read(c, "Unsecure", filter.Filter[string](raw), "", nil)
}

func toBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != "" && b != "0"
	case int:
		return b != 0
	case int8:
		return b != 0
	case int16:
		return b != 0
	case int32:
		return b != 0
	case int64:
		return b != 0
	case uint:
		return b != 0
	case uint8:
		return b != 0
	case uint16:
		return b != 0
	case uint32:
		return b != 0
	case uint64:
		return b != 0
	case float32:
		return b != 0
	case float64:
		return b != 0
	default:
		return true
	}
}
