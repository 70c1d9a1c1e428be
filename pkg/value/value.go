package value

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/input/internal/syntax"
	"github.com/dmitrymomot/input/pkg/dnsverify"
	"github.com/dmitrymomot/input/pkg/httpuri"
)

type kind uint8

const (
	kindNull kind = iota
	kindString
	kindList
)

// Value wraps a raw request value: null, a string or a list of strings.
// The zero value is the null value. Values are never mutated after construction.
type Value struct {
	scalar string
	list   []string
	kind   kind
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Of returns a scalar value.
func Of(s string) Value {
	return Value{kind: kindString, scalar: s}
}

// OfList returns a list value. The slice is copied.
func OfList(items []string) Value {
	return Value{kind: kindList, list: slices.Clone(items)}
}

// From converts a raw Go value: nil, string, *string and []string map to
// their natural kinds, anything else is formatted with fmt.Sprint.
func From(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case string:
		return Of(v)
	case *string:
		if v == nil {
			return Null()
		}
		return Of(*v)
	case []string:
		if v == nil {
			return Null()
		}
		return OfList(v)
	default:
		return Of(fmt.Sprint(v))
	}
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool {
	return v.kind == kindList
}

// IsEmpty reports whether the value is null, an empty string or an empty list.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case kindString:
		return v.scalar == ""
	case kindList:
		return len(v.list) == 0
	default:
		return true
	}
}

// Raw returns the wrapped value as nil, string or []string.
func (v Value) Raw() any {
	switch v.kind {
	case kindString:
		return v.scalar
	case kindList:
		return slices.Clone(v.list)
	default:
		return nil
	}
}

// String returns the scalar value, or the first element of a list.
// Null and empty lists yield "".
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.scalar
	case kindList:
		if len(v.list) > 0 {
			return v.list[0]
		}
	}
	return ""
}

// List returns the elements of a list value. A scalar yields a one-element
// list, null yields nil.
func (v Value) List() []string {
	switch v.kind {
	case kindString:
		return []string{v.scalar}
	case kindList:
		return slices.Clone(v.list)
	default:
		return nil
	}
}

// Length returns the number of characters of a scalar or the number of
// elements of a list.
func (v Value) Length() int {
	switch v.kind {
	case kindString:
		return utf8.RuneCountInString(v.scalar)
	case kindList:
		return len(v.list)
	default:
		return 0
	}
}

// Contains reports whether a scalar contains needle as substring,
// or a list contains needle as element.
func (v Value) Contains(needle string) bool {
	switch v.kind {
	case kindString:
		return strings.Contains(v.scalar, needle)
	case kindList:
		return slices.Contains(v.list, needle)
	default:
		return false
	}
}

// ContainsAnyOf reports whether Contains holds for at least one needle.
func (v Value) ContainsAnyOf(needles ...string) bool {
	for _, n := range needles {
		if v.Contains(n) {
			return true
		}
	}
	return false
}

// Equals reports whether the value is the scalar expected.
func (v Value) Equals(expected string) bool {
	return v.kind == kindString && v.scalar == expected
}

// IsOneOf reports whether a scalar is one of allowed. For lists every
// element must be allowed.
func (v Value) IsOneOf(allowed []string) bool {
	switch v.kind {
	case kindString:
		return slices.Contains(allowed, v.scalar)
	case kindList:
		for _, item := range v.list {
			if !slices.Contains(allowed, item) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsMatchedBy reports whether a scalar matches re.
func (v Value) IsMatchedBy(re *regexp.Regexp) bool {
	return v.kind == kindString && re != nil && re.MatchString(v.scalar)
}

// IsHTTPURI reports whether the value is a valid http or https URI.
func (v Value) IsHTTPURI() bool {
	return !v.IsEmpty() && httpuri.IsValid(v.String())
}

// IsExistingHTTPURI reports whether the value is a valid http or https URI
// whose host has a DNS record.
func (v Value) IsExistingHTTPURI(ctx context.Context, resolver dnsverify.Resolver) bool {
	if v.IsEmpty() {
		return false
	}
	u, err := httpuri.Parse(v.String())
	if err != nil {
		return false
	}
	return u.HasDNSRecord(ctx, resolver)
}

// IsIPAddress reports whether the value is an IPv4 or IPv6 address.
func (v Value) IsIPAddress() bool {
	return v.kind == kindString && syntax.IsIP(v.scalar)
}

// IsIPv4Address reports whether the value is an IPv4 address.
func (v Value) IsIPv4Address() bool {
	return v.kind == kindString && syntax.IsIPv4(v.scalar)
}

// IsIPv6Address reports whether the value is an IPv6 address.
func (v Value) IsIPv6Address() bool {
	return v.kind == kindString && syntax.IsIPv6(v.scalar)
}

// IsMailAddress reports whether the value is a syntactically valid mail address.
func (v Value) IsMailAddress() bool {
	return v.kind == kindString && syntax.IsMailAddress(v.scalar)
}

// Satisfies reports whether pred holds for the value.
func (v Value) Satisfies(pred func(Value) bool) bool {
	return pred != nil && pred(v)
}
