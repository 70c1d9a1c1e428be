package reader

import (
	"context"
	"regexp"

	"github.com/dmitrymomot/input/pkg/value"
)

// ValueValidator answers yes/no questions about a raw value.
// It never filters the value and never reports errors.
type ValueValidator struct {
	cfg   *config
	value value.Value
}

// NewValidator creates a ValueValidator for v.
func NewValidator(v value.Value, opts ...Option) ValueValidator {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return ValueValidator{value: v, cfg: cfg}
}

// Contains reports whether the value contains needle.
func (v ValueValidator) Contains(needle string) bool {
	return v.value.Contains(needle)
}

// ContainsAnyOf reports whether the value contains any of needles.
func (v ValueValidator) ContainsAnyOf(needles ...string) bool {
	return v.value.ContainsAnyOf(needles...)
}

// IsEqualTo reports whether the value equals expected.
func (v ValueValidator) IsEqualTo(expected string) bool {
	return v.value.Equals(expected)
}

// IsHTTPURI reports whether the value is an http or https URI.
func (v ValueValidator) IsHTTPURI() bool {
	return v.value.IsHTTPURI()
}

// IsExistingHTTPURI reports whether the value is an http or https URI whose host resolves.
func (v ValueValidator) IsExistingHTTPURI(ctx context.Context) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return v.value.IsExistingHTTPURI(ctx, v.cfg.resolver)
}

// IsIPAddress reports whether the value is an IPv4 or IPv6 address.
func (v ValueValidator) IsIPAddress() bool {
	return v.value.IsIPAddress()
}

// IsIPv4Address reports whether the value is an IPv4 address.
func (v ValueValidator) IsIPv4Address() bool {
	return v.value.IsIPv4Address()
}

// IsIPv6Address reports whether the value is an IPv6 address.
func (v ValueValidator) IsIPv6Address() bool {
	return v.value.IsIPv6Address()
}

// IsMailAddress reports whether the value is a mail address.
func (v ValueValidator) IsMailAddress() bool {
	return v.value.IsMailAddress()
}

// IsOneOf reports whether the value is one of allowed.
func (v ValueValidator) IsOneOf(allowed []string) bool {
	return v.value.IsOneOf(allowed)
}

// Matches reports whether re matches the value.
func (v ValueValidator) Matches(re *regexp.Regexp) bool {
	return v.value.IsMatchedBy(re)
}

// With reports whether pred holds for the value.
func (v ValueValidator) With(pred func(value.Value) bool) bool {
	return v.value.Satisfies(pred)
}
