// Package httpuri provides a validated HTTP(S) URI value type.
package httpuri

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/input/internal/syntax"
	"github.com/dmitrymomot/input/pkg/dnsverify"
)

var (
	ErrMalformed     = errors.New("httpuri: malformed uri")
	ErrInvalidScheme = errors.New("httpuri: scheme must be http or https")
	ErrInvalidHost   = errors.New("httpuri: invalid host")
)

// URI is an absolute http or https URI with a valid host.
// The zero value is not a valid URI.
type URI struct {
	u *url.URL
}

// Parse parses raw into a URI.
func Parse(raw string) (URI, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return URI{}, ErrMalformed
	}

	u, err := url.Parse(raw)
	if err != nil {
		return URI{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return URI{}, ErrInvalidScheme
	}
	u.Scheme = scheme

	if u.Opaque != "" || !syntax.IsHost(u.Hostname()) {
		return URI{}, ErrInvalidHost
	}

	return URI{u: u}, nil
}

// IsValid reports whether raw parses as a URI.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// String returns the URI as string.
func (u URI) String() string {
	if u.u == nil {
		return ""
	}
	return u.u.String()
}

// Scheme returns "http" or "https".
func (u URI) Scheme() string {
	if u.u == nil {
		return ""
	}
	return u.u.Scheme
}

// Host returns the host name without port.
func (u URI) Host() string {
	if u.u == nil {
		return ""
	}
	return u.u.Hostname()
}

// Port returns the explicit port or the default port of the scheme.
func (u URI) Port() string {
	if u.u == nil {
		return ""
	}
	if p := u.u.Port(); p != "" {
		return p
	}
	if u.u.Scheme == "https" {
		return "443"
	}
	return "80"
}

// Path returns the unescaped path.
func (u URI) Path() string {
	if u.u == nil {
		return ""
	}
	return u.u.Path
}

// Query returns the parsed query.
func (u URI) Query() url.Values {
	if u.u == nil {
		return url.Values{}
	}
	return u.u.Query()
}

// URL returns a copy of the underlying URL.
func (u URI) URL() *url.URL {
	if u.u == nil {
		return nil
	}
	c := *u.u
	return &c
}

// IsZero reports whether u is the zero URI.
func (u URI) IsZero() bool {
	return u.u == nil
}

// HasDNSRecord reports whether the host of the URI resolves.
func (u URI) HasDNSRecord(ctx context.Context, resolver dnsverify.Resolver) bool {
	if u.u == nil {
		return false
	}
	return dnsverify.HasRecord(ctx, resolver, u.Host())
}
