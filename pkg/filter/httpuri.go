package filter

import (
	"context"

	"github.com/dmitrymomot/input/pkg/dnsverify"
	"github.com/dmitrymomot/input/pkg/httpuri"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// HTTPURI accepts http and https URIs. Malformed input is HTTP_URI_INCORRECT.
type HTTPURI struct{}

// Apply implements Filter.
func (HTTPURI) Apply(v value.Value) (httpuri.URI, bool, paramerr.Errors) {
	if v.IsEmpty() {
		return httpuri.URI{}, false, nil
	}
	u, err := httpuri.Parse(v.String())
	if err != nil {
		return httpuri.URI{}, false, paramerr.Of(paramerr.HTTPURIIncorrect, nil)
	}
	return u, true, nil
}

// ExistingHTTPURI is HTTPURI that also requires the host to have a DNS
// record, else HTTP_URI_NOT_AVAILABLE.
type ExistingHTTPURI struct {
	ctx      context.Context
	resolver dnsverify.Resolver
}

// NewExistingHTTPURI returns an ExistingHTTPURI filter looking hosts up with
// resolver. A nil resolver uses the system resolver.
func NewExistingHTTPURI(ctx context.Context, resolver dnsverify.Resolver) ExistingHTTPURI {
	return ExistingHTTPURI{ctx: ctx, resolver: resolver}
}

// Apply implements Filter.
func (f ExistingHTTPURI) Apply(v value.Value) (httpuri.URI, bool, paramerr.Errors) {
	u, ok, errs := HTTPURI{}.Apply(v)
	if !ok {
		return u, false, errs
	}
	ctx := f.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if !u.HasDNSRecord(ctx, f.resolver) {
		return httpuri.URI{}, false, paramerr.Of(paramerr.HTTPURINotAvailable, nil)
	}
	return u, true, nil
}
