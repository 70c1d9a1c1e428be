// Package dnsverify checks that a host name is backed by DNS records.
//
// It is used to decide whether an HTTP URI submitted by a user points to a host
// that exists, before the URI is accepted as valid input.
//
// # Basic Usage
//
//	err := dnsverify.VerifyHost(ctx, nil, "example.com")
//	if err != nil {
//		// Handle verification failure
//	}
//
// A custom [Resolver] can be passed to control lookups, e.g. in tests:
//
//	ok := dnsverify.HasRecord(ctx, fakeResolver, "example.com")
//
// # Error Handling
//
//   - ErrInvalidInput: host is empty
//   - ErrRecordNotFound: the host has no A/AAAA records
//   - ErrDNSLookupFailed: the lookup failed for another reason (network, timeout)
//
// IP literals and "localhost" are always accepted without a lookup.
package dnsverify
