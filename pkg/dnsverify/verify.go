package dnsverify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrDNSLookupFailed = errors.New("dns lookup failed")
	ErrRecordNotFound  = errors.New("dns record not found")
	ErrInvalidInput    = errors.New("invalid host")
)

// Resolver looks up the addresses of a host.
// *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// VerifyHost checks that host resolves to at least one address.
// IP literals and localhost are accepted without a lookup.
// A nil resolver falls back to net.DefaultResolver.
// Returns nil if verification succeeds, otherwise returns a specific error.
func VerifyHost(ctx context.Context, resolver Resolver, host string) error {
	// Normalize host (trim whitespace, brackets of IPv6 literals, lowercase)
	host = strings.ToLower(strings.TrimSpace(host))
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if host == "" {
		return ErrInvalidInput
	}

	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if resolver == nil {
		resolver = net.DefaultResolver
	}

	addrs, err := resolver.LookupHost(ctx, host)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return ErrRecordNotFound
		}
		return fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}

	if len(addrs) == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// HasRecord reports whether VerifyHost succeeds for host.
func HasRecord(ctx context.Context, resolver Resolver, host string) bool {
	return VerifyHost(ctx, resolver, host) == nil
}
