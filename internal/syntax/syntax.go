// Package syntax holds the shared syntax checks for mail addresses, IP addresses
// and host names, backed by a single go-playground validator instance.
package syntax

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	initOnce sync.Once
)

func instance() *validator.Validate {
	initOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func is(s, tag string) bool {
	return instance().Var(s, tag) == nil
}

// IsMailAddress reports whether s is a syntactically valid mail address.
// Only ASCII addresses are accepted.
func IsMailAddress(s string) bool {
	if s == "" || !isASCII(s) {
		return false
	}
	return is(s, "email")
}

// IsIP reports whether s is an IPv4 or IPv6 address.
func IsIP(s string) bool {
	return s != "" && is(s, "ip")
}

// IsIPv4 reports whether s is an IPv4 address.
func IsIPv4(s string) bool {
	return s != "" && is(s, "ipv4")
}

// IsIPv6 reports whether s is an IPv6 address.
func IsIPv6(s string) bool {
	return s != "" && is(s, "ipv6")
}

// IsHost reports whether s is a valid RFC 1123 host name or an IP address.
// IPv6 literals may be enclosed in brackets.
func IsHost(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return IsIPv6(s[1 : len(s)-1])
	}
	return is(s, "hostname_rfc1123") || IsIP(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
