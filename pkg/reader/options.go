package reader

import (
	"log/slog"

	"github.com/dmitrymomot/input/pkg/dnsverify"
)

// Option configures readers and validators.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	resolver dnsverify.Resolver
	source   string
}

// WithLogger sets the logger rejected values are logged to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResolver sets the resolver used to check that HTTP URIs exist.
// Defaults to the system resolver.
func WithResolver(r dnsverify.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithSource names the request source the value was read from, for logs.
func WithSource(source string) Option {
	return func(c *config) {
		c.source = source
	}
}
