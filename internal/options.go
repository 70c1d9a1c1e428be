package internal

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/input/pkg/dnsverify"
	"github.com/dmitrymomot/input/pkg/logger"
)

// DefaultMaxBodySize is the body size limit of FromHTTP.
const DefaultMaxBodySize int64 = 1 << 20

// RequestIDHeader is the header the request ID is read from by default.
const RequestIDHeader = "X-Request-ID"

// Option configures a Request.
type Option func(*config)

type config struct {
	ctx         context.Context
	logger      *slog.Logger
	resolver    dnsverify.Resolver
	maxBodySize int64
	requestID   string
	extractor   Extractor

	headers http.Header
	cookies map[string]string
	path    map[string]string
	body    *string
}

func newConfig(opts []Option) *config {
	cfg := &config{
		ctx:         context.Background(),
		logger:      logger.NewNope(),
		maxBodySize: DefaultMaxBodySize,
		extractor: NewExtractor(
			FromHeader(RequestIDHeader),
			FromHeader("X-Correlation-ID"),
		),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithContext sets the context of a request built by NewRequest.
// FromHTTP uses the context of the http.Request instead.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the logger rejected values are logged to at debug level.
//
// Example:
//
//	input.FromHTTP(r,
//	    input.WithLogger(logger.New(logger.WithLevel(slog.LevelDebug))),
//	)
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithResolver sets the DNS resolver used to check that HTTP URIs exist.
func WithResolver(r dnsverify.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithMaxBodySize limits the number of body bytes FromHTTP reads.
// Larger bodies fail with ErrBodyTooLarge.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// WithRequestID sets the request ID instead of extracting or generating one.
func WithRequestID(id string) Option {
	return func(c *config) {
		c.requestID = id
	}
}

// WithRequestIDFrom replaces the sources the request ID is extracted from.
// A UUID is generated when all sources miss.
//
// Example:
//
//	input.FromHTTP(r,
//	    input.WithRequestIDFrom(input.FromHeader("X-Trace-ID"), input.FromQuery("rid")),
//	)
func WithRequestIDFrom(sources ...ExtractorSource) Option {
	return func(c *config) {
		c.extractor = NewExtractor(sources...)
	}
}

// WithHeaders sets the header source of a request built by NewRequest.
func WithHeaders(h http.Header) Option {
	return func(c *config) {
		c.headers = h
	}
}

// WithCookies sets the cookie source of a request built by NewRequest.
func WithCookies(cookies map[string]string) Option {
	return func(c *config) {
		c.cookies = cookies
	}
}

// WithPathParams sets the path source of a request built by NewRequest.
func WithPathParams(path map[string]string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithBody sets the body of a request built by NewRequest.
func WithBody(body string) Option {
	return func(c *config) {
		c.body = &body
	}
}
