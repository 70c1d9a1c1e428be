package input

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/input/internal"
	"github.com/dmitrymomot/input/pkg/dnsverify"
)

// Type aliases - public API
type (
	// Request gives filtered access to the values of one incoming request.
	Request = internal.Request

	// Option configures a Request.
	Option = internal.Option

	// InputError reports the rejected values of a request per source.
	InputError = internal.InputError

	// ExtractorSource extracts a value from an incoming request.
	ExtractorSource = internal.ExtractorSource

	// Extractor tries multiple sources in order and returns the first match.
	Extractor = internal.Extractor
)

// Source names accepted by Request.Read and Request.Validate.
const (
	SourceParam  = internal.SourceParam
	SourceHeader = internal.SourceHeader
	SourceCookie = internal.SourceCookie
	SourcePath   = internal.SourcePath
	SourceBody   = internal.SourceBody
)

// DefaultMaxBodySize is the body size limit of FromHTTP.
const DefaultMaxBodySize = internal.DefaultMaxBodySize

// RequestIDHeader is the header the request ID is read from by default.
const RequestIDHeader = internal.RequestIDHeader

// Errors
var (
	ErrUnknownSource    = internal.ErrUnknownSource
	ErrBodyTooLarge     = internal.ErrBodyTooLarge
	ErrMalformedRequest = internal.ErrMalformedRequest
)

// Constructors

// NewRequest creates a Request from already decoded parameters.
// Values may be nil, string, []string or value.Value.
//
// Example:
//
//	req := input.NewRequest(map[string]any{"page": "2"},
//	    input.WithHeaders(http.Header{"Accept-Language": {"de"}}),
//	)
//	page, _ := req.ReadParam("page").DefaultingTo(1).AsInt()
func NewRequest(params map[string]any, opts ...Option) *Request {
	return internal.NewRequest(params, opts...)
}

// FromHTTP creates a Request from an incoming HTTP request.
// Query and form values, headers, cookies, chi path parameters and the body
// become the request sources. The body stays readable for later handlers.
//
// Example:
//
//	func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
//	    req, err := input.FromHTTP(r)
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    email, _ := req.ReadParam("email").Required().AsMailAddress()
//	    if err := req.Err(); err != nil {
//	        // render errors
//	    }
//	}
func FromHTTP(r *http.Request, opts ...Option) (*Request, error) {
	return internal.FromHTTP(r, opts...)
}

// Middleware parses every request with FromHTTP and stores it in the
// request context, see FromContext.
//
// Example:
//
//	r := chi.NewRouter()
//	r.With(input.Middleware(input.WithLogger(log))).Post("/signup/{plan}", h.signup)
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	return internal.Middleware(opts...)
}

// FromContext returns the Request stored by Middleware.
func FromContext(ctx context.Context) (*Request, bool) {
	return internal.FromContext(ctx)
}

// IsInputError reports whether err is or wraps an *InputError.
func IsInputError(err error) bool {
	return internal.IsInputError(err)
}

// AsInputError extracts the InputError from an error if present.
func AsInputError(err error) *InputError {
	return internal.AsInputError(err)
}

// Request options

// WithContext sets the context of a request built by NewRequest.
func WithContext(ctx context.Context) Option {
	return internal.WithContext(ctx)
}

// WithLogger sets the logger rejected values are logged to at debug level.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithResolver sets the DNS resolver used to check that HTTP URIs exist.
func WithResolver(r dnsverify.Resolver) Option {
	return internal.WithResolver(r)
}

// WithMaxBodySize limits the number of body bytes FromHTTP reads.
// Defaults to DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return internal.WithMaxBodySize(n)
}

// WithRequestID sets the request ID instead of extracting or generating one.
func WithRequestID(id string) Option {
	return internal.WithRequestID(id)
}

// WithRequestIDFrom replaces the sources the request ID is extracted from.
func WithRequestIDFrom(sources ...ExtractorSource) Option {
	return internal.WithRequestIDFrom(sources...)
}

// WithHeaders sets the header source of a request built by NewRequest.
func WithHeaders(h http.Header) Option {
	return internal.WithHeaders(h)
}

// WithCookies sets the cookie source of a request built by NewRequest.
func WithCookies(cookies map[string]string) Option {
	return internal.WithCookies(cookies)
}

// WithPathParams sets the path source of a request built by NewRequest.
func WithPathParams(path map[string]string) Option {
	return internal.WithPathParams(path)
}

// WithBody sets the body of a request built by NewRequest.
func WithBody(body string) Option {
	return internal.WithBody(body)
}

// Extractor sources

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

// FromCookie returns a source that reads from a cookie.
func FromCookie(name string) ExtractorSource {
	return internal.FromCookie(name)
}

// FromPathParam returns a source that reads from a chi URL parameter.
func FromPathParam(name string) ExtractorSource {
	return internal.FromPathParam(name)
}
