package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrymomot/input/pkg/logger"
	"github.com/dmitrymomot/input/pkg/param"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/reader"
	"github.com/dmitrymomot/input/pkg/value"
)

// Source names accepted by Read and Validate.
const (
	SourceParam  = "param"
	SourceHeader = "header"
	SourceCookie = "cookie"
	SourcePath   = "path"
	SourceBody   = "body"
)

// bodyParam is the parameter name body errors are recorded under.
const bodyParam = "body"

var sourceOrder = []string{SourceParam, SourceHeader, SourceCookie, SourcePath, SourceBody}

// Request gives filtered access to the values of one incoming request.
// Each source keeps its own error collection. A Request belongs to a single
// request and must not be shared between goroutines.
type Request struct {
	ctx       context.Context
	cfg       *config
	method    string
	uri       *url.URL
	requestID string
	sources   map[string]*param.Params
}

// NewRequest creates a Request from already decoded parameters. Values may be
// nil, string, []string or value.Value. Headers, cookies, path parameters and
// body are set with options.
func NewRequest(params map[string]any, opts ...Option) *Request {
	cfg := newConfig(opts)
	id := cfg.requestID
	if id == "" {
		id = uuid.NewString()
	}
	return newRequest(cfg, param.FromRaw(params), http.MethodGet, &url.URL{Path: "/"}, id)
}

func newRequest(cfg *config, params *param.Params, method string, uri *url.URL, id string) *Request {
	body := value.Null()
	if cfg.body != nil {
		body = value.Of(*cfg.body)
	}

	return &Request{
		ctx:       logger.WithRequestID(cfg.ctx, id),
		cfg:       cfg,
		method:    method,
		uri:       uri,
		requestID: id,
		sources: map[string]*param.Params{
			SourceParam:  params,
			SourceHeader: headerParams(cfg.headers),
			SourceCookie: stringParams(cfg.cookies),
			SourcePath:   stringParams(cfg.path),
			SourceBody:   param.NewParams(map[string]value.Value{bodyParam: body}),
		},
	}
}

// Context returns the request context. It carries the request ID for logging.
func (r *Request) Context() context.Context {
	return r.ctx
}

// RequestID returns the ID of the request.
func (r *Request) RequestID() string {
	return r.requestID
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	return r.method
}

// URI returns a copy of the requested URI.
func (r *Request) URI() *url.URL {
	u := *r.uri
	return &u
}

// Read returns a reader for name in source. The body source ignores name.
func (r *Request) Read(source, name string) (*reader.ValueReader, error) {
	ps, ok := r.sources[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return r.reader(source, ps, name), nil
}

// Validate returns a validator for name in source. The body source ignores name.
func (r *Request) Validate(source, name string) (reader.ValueValidator, error) {
	ps, ok := r.sources[source]
	if !ok {
		return reader.ValueValidator{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return r.validator(ps, source, name), nil
}

// Errors returns the error collection of source, or nil for an unknown source.
func (r *Request) Errors(source string) *paramerr.Collection {
	ps, ok := r.sources[source]
	if !ok {
		return nil
	}
	return ps.Errors()
}

// Err returns an *InputError if any value of the request was rejected.
func (r *Request) Err() error {
	var failed map[string]*paramerr.Collection
	for _, source := range sourceOrder {
		errs := r.sources[source].Errors()
		if !errs.Exist() {
			continue
		}
		if failed == nil {
			failed = make(map[string]*paramerr.Collection)
		}
		failed[source] = errs
	}
	if failed == nil {
		return nil
	}

	r.cfg.logger.DebugContext(r.ctx, "request has invalid values", slog.Int("sources", len(failed)))
	return &InputError{Sources: failed, RequestID: r.requestID}
}

// ParamNames returns the names of all query and form parameters, sorted.
func (r *Request) ParamNames() []string { return r.sources[SourceParam].Names() }

// ParamErrors returns the errors of query and form parameters.
func (r *Request) ParamErrors() *paramerr.Collection { return r.sources[SourceParam].Errors() }

// HasParam reports whether the parameter was sent.
func (r *Request) HasParam(name string) bool { return r.sources[SourceParam].Has(name) }

// ValidateParam returns a validator for the parameter. Unknown names validate null.
func (r *Request) ValidateParam(name string) reader.ValueValidator {
	return r.validator(r.sources[SourceParam], SourceParam, name)
}

// ReadParam returns a reader for the parameter. Unknown names read null.
func (r *Request) ReadParam(name string) *reader.ValueReader {
	return r.reader(SourceParam, r.sources[SourceParam], name)
}

// HeaderNames returns the canonical names of all headers, sorted.
func (r *Request) HeaderNames() []string { return r.sources[SourceHeader].Names() }

// HeaderErrors returns the errors of headers.
func (r *Request) HeaderErrors() *paramerr.Collection { return r.sources[SourceHeader].Errors() }

// HasHeader reports whether the header was sent.
func (r *Request) HasHeader(name string) bool {
	return r.sources[SourceHeader].Has(textproto.CanonicalMIMEHeaderKey(name))
}

// ValidateHeader returns a validator for the header.
func (r *Request) ValidateHeader(name string) reader.ValueValidator {
	return r.validator(r.sources[SourceHeader], SourceHeader, textproto.CanonicalMIMEHeaderKey(name))
}

// ReadHeader returns a reader for the header.
func (r *Request) ReadHeader(name string) *reader.ValueReader {
	return r.reader(SourceHeader, r.sources[SourceHeader], textproto.CanonicalMIMEHeaderKey(name))
}

// CookieNames returns the names of all cookies, sorted.
func (r *Request) CookieNames() []string { return r.sources[SourceCookie].Names() }

// CookieErrors returns the errors of cookies.
func (r *Request) CookieErrors() *paramerr.Collection { return r.sources[SourceCookie].Errors() }

// HasCookie reports whether the cookie was sent.
func (r *Request) HasCookie(name string) bool { return r.sources[SourceCookie].Has(name) }

// ValidateCookie returns a validator for the cookie.
func (r *Request) ValidateCookie(name string) reader.ValueValidator {
	return r.validator(r.sources[SourceCookie], SourceCookie, name)
}

// ReadCookie returns a reader for the cookie.
func (r *Request) ReadCookie(name string) *reader.ValueReader {
	return r.reader(SourceCookie, r.sources[SourceCookie], name)
}

// PathNames returns the names of all path parameters, sorted.
func (r *Request) PathNames() []string { return r.sources[SourcePath].Names() }

// PathErrors returns the errors of path parameters.
func (r *Request) PathErrors() *paramerr.Collection { return r.sources[SourcePath].Errors() }

// HasPath reports whether the route matched the path parameter.
func (r *Request) HasPath(name string) bool { return r.sources[SourcePath].Has(name) }

// ValidatePath returns a validator for the path parameter.
func (r *Request) ValidatePath(name string) reader.ValueValidator {
	return r.validator(r.sources[SourcePath], SourcePath, name)
}

// ReadPath returns a reader for the path parameter.
func (r *Request) ReadPath(name string) *reader.ValueReader {
	return r.reader(SourcePath, r.sources[SourcePath], name)
}

// BodyErrors returns the errors of the body.
func (r *Request) BodyErrors() *paramerr.Collection { return r.sources[SourceBody].Errors() }

// ValidateBody returns a validator for the raw body.
func (r *Request) ValidateBody() reader.ValueValidator {
	return r.validator(r.sources[SourceBody], SourceBody, bodyParam)
}

// ReadBody returns a reader for the raw body. Errors are recorded under "body".
func (r *Request) ReadBody() *reader.ValueReader {
	return r.reader(SourceBody, r.sources[SourceBody], bodyParam)
}

func (r *Request) reader(source string, ps *param.Params, name string) *reader.ValueReader {
	if source == SourceBody {
		name = bodyParam
	}
	return reader.New(ps.Param(name), ps.Errors(), r.readerOptions(source)...).WithContext(r.ctx)
}

func (r *Request) validator(ps *param.Params, source, name string) reader.ValueValidator {
	if source == SourceBody {
		name = bodyParam
	}
	return reader.NewValidator(ps.Value(name), r.readerOptions(source)...)
}

func (r *Request) readerOptions(source string) []reader.Option {
	return []reader.Option{
		reader.WithLogger(r.cfg.logger),
		reader.WithResolver(r.cfg.resolver),
		reader.WithSource(source),
	}
}

func headerParams(h http.Header) *param.Params {
	values := make(map[string]value.Value, len(h))
	for name, list := range h {
		key := textproto.CanonicalMIMEHeaderKey(name)
		switch len(list) {
		case 0:
			values[key] = value.Of("")
		case 1:
			values[key] = value.Of(list[0])
		default:
			values[key] = value.OfList(list)
		}
	}
	return param.NewParams(values)
}

func stringParams(m map[string]string) *param.Params {
	values := make(map[string]value.Value, len(m))
	for k, v := range m {
		values[k] = value.Of(v)
	}
	return param.NewParams(values)
}
