package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/input/pkg/param"
)

// FromHTTP creates a Request from an incoming HTTP request.
//
// Query and form values become the param source, with "name[]" keys read
// as lists. Headers, cookies, chi path parameters and the raw body form the
// other sources. Source options passed to FromHTTP are replaced by the
// values of r. The request ID is taken from the X-Request-ID header, or
// generated, and stored in the request context for logging.
//
// The body stays readable for later handlers.
func FromHTTP(r *http.Request, opts ...Option) (*Request, error) {
	cfg := newConfig(opts)
	cfg.ctx = r.Context()

	body, err := readBody(r, cfg.maxBodySize)
	if err != nil {
		cfg.logger.WarnContext(cfg.ctx, "request body rejected",
			slog.Int64("max_body_size", cfg.maxBodySize),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := parseForm(r, cfg.maxBodySize); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	// ParseForm consumed the body, hand a fresh copy to later handlers.
	r.Body = io.NopCloser(bytes.NewReader(body))

	id := cfg.requestID
	if id == "" {
		if v, ok := cfg.extractor.Extract(r); ok {
			id = v
		} else {
			id = uuid.NewString()
		}
	}

	cfg.headers = r.Header
	cfg.cookies = cookieValues(r.Cookies())
	cfg.path = pathValues(r)
	cfg.body = nil
	if len(body) > 0 {
		s := string(body)
		cfg.body = &s
	}

	return newRequest(cfg, param.FromValues(r.Form), r.Method, r.URL, id), nil
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()

	data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

func parseForm(r *http.Request, maxMemory int64) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		err := r.ParseMultipartForm(maxMemory)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return err
		}
		return nil
	}
	return r.ParseForm()
}

func cookieValues(cookies []*http.Cookie) map[string]string {
	values := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, seen := values[c.Name]; seen {
			continue
		}
		values[c.Name] = c.Value
	}
	return values
}

func pathValues(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	values := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			values[key] = rctx.URLParams.Values[i]
		}
	}
	return values
}
