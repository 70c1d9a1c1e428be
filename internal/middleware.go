package internal

import (
	"context"
	"errors"
	"net/http"
)

// requestKey is the context key for storing the parsed Request.
type requestKey struct{}

// Middleware returns chi compatible middleware that parses every request
// with FromHTTP and stores the result in the request context.
// The request ID is echoed in the X-Request-ID response header.
// Oversized bodies are answered with 413, malformed forms with 400.
//
// Path parameters are only known after routing. Mount the middleware with
// chi's r.With or inside a route group to read them:
//
//	r.With(input.Middleware()).Get("/items/{id}", h)
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in, err := FromHTTP(r, opts...)
			if err != nil {
				code := http.StatusBadRequest
				if errors.Is(err, ErrBodyTooLarge) {
					code = http.StatusRequestEntityTooLarge
				}
				http.Error(w, http.StatusText(code), code)
				return
			}

			w.Header().Set(RequestIDHeader, in.RequestID())
			ctx := context.WithValue(in.Context(), requestKey{}, in)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the Request stored by Middleware.
func FromContext(ctx context.Context) (*Request, bool) {
	in, ok := ctx.Value(requestKey{}).(*Request)
	return in, ok
}
