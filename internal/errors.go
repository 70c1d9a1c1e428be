package internal

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/input/pkg/paramerr"
)

var (
	// ErrUnknownSource is returned by Read and Validate for a source name
	// the request does not provide.
	ErrUnknownSource = errors.New("input: unknown source")
	// ErrBodyTooLarge is returned by FromHTTP when the body exceeds the
	// configured maximum size.
	ErrBodyTooLarge = errors.New("input: request body too large")
	// ErrMalformedRequest is returned by FromHTTP when the form can not be parsed.
	ErrMalformedRequest = errors.New("input: malformed request")
)

// InputError reports the values of a request that were rejected.
// It carries the error collections of every source with errors.
type InputError struct {
	// Sources maps source names to their errors. Sources without errors are left out.
	Sources map[string]*paramerr.Collection

	// RequestID is the request tracking ID.
	RequestID string
}

func (e *InputError) Error() string {
	var b strings.Builder
	b.WriteString("input: invalid values:")
	for _, source := range sourceOrder {
		errs, ok := e.Sources[source]
		if !ok {
			continue
		}
		for param, list := range errs.All() {
			b.WriteString(" ")
			b.WriteString(source)
			b.WriteString(".")
			b.WriteString(param)
			b.WriteString("=")
			for i, err := range list {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(err.ID())
			}
		}
	}
	return b.String()
}

// StatusCode returns 422 Unprocessable Entity.
func (e *InputError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

func (e *InputError) StatusText() string {
	return http.StatusText(e.StatusCode())
}

// MarshalJSON renders the errors grouped by source and parameter.
func (e *InputError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RequestID string                          `json:"request_id,omitempty"`
		Errors    map[string]*paramerr.Collection `json:"errors"`
	}{
		RequestID: e.RequestID,
		Errors:    e.Sources,
	})
}

// For returns the errors of source, or nil.
func (e *InputError) For(source string) *paramerr.Collection {
	return e.Sources[source]
}

// IsInputError reports whether err is or wraps an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// AsInputError extracts the InputError from an error if present.
// Returns nil if the error is not an InputError.
func AsInputError(err error) *InputError {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie
	}
	return nil
}
