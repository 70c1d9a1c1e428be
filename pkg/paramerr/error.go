package paramerr

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Error is a single validation failure of a request parameter.
// It carries an id from the error vocabulary and the details needed
// to render a message for it. Error values are immutable.
type Error struct {
	details map[string]any
	id      string
}

// New creates an Error with the given id and details.
// The details map is copied.
func New(id string, details map[string]any) Error {
	if id == "" {
		panic("paramerr: error id must not be empty")
	}
	return Error{id: id, details: maps.Clone(details)}
}

// ID returns the error id.
func (e Error) ID() string {
	return e.id
}

// Details returns a copy of the error details.
func (e Error) Details() map[string]any {
	return maps.Clone(e.details)
}

// Detail returns a single detail value.
func (e Error) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// FillMessage replaces {key} placeholders in message with the matching details.
// Slice details are joined with ", ". Unknown placeholders stay as they are.
//
// Example:
//
//	err := paramerr.New("VALUE_TOO_GREAT", map[string]any{"maxNumber": 10})
//	err.FillMessage("must not exceed {maxNumber}") // "must not exceed 10"
func (e Error) FillMessage(message string) string {
	if len(e.details) == 0 {
		return message
	}
	result := message
	for key, detail := range e.details {
		result = strings.ReplaceAll(result, "{"+key+"}", formatDetail(detail))
	}
	return result
}

// String renders the error for logs: the id followed by sorted details.
func (e Error) String() string {
	if len(e.details) == 0 {
		return e.id
	}
	keys := slices.Sorted(maps.Keys(e.details))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatDetail(e.details[k]))
	}
	return e.id + " [" + strings.Join(parts, ", ") + "]"
}

type jsonError struct {
	Details map[string]any `json:"details,omitempty"`
	ID      string         `json:"id"`
}

// MarshalJSON encodes the error as {"id": ..., "details": {...}}.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonError{ID: e.id, Details: e.details})
}

func formatDetail(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	case []string:
		return strings.Join(d, ", ")
	case []any:
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = formatDetail(item)
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprint(d)
	}
}

// Errors is the set of errors a filter reports for one value, keyed by error id.
type Errors map[string]Error

// Of returns an Errors set holding one error.
func Of(id string, details map[string]any) Errors {
	return Errors{id: New(id, details)}
}

// Add stores an error, replacing any previous error with the same id.
func (e Errors) Add(err Error) {
	e[err.id] = err
}

// Has reports whether an error with the given id is present.
func (e Errors) Has(id string) bool {
	_, ok := e[id]
	return ok
}

// IDs returns the error ids in sorted order.
func (e Errors) IDs() []string {
	return slices.Sorted(maps.Keys(e))
}
