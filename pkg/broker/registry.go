package broker

import (
	"context"
	"maps"
	"slices"

	"github.com/dmitrymomot/input/pkg/date"
	"github.com/dmitrymomot/input/pkg/reader"
)

// Factory reads a value for f from r. It returns false for null values.
type Factory func(ctx context.Context, r reader.CommonReader, f Field) (any, bool)

// Registry maps filter keys to factories. It is immutable after NewRegistry.
type Registry struct {
	factories map[string]Factory
}

// Option configures a Registry.
type Option func(*Registry)

// WithFactory registers f under key, replacing a built-in factory of the same key.
func WithFactory(key string, f Factory) Option {
	return func(r *Registry) {
		if f != nil {
			r.factories[key] = f
		}
	}
}

// NewRegistry creates a registry with the built-in factories and the given
// additions.
//
// Built-in keys: array, bool, date, datespan, day, float, httpuri, int, json,
// mail, month, oneof, password, secret, string, text, week.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{factories: builtins()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the factory registered under key.
func (r *Registry) Lookup(key string) (Factory, bool) {
	f, ok := r.factories[key]
	return f, ok
}

// Keys returns all registered keys, sorted.
func (r *Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

func builtins() map[string]Factory {
	return map[string]Factory{
		"array": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsArray(f.Separator)
		},
		"bool": func(_ context.Context, r reader.CommonReader, _ Field) (any, bool) {
			return r.AsBool()
		},
		"date": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsDate(f.dateRange()...)
		},
		"day": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsDay(spanRange[date.Day](f)...)
		},
		"week": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsWeek(spanRange[date.Week](f)...)
		},
		"month": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsMonth(spanRange[date.Month](f)...)
		},
		"datespan": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsDatespan(spanRange[date.Datespan](f)...)
		},
		"float": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsFloat(f.floatRange()...)
		},
		"int": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			if f.Decimals > 0 {
				return r.AsFixedPoint(f.Decimals, f.fixedPointRange()...)
			}
			return r.AsInt(f.intRange()...)
		},
		"httpuri": func(ctx context.Context, r reader.CommonReader, f Field) (any, bool) {
			if f.CheckDNS {
				return r.AsExistingHTTPURI(ctx)
			}
			return r.AsHTTPURI()
		},
		"json": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsJSON(f.MaxJSONLength)
		},
		"mail": func(_ context.Context, r reader.CommonReader, _ Field) (any, bool) {
			return r.AsMailAddress()
		},
		"oneof": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.IfIsOneOf(f.Allowed)
		},
		"password": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsPassword(f.Checker)
		},
		"secret": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsSecret(f.secretRange()...)
		},
		"string": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsString(f.lengthRange()...)
		},
		"text": func(_ context.Context, r reader.CommonReader, f Field) (any, bool) {
			return r.AsText(f.AllowedTags, f.lengthRange()...)
		},
	}
}
