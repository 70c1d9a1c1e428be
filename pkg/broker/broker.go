package broker

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/input/pkg/reader"
)

var (
	// ErrUnknownFilter is returned when a Field names a filter the registry does not know.
	ErrUnknownFilter = errors.New("broker: unknown filter")
	// ErrUnknownSource is returned when the request has no source of the given name.
	ErrUnknownSource = errors.New("broker: unknown source")
	// ErrValueType is raised when a filter returns a type the setter does not accept.
	ErrValueType = errors.New("broker: value type does not match setter")
	// ErrNoParam is raised when a Field has no parameter name.
	ErrNoParam = errors.New("broker: field without param name")
)

// Source provides readers for the values of a request by source name.
type Source interface {
	Read(source, name string) (*reader.ValueReader, error)
}

// Binding ties a Field to a setter on T.
type Binding[T any] struct {
	field Field
	set   func(target *T, v any)
}

// Field returns the descriptor of b.
func (b Binding[T]) Field() Field {
	return b.field
}

// Bind creates a binding that reads f and passes the value to set.
// It panics if f names no parameter or a filter reg does not know.
func Bind[T, V any](reg *Registry, f Field, set func(target *T, v V)) Binding[T] {
	if f.Param == "" {
		panic(fmt.Errorf("%w: filter %q", ErrNoParam, f.Filter))
	}
	if _, ok := reg.Lookup(f.Filter); !ok {
		panic(fmt.Errorf("%w: %q for param %q", ErrUnknownFilter, f.Filter, f.Param))
	}
	return Binding[T]{
		field: f,
		set: func(target *T, v any) {
			typed, ok := v.(V)
			if !ok {
				panic(fmt.Errorf("%w: param %q: %s expected, got %T", ErrValueType, f.Param, reflect.TypeFor[V](), v))
			}
			set(target, typed)
		},
	}
}

// Procure reads every binding from src and passes non-null values to the
// setters on target. Invalid values are recorded in the error collections of
// src and skipped.
//
// An error is returned for a filter unknown to reg or a source unknown to src.
// Bindings before the failing one have been applied.
func Procure[T any](ctx context.Context, reg *Registry, src Source, target *T, bindings ...Binding[T]) error {
	for _, b := range bindings {
		factory, ok := reg.Lookup(b.field.Filter)
		if !ok {
			return fmt.Errorf("%w: %q for param %q", ErrUnknownFilter, b.field.Filter, b.field.Param)
		}

		r, err := src.Read(b.field.source(), b.field.Param)
		if err != nil {
			return fmt.Errorf("%w: %q for param %q: %w", ErrUnknownSource, b.field.source(), b.field.Param, err)
		}

		v, ok := factory(ctx, b.field.presence(r.WithContext(ctx)), b.field)
		if !ok {
			continue
		}
		b.set(target, v)
	}
	return nil
}
