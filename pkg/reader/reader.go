package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/input/pkg/filter"
	"github.com/dmitrymomot/input/pkg/logger"
	"github.com/dmitrymomot/input/pkg/param"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

var (
	// ErrDefaultType is raised when a default does not match the type a read
	// operation returns.
	ErrDefaultType = errors.New("reader: default value has wrong type")
	// ErrPasswordDefault is raised when a password is read with a default.
	ErrPasswordDefault = errors.New("reader: passwords can not have a default value")
)

// presence is how a reader handles its value: filter it, report it missing
// or return a default.
type presence interface {
	isPresence()
}

type active struct{}

type missing struct {
	report  func(errorID string)
	errorID string
}

type defaulted struct {
	value any
}

func (active) isPresence()    {}
func (missing) isPresence()   {}
func (defaulted) isPresence() {}

// Reader is implemented by ValueReader and CommonReader and accepted by
// WithFilter and WithCallable.
type Reader interface {
	common() CommonReader
}

// CommonReader reads one parameter as a typed value.
// Every read returns the value and whether there is one.
type CommonReader struct {
	presence presence
	param    *param.Param
	errors   *paramerr.Collection
	ctx      context.Context
	cfg      *config
}

func (c CommonReader) common() CommonReader {
	return c
}

// ValueReader is a CommonReader that has not decided yet how an absent
// value is handled.
type ValueReader struct {
	CommonReader
}

// New creates a ValueReader for p reporting errors to errs.
func New(p *param.Param, errs *paramerr.Collection, opts ...Option) *ValueReader {
	cfg := &config{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &ValueReader{CommonReader{
		presence: active{},
		param:    p,
		errors:   errs,
		ctx:      context.Background(),
		cfg:      cfg,
	}}
}

// WithContext returns a copy of r whose logs carry ctx.
func (r *ValueReader) WithContext(ctx context.Context) *ValueReader {
	if ctx == nil {
		return r
	}
	c := r.CommonReader
	c.ctx = ctx
	return &ValueReader{c}
}

// Required reports FIELD_EMPTY on every read if the value is absent.
func (r *ValueReader) Required() CommonReader {
	return r.RequiredWith(paramerr.FieldEmpty)
}

// RequiredWith reports errorID on every read if the value is absent.
// Reads with a more specific missing error use that one when errorID is
// FIELD_EMPTY.
func (r *ValueReader) RequiredWith(errorID string) CommonReader {
	if !r.param.IsNull() {
		return r.CommonReader
	}
	c := r.CommonReader
	c.presence = missing{errorID: errorID, report: c.reportMissing}
	return c
}

// DefaultingTo returns def from every read if the value is absent.
func (r *ValueReader) DefaultingTo(def any) CommonReader {
	if !r.param.IsNull() {
		return r.CommonReader
	}
	c := r.CommonReader
	c.presence = defaulted{value: def}
	return c
}

// Name returns the name of the parameter.
func (c CommonReader) Name() string {
	return c.param.Name()
}

func (c CommonReader) reportMissing(errorID string) {
	err := paramerr.New(errorID, nil)
	c.param.AddError(err)
	c.errors.Add(c.param.Name(), err)
	c.log("param missing", []string{errorID})
}

func (c CommonReader) log(msg string, ids []string) {
	c.cfg.logger.DebugContext(c.ctx, msg,
		slog.String("param", c.param.Name()),
		slog.String("source", c.cfg.source),
		slog.Any("error_ids", ids),
	)
}

// read runs one read operation in the state of c. Missing readers report
// missingID if c was required with FIELD_EMPTY and missingID is set.
func read[T any](c CommonReader, op string, f filter.Filter[T], missingID string, ranges []filter.Range[T]) (T, bool) {
	var zero T
	switch p := c.presence.(type) {
	case missing:
		id := p.errorID
		if missingID != "" && id == paramerr.FieldEmpty {
			id = missingID
		}
		p.report(id)
		return zero, false
	case defaulted:
		return defaultAs[T](op, p.value), true
	case active:
		for _, r := range ranges {
			f = filter.WithRange(f, r)
		}
		return apply(c, f)
	default:
		panic(fmt.Sprintf("reader: unknown state %T", c.presence))
	}
}

func apply[T any](c CommonReader, f filter.Filter[T]) (T, bool) {
	var zero T
	result, ok, errs := f.Apply(c.param.Value())
	if len(errs) > 0 {
		c.param.AddErrors(errs)
		all := c.param.Errors()
		c.errors.AddAll(c.param.Name(), all)
		c.log("param rejected", all.IDs())
		return zero, false
	}
	if !ok {
		return zero, false
	}
	return result, true
}

func defaultAs[T any](op string, def any) T {
	v, ok := def.(T)
	if !ok {
		panic(fmt.Errorf("%w: %s expects %s, got %T", ErrDefaultType, op, reflect.TypeFor[T](), def))
	}
	return v
}

// WithFilter reads the value of r through f, optionally bounded by ranges.
func WithFilter[T any](r Reader, f filter.Filter[T], ranges ...filter.Range[T]) (T, bool) {
	return read(r.common(), "WithFilter", f, "", ranges)
}

// WithCallable reads the value of r through fn, see filter.Callable.
func WithCallable[T any](r Reader, fn func(v value.Value, errs paramerr.Errors) (T, bool)) (T, bool) {
	return read(r.common(), "WithCallable", filter.Callable(fn), "", nil)
}
