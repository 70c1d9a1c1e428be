package param

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// Param is one named raw value together with the errors filters attached to it.
type Param struct {
	errors paramerr.Errors
	name   string
	value  value.Value
}

// New creates a Param.
func New(name string, v value.Value) *Param {
	return &Param{name: name, value: v}
}

// Name returns the parameter name.
func (p *Param) Name() string {
	return p.name
}

// Value returns the raw value.
func (p *Param) Value() value.Value {
	return p.value
}

// IsNull reports whether the parameter has no value.
func (p *Param) IsNull() bool {
	return p.value.IsNull()
}

// IsEmpty reports whether the parameter value is empty.
func (p *Param) IsEmpty() bool {
	return p.value.IsEmpty()
}

// AddError attaches an error to the parameter.
func (p *Param) AddError(err paramerr.Error) {
	if p.errors == nil {
		p.errors = paramerr.Errors{}
	}
	p.errors.Add(err)
}

// AddErrors attaches every error of errs to the parameter.
func (p *Param) AddErrors(errs paramerr.Errors) {
	for _, err := range errs {
		p.AddError(err)
	}
}

// HasErrors reports whether any error is attached.
func (p *Param) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns a copy of the attached errors.
func (p *Param) Errors() paramerr.Errors {
	return maps.Clone(p.errors)
}

// Params is the immutable set of raw values of one request source.
// It owns exactly one error collection, created on first access.
type Params struct {
	errors *paramerr.Collection
	values map[string]value.Value
}

// NewParams creates Params from name/value pairs. The map is copied.
func NewParams(values map[string]value.Value) *Params {
	return &Params{values: maps.Clone(values)}
}

// FromRaw creates Params from raw values, see value.From.
func FromRaw(raw map[string]any) *Params {
	values := make(map[string]value.Value, len(raw))
	for name, v := range raw {
		values[name] = value.From(v)
	}
	return &Params{values: values}
}

// FromValues creates Params from decoded query or form values.
// Keys ending in "[]" become lists named without the suffix;
// other keys use their first value.
func FromValues(vals url.Values) *Params {
	values := make(map[string]value.Value, len(vals))
	for key, items := range vals {
		if name, isList := strings.CutSuffix(key, "[]"); isList {
			values[name] = value.OfList(items)
			continue
		}
		if len(items) == 0 {
			values[key] = value.Of("")
			continue
		}
		values[key] = value.Of(items[0])
	}
	return &Params{values: values}
}

// Names returns the parameter names in sorted order.
func (p *Params) Names() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Count returns the number of parameters.
func (p *Params) Count() int {
	return len(p.values)
}

// Has reports whether a parameter with the given name exists.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Value returns the value of the named parameter, or the null value if unknown.
func (p *Params) Value(name string) value.Value {
	return p.values[name]
}

// Param returns a new Param for name. Unknown names yield a null-backed Param.
func (p *Params) Param(name string) *Param {
	return New(name, p.Value(name))
}

// Errors returns the error collection of this parameter set.
// The same collection is returned on every call.
func (p *Params) Errors() *paramerr.Collection {
	if p.errors == nil {
		p.errors = paramerr.NewCollection()
	}
	return p.errors
}
