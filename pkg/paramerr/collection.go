package paramerr

import (
	"iter"
	"slices"

	"github.com/goccy/go-json"
)

// Collection accumulates the errors of all parameters of one request.
// Errors are keyed by parameter name; within a parameter an error id
// occurs at most once, appending the same id again replaces the earlier error.
//
// A Collection belongs to exactly one request and is not safe for concurrent use.
type Collection struct {
	errors map[string][]Error
	params []string
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{errors: make(map[string][]Error)}
}

// Append creates an error from id and details and adds it for param.
func (c *Collection) Append(param, id string, details map[string]any) Error {
	err := New(id, details)
	c.Add(param, err)
	return err
}

// Add adds err for param.
func (c *Collection) Add(param string, err Error) {
	if c.errors == nil {
		c.errors = make(map[string][]Error)
	}
	list, seen := c.errors[param]
	if !seen {
		c.params = append(c.params, param)
	}
	for i, existing := range list {
		if existing.id == err.id {
			list[i] = err
			return
		}
	}
	c.errors[param] = append(list, err)
}

// AddAll adds every error of errs for param, in id order.
func (c *Collection) AddAll(param string, errs Errors) {
	for _, id := range errs.IDs() {
		c.Add(param, errs[id])
	}
}

// Exist reports whether any error was recorded.
func (c *Collection) Exist() bool {
	return len(c.params) > 0
}

// Count returns the number of parameters with at least one error.
func (c *Collection) Count() int {
	return len(c.params)
}

// ExistFor reports whether param has any error.
func (c *Collection) ExistFor(param string) bool {
	return len(c.errors[param]) > 0
}

// ExistForWithID reports whether param has an error with the given id.
func (c *Collection) ExistForWithID(param, id string) bool {
	_, ok := c.GetForWithID(param, id)
	return ok
}

// GetFor returns the errors of param in the order they were first added.
func (c *Collection) GetFor(param string) []Error {
	return slices.Clone(c.errors[param])
}

// GetForWithID returns the error of param with the given id.
func (c *Collection) GetForWithID(param, id string) (Error, bool) {
	for _, err := range c.errors[param] {
		if err.id == id {
			return err, true
		}
	}
	return Error{}, false
}

// Params returns the names of parameters with errors, in the order they failed.
func (c *Collection) Params() []string {
	return slices.Clone(c.params)
}

// All iterates over parameters and their errors in the order they failed.
func (c *Collection) All() iter.Seq2[string, []Error] {
	return func(yield func(string, []Error) bool) {
		for _, param := range c.params {
			if !yield(param, slices.Clone(c.errors[param])) {
				return
			}
		}
	}
}

// MarshalJSON encodes the collection as {"param": [{"id": ..., "details": ...}]}.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.errors)
}
