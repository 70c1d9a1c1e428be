// Package reader is the fluent per-parameter API on top of package filter.
//
// A ValueReader is created for one parameter and one error collection. Before
// reading a typed value the caller may decide how an absent parameter is
// handled:
//
//	age, ok := r.AsInt(limit.Between(18, 130))        // absent: no value, no error
//	age, ok := r.Required().AsInt()                   // absent: FIELD_EMPTY reported
//	age, ok := r.DefaultingTo(30).AsInt()             // absent: 30
//
// Required and DefaultingTo return a CommonReader, which offers the read
// operations only, so a chain can decide presence handling once. A present
// value is always filtered, whatever was decided for the absent case.
//
// Rejected values are reported to the error collection under the parameter
// name and yield no value. Passing a default of the wrong type, or a default
// for a password, is a programming error and panics.
//
// ValueValidator answers yes/no questions about a value without filtering it
// and without reporting errors.
package reader
