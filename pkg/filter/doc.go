// Package filter converts raw request values into typed values.
//
// A Filter returns the converted value, whether there is one, and the errors
// that explain a rejection:
//
//	(v, true, nil)     success
//	(zero, false, nil) no value and no error, e.g. an empty optional field
//	(zero, false, errs) rejected
//
// A filter never returns a value together with errors. Filters are stateless
// values and may be reused freely. WithRange decorates a filter with a bounds
// check from package limit.
package filter
