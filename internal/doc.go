// Package internal implements the request façade of the input module.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/input" instead, which re-exports the public API.
//
// # Sources
//
// A Request exposes the values of one incoming request through five named
// sources, each with its own error collection:
//
//   - param: query and form values, "name[]" keys are lists
//   - header: request headers by canonical name
//   - cookie: request cookies
//   - path: chi URL parameters
//   - body: the raw request body
//
// Every source offers the same operations: list names, check presence, get
// a validator, get a reader and inspect errors:
//
//	req, err := internal.FromHTTP(r)
//	if err != nil {
//	    return err
//	}
//	email, ok := req.ReadParam("email").Required().AsMailAddress()
//	page, _ := req.ReadParam("page").DefaultingTo(1).AsInt(limit.AtLeast(1))
//	if err := req.Err(); err != nil {
//	    // *InputError with the rejected values per source
//	}
//
// Read and Validate select the source by name, which is what the broker
// dispatches on.
//
// # Request IDs
//
// FromHTTP takes the request ID from the X-Request-ID or X-Correlation-ID
// header and generates a UUID otherwise. The ID is stored in the request
// context with logger.WithRequestID, so readers log it with every rejected
// value.
package internal
