// Package param models the parameters of one request source.
//
// Params maps names to raw values and lazily owns the error collection that
// every reader of the request reports into. Reading an unknown name is not an
// error: it yields the null value.
package param
