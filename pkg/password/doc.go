// Package password checks passwords read from requests.
//
// A Checker returns the set of violated rules as paramerr.Errors. The filter
// for passwords delegates to a Checker once it has confirmed that a
// two-field password/confirmation pair matches.
package password
