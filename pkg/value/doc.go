// Package value holds the raw, untyped form of a request parameter.
//
// A Value is null, a string or a list of strings. It answers simple predicate
// questions (emptiness, containment, regular expressions, address syntax) and
// is the input of every filter in package filter.
//
//	v := value.Of("user@example.com")
//	v.IsMailAddress() // true
//	value.Null().IsEmpty() // true
package value
