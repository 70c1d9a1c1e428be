// Package limit provides the bounds checks filters can be decorated with.
//
// Every range answers four questions about a filtered value: whether it is
// contained, which errors describe a value outside the range, whether the
// value may be truncated instead of rejected, and what the truncated value is.
// Only StringLength in truncate mode ever truncates; asking any other range to
// truncate is a programming error and panics with ErrNotTruncatable.
//
//	limit.Between(1, 10).Contains(11) // false
//	limit.Truncate(3).TruncateToMaxBorder("foobar") // "foo"
package limit
