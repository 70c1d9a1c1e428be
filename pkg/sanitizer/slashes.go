package sanitizer

import "strings"

// StripSlashes removes backslash escaping from s: each backslash is dropped
// and the character following it is kept literally, so `\\` becomes `\`.
func StripSlashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
