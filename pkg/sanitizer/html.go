package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns escaped text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// maxPasses bounds the nesting depth of entity-encoded markup that is unwrapped.
const maxPasses = 8

// StripTags removes all HTML tags from s and returns plain text.
// Content of script and style elements is dropped, entities are decoded.
// Markup hidden behind entities such as "&lt;script&gt;" is stripped as well.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	initPolicies()
	return strip(s, strictPolicy)
}

// TagPolicy returns a policy that keeps only the allowed elements, without
// any attributes. With no allowed elements it returns nil.
func TagPolicy(allowed ...string) *bluemonday.Policy {
	if len(allowed) == 0 {
		return nil
	}
	p := bluemonday.NewPolicy()
	p.AllowElements(allowed...)
	return p
}

// StripTagsExcept removes every tag of s not allowed by policy. Text outside
// the kept tags is returned unescaped, the same as StripTags returns it.
// A nil policy behaves like StripTags.
func StripTagsExcept(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return StripTags(s)
	}
	if s == "" {
		return ""
	}
	return strip(s, policy)
}

// strip sanitizes and decodes s until the result is stable, so no decoded
// entity can form a tag the policy would reject. If s does not settle within
// maxPasses the escaped policy output is returned.
func strip(s string, policy *bluemonday.Policy) string {
	for range maxPasses {
		out := html.UnescapeString(policy.Sanitize(s))
		if out == s {
			return out
		}
		s = out
	}
	return policy.Sanitize(s)
}
