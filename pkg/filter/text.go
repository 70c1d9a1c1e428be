package filter

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/sanitizer"
	"github.com/dmitrymomot/input/pkg/value"
)

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// String returns single line plain text: line breaks, backslash escaping and
// HTML tags are removed. Null yields no value so readers can tell a missing
// parameter apart from an empty one; "" yields "".
type String struct{}

// Apply implements Filter.
func (String) Apply(v value.Value) (string, bool, paramerr.Errors) {
	if v.IsNull() {
		return "", false, nil
	}
	s := lineBreaks.Replace(v.String())
	return sanitizer.StripTags(sanitizer.StripSlashes(s)), true, nil
}

// Text returns multi line text. Carriage returns and backslash escaping are
// removed; HTML tags are removed unless allowed. Text around kept tags is not
// escaped. Like String, null yields no value and "" yields "".
type Text struct {
	policy *bluemonday.Policy
}

// NewText returns a Text filter keeping the allowed tags.
func NewText(allowedTags ...string) Text {
	return Text{policy: sanitizer.TagPolicy(allowedTags...)}
}

// Apply implements Filter.
func (t Text) Apply(v value.Value) (string, bool, paramerr.Errors) {
	if v.IsNull() {
		return "", false, nil
	}
	s := strings.ReplaceAll(v.String(), "\r", "")
	return sanitizer.StripTagsExcept(sanitizer.StripSlashes(s), t.policy), true, nil
}
