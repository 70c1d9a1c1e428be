package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

// DefaultJSONMaxLength is the byte limit of JSON input when none is configured.
const DefaultJSONMaxLength = 20000

// JSON syntax error codes reported in the errorCode detail.
const (
	JSONErrorSyntax = 4
	JSONErrorUTF8   = 5
)

// JSON decodes an object or array. Input longer than MaxLength bytes is
// JSON_INPUT_TOO_BIG, input not enclosed in {} or [] is JSON_INVALID and
// undecodable input is JSON_SYNTAX_ERROR.
type JSON struct {
	MaxLength int
}

// Apply implements Filter.
func (f JSON) Apply(v value.Value) (any, bool, paramerr.Errors) {
	if v.IsEmpty() {
		return nil, false, nil
	}

	raw := v.String()
	maxLength := f.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultJSONMaxLength
	}
	if len(raw) > maxLength {
		return nil, false, paramerr.Of(paramerr.JSONInputTooBig, map[string]any{"maxLength": maxLength})
	}

	if !isEnclosed(strings.TrimSpace(raw)) {
		return nil, false, paramerr.Of(paramerr.JSONInvalid, nil)
	}

	if !utf8.ValidString(raw) {
		return nil, false, syntaxError(JSONErrorUTF8, "Malformed UTF-8 characters, possibly incorrectly encoded")
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, false, syntaxError(JSONErrorSyntax, err.Error())
	}
	return decoded, true, nil
}

func isEnclosed(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == '{' && last == '}' || first == '[' && last == ']'
}

func syntaxError(code int, msg string) paramerr.Errors {
	return paramerr.Of(paramerr.JSONSyntaxError, map[string]any{"errorCode": code, "errorMsg": msg})
}
