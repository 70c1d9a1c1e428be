package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/input/pkg/sanitizer"
)

func TestStripSlashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no slashes", input: "plain", expected: "plain"},
		{name: "escaped quote", input: `O\'Reilly`, expected: "O'Reilly"},
		{name: "escaped double quote", input: `say \"hi\"`, expected: `say "hi"`},
		{name: "escaped backslash", input: `C:\\temp`, expected: `C:\temp`},
		{name: "trailing backslash", input: `end\`, expected: "end"},
		{name: "multibyte", input: `gr\üße`, expected: "grüße"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripSlashes(tt.input))
		})
	}
}
