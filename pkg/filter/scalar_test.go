package filter_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/input/pkg/filter"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/value"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     value.Value
		want   bool
		wantOK bool
	}{
		{name: "one", in: value.Of("1"), want: true, wantOK: true},
		{name: "true", in: value.Of("true"), want: true, wantOK: true},
		{name: "yes", in: value.Of("yes"), want: true, wantOK: true},
		{name: "case sensitive", in: value.Of("TRUE"), wantOK: true},
		{name: "zero", in: value.Of("0"), wantOK: true},
		{name: "garbage", in: value.Of("on"), wantOK: true},
		{name: "empty", in: value.Of(""), wantOK: true},
		{name: "list uses first", in: value.OfList([]string{"yes", "no"}), want: true, wantOK: true},
		{name: "null", in: value.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := filter.Bool{}.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Nil(t, errs)
		})
	}
}

func TestInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     value.Value
		want   int
		wantOK bool
	}{
		{name: "plain", in: value.Of("42"), want: 42, wantOK: true},
		{name: "negative", in: value.Of("-17"), want: -17, wantOK: true},
		{name: "leading whitespace", in: value.Of("  8"), want: 8, wantOK: true},
		{name: "trailing garbage", in: value.Of("12abc"), want: 12, wantOK: true},
		{name: "decimal truncates", in: value.Of("12.9"), want: 12, wantOK: true},
		{name: "negative decimal truncates", in: value.Of("-12.9"), want: -12, wantOK: true},
		{name: "exponent", in: value.Of("1e3"), want: 1000, wantOK: true},
		{name: "garbage is zero", in: value.Of("abc"), want: 0, wantOK: true},
		{name: "hex is zero", in: value.Of("0x1A"), want: 0, wantOK: true},
		{name: "empty is zero", in: value.Of(""), want: 0, wantOK: true},
		{name: "overflow saturates", in: value.Of("99999999999999999999"), want: math.MaxInt, wantOK: true},
		{name: "underflow saturates", in: value.Of("-99999999999999999999"), want: math.MinInt, wantOK: true},
		{name: "huge exponent saturates", in: value.Of("1e400"), want: math.MaxInt, wantOK: true},
		{name: "null", in: value.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := filter.Integer{}.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Nil(t, errs)
		})
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     value.Value
		want   float64
		wantOK bool
	}{
		{name: "plain", in: value.Of("3.14"), want: 3.14, wantOK: true},
		{name: "leading dot", in: value.Of(".5"), want: 0.5, wantOK: true},
		{name: "trailing dot", in: value.Of("7."), want: 7, wantOK: true},
		{name: "trailing garbage", in: value.Of("2.5kg"), want: 2.5, wantOK: true},
		{name: "comma is garbage", in: value.Of("2,5"), want: 2, wantOK: true},
		{name: "garbage", in: value.Of("x"), want: 0, wantOK: true},
		{name: "null", in: value.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := filter.Float{}.Apply(tt.in)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantOK, ok)
			assert.Nil(t, errs)
		})
	}
}

func TestFixedPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		decimals int
		in       string
		want     int
	}{
		{name: "two decimals", decimals: 2, in: "3.14159", want: 314},
		{name: "truncates", decimals: 1, in: "1.99", want: 19},
		{name: "integer input", decimals: 3, in: "5", want: 5000},
		{name: "zero decimals", decimals: 0, in: "9.99", want: 9},
		{name: "negative", decimals: 2, in: "-1.5", want: -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := filter.FixedPoint{Decimals: tt.decimals}.Apply(value.Of(tt.in))
			assert.Equal(t, tt.want, got)
			assert.True(t, ok)
			assert.Nil(t, errs)
		})
	}

	_, ok, _ := filter.FixedPoint{Decimals: 2}.Apply(value.Null())
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     value.Value
		want   string
		wantOK bool
	}{
		{name: "plain", in: value.Of("hello"), want: "hello", wantOK: true},
		{name: "line breaks removed", in: value.Of("line\r\none\ntwo"), want: "lineonetwo", wantOK: true},
		{name: "slashes stripped", in: value.Of(`O\'Reilly`), want: "O'Reilly", wantOK: true},
		{name: "tags stripped", in: value.Of("<b>bold</b> <script>x()</script>text"), want: "bold text", wantOK: true},
		{name: "entities decoded", in: value.Of("a &amp; b"), want: "a & b", wantOK: true},
		{name: "encoded script stripped", in: value.Of("&lt;script&gt;alert(1)&lt;/script&gt;"), want: "", wantOK: true},
		{name: "encoded tag stripped", in: value.Of("&lt;i&gt;x"), want: "x", wantOK: true},
		{name: "empty", in: value.Of(""), want: "", wantOK: true},
		{name: "null", in: value.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := filter.String{}.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Nil(t, errs)
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		f      filter.Text
		in     value.Value
		want   string
		wantOK bool
	}{
		{name: "keeps line feeds", f: filter.NewText(), in: value.Of("one\r\ntwo"), want: "one\ntwo", wantOK: true},
		{name: "strips all tags by default", f: filter.Text{}, in: value.Of("<b>bold</b>"), want: "bold", wantOK: true},
		{name: "keeps allowed tags", f: filter.NewText("b"), in: value.Of("<b>bold</b> <i>it</i>"), want: "<b>bold</b> it", wantOK: true},
		{name: "encoded tag stripped", f: filter.NewText(), in: value.Of("&lt;i&gt;x"), want: "x", wantOK: true},
		{name: "allowed tags keep plain text", f: filter.NewText("b"), in: value.Of("Tom & Jerry <b>x</b>\nline"), want: "Tom & Jerry <b>x</b>\nline", wantOK: true},
		{name: "allowed tags keep comparison signs", f: filter.NewText("b"), in: value.Of("1 < 2 > 0"), want: "1 < 2 > 0", wantOK: true},
		{name: "empty", f: filter.NewText("b"), in: value.Of(""), want: "", wantOK: true},
		{name: "null", f: filter.NewText("b"), in: value.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := tt.f.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Nil(t, errs)
		})
	}
}

func TestArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		f      filter.Array
		in     value.Value
		want   []string
		wantOK bool
	}{
		{name: "default separator", in: value.Of("a, b ,c"), want: []string{"a", "b", "c"}, wantOK: true},
		{name: "custom separator", f: filter.Array{Separator: "|"}, in: value.Of("a|b, c"), want: []string{"a", "b, c"}, wantOK: true},
		{name: "list trimmed", in: value.OfList([]string{" a ", "b"}), want: []string{"a", "b"}, wantOK: true},
		{name: "empty", in: value.Of(""), want: []string{}, wantOK: true},
		{name: "null", in: value.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, errs := tt.f.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Nil(t, errs)
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	t.Run("one of", func(t *testing.T) {
		t.Parallel()
		f := filter.OneOf([]string{"red", "green"})

		got, ok, errs := f.Apply(value.Of("red"))
		assert.Equal(t, "red", got)
		assert.True(t, ok)
		assert.Nil(t, errs)

		_, ok, errs = f.Apply(value.Of("blue"))
		assert.False(t, ok)
		allowed, _ := errs[paramerr.FieldNoSelect].Detail("allowed")
		assert.Equal(t, "red|green", allowed)

		_, ok, errs = f.Apply(value.Null())
		assert.False(t, ok)
		assert.Nil(t, errs)
	})

	t.Run("matches", func(t *testing.T) {
		t.Parallel()
		f := filter.Matches(regexp.MustCompile(`^\d{5}$`))

		got, ok, _ := f.Apply(value.Of("12345"))
		assert.Equal(t, "12345", got)
		assert.True(t, ok)

		_, ok, errs := f.Apply(value.Of("1234"))
		assert.False(t, ok)
		assert.True(t, errs.Has(paramerr.FieldWrongValue))
	})

	t.Run("ip address", func(t *testing.T) {
		t.Parallel()
		f := filter.IPAddress()

		_, ok, _ := f.Apply(value.Of("::1"))
		assert.True(t, ok)

		_, ok, errs := f.Apply(value.Of("localhost"))
		assert.False(t, ok)
		assert.True(t, errs.Has(paramerr.InvalidIPAddress))
	})

	t.Run("custom predicate", func(t *testing.T) {
		t.Parallel()
		f := filter.Predicate(func(v value.Value) bool { return v.Length() > 2 }, "TOO_SHORT", map[string]any{"min": 3})

		_, ok, errs := f.Apply(value.Of("ab"))
		assert.False(t, ok)
		min, _ := errs["TOO_SHORT"].Detail("min")
		assert.Equal(t, 3, min)
	})
}
