package broker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/input/pkg/broker"
	"github.com/dmitrymomot/input/pkg/date"
	"github.com/dmitrymomot/input/pkg/param"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/reader"
	"github.com/dmitrymomot/input/pkg/secret"
	"github.com/dmitrymomot/input/pkg/value"
)

var errNoSource = errors.New("no such source")

// fakeSource serves readers from one Params set per source name.
type fakeSource struct {
	sources map[string]*param.Params
}

func newSource(params map[string]any) *fakeSource {
	return &fakeSource{sources: map[string]*param.Params{
		broker.SourceParam: param.FromRaw(params),
	}}
}

func (s *fakeSource) Read(source, name string) (*reader.ValueReader, error) {
	ps, ok := s.sources[source]
	if !ok {
		return nil, errNoSource
	}
	return reader.New(ps.Param(name), ps.Errors(), reader.WithSource(source)), nil
}

func (s *fakeSource) errors() *paramerr.Collection {
	return s.sources[broker.SourceParam].Errors()
}

type signup struct {
	Email      string
	Age        int
	Score      float64
	Price      int
	Nickname   string
	Bio        string
	Plan       string
	Tags       []string
	Newsletter bool
	Password   *secret.Secret
	Birthday   date.Date
	Settings   any
}

func TestProcure(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	bindings := []broker.Binding[signup]{
		broker.Bind(reg, broker.Field{Param: "email", Filter: "mail", Required: true},
			func(s *signup, v string) { s.Email = v }),
		broker.Bind(reg, broker.Field{Param: "age", Filter: "int", MinNumber: broker.Num(18), MaxNumber: broker.Num(120)},
			func(s *signup, v int) { s.Age = v }),
		broker.Bind(reg, broker.Field{Param: "score", Filter: "float"},
			func(s *signup, v float64) { s.Score = v }),
		broker.Bind(reg, broker.Field{Param: "price", Filter: "int", Decimals: 2, MaxNumber: broker.Num(100)},
			func(s *signup, v int) { s.Price = v }),
		broker.Bind(reg, broker.Field{Param: "nickname", Filter: "string", MaxLength: broker.Len(3), Truncate: true},
			func(s *signup, v string) { s.Nickname = v }),
		broker.Bind(reg, broker.Field{Param: "bio", Filter: "text", AllowedTags: []string{"b"}},
			func(s *signup, v string) { s.Bio = v }),
		broker.Bind(reg, broker.Field{Param: "plan", Filter: "oneof", Allowed: []string{"free", "pro"}, Default: "free"},
			func(s *signup, v string) { s.Plan = v }),
		broker.Bind(reg, broker.Field{Param: "tags", Filter: "array"},
			func(s *signup, v []string) { s.Tags = v }),
		broker.Bind(reg, broker.Field{Param: "newsletter", Filter: "bool"},
			func(s *signup, v bool) { s.Newsletter = v }),
		broker.Bind(reg, broker.Field{Param: "password", Filter: "password"},
			func(s *signup, v *secret.Secret) { s.Password = v }),
		broker.Bind(reg, broker.Field{Param: "birthday", Filter: "date"},
			func(s *signup, v date.Date) { s.Birthday = v }),
		broker.Bind(reg, broker.Field{Param: "settings", Filter: "json"},
			func(s *signup, v any) { s.Settings = v }),
	}

	t.Run("fills all fields", func(t *testing.T) {
		t.Parallel()
		src := newSource(map[string]any{
			"email":      "jane@example.com",
			"age":        "30",
			"score":      "4.5",
			"price":      "12.34",
			"nickname":   "janedoe",
			"bio":        "<b>hi</b><script>x</script>",
			"tags":       "a, b",
			"newsletter": "yes",
			"password":   []string{"s3cr3t-pass", "s3cr3t-pass"},
			"birthday":   "1990-05-17",
			"settings":   `{"theme":"dark"}`,
		})

		var s signup
		require.NoError(t, broker.Procure(context.Background(), reg, src, &s, bindings...))
		assert.False(t, src.errors().Exist())

		assert.Equal(t, "jane@example.com", s.Email)
		assert.Equal(t, 30, s.Age)
		assert.Equal(t, 4.5, s.Score)
		assert.Equal(t, 1234, s.Price)
		assert.Equal(t, "jan", s.Nickname)
		assert.Equal(t, "<b>hi</b>", s.Bio)
		assert.Equal(t, "free", s.Plan)
		assert.Equal(t, []string{"a", "b"}, s.Tags)
		assert.True(t, s.Newsletter)
		require.NotNil(t, s.Password)
		assert.Equal(t, "s3cr3t-pass", s.Password.Unveil())
		assert.Equal(t, "1990-05-17", s.Birthday.DayString())
		assert.Equal(t, map[string]any{"theme": "dark"}, s.Settings)
	})

	t.Run("records errors and skips invalid values", func(t *testing.T) {
		t.Parallel()
		src := newSource(map[string]any{
			"age":   "12",
			"price": "100.01",
			"plan":  "enterprise",
		})

		s := signup{Age: -1}
		require.NoError(t, broker.Procure(context.Background(), reg, src, &s, bindings...))

		errs := src.errors()
		assert.True(t, errs.ExistForWithID("email", paramerr.MailAddressMissing))
		assert.True(t, errs.ExistForWithID("age", paramerr.ValueTooSmall))
		assert.True(t, errs.ExistForWithID("price", paramerr.ValueTooGreat))
		assert.True(t, errs.ExistForWithID("plan", paramerr.FieldNoSelect))
		assert.False(t, errs.ExistFor("nickname"))

		assert.Equal(t, -1, s.Age, "setter must not run for rejected values")
		assert.Empty(t, s.Email)
		assert.Empty(t, s.Plan)
		assert.Nil(t, s.Password)
	})
}

func TestProcureCustomErrorID(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	b := broker.Bind(reg, broker.Field{Param: "name", Filter: "string", Required: true, ErrorID: "NAME_REQUIRED"},
		func(s *signup, v string) { s.Nickname = v })

	src := newSource(nil)
	var s signup
	require.NoError(t, broker.Procure(context.Background(), reg, src, &s, b))
	assert.True(t, src.errors().ExistForWithID("name", "NAME_REQUIRED"))
}

func TestProcureFractionalIntBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   broker.Field
		in      string
		wantErr string
	}{
		{name: "min rounds up rejects", field: broker.Field{MinNumber: broker.Num(1.5)}, in: "1", wantErr: paramerr.ValueTooSmall},
		{name: "min rounds up accepts", field: broker.Field{MinNumber: broker.Num(1.5)}, in: "2"},
		{name: "max rounds down rejects", field: broker.Field{MaxNumber: broker.Num(-0.5)}, in: "0", wantErr: paramerr.ValueTooGreat},
		{name: "max rounds down accepts", field: broker.Field{MaxNumber: broker.Num(-0.5)}, in: "-1"},
		{name: "scaled max keeps exact border", field: broker.Field{Decimals: 2, MaxNumber: broker.Num(0.29)}, in: "0.29"},
		{name: "scaled max rejects above", field: broker.Field{Decimals: 2, MaxNumber: broker.Num(0.29)}, in: "0.30", wantErr: paramerr.ValueTooGreat},
		{name: "scaled min keeps exact border", field: broker.Field{Decimals: 2, MinNumber: broker.Num(0.5)}, in: "0.5"},
		{name: "scaled min rounds up", field: broker.Field{Decimals: 2, MinNumber: broker.Num(0.295)}, in: "0.29", wantErr: paramerr.ValueTooSmall},
	}

	reg := broker.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			field := tt.field
			field.Param = "n"
			field.Filter = "int"
			src := newSource(map[string]any{"n": tt.in})

			var s signup
			require.NoError(t, broker.Procure(context.Background(), reg, src, &s,
				broker.Bind(reg, field, func(s *signup, v int) { s.Age = v })))

			if tt.wantErr != "" {
				assert.True(t, src.errors().ExistForWithID("n", tt.wantErr))
				return
			}
			assert.False(t, src.errors().Exist())
		})
	}
}

func TestProcureSources(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	src := newSource(nil)
	src.sources["header"] = param.FromRaw(map[string]any{"X-Plan": "pro"})

	var s signup
	err := broker.Procure(context.Background(), reg, src, &s,
		broker.Bind(reg, broker.Field{Param: "X-Plan", Source: "header", Filter: "string"},
			func(s *signup, v string) { s.Plan = v }),
	)
	require.NoError(t, err)
	assert.Equal(t, "pro", s.Plan)

	err = broker.Procure(context.Background(), reg, src, &s,
		broker.Bind(reg, broker.Field{Param: "sid", Source: "cookie", Filter: "string"},
			func(s *signup, v string) {}),
	)
	require.ErrorIs(t, err, broker.ErrUnknownSource)
	require.ErrorIs(t, err, errNoSource)
	assert.Contains(t, err.Error(), `"cookie"`)
}

func TestProcureUnknownFilter(t *testing.T) {
	t.Parallel()

	custom := broker.NewRegistry(broker.WithFactory("upper", func(_ context.Context, r reader.CommonReader, _ broker.Field) (any, bool) {
		return r.AsString()
	}))
	b := broker.Bind(custom, broker.Field{Param: "name", Filter: "upper"}, func(s *signup, v string) {})

	err := broker.Procure(context.Background(), broker.NewRegistry(), newSource(nil), &signup{}, b)
	require.ErrorIs(t, err, broker.ErrUnknownFilter)
	assert.Contains(t, err.Error(), `"upper"`)
}

func TestBindPanics(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()

	t.Run("unknown filter", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithError(t, `broker: unknown filter: "nope" for param "x"`, func() {
			broker.Bind(reg, broker.Field{Param: "x", Filter: "nope"}, func(*signup, string) {})
		})
	})

	t.Run("missing param name", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithError(t, `broker: field without param name: filter "int"`, func() {
			broker.Bind(reg, broker.Field{Filter: "int"}, func(*signup, int) {})
		})
	})

	t.Run("setter type mismatch at procure", func(t *testing.T) {
		t.Parallel()
		b := broker.Bind(reg, broker.Field{Param: "age", Filter: "int"}, func(*signup, string) {})
		src := newSource(map[string]any{"age": "3"})
		assert.PanicsWithError(t, `broker: value type does not match setter: param "age": string expected, got int`, func() {
			_ = broker.Procure(context.Background(), reg, src, &signup{}, b)
		})
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	assert.Equal(t, []string{
		"array", "bool", "date", "datespan", "day", "float", "httpuri", "int", "json",
		"mail", "month", "oneof", "password", "secret", "string", "text", "week",
	}, reg.Keys())

	t.Run("custom factory overrides builtin", func(t *testing.T) {
		t.Parallel()
		custom := broker.NewRegistry(broker.WithFactory("int", func(_ context.Context, r reader.CommonReader, _ broker.Field) (any, bool) {
			v, ok := r.AsInt()
			return v * 2, ok
		}))

		var got int
		b := broker.Bind(custom, broker.Field{Param: "n", Filter: "int"}, func(_ *signup, v int) { got = v })
		require.NoError(t, broker.Procure(context.Background(), custom, newSource(map[string]any{"n": "21"}), &signup{}, b))
		assert.Equal(t, 42, got)

		_, ok := reg.Lookup("upper")
		assert.False(t, ok)
	})
}

func TestDatespanFilters(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	earliest := date.MustParseDate("2024-01-01")

	type period struct {
		Day   date.Day
		Week  date.Week
		Month date.Month
		Span  date.Datespan
	}

	bindings := []broker.Binding[period]{
		broker.Bind(reg, broker.Field{Param: "day", Filter: "day", MinDate: &earliest},
			func(p *period, v date.Day) { p.Day = v }),
		broker.Bind(reg, broker.Field{Param: "week", Filter: "week"},
			func(p *period, v date.Week) { p.Week = v }),
		broker.Bind(reg, broker.Field{Param: "month", Filter: "month"},
			func(p *period, v date.Month) { p.Month = v }),
		broker.Bind(reg, broker.Field{Param: "span", Filter: "datespan"},
			func(p *period, v date.Datespan) { p.Span = v }),
	}

	src := newSource(map[string]any{
		"day":   "2023-12-31",
		"week":  "2024-W10",
		"month": "2024-02",
		"span":  "2024-01-01/2024-01-10",
	})

	var p period
	require.NoError(t, broker.Procure(context.Background(), reg, src, &p, bindings...))

	assert.True(t, src.errors().ExistForWithID("day", paramerr.DateTooEarly))
	assert.Equal(t, "2024-03-04", p.Week.Start().DayString())
	assert.Equal(t, 29, p.Month.Days())
	require.NotNil(t, p.Span)
	assert.Equal(t, 10, p.Span.Days())
}

func TestFieldDefaultUsed(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	var got int
	b := broker.Bind(reg, broker.Field{Param: "page", Filter: "int", Default: 1}, func(_ *signup, v int) { got = v })

	require.NoError(t, broker.Procure(context.Background(), reg, newSource(map[string]any{"page": value.Null()}), &signup{}, b))
	assert.Equal(t, 1, got)
}
