package input_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/input"
	"github.com/dmitrymomot/input/pkg/broker"
	"github.com/dmitrymomot/input/pkg/errmsg"
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/secret"
)

type signup struct {
	Email    string
	Age      int
	Plan     string
	Password *secret.Secret
	Locale   string
}

func signupBindings(reg *broker.Registry) []broker.Binding[signup] {
	return []broker.Binding[signup]{
		broker.Bind(reg, broker.Field{Param: "email", Filter: "mail", Required: true},
			func(s *signup, v string) { s.Email = v }),
		broker.Bind(reg, broker.Field{Param: "age", Filter: "int", MinNumber: broker.Num(18)},
			func(s *signup, v int) { s.Age = v }),
		broker.Bind(reg, broker.Field{Param: "plan", Source: input.SourcePath, Filter: "oneof", Allowed: []string{"free", "pro"}},
			func(s *signup, v string) { s.Plan = v }),
		broker.Bind(reg, broker.Field{Param: "password", Filter: "password", Required: true},
			func(s *signup, v *secret.Secret) { s.Password = v }),
		broker.Bind(reg, broker.Field{Param: "Accept-Language", Source: input.SourceHeader, Filter: "string"},
			func(s *signup, v string) { s.Locale = v }),
	}
}

func TestSignupFlow(t *testing.T) {
	t.Parallel()

	reg := broker.NewRegistry()
	bindings := signupBindings(reg)
	catalog, err := errmsg.New()
	require.NoError(t, err)

	newRouter := func(check func(t *testing.T, s signup, req *input.Request)) *chi.Mux {
		r := chi.NewRouter()
		r.With(input.Middleware()).Post("/signup/{plan}", func(w http.ResponseWriter, r *http.Request) {
			req, ok := input.FromContext(r.Context())
			require.True(t, ok)

			var s signup
			require.NoError(t, broker.Procure(r.Context(), reg, req, &s, bindings...))
			check(t, s, req)
			w.WriteHeader(http.StatusNoContent)
		})
		return r
	}

	post := func(path string, form url.Values, lang string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept-Language", lang)
		return req
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		router := newRouter(func(t *testing.T, s signup, req *input.Request) {
			require.NoError(t, req.Err())
			assert.Equal(t, "jane@example.com", s.Email)
			assert.Equal(t, 30, s.Age)
			assert.Equal(t, "pro", s.Plan)
			assert.Equal(t, "correct-horse", s.Password.Unveil())
			assert.Equal(t, "en", s.Locale)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, post("/signup/pro", url.Values{
			"email":      {"jane@example.com"},
			"age":        {"30"},
			"password[]": {"correct-horse", "correct-horse"},
		}, "en"))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("invalid renders localized messages", func(t *testing.T) {
		t.Parallel()
		router := newRouter(func(t *testing.T, s signup, req *input.Request) {
			err := req.Err()
			require.Error(t, err)
			require.True(t, input.IsInputError(err))

			ie := input.AsInputError(err)
			params := ie.For(input.SourceParam)
			assert.True(t, params.ExistForWithID("email", paramerr.MailAddressCannotContainSpaces))
			assert.True(t, params.ExistForWithID("age", paramerr.ValueTooSmall))
			assert.True(t, params.ExistForWithID("password", paramerr.PasswordsNotEqual))
			assert.True(t, ie.For(input.SourcePath).ExistForWithID("plan", paramerr.FieldNoSelect))

			locale := catalog.Negotiate(s.Locale)
			assert.Equal(t, "de", locale)
			msgs := catalog.Render(params, locale)
			assert.Equal(t, []string{"Der Wert darf nicht kleiner als 18 sein."}, msgs["age"])
			assert.Equal(t, []string{"Die Passwörter stimmen nicht überein."}, msgs["password"])
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, post("/signup/enterprise", url.Values{
			"email":      {"jane doe@example.com"},
			"age":        {"12"},
			"password[]": {"correct-horse", "battery-staple"},
		}, "de-DE,de;q=0.9"))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req := input.NewRequest(
		map[string]any{"q": "filters"},
		input.WithContext(context.Background()),
		input.WithRequestID("req-1"),
	)

	q, ok := req.ReadParam("q").AsString()
	require.True(t, ok)
	assert.Equal(t, "filters", q)
	assert.Equal(t, "req-1", req.RequestID())

	_, err := req.Read("session", "id")
	require.ErrorIs(t, err, input.ErrUnknownSource)
}
