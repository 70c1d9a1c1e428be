package secret_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/input/pkg/secret"
)

func TestSecret_Unveil(t *testing.T) {
	t.Parallel()

	s := secret.Create("pässwörd")
	assert.Equal(t, "pässwörd", s.Unveil())
	assert.Equal(t, 8, s.Length())
	assert.False(t, s.IsEmpty())

	empty := secret.Create("")
	assert.Equal(t, "", empty.Unveil())
	assert.True(t, empty.IsEmpty())

	var null *secret.Secret
	assert.Equal(t, "", null.Unveil())
	assert.Equal(t, 0, null.Length())
	assert.True(t, null.IsEmpty())
}

func TestSecret_Equal(t *testing.T) {
	t.Parallel()

	a := secret.Create("same")
	b := secret.Create("same")
	c := secret.Create("other")
	var null *secret.Secret

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(null))
	assert.False(t, null.Equal(a))
	assert.True(t, null.Equal(nil))
}

func TestSecret_NeverRevealed(t *testing.T) {
	t.Parallel()

	s := secret.Create("hunter2")

	assert.Equal(t, secret.Redacted, s.String())
	assert.Equal(t, secret.Redacted, fmt.Sprintf("%v", s))
	assert.Equal(t, secret.Redacted, fmt.Sprintf("%#v", s))

	data, err := json.Marshal(map[string]any{"password": s})
	require.NoError(t, err)
	assert.JSONEq(t, `{"password":"[secret]"}`, string(data))

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("login", slog.Any("password", s))
	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), secret.Redacted)
}
