package dnsverify_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/input/pkg/dnsverify"
)

type fakeResolver struct {
	hosts map[string][]string
	err   error
	calls int
}

func (r *fakeResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	addrs, ok := r.hosts[host]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
	}
	return addrs, nil
}

func TestVerifyHost(t *testing.T) {
	t.Parallel()

	t.Run("empty host is invalid", func(t *testing.T) {
		t.Parallel()
		err := dnsverify.VerifyHost(context.Background(), &fakeResolver{}, "  ")
		require.ErrorIs(t, err, dnsverify.ErrInvalidInput)
	})

	t.Run("resolvable host", func(t *testing.T) {
		t.Parallel()
		r := &fakeResolver{hosts: map[string][]string{"example.com": {"93.184.216.34"}}}
		require.NoError(t, dnsverify.VerifyHost(context.Background(), r, " Example.COM "))
		assert.Equal(t, 1, r.calls)
	})

	t.Run("unknown host", func(t *testing.T) {
		t.Parallel()
		r := &fakeResolver{hosts: map[string][]string{}}
		err := dnsverify.VerifyHost(context.Background(), r, "nope.invalid")
		require.ErrorIs(t, err, dnsverify.ErrRecordNotFound)
	})

	t.Run("host without addresses", func(t *testing.T) {
		t.Parallel()
		r := &fakeResolver{hosts: map[string][]string{"empty.test": {}}}
		err := dnsverify.VerifyHost(context.Background(), r, "empty.test")
		require.ErrorIs(t, err, dnsverify.ErrRecordNotFound)
	})

	t.Run("lookup failure is wrapped", func(t *testing.T) {
		t.Parallel()
		r := &fakeResolver{err: errors.New("timeout")}
		err := dnsverify.VerifyHost(context.Background(), r, "example.com")
		require.ErrorIs(t, err, dnsverify.ErrDNSLookupFailed)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("ip literals and localhost skip lookup", func(t *testing.T) {
		t.Parallel()
		r := &fakeResolver{err: errors.New("must not be called")}
		for _, host := range []string{"127.0.0.1", "[::1]", "localhost"} {
			assert.True(t, dnsverify.HasRecord(context.Background(), r, host), host)
		}
		assert.Equal(t, 0, r.calls)
	})
}
