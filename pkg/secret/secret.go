package secret

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Redacted is what a Secret renders as in logs, fmt output and JSON.
const Redacted = "[secret]"

var (
	aead     cipher.AEAD
	aeadErr  error
	aeadOnce sync.Once
)

// cipherInstance derives a process-wide key from fresh random material.
// Secrets do not survive the process.
func cipherInstance() cipher.AEAD {
	aeadOnce.Do(func() {
		master := make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, master); err != nil {
			aeadErr = fmt.Errorf("secret: generate master key: %w", err)
			return
		}
		key := make([]byte, chacha20poly1305.KeySize)
		if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte("input-secret")), key); err != nil {
			aeadErr = fmt.Errorf("secret: derive key: %w", err)
			return
		}
		aead, aeadErr = chacha20poly1305.NewX(key)
	})
	if aeadErr != nil {
		panic(aeadErr)
	}
	return aead
}

// Secret is an encrypted string. A nil *Secret is the null secret.
type Secret struct {
	sealed []byte
	length int
}

// Create encrypts s.
func Create(s string) *Secret {
	c := cipherInstance()
	nonce := make([]byte, c.NonceSize(), c.NonceSize()+len(s)+c.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		panic(fmt.Errorf("secret: generate nonce: %w", err))
	}
	return &Secret{
		sealed: c.Seal(nonce, nonce, []byte(s), nil),
		length: utf8.RuneCountInString(s),
	}
}

// Unveil returns the plain value. The null secret unveils to "".
func (s *Secret) Unveil() string {
	if s == nil || len(s.sealed) == 0 {
		return ""
	}
	c := cipherInstance()
	nonce, data := s.sealed[:c.NonceSize()], s.sealed[c.NonceSize():]
	plain, err := c.Open(nil, nonce, data, nil)
	if err != nil {
		panic(fmt.Errorf("secret: decrypt: %w", err))
	}
	return string(plain)
}

// Length returns the number of characters of the plain value.
func (s *Secret) Length() int {
	if s == nil {
		return 0
	}
	return s.length
}

// IsEmpty reports whether the secret is null or holds "".
func (s *Secret) IsEmpty() bool {
	return s.Length() == 0
}

// Equal reports whether both secrets hold the same value.
// The comparison runs in constant time.
func (s *Secret) Equal(other *Secret) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.Unveil()), []byte(other.Unveil())) == 1
}

// String implements fmt.Stringer and never reveals the value.
func (s *Secret) String() string {
	return Redacted
}

// GoString implements fmt.GoStringer and never reveals the value.
func (s *Secret) GoString() string {
	return Redacted
}

// LogValue implements slog.LogValuer.
func (s *Secret) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON encodes the secret as the redacted placeholder.
func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}
