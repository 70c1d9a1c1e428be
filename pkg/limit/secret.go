package limit

import (
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/secret"
)

// SecretMinLength requires a secret to have at least Min characters.
type SecretMinLength struct {
	Min int
}

// Contains reports whether s is long enough.
func (l SecretMinLength) Contains(s *secret.Secret) bool {
	return s.Length() >= l.Min
}

// ErrorsOf returns PASSWORD_TOO_SHORT.
func (l SecretMinLength) ErrorsOf(*secret.Secret) paramerr.Errors {
	return paramerr.Of(paramerr.PasswordTooShort, map[string]any{"minLength": l.Min})
}

// AllowsTruncate always returns false.
func (l SecretMinLength) AllowsTruncate(*secret.Secret) bool {
	return false
}

// TruncateToMaxBorder panics, secrets are never truncated.
func (l SecretMinLength) TruncateToMaxBorder(*secret.Secret) *secret.Secret {
	panic(notTruncatable("secret min length"))
}
