package filter

import (
	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/password"
	"github.com/dmitrymomot/input/pkg/secret"
	"github.com/dmitrymomot/input/pkg/value"
)

// Secret wraps the value in a secret.Secret. Empty values yield no value.
type Secret struct{}

// Apply implements Filter.
func (Secret) Apply(v value.Value) (*secret.Secret, bool, paramerr.Errors) {
	if v.IsEmpty() || v.String() == "" {
		return nil, false, nil
	}
	return secret.Create(v.String()), true, nil
}

// Password reads a password as secret.Secret and validates it with Checker.
// A two element list is a password and its confirmation; differing elements
// are PASSWORDS_NOT_EQUAL. A nil Checker uses password.NewSimpleChecker.
type Password struct {
	Checker password.Checker
}

// Apply implements Filter.
func (f Password) Apply(v value.Value) (*secret.Secret, bool, paramerr.Errors) {
	if v.IsEmpty() {
		return nil, false, nil
	}

	if items := v.List(); v.IsList() && len(items) == 2 && items[0] != items[1] {
		return nil, false, paramerr.Of(paramerr.PasswordsNotEqual, nil)
	}

	plain := v.String()
	if plain == "" {
		return nil, false, nil
	}

	pw := secret.Create(plain)
	checker := f.Checker
	if checker == nil {
		checker = password.NewSimpleChecker()
	}
	if errs := checker.Check(pw); len(errs) > 0 {
		return nil, false, errs
	}
	return pw, true, nil
}
