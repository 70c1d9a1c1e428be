package password

import (
	"slices"

	"github.com/dmitrymomot/input/pkg/paramerr"
	"github.com/dmitrymomot/input/pkg/secret"
)

// Default limits of SimpleChecker.
const (
	DefaultMinLength    = 8
	DefaultMinDiffChars = 5
)

// Checker validates a password and returns the errors it violates.
// An empty result means the password is acceptable.
type Checker interface {
	Check(pw *secret.Secret) paramerr.Errors
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(pw *secret.Secret) paramerr.Errors

// Check calls f(pw).
func (f CheckerFunc) Check(pw *secret.Secret) paramerr.Errors {
	return f(pw)
}

// SimpleChecker enforces a minimum length, a minimum number of distinct
// characters and a list of disallowed passwords.
// Zero limits disable the respective check.
type SimpleChecker struct {
	Disallowed   []string
	MinLength    int
	MinDiffChars int
}

// NewSimpleChecker returns a SimpleChecker with the default limits.
func NewSimpleChecker(disallowed ...string) SimpleChecker {
	return SimpleChecker{
		MinLength:    DefaultMinLength,
		MinDiffChars: DefaultMinDiffChars,
		Disallowed:   disallowed,
	}
}

// Check implements Checker.
func (c SimpleChecker) Check(pw *secret.Secret) paramerr.Errors {
	errs := paramerr.Errors{}
	plain := pw.Unveil()

	if slices.Contains(c.Disallowed, plain) {
		errs.Add(paramerr.New(paramerr.PasswordInvalid, nil))
	}

	if c.MinLength > 0 && pw.Length() < c.MinLength {
		errs.Add(paramerr.New(paramerr.PasswordTooShort, map[string]any{"minLength": c.MinLength}))
	}

	if c.MinDiffChars > 0 && distinctRunes(plain) < c.MinDiffChars {
		errs.Add(paramerr.New(paramerr.PasswordTooLessDiffChars, map[string]any{"minDiff": c.MinDiffChars}))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func distinctRunes(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
