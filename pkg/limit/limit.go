package limit

import (
	"errors"
	"fmt"
)

var (
	ErrNotTruncatable     = errors.New("limit: range does not allow truncation")
	ErrTruncateWithoutMax = errors.New("limit: truncate mode requires a max length")
)

func notTruncatable(kind string) error {
	return fmt.Errorf("%w: %s", ErrNotTruncatable, kind)
}

// Ptr returns a pointer to v, for optional borders.
func Ptr[T any](v T) *T {
	return &v
}
