package textrange

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned when a range has no content left inside the
// limiting root. Callers treat it as an empty result, not a failure.
var ErrNoContent = errors.New("range has no content inside root")

// StructuralError reports a document tree that does not have the shape needed
// to resolve a page boundary or a normalization target.
type StructuralError struct {
	Op     string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: structural mismatch: %s", e.Op, e.Reason)
}

func structural(op, format string, args ...any) error {
	return &StructuralError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// IsStructural reports whether err wraps a *StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
