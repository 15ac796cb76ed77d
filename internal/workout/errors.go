package workout

import (
	"fmt"
	"strings"
)

// ConstructionError is returned by a builder's Build when required fields
// were never set. It is fatal: the caller gets no partial element.
type ConstructionError struct {
	Missing []string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot build structure element: missing %s", strings.Join(e.Missing, ", "))
}

// ComputationError is returned by the timing engine for inputs it cannot
// price, currently only a repetition element with no steps. No partial
// structure is produced.
type ComputationError struct {
	msg string
}

func (e *ComputationError) Error() string { return e.msg }

func newComputationError(format string, args ...any) *ComputationError {
	return &ComputationError{msg: fmt.Sprintf(format, args...)}
}
