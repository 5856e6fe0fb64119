package bomerr

import (
	"fmt"
)

// ValidationFailure carries the findings of a failed validation. It matches ErrValidationFailed with errors.Is
// and unwraps to the findings themselves.
type ValidationFailure struct {
	Findings error
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("%v: %v", ErrValidationFailed, e.Findings)
}

func (e *ValidationFailure) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationFailure) Unwrap() error {
	return e.Findings
}
