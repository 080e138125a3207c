package pkg

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services and handlers. Concrete errors are wrapped
// so that errors.Is(err, ErrValidation|ErrNotFound|ErrInternal) picks the response.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal error")
)

// ValidationError is a human-readable input problem, safe to show to the caller.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// WrapInternal marks err as a storage/unexpected failure.
func WrapInternal(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrInternal, err)
}

// WrapNotFound marks err as a missing entity.
func WrapNotFound(err error) error {
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}
