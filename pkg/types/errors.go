// Validation errors for contact fields.
package types

import (
	"errors"
	"fmt"
)

// Field validation kinds. A ValidationError wraps exactly one of these.
var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")
)

// ValidationError reports a field value rejected at construction time.
// errors.Is matches it against its Kind.
type ValidationError struct {
	Field string // "name" or "phone".
	Value string // The rejected input.
	Kind  error  // ErrEmptyName or ErrInvalidPhoneFormat.
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Kind)
}

// Unwrap returns the validation kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
