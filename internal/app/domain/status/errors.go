package status

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("status not found")

// ValidationError marks a rejected create request. It carries no side effects.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
