package validators

import "errors"

var (
	// ErrValidation wraps every rule violation. The wrapping error's message
	// after the colon is safe to show to clients.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// Error is a rule violation with a client-facing message.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap makes every *Error match [ErrValidation].
func (e *Error) Unwrap() error {
	return ErrValidation
}
