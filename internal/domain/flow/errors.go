package flow

import "fmt"

// ValidationError reports a missing precondition or malformed local input.
// It is detected before any collaborator is called.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// CollaboratorError wraps a failure reported by the API gateway or the
// wallet agent. The underlying message is surfaced verbatim.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// PendingError is not a true failure: the remote side has not reached the
// required state yet and the operator should re-check later. It blocks
// completion but is journaled as a warning rather than an error.
type PendingError struct {
	Status string
	Reason string
}

func (e *PendingError) Error() string {
	return e.Reason
}
