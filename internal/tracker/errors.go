package tracker

import "errors"

// ConflictError means a precondition about singleton or relational state
// was violated, e.g. starting while a session is already running or
// deleting a category that sessions still reference.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// NotFoundError means a referenced entity does not exist
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

// ValidationError means malformed or out-of-range input
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}
