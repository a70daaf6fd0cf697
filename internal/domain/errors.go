package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a trip write would double-book a resource,
// either detected up front by the scheduler or by the database exclusion
// constraint at commit time. Handlers should map this to HTTP 409.
var ErrConflict = errors.New("scheduling conflict")

// ConflictError wraps ErrConflict and carries the full ConflictResult so the
// handler can return the detected conflicts in the 409 response body.
// Retrieve it with errors.As.
type ConflictError struct {
	Result ConflictResult
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if n := len(e.Result.Conflicts); n == 1 {
		return "scheduling conflict: 1 conflict detected"
	} else if n > 1 {
		return "scheduling conflict: multiple conflicts detected"
	}
	return "scheduling conflict"
}

// Unwrap lets errors.Is(err, ErrConflict) match a *ConflictError.
func (e *ConflictError) Unwrap() error { return ErrConflict }
