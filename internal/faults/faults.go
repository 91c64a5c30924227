// Package faults defines the error taxonomy shared across portal services.
// Callers classify failures with errors.Is and translate them to transport
// responses at the handler boundary.
package faults

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable marks a transport-level failure talking to the
	// entity store. Retried by user action, never automatically.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrForbidden marks an action the acting role is not allowed to perform.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyApplied marks an apply for a (student, opening) pair that
	// already holds an application. The desired end state already exists, so
	// UIs surface it as a no-op notice rather than a hard failure.
	ErrAlreadyApplied = errors.New("already applied")

	// ErrValidation marks malformed input rejected before any remote write.
	ErrValidation = errors.New("validation failed")
)

// Validationf wraps ErrValidation with a human-readable reason.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}
