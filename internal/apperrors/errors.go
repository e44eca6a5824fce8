// Package apperrors defines the error taxonomy shared by the chemistry
// engine and the repositories. Callers match with errors.Is.
package apperrors

import "errors"

var (
	// ErrInvalidInput marks a malformed or out-of-domain argument, such as
	// a non-positive tank id, an empty name, or a temperature below
	// absolute zero.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameter marks a parameter name outside the fixed set.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidRange marks a safe range whose high bound is not strictly
	// greater than its low bound, or non-numeric bounds.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNotFound marks an operation that targeted a record which does not
	// exist (e.g. renaming a deleted tank).
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a backing-store failure not attributable to a
	// validated invariant.
	ErrStorage = errors.New("storage error")
)
