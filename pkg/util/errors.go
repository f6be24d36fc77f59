// Package util provides logging, common error types, and port-name helpers.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for the main failure classes. Callers match these with
// errors.Is to decide whether to skip, retry, or abort the run.
var (
	ErrEmptyTranslation = errors.New("translation table is empty")
	ErrMarkerNotFound   = errors.New("dump section marker not found")
	ErrPortNotFound     = errors.New("port not found")
	ErrInvalidRange     = errors.New("invalid port range")
	ErrNoSavedConfig    = errors.New("no saved configuration")
	ErrNotReady         = errors.New("switch not initialized")
	ErrConflictingInput = errors.New("conflicting input options")
)

// MarkerError reports which literal marker was missing from the SDK dump.
// A missing marker means the dump format changed or the dump is truncated,
// which must surface as a parse failure rather than an empty table.
type MarkerError struct {
	Marker string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("marker %q not found in SDK dump", e.Marker)
}

func (e *MarkerError) Unwrap() error {
	return ErrMarkerNotFound
}

// RangeError describes why a port-name range could not be resolved.
type RangeError struct {
	Start  string
	End    string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%s, %s]: %s", e.Start, e.End, e.Reason)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// NewRangeError creates a range resolution error
func NewRangeError(start, end, reason string) *RangeError {
	return &RangeError{Start: start, End: end, Reason: reason}
}

// PortNotFoundError names the port missing from the translation table.
type PortNotFoundError struct {
	Port string
}

func (e *PortNotFoundError) Error() string {
	return fmt.Sprintf("%s doesn't exist", e.Port)
}

func (e *PortNotFoundError) Unwrap() error {
	return ErrPortNotFound
}
