package mimedetector

import (
	"errors"
	"fmt"
)

// Common lookup errors
var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrNotRemote        = errors.New("path is not a remote url")
	ErrInvalidHeader    = errors.New("invalid header")
	ErrInvalidConfig    = errors.New("invalid config")
)

// LookupError records an error and the operation and path that caused it.
// StatusCode is set when the remote server answered with a non-200 status.
type LookupError struct {
	Op         string
	Path       string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %v %d", e.Op, e.Path, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsUnexpectedStatus reports whether an error was caused by a non-200
// response to a remote lookup
func IsUnexpectedStatus(err error) bool {
	return errors.Is(err, ErrUnexpectedStatus)
}

// StatusCode extracts the HTTP status code carried by a lookup error.
// It returns 0 when the error did not come from an HTTP response.
func StatusCode(err error) int {
	var lerr *LookupError
	if errors.As(err, &lerr) {
		return lerr.StatusCode
	}
	return 0
}
