// ABOUTME: Custom error types for the core business logic
// ABOUTME: Models the data-source failure taxonomy surfaced to callers

package errors

import (
	"errors"
	"fmt"
)

// ConnectivityError indicates no network path was available.
// Callers may retry later.
type ConnectivityError struct {
	Err error
}

// Error implements the error interface
func (e *ConnectivityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no network connection: %v", e.Err)
	}
	return "no network connection"
}

// Unwrap returns the underlying error
func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// ServerError indicates the remote endpoint rejected or failed the request.
type ServerError struct {
	StatusCode int
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// Retriable reports whether the failure is worth retrying.
// Only server-side (5xx) failures are; client-side (4xx) failures are not.
func (e *ServerError) Retriable() bool {
	return e.StatusCode >= 500
}

// DecodingError indicates the response could not be interpreted as the
// expected shape.
type DecodingError struct {
	Err error
}

// Error implements the error interface
func (e *DecodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode response: %v", e.Err)
	}
	return "failed to decode response"
}

// Unwrap returns the underlying error
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// CancelledError indicates the operation was deliberately cancelled.
// Not an error to report to the user, simply an aborted attempt.
type CancelledError struct{}

// Error implements the error interface
func (e *CancelledError) Error() string {
	return "request cancelled"
}

// UnknownError is the fallback for anything uncategorized.
type UnknownError struct {
	Err error
}

// Error implements the error interface
func (e *UnknownError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unknown error: %v", e.Err)
	}
	return "unknown error"
}

// Unwrap returns the underlying error
func (e *UnknownError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error on a request field
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsConnectivity checks if an error is a ConnectivityError
func IsConnectivity(err error) bool {
	var connErr *ConnectivityError
	return errors.As(err, &connErr)
}

// IsServer checks if an error is a ServerError
func IsServer(err error) bool {
	var srvErr *ServerError
	return errors.As(err, &srvErr)
}

// IsDecoding checks if an error is a DecodingError
func IsDecoding(err error) bool {
	var decErr *DecodingError
	return errors.As(err, &decErr)
}

// IsCancelled checks if an error is a CancelledError
func IsCancelled(err error) bool {
	var cancErr *CancelledError
	return errors.As(err, &cancErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsRetriable reports whether the caller may reasonably retry the
// failed operation later.
func IsRetriable(err error) bool {
	if IsConnectivity(err) {
		return true
	}

	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.Retriable()
	}

	return false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
