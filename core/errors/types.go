// ABOUTME: Custom error types for the reader client core logic
// ABOUTME: Provides structured errors so callers can distinguish failure kinds

package errors

import (
	"errors"
	"fmt"
)

// CredentialError represents rejected login credentials.
// It is non-retryable: the same credentials will keep failing.
type CredentialError struct {
	Username string
}

// Error implements the error interface
func (e *CredentialError) Error() string {
	return fmt.Sprintf("invalid credentials for user %q", e.Username)
}

// ResponseFormatError represents a response body that does not match the
// service's API contract (not valid JSON, or expected markers missing).
type ResponseFormatError struct {
	Path    string
	Message string
}

// Error implements the error interface
func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("unexpected response format from %s: %s", e.Path, e.Message)
}

// RequestFailure represents a transport-level failure (connection refused,
// timeout, non-2xx status).
type RequestFailure struct {
	Path       string
	StatusCode int
	HasBody    bool
	Err        error
}

// Error implements the error interface
func (e *RequestFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed (body=%t): %v", e.Path, e.HasBody, e.Err)
	}
	return fmt.Sprintf("request to %s failed (body=%t): status %d", e.Path, e.HasBody, e.StatusCode)
}

// Unwrap exposes the underlying transport error
func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// OperationFailure represents a well-formed response that was not the expected
// success marker for a mutating call.
type OperationFailure struct {
	TargetID string
	Body     string
}

// Error implements the error interface
func (e *OperationFailure) Error() string {
	return fmt.Sprintf("operation on %s failed: got %q instead of OK", e.TargetID, e.Body)
}

// ValidationError represents invalid caller input, such as a malformed feed id
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsCredential checks if an error is a CredentialError
func IsCredential(err error) bool {
	var credErr *CredentialError
	return errors.As(err, &credErr)
}

// IsResponseFormat checks if an error is a ResponseFormatError
func IsResponseFormat(err error) bool {
	var formatErr *ResponseFormatError
	return errors.As(err, &formatErr)
}

// IsRequestFailure checks if an error is a RequestFailure
func IsRequestFailure(err error) bool {
	var reqErr *RequestFailure
	return errors.As(err, &reqErr)
}

// IsOperationFailure checks if an error is an OperationFailure
func IsOperationFailure(err error) bool {
	var opErr *OperationFailure
	return errors.As(err, &opErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
