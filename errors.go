// ABOUTME: Error classification helpers re-exported for library consumers
// ABOUTME: Lets callers branch on failure kinds without importing core packages

package greader

import (
	coreerrors "greader-client/core/errors"
)

// Error types callers may inspect with errors.As.
type (
	// CredentialError means the service rejected the configured credentials.
	CredentialError = coreerrors.CredentialError

	// ResponseFormatError means a response could not be parsed as expected.
	ResponseFormatError = coreerrors.ResponseFormatError

	// RequestFailure means a request could not be completed or came back
	// with a non-success status.
	RequestFailure = coreerrors.RequestFailure

	// OperationFailure means a mutation was delivered but not confirmed.
	OperationFailure = coreerrors.OperationFailure

	// ValidationError means an input was rejected before any request.
	ValidationError = coreerrors.ValidationError
)

// IsCredentialError reports whether err is a credential rejection.
func IsCredentialError(err error) bool { return coreerrors.IsCredential(err) }

// IsResponseFormatError reports whether err is a malformed-response failure.
func IsResponseFormatError(err error) bool { return coreerrors.IsResponseFormat(err) }

// IsRequestFailure reports whether err is a transport or status failure.
func IsRequestFailure(err error) bool { return coreerrors.IsRequestFailure(err) }

// IsOperationFailure reports whether err is an unconfirmed mutation.
func IsOperationFailure(err error) bool { return coreerrors.IsOperationFailure(err) }

// IsValidationError reports whether err is an input validation failure.
func IsValidationError(err error) bool { return coreerrors.IsValidation(err) }
