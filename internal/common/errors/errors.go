// Package errors provides standardized error handling for the session and
// gateway layers.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Transport / HTTP
	ErrCodeRequestBuildFailed ErrorCode = "HTTP_REQUEST_ERROR"
	ErrCodeNetworkError       ErrorCode = "NETWORK_ERROR"
	ErrCodeGatewayStatus      ErrorCode = "GATEWAY_API_ERROR"
	ErrCodeDeserialization    ErrorCode = "DESERIALIZATION_ERROR"
	ErrCodeSerialization      ErrorCode = "SERIALIZATION_ERROR"
	ErrCodePayloadInvalid     ErrorCode = "PAYLOAD_INVALID"

	// Authentication
	ErrCodeLoginFailed       ErrorCode = "LOGIN_FAILED"
	ErrCodeRegisterFailed    ErrorCode = "REGISTRATION_FAILED"
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	ErrCodeUnauthenticated   ErrorCode = "UNAUTHENTICATED"

	// Session / screening
	ErrCodeCredentialStore ErrorCode = "CREDENTIAL_STORE_ERROR"
	ErrCodeChatSendFailed  ErrorCode = "CHAT_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// CodeOf extracts the ErrorCode from any error, or empty when the error is
// not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsUnauthenticated reports whether err signals a missing or rejected
// credential.
func IsUnauthenticated(err error) bool {
	return CodeOf(err) == ErrCodeUnauthenticated
}

// IsAlreadyRegistered reports whether err signals a duplicate registration.
func IsAlreadyRegistered(err error) bool {
	return CodeOf(err) == ErrCodeAlreadyRegistered
}

// NewRequestBuildFailedError wraps a failure constructing an HTTP request.
func NewRequestBuildFailedError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestBuildFailed,
		Message:   "Failed to create HTTP request",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetworkError,
		Message:   "Failed to reach the TalentReq backend",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGatewayStatusError wraps a non-2xx backend response. The body is kept
// verbatim in Details so callers can surface it unchanged.
func NewGatewayStatusError(op string, status int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGatewayStatus,
		Message:   fmt.Sprintf("Backend returned status %d", status),
		Details:   body,
		Retryable: isTransientHTTPStatus(status),
		Metadata:  map[string]interface{}{"op": op, "status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewDeserializationError wraps a response decode failure.
func NewDeserializationError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeserialization,
		Message:   "Failed to decode backend response",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSerializationError wraps a request encode failure.
func NewSerializationError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSerialization,
		Message:   "Failed to serialize request payload",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadInvalidError reports a backend payload that failed schema
// validation at the gateway boundary.
func NewPayloadInvalidError(op string, violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadInvalid,
		Message:   "Backend payload failed schema validation",
		Details:   fmt.Sprintf("op: %s, violations: %v", op, violations),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLoginFailedError carries the backend-supplied message when one exists,
// else the generic fallback.
func NewLoginFailedError(backendMessage string) *StandardError {
	msg := backendMessage
	if msg == "" {
		msg = "Invalid credentials"
	}
	return &StandardError{
		Code:      ErrCodeLoginFailed,
		Message:   msg,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegisterFailedError creates a generic registration failure.
func NewRegisterFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegisterFailed,
		Message:   "Registration failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyRegisteredError reports a duplicate account.
func NewAlreadyRegisteredError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlreadyRegistered,
		Message:   "Account already registered",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthenticatedError reports a missing access token before an
// authorized operation.
func NewUnauthenticatedError(op string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthenticated,
		Message:   "No access token stored; sign in first",
		Details:   fmt.Sprintf("op: %s", op),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCredentialStoreError wraps a keychain or user-record persistence failure.
func NewCredentialStoreError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCredentialStore,
		Message:   "Credential store operation failed",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewChatSendFailedError wraps a chat backend failure.
func NewChatSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatSendFailed,
		Message:   "Failed to send chat message",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// isTransientHTTPStatus returns true if the status code indicates a
// potentially transient error.
func isTransientHTTPStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
