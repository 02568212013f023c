package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeTransport  = "TRANSPORT_ERROR"
	ErrCodeAuth       = "AUTH_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeDecode     = "DECODE_ERROR"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeConflict   = "SESSION_CHANGED"
)

// AppError is the single error type surfaced by the transport, gateways and services.
type AppError struct {
	Code    string // Error code (e.g., "AUTH_ERROR", "NOT_FOUND")
	Message string // Human-readable error message
	Status  int    // Upstream HTTP status; 0 when no response was received
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewTransportError reports a network failure (status 0) or an unexpected upstream status.
func NewTransportError(status int, message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// NewAuthError reports a 401/403 or a missing/expired credential. Callers must clear the session.
func NewAuthError(status int, message string) *AppError {
	return &AppError{
		Code:    ErrCodeAuth,
		Message: message,
		Status:  status,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewDecodeError reports a response body that does not match the expected schema.
func NewDecodeError(what string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("malformed %s payload", what),
		Err:     err,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewSessionChangedError reports a reply that belongs to a session which was replaced
// or cleared while the request was in flight. It is not an auth failure: the current
// session stays as it is.
func NewSessionChangedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

func IsTransport(err error) bool  { return hasCode(err, ErrCodeTransport) }
func IsAuth(err error) bool       { return hasCode(err, ErrCodeAuth) }
func IsNotFound(err error) bool   { return hasCode(err, ErrCodeNotFound) }
func IsDecode(err error) bool     { return hasCode(err, ErrCodeDecode) }
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }
func IsConflict(err error) bool   { return hasCode(err, ErrCodeConflict) }

// HTTPStatus maps an error to the status the BFF answers with.
func HTTPStatus(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case ErrCodeAuth:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeDecode, ErrCodeTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
