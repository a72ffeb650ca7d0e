package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error for HTTP mapping.
type Kind int

const (
	KindValidation Kind = iota // missing/malformed input
	KindNotFound               // referenced entity absent
	KindConflict               // uniqueness violation reported by the store
	KindAuth                   // authentication failure
	KindStore                  // any other store failure
)

// Error is the single error type crossing the service boundary.
// Every externally reachable operation converts store failures into one of
// these; nothing propagates unhandled.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *Error) Unwrap() error {
	return e.Err
}

// ============================================
// FACTORY FUNCTIONS
// ============================================

func NewValidation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NewNotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func NewConflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// NewAuth always carries the same generic message. Never attach the
// underlying cause: responses must not reveal whether the username or the
// password was wrong.
func NewAuth() *Error {
	return &Error{Kind: KindAuth, Code: "AUTH_FAILED", Message: "Invalid username or password"}
}

func NewStore(message string, err error) *Error {
	return &Error{Kind: KindStore, Code: "STORE_ERROR", Message: message, Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsConflict(err error) bool   { return is(err, KindConflict) }
func IsAuth(err error) bool       { return is(err, KindAuth) }
func IsStore(err error) bool      { return is(err, KindStore) }

// MapToHTTP converts any error into a status code, error code and message
// suitable for the response envelope. Unknown errors collapse into a
// generic 500 so store details never reach the client by accident.
func MapToHTTP(err error) (int, string, string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}

	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest, appErr.Code, appErr.Message
	case KindNotFound:
		return http.StatusNotFound, appErr.Code, appErr.Message
	case KindConflict:
		return http.StatusConflict, appErr.Code, appErr.Message
	case KindAuth:
		return http.StatusUnauthorized, appErr.Code, appErr.Message
	default:
		return http.StatusInternalServerError, appErr.Code, appErr.Message
	}
}
