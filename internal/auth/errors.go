package auth

import (
	"errors"
	"fmt"
)

// ErrorCode is the stable machine-readable tag callers and clients switch on.
type ErrorCode string

const (
	CodeUserNotFound            ErrorCode = "USER_NOT_FOUND"
	CodeUserAlreadyExists       ErrorCode = "USER_ALREADY_EXISTS"
	CodeUserInactive            ErrorCode = "USER_INACTIVE"
	CodeInvalidPassword         ErrorCode = "INVALID_PASSWORD"
	CodeTokenExpired            ErrorCode = "TOKEN_EXPIRED"
	CodeInvalidToken            ErrorCode = "INVALID_TOKEN"
	CodeTokenVerificationFailed ErrorCode = "TOKEN_VERIFICATION_FAILED"
)

// AuthError is an authentication or authorization rejection. It always maps
// to a 401 at the boundary, with Code exposed in the response body.
type AuthError struct {
	Code    ErrorCode
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func NewAuthError(code ErrorCode, message string) *AuthError {
	return &AuthError{Code: code, Message: message}
}

// AsAuthError unwraps err into an *AuthError when it carries one.
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// DatabaseError marks an unexpected storage failure. The wrapped error is for
// logs only; clients see an opaque 500.
type DatabaseError struct {
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("database error %s: %v", e.Message, e.Err)
	}
	return "database error " + e.Message
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewDatabaseError(message string, err error) *DatabaseError {
	return &DatabaseError{Message: message, Err: err}
}

// ValidationError reports a rejected input field. Maps to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
