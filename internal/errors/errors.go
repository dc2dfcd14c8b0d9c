package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrConfig       ErrorType = "CONFIG_ERROR"
	ErrAuthFlow     ErrorType = "AUTH_FLOW"
	ErrUnauthorized ErrorType = "UNAUTHORIZED"
	ErrNotFound     ErrorType = "NOT_FOUND"
	ErrUpstream     ErrorType = "UPSTREAM"
	ErrInvalidInput ErrorType = "INVALID_INPUT"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return isType(err, ErrNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return isType(err, ErrUnauthorized)
}

// IsConfig checks if the error is a configuration error
func IsConfig(err error) bool {
	return isType(err, ErrConfig)
}

// IsAuthFlow checks if the error is a login-flow error
func IsAuthFlow(err error) bool {
	return isType(err, ErrAuthFlow)
}

// NewConfigError creates a new configuration error
func NewConfigError(message string, err error) *AppError {
	return New(ErrConfig, message, err)
}

// NewAuthFlowError creates a new login-flow error. It is fatal to the
// current login attempt only; no session is created or altered.
func NewAuthFlowError(message string, err error) *AppError {
	return New(ErrAuthFlow, message, err)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, err error) *AppError {
	return New(ErrUnauthorized, message, err)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, err error) *AppError {
	return New(ErrNotFound, message, err)
}

// NewUpstreamError creates a new upstream error
func NewUpstreamError(message string, err error) *AppError {
	return New(ErrUpstream, message, err)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}
