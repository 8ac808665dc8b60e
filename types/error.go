package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the module.
type ErrorCode string

// Catalog and classification error codes
const (
	ErrNoTemplates       ErrorCode = "NO_TEMPLATES"
	ErrTemplateNotFound  ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrMalformedTemplate ErrorCode = "MALFORMED_TEMPLATE"
	ErrInvalidCatalog    ErrorCode = "INVALID_CATALOG"
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
)

// Provider error codes
const (
	ErrInvalidAPIKey       ErrorCode = "INVALID_API_KEY"
	ErrUnsupportedProvider ErrorCode = "UNSUPPORTED_PROVIDER"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Provider string    `json:"provider,omitempty"`
	Cause    error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithProvider sets the provider name.
func (e *Error) WithProvider(provider string) *Error {
	e.Provider = provider
	return e
}

// GetErrorCode extracts the error code from an error, looking through wrapped errors.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return err != nil && GetErrorCode(err) == code
}
