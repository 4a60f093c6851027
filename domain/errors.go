package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across the command layers.
type ErrorCode string

const (
	ErrCodeInvalidNumber   ErrorCode = "INVALID_NUMBER"
	ErrCodeInvalidIndex    ErrorCode = "INVALID_INDEX"
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeUnknownCommand  ErrorCode = "UNKNOWN_COMMAND"
	ErrCodeIOFailure       ErrorCode = "IO_FAILURE"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrInvalidIndex   = NewError(ErrCodeInvalidIndex, "Invalid task number.")
	ErrUnknownCommand = NewError(ErrCodeUnknownCommand, "Unknown command.")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
