package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rule dispatch errors
	ErrInvalidRule     ErrorCode = "INVALID_RULE"
	ErrNotAggregable   ErrorCode = "NOT_AGGREGABLE"
	ErrUnknownOperator ErrorCode = "UNKNOWN_OPERATOR"
	ErrOutcomeType     ErrorCode = "OUTCOME_TYPE"

	// Ruleset errors
	ErrRulesetLoad    ErrorCode = "RULESET_LOAD"
	ErrRulesetParse   ErrorCode = "RULESET_PARSE"
	ErrRulesetInvalid ErrorCode = "RULESET_INVALID"
)

// VerdictError represents a structured error with code and details
type VerdictError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VerdictError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VerdictError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VerdictError) Is(target error) bool {
	var targetErr *VerdictError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VerdictError with the given code and message
func New(code ErrorCode, message string) *VerdictError {
	return &VerdictError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VerdictError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VerdictError {
	return &VerdictError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VerdictError
func Wrap(err error, code ErrorCode, message string) *VerdictError {
	if err == nil {
		return nil
	}
	return &VerdictError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VerdictError {
	if err == nil {
		return nil
	}
	return &VerdictError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VerdictError) WithDetail(key string, value interface{}) *VerdictError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var verdictErr *VerdictError
	if errors.As(err, &verdictErr) {
		return verdictErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VerdictError
func GetErrorCode(err error) ErrorCode {
	var verdictErr *VerdictError
	if errors.As(err, &verdictErr) {
		return verdictErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a VerdictError
func GetErrorDetails(err error) map[string]interface{} {
	var verdictErr *VerdictError
	if errors.As(err, &verdictErr) {
		return verdictErr.Details
	}
	return nil
}
