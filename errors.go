// Package cameto structured error types and precondition assertions
package cameto

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors
	ErrTypeInvalidArg ErrorType = iota
	// Timing series too short for the requested analysis
	ErrTypeInsufficientData
	// Report or plot output errors
	ErrTypeIO
)

// ProbeError represents a structured error with context
type ProbeError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cameto %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("cameto %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *ProbeError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeInsufficientData:
		return "InsufficientData"
	case ErrTypeIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &ProbeError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewInsufficientDataError creates an error for a series too short to analyze
func NewInsufficientDataError(op string, message string) error {
	return &ProbeError{
		Type:    ErrTypeInsufficientData,
		Op:      op,
		Message: message,
	}
}

// NewIOError creates an output error
func NewIOError(op string, message string, err error) error {
	return &ProbeError{
		Type:    ErrTypeIO,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*ProbeError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsInsufficientDataError checks if an error is an insufficient data error
func IsInsufficientDataError(err error) bool {
	if e, ok := err.(*ProbeError); ok {
		return e.Type == ErrTypeInsufficientData
	}
	return false
}

// IsIOError checks if an error is an output error
func IsIOError(err error) bool {
	if e, ok := err.(*ProbeError); ok {
		return e.Type == ErrTypeIO
	}
	return false
}

// Precondition violations are programmer errors, not runtime conditions:
// they abort instead of returning a value-based error.

func assertPositive(op, name string, v int) {
	if v <= 0 {
		panicf("%s: %s must be positive, got %d", op, name, v)
	}
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
