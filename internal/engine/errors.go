package engine

import (
	"errors"
	"fmt"
)

// RuntimeError represents a request the engine could not execute.
type RuntimeError struct {
	// Code identifies the error category.
	Code RuntimeErrorCode

	// Message is a human-readable description.
	Message string

	// RunID identifies the run the request belonged to.
	RunID string

	// Err is the underlying cause, if any.
	Err error
}

// RuntimeErrorCode categorizes runtime errors.
type RuntimeErrorCode string

const (
	// ErrCodeInvalidArity indicates a gcd request with fewer than two operands.
	ErrCodeInvalidArity RuntimeErrorCode = "INVALID_ARITY"

	// ErrCodeEmptyInput indicates an encode or words request without operands.
	ErrCodeEmptyInput RuntimeErrorCode = "EMPTY_INPUT"

	// ErrCodeUnknownKind indicates a request kind the engine does not handle.
	ErrCodeUnknownKind RuntimeErrorCode = "UNKNOWN_KIND"

	// ErrCodeUnknownAlgorithm indicates an unrecognized gcd algorithm name.
	ErrCodeUnknownAlgorithm RuntimeErrorCode = "UNKNOWN_ALGORITHM"

	// ErrCodeRecordFailed indicates the record could not be identified or stored.
	ErrCodeRecordFailed RuntimeErrorCode = "RECORD_FAILED"
)

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.RunID != "" {
		msg += fmt.Sprintf(" (run=%s)", e.RunID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// CodeOf returns the RuntimeErrorCode carried by err, or "" if err is not a
// RuntimeError. Uses errors.As to handle wrapped errors.
func CodeOf(err error) RuntimeErrorCode {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

func newRuntimeError(code RuntimeErrorCode, runID, message string, cause error) *RuntimeError {
	return &RuntimeError{Code: code, Message: message, RunID: runID, Err: cause}
}
