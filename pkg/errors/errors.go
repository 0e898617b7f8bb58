// Package errors provides structured error handling for medallion.
//
// Every failure that aborts a run carries an ErrorType so the CLI can report
// what went wrong (provider, serializer or storage) without string matching.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType is the failure category the CLI logs as error_type
type ErrorType string

const (
	// ErrorTypeGeneration is returned when the fake entity provider cannot
	// produce a required attribute while building a record.
	ErrorTypeGeneration ErrorType = "generation"
	// ErrorTypeSerialization is returned for empty, nil-holding or
	// heterogeneous record sets and for encoder failures.
	ErrorTypeSerialization ErrorType = "serialization"
	// ErrorTypeStorage is returned when the object store rejects or cannot
	// complete a put, get or bucket creation.
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeConfig covers unreadable or invalid medallion.yaml settings,
	// MEDALLION_* overrides and backend options.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeValidation covers bad caller input such as an unknown zone,
	// format or a non-positive record count.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal is what TypeOf reports for errors from outside
	// this package.
	ErrorTypeInternal ErrorType = "internal"
)

// Error is a categorised failure. Details carry what the failure refers
// to, such as a record index or object key. Stack is where it was raised.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame is one caller recorded when an Error is raised
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error renders "type: message" followed by the cause, if any
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a value such as a record index or object key and
// returns e for chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New raises an error of the given category
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf is New with a formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap files err under errType, e.g. an S3 failure as a storage error.
// A nil err stays nil. When err already is an *Error its stack is reused
// so the frame that first failed is kept.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType reports whether the outermost *Error in err's chain has errType.
// The outer category wins when an *Error is wrapped again.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// IsGeneration reports whether err is a generation error
func IsGeneration(err error) bool { return IsType(err, ErrorTypeGeneration) }

// IsSerialization reports whether err is a serialization error
func IsSerialization(err error) bool { return IsType(err, ErrorTypeSerialization) }

// IsStorage reports whether err is a storage error
func IsStorage(err error) bool { return IsType(err, ErrorTypeStorage) }

// TypeOf returns the type of the outermost structured error, or
// ErrorTypeInternal for plain errors.
func TypeOf(err error) ErrorType {
	var e *Error
	if !errors.As(err, &e) {
		return ErrorTypeInternal
	}
	return e.Type
}

// captureStack records up to 32 callers, skipping the given number of
// frames.
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
