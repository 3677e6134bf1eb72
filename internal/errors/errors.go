// Package errors defines the typed error taxonomy for the analysis pipeline.
// Fatal failures (unreadable source, schema mismatch, empty result) are
// surfaced as AppError values; row-level problems are never errors and are
// reported through the cleaner's quality report instead.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// ErrTypeSource means the input could not be opened or read. Fatal.
	ErrTypeSource ErrorType = "SOURCE_UNAVAILABLE"
	// ErrTypeSchema means required columns are absent from the input. Fatal.
	ErrTypeSchema ErrorType = "SCHEMA_MISMATCH"
	// ErrTypeEmpty means cleaning left zero usable rows. Fatal.
	ErrTypeEmpty ErrorType = "EMPTY_RESULT"
	// ErrTypeParsing covers non-row-level parse failures, e.g. an
	// unreadable workbook sheet.
	ErrTypeParsing ErrorType = "PARSING"
	// ErrTypeStorage covers failures writing reports or charts.
	ErrTypeStorage ErrorType = "STORAGE"
	// ErrTypeValidation covers invalid input arguments.
	ErrTypeValidation ErrorType = "VALIDATION"
	// ErrTypeConfig covers configuration loading failures.
	ErrTypeConfig ErrorType = "CONFIG"
)

// AppError is an application error with a type, an operator-facing message
// and optional structured context (file, column, ...) so the user can fix
// the input.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair to the error and returns it.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// NewSourceError creates a source-unavailable error for the given file.
func NewSourceError(file string, cause error) *AppError {
	return NewAppError(ErrTypeSource, fmt.Sprintf("cannot read input %s", file), cause).
		WithContext("file", file)
}

// NewSchemaError creates a schema-mismatch error naming the missing columns.
func NewSchemaError(file string, missing []string) *AppError {
	return NewAppError(ErrTypeSchema, fmt.Sprintf("input %s is missing required columns", file), nil).
		WithContext("file", file).
		WithContext("missing_columns", missing)
}

// NewEmptyResultError signals that cleaning left no usable rows.
func NewEmptyResultError(file string) *AppError {
	return NewAppError(ErrTypeEmpty, "no usable rows remain after cleaning", nil).
		WithContext("file", file)
}

// NewParsingError creates a parsing-related error.
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error.
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
