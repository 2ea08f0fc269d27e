package domain

import (
	"fmt"
)

// ErrorCode classifies a domain error for transport mapping.
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalogue specific errors
	CodeGrammarNotFound ErrorCode = "GRAMMAR_POINT_NOT_FOUND"
	CodeNoQuizData      ErrorCode = "NO_QUIZ_DATA"
	CodeStorageError    ErrorCode = "STORAGE_ERROR"
)

// DomainError is the error type services return across the HTTP
// boundary. Context carries optional key/value detail that is safe
// to expose to clients.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail entry and returns the error for chaining.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError.
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewStorageError wraps a failure of the storage backend.
func NewStorageError(message string, cause error) *DomainError {
	return NewError(CodeStorageError, message, cause)
}

// NewGrammarPointNotFoundError is returned when a grammar point lookup
// by id finds nothing. The message is the one the client app displays.
func NewGrammarPointNotFoundError(id string) *DomainError {
	return NewError(CodeGrammarNotFound, "Punto gramatical no encontrado", nil).
		WithContext("id", id)
}

// NewNoQuizDataError is returned when quiz generation has no grammar
// points to draw from.
func NewNoQuizDataError(levelCode string) *DomainError {
	msg := "No grammar points available for quiz generation"
	if levelCode != "" {
		msg = fmt.Sprintf("No grammar points available for level %s", levelCode)
	}
	return NewError(CodeNoQuizData, msg, nil).WithContext("level_code", levelCode)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field errors so a request can report all
// of its problems at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s (and %d more)", e[0].Error(), len(e)-1)
}

// NewValidationError creates a DomainError for a request that failed
// validation as a whole.
func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, value),
	}
}
