package dotenv

import (
	"fmt"
	"strings"
)

// InputError reports a contract violation in the arguments passed to an
// entry point (nil schema, unusable options) rather than a problem with the
// content being processed.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Message
}

// NewInputError creates a new InputError with a formatted message
func NewInputError(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// CircularReferenceError is returned when variable expansion revisits a name
// that is already being expanded. Chain holds the full reference path, from
// the first name visited to the repeated one.
type CircularReferenceError struct {
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular variable reference: %s", strings.Join(e.Chain, " -> "))
}

// DepthExceededError is returned when variable expansion recurses past the
// fixed depth limit.
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("variable expansion exceeded maximum depth of %d", e.Limit)
}

// RequiredMissingError records a required variable that is absent from the
// environment or present with an empty value.
type RequiredMissingError struct {
	Key string
}

func (e *RequiredMissingError) Error() string {
	return fmt.Sprintf("required variable %q is missing or empty", e.Key)
}

// TypeConversionError records a value that could not be coerced to its
// declared type. Key is empty when the error comes from a bare Convert call
// rather than schema validation.
type TypeConversionError struct {
	Key    string
	Raw    string
	Type   string
	Reason string
}

func (e *TypeConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %q to %s", e.Raw, e.Type)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Key != "" {
		return fmt.Sprintf("variable %q: %s", e.Key, msg)
	}
	return msg
}

// UnsupportedTypeError records a schema entry whose declared type is not one
// of the supported type names.
type UnsupportedTypeError struct {
	Key  string
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("unsupported type %q (valid types: %s)", e.Type, strings.Join(SupportedTypes, ", "))
	if e.Key != "" {
		return fmt.Sprintf("variable %q: %s", e.Key, msg)
	}
	return msg
}

// ValidationError aggregates every violation found during a single Validate
// call. Validation is fail-slow: all required-key and conversion problems
// are collected before the error is returned, so callers see the complete
// problem set at once.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		messages = append(messages, violation.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}

// Unwrap exposes the individual violations to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Violations
}
