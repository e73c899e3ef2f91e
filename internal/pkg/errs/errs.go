package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures across the application.
// Concrete error types below wrap these sentinels, so callers can use
// errors.Is to branch on the error family without inspecting details.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrStateIsInvalid    = errors.New("state is invalid")
	ErrConflict          = errors.New("conflict")
)

// sanitize strips newlines from values before they are embedded in error
// messages, keeping log lines on a single line.
func sanitize(value string) string {
	return strings.ReplaceAll(value, "\n", " ")
}

// ObjectNotFoundError indicates that an object with the given ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	id := sanitize(fmt.Sprintf("%s", e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, id, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, id)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a parameter holds a value that fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	message := fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value lies outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	message := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required parameter is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	message := fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StateIsInvalidError indicates that an operation is not allowed in the
// object's current lifecycle state. Handlers map this family to HTTP 409.
type StateIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewStateIsInvalidError creates a StateIsInvalidError for the given parameter.
func NewStateIsInvalidError(paramName string) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
	}
}

// NewStateIsInvalidErrorWithCause creates a StateIsInvalidError with an underlying cause.
func NewStateIsInvalidErrorWithCause(paramName string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	message := fmt.Sprintf("%s: %s", ErrStateIsInvalid, e.ParamName)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", message, e.Cause)
	}
	return message
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ConflictError indicates that an object is already held or claimed by a
// competing operation, such as an order that is part of another session.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the given parameter and ID.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewConflictErrorWithCause creates a ConflictError with an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ConflictError) Error() string {
	id := sanitize(fmt.Sprintf("%s", e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrConflict, e.ParamName, id, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, id)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
