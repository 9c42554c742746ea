package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Each error kind below wraps exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrInvalidState      = errors.New("invalid state for operation")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrVersionConflict   = errors.New("version conflict")
)

// sanitize removes line breaks from values before they are interpolated
// into error messages.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that a referenced entity is absent.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	value := sanitize(fmt.Sprintf("%v", e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, value, e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, value, e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that a version value could not be parsed or validated.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidStateError indicates that an operation was attempted against an entity
// whose current status does not permit it. Mutating operations return this
// before touching any state.
type InvalidStateError struct {
	Entity    string
	Operation string
	Current   string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for the given entity, operation and current status.
func NewInvalidStateError(entity, operation, current string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Operation: operation, Current: current}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(entity, operation, current string, cause error) *InvalidStateError {
	return &InvalidStateError{Entity: entity, Operation: operation, Current: current, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s on %s in status %s (cause: %s)",
			ErrInvalidState, e.Operation, e.Entity, e.Current, e.Cause)
	}
	return fmt.Sprintf("%s: %s on %s in status %s", ErrInvalidState, e.Operation, e.Entity, e.Current)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// UnauthorizedError indicates a role or assignment mismatch for the attempted operation.
type UnauthorizedError struct {
	Role      string
	Operation string
	Cause     error
}

// NewUnauthorizedError creates an UnauthorizedError for the given role and operation.
func NewUnauthorizedError(role, operation string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Operation: operation}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(role, operation string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Operation: operation, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s may not %s (cause: %s)", ErrUnauthorized, e.Role, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Role, e.Operation)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// VersionConflictError indicates a lost-update race detected by an optimistic
// version check. Callers are expected to re-read current state and retry;
// the conflict is never resolved by last-write-wins.
type VersionConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewVersionConflictError creates a VersionConflictError for the given parameter and identifier.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping an underlying cause.
func NewVersionConflictErrorWithCause(paramName string, id any, cause error) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *VersionConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrVersionConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionConflict, e.ID)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
