package errors

import (
	"errors"
	"fmt"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// ValidationError means the request itself is malformed: missing, oversized or forbidden fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

// NotFoundError is returned when an id does not resolve inside its collection.
type NotFoundError struct {
	Resource string
	Id       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.Id)
}

// ConflictError means the operation would break a state invariant
// (duplicate name, closed board, unfinished tasks).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps failures to read, decode or write a persisted collection.
type StorageError struct {
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error on collection %q: %v", e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// DanglingReferenceError is returned when a stored record points at an id
// that has no matching record in the referenced collection.
type DanglingReferenceError struct {
	Resource string
	Id       int64
	From     string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s references unknown %s %d", e.From, e.Resource, e.Id)
}

// ErrCorruptData marks a persisted document that can't be decoded.
var ErrCorruptData = errors.New("corrupt data")

// Is reports whether err (or anything it wraps) is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
