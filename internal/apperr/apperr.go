package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can decide whether to correct
// input, retry, re-authenticate, or stop.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindPersistence Kind = "persistence"
	KindConflict    Kind = "conflict"
	KindAuth        Kind = "auth"
	KindNotFound    Kind = "not_found"
)

// Error is a structured failure carrying a kind, a human-readable
// message, and the offending field where determinable.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed input field.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Persistence reports a store failure. The wrapped error is kept for
// logging but never shown to the caller.
func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// Conflict reports a uniqueness or state conflict.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Auth reports a missing authenticated principal.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NotFound reports an absent referenced id.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf returns the kind of err, or KindPersistence for errors that
// did not originate from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// FieldOf returns the offending field of err, if any.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
