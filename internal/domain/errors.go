package domain

import (
	"errors"
	"fmt"
)

// ValidationError carries a single field-level rule violation.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// PersistenceKind classifies failures of the storage surface.
type PersistenceKind string

const (
	PersistenceUnavailable PersistenceKind = "unavailable"
	PersistenceWriteFailed PersistenceKind = "write_failed"
	PersistenceCorrupt     PersistenceKind = "corrupt_data"
)

// PersistenceError wraps a storage failure. Corrupt data is self-healed by
// the repository and normally never reaches a caller; the other kinds are
// surfaced as operation failures with prior state untouched.
type PersistenceError struct {
	Kind PersistenceKind
	Msg  string
	Err  error
}

func (e PersistenceError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "persistence failure"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", msg, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s)", msg, e.Kind)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

// PersistenceKindOf returns the kind of a wrapped PersistenceError, or "".
func PersistenceKindOf(err error) PersistenceKind {
	var target PersistenceError
	if errors.As(err, &target) {
		return target.Kind
	}
	return ""
}
