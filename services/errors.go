package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so handlers can pick a status code
// without inspecting message text.
type Kind int

const (
	KindStorage Kind = iota
	KindNotFound
	KindConflict
	KindCycle
	KindValidation
)

// Error is a typed service failure. Every operation on CategoryService and
// OrderService returns either a result or exactly one of these.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the kind of a service error, or KindStorage for anything
// else (an uninterpreted persistence failure).
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStorage
}

func notFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func cycle(format string, args ...interface{}) error {
	return &Error{Kind: KindCycle, Message: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func storage(err error) error {
	return &Error{Kind: KindStorage, Message: err.Error()}
}
