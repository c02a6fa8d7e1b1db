// Package apperrors holds the error taxonomy shared by command handlers and
// the HTTP surface.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindPersistence Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindAuth:
		return "auth"
	default:
		return "persistence"
	}
}

// Error carries a kind, a translatable message key and template data.
type Error struct {
	Kind   Kind
	MsgKey string
	Data   map[string]any
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.MsgKey, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.MsgKey)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msgKey string) *Error {
	return &Error{Kind: KindValidation, MsgKey: msgKey}
}

func NotFound(msgKey string, data map[string]any) *Error {
	return &Error{Kind: KindNotFound, MsgKey: msgKey, Data: data}
}

func Duplicate(msgKey string) *Error {
	return &Error{Kind: KindDuplicate, MsgKey: msgKey}
}

func Auth(msgKey string) *Error {
	return &Error{Kind: KindAuth, MsgKey: msgKey}
}

// Persistence wraps a storage failure. A nil err yields nil.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return &Error{Kind: KindPersistence, MsgKey: MsgStorageFailure, Err: err}
}

func Conflict(err error) *Error {
	return &Error{Kind: KindPersistence, MsgKey: MsgConflict, Err: err}
}

// As extracts an *Error, classifying unknown errors as storage failures.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindPersistence, MsgKey: MsgStorageFailure, Err: err}
}

func KindOf(err error) Kind {
	return As(err).Kind
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
