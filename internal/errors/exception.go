package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindAuth         Kind = "auth"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInvalidState Kind = "invalid_state"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

var statusByKind = map[Kind]int{
	KindValidation:   http.StatusBadRequest,
	KindAuth:         http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindInvalidState: http.StatusUnprocessableEntity,
	KindRateLimited:  http.StatusTooManyRequests,
	KindInternal:     http.StatusInternalServerError,
}

// Exception is an expected, user-facing failure. Anything that is not an
// Exception is treated as an internal error.
type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
	Details    []string
}

func (e *Exception) Error() string {
	return e.Message
}

func New(kind Kind, message string, details ...string) *Exception {
	return &Exception{
		Kind:       kind,
		Message:    message,
		StatusCode: statusByKind[kind],
		Details:    details,
	}
}

func Validation(message string, details ...string) *Exception {
	return New(KindValidation, message, details...)
}

func Unauthorized(message string) *Exception {
	return New(KindAuth, message)
}

func Forbidden(message string) *Exception {
	return New(KindForbidden, message)
}

func NotFound(message string) *Exception {
	return New(KindNotFound, message)
}

func Conflict(message string) *Exception {
	return New(KindConflict, message)
}

func InvalidState(message string) *Exception {
	return New(KindInvalidState, message)
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf returns KindInternal for errors that are not an Exception.
func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
