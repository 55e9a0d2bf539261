// Package apperrors defines the error taxonomy shared by the lifecycle,
// payment and transport layers.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed input, rejected before any state mutation.
	KindValidation
	// KindPolicyViolation: approval attempted without satisfying the
	// payment gate; no state change.
	KindPolicyViolation
	// KindConflict: a conditional status transition lost a race; safe to
	// refresh and ignore.
	KindConflict
	KindNotFound
	// KindPublisher: listing created but link-back failed (or vice
	// versa); recorded for reconciliation, retried later.
	KindPublisher
	// KindProcessor: payment processor call failed or timed out; never
	// interpreted as success.
	KindProcessor
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) *Error {
	return newf(KindValidation, format, args...)
}

func PolicyViolationf(format string, args ...interface{}) *Error {
	return newf(KindPolicyViolation, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return newf(KindConflict, format, args...)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return newf(KindNotFound, format, args...)
}

func Publisherf(err error, format string, args ...interface{}) *Error {
	e := newf(KindPublisher, format, args...)
	e.Err = err
	return e
}

func Processorf(err error, format string, args ...interface{}) *Error {
	e := newf(KindProcessor, format, args...)
	e.Err = err
	return e
}

// KindOf extracts the taxonomy kind from any error in the chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
