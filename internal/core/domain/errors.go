package domain

import (
	"errors"
	"fmt"
)

// ErrorKind names the class of a typed error raised to the host.
type ErrorKind string

const (
	KindIOError       ErrorKind = "IOError"
	KindEOFError      ErrorKind = "EOFError"
	KindArgumentError ErrorKind = "ArgumentError"
	KindTypeError     ErrorKind = "TypeError"
	KindRuntimeError  ErrorKind = "RuntimeError"
	KindNoMethodError ErrorKind = "NoMethodError"
)

// parent returns the kind this kind specializes, if any.
func (k ErrorKind) parent() ErrorKind {
	if k == KindEOFError {
		return KindIOError
	}
	return ""
}

// IsA reports whether k is target or one of its specializations.
func (k ErrorKind) IsA(target ErrorKind) bool {
	for kind := k; kind != ""; kind = kind.parent() {
		if kind == target {
			return true
		}
	}
	return false
}

func ParseErrorKind(name string) (ErrorKind, error) {
	switch kind := ErrorKind(name); kind {
	case KindIOError, KindEOFError, KindArgumentError, KindTypeError, KindRuntimeError, KindNoMethodError:
		return kind, nil
	}
	return "", fmt.Errorf("unknown error kind '%s'", name)
}

// Error is a typed error surfaced to the host environment.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error whose kind is the same as, or a parent of, e's kind.
// A target with an empty message matches on kind alone.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if !e.Kind.IsA(t.Kind) {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// Kind-only targets for errors.Is.
var (
	ErrIOError       = &Error{Kind: KindIOError}
	ErrEOFError      = &Error{Kind: KindEOFError}
	ErrArgumentError = &Error{Kind: KindArgumentError}
	ErrTypeError     = &Error{Kind: KindTypeError}
	ErrRuntimeError  = &Error{Kind: KindRuntimeError}
	ErrNoMethodError = &Error{Kind: KindNoMethodError}
)

// Errors raised by stream handles.
var (
	ErrClosedStream           = NewIOError("closed stream")
	ErrNotOpenedForWriting    = NewIOError("not opened for writing")
	ErrNotOpenedForReading    = NewIOError("not opened for reading")
	ErrEndOfFile              = &Error{Kind: KindEOFError, Message: "end of file reached"}
	ErrReinitializeFile       = &Error{Kind: KindRuntimeError, Message: "reinitializing File"}
	ErrReinitializeClosedFile = &Error{Kind: KindRuntimeError, Message: "reinitializing closed File"}
)

func NewIOError(message string) *Error {
	return &Error{Kind: KindIOError, Message: message}
}

func NewArgumentError(format string, args ...any) *Error {
	return &Error{Kind: KindArgumentError, Message: fmt.Sprintf(format, args...)}
}

func NewTypeError(format string, args ...any) *Error {
	return &Error{Kind: KindTypeError, Message: fmt.Sprintf(format, args...)}
}

func NewNoMethodError(format string, args ...any) *Error {
	return &Error{Kind: KindNoMethodError, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
