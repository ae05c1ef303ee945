package icu

import (
	"errors"
	"fmt"
)

// ErrNotInstalled reports that the shared objects for a version are not
// present. Callers probing a version range treat it as a quiet skip.
var ErrNotInstalled = errors.New("icu library not installed")

// UErrorCode values the binding needs by value. Everything else is
// rendered through u_errorName.
const (
	uZeroError           int32 = 0
	uBufferOverflowError int32 = 15
)

// Error is a failed ICU call. Code is the raw UErrorCode; Name is its
// symbolic form as reported by the library itself.
type Error struct {
	Op   string
	Code int32
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("icu: %s: %s (%d)", e.Op, e.Name, e.Code)
}

// statusErr converts a UErrorCode into an error. Warnings (negative
// codes) and U_ZERO_ERROR are success.
func (l *Library) statusErr(op string, code int32) error {
	if code <= uZeroError {
		return nil
	}
	return &Error{Op: op, Code: code, Name: l.fn.errorName(code)}
}
