// Package verify provides precondition assertions with call-site reporting.
//
// A failed verification is a programming error, not a recoverable
// condition: it panics with an *Error carrying the caller's file, line
// and function. The containers in this module use verify for every
// documented precondition (index bounds, lifecycle misuse, alignment).
package verify

import (
	"fmt"
	"runtime"
)

// Error is the panic value raised by a failed verification.
type Error struct {
	Msg      string
	File     string
	Line     int
	Function string
}

func (e *Error) Error() string {
	return fmt.Sprintf("verification failed: %s\n  File: %s:%d\n  Function: %s",
		e.Msg, e.File, e.Line, e.Function)
}

// Verify panics with an *Error if cond is false.
func Verify(cond bool, msg string) {
	if cond {
		return
	}
	panic(newError(msg))
}

// Verifyf panics with an *Error if cond is false, formatting the message
// with fmt.Sprintf. The arguments are not evaluated into a string unless
// the verification fails.
func Verifyf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(newError(fmt.Sprintf(format, args...)))
}

// newError captures the verify caller's call site. Skip 2 frames:
// newError and Verify/Verifyf.
func newError(msg string) *Error {
	e := &Error{Msg: msg}
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return e
	}
	e.File = file
	e.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.Function = fn.Name()
	}
	return e
}
