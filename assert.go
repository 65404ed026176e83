// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sync/atomic"
)

// Assertions report programmer errors: invoking an empty callable, reading
// the value of a failed Result, dereferencing an empty Owner. They are never
// used for expected runtime conditions; those travel through Result.

// FailureBehavior tells ReportFailure's caller what to do after a handler ran.
type FailureBehavior uint8

const (
	// Halt stops the offending goroutine with a panic carrying *AssertionError.
	Halt FailureBehavior = iota
	// Continue returns to the caller as if the assertion had held.
	Continue
)

// String returns the name of the behavior.
func (b FailureBehavior) String() string {
	switch b {
	case Halt:
		return "Halt"
	case Continue:
		return "Continue"
	default:
		return fmt.Sprintf("FailureBehavior(%d)", uint8(b))
	}
}

// AssertHandler receives every failed assertion.
// condition is the source text of the checked expression, msg is optional.
type AssertHandler func(condition, msg, file string, line int) FailureBehavior

// AssertionError is the panic value raised when a handler returns Halt.
type AssertionError struct {
	Condition string
	Msg       string
	File      string
	Line      int
}

func (e *AssertionError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s(%d): Assert Failure: '%s'", e.File, e.Line, e.Condition)
	}
	return fmt.Sprintf("%s(%d): Assert Failure: '%s' %s", e.File, e.Line, e.Condition, e.Msg)
}

var (
	assertLog     = log.New(os.Stderr, "", 0)
	assertHandler atomic.Pointer[AssertHandler]
)

func init() {
	h := AssertHandler(DefaultAssertHandler)
	assertHandler.Store(&h)
}

// DefaultAssertHandler writes the failure to the assertion log and halts.
func DefaultAssertHandler(condition, msg, file string, line int) FailureBehavior {
	assertLog.Printf("%s(%d): Assert Failure: '%s' %s", file, line, condition, msg)
	return Halt
}

// SetAssertOutput redirects the default handler's output. Passing nil
// restores stderr.
func SetAssertOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	assertLog.SetOutput(w)
}

// SetAssertHandler installs h for all subsequent assertion failures and
// returns the previous handler so callers can chain or restore it.
func SetAssertHandler(h AssertHandler) AssertHandler {
	if h == nil {
		assertFailed("h != nil", "nil assert handler", 2)
		return CurrentAssertHandler()
	}
	prev := assertHandler.Swap(&h)
	return *prev
}

// CurrentAssertHandler returns the installed handler.
func CurrentAssertHandler() AssertHandler {
	return *assertHandler.Load()
}

// ReportFailure forwards a failed assertion to the installed handler.
func ReportFailure(condition, file string, line int, msg string) FailureBehavior {
	return CurrentAssertHandler()(condition, msg, file, line)
}

// Assert checks cond; condition is the expression text shown on failure.
func Assert(cond bool, condition string) {
	if !cond {
		assertFailed(condition, "", 2)
	}
}

// AssertMsg is Assert with an additional message.
func AssertMsg(cond bool, condition, msg string) {
	if !cond {
		assertFailed(condition, msg, 2)
	}
}

// assertFailed reports a failure attributed to the frame skip levels up.
func assertFailed(condition, msg string, skip int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}
	if ReportFailure(condition, file, line, msg) == Halt {
		panic(&AssertionError{Condition: condition, Msg: msg, File: file, Line: line})
	}
}
