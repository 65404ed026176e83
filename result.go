// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

import (
	"errors"
	"fmt"
)

// Code discriminates the two states of a Result.
type Code uint8

const (
	// Failure is the zero Code: a zero or moved-from Result has failed.
	Failure Code = iota
	// Success means the Result holds a valid value.
	Success
)

// String returns "Success" or "Failure".
func (c Code) String() string {
	switch c {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// Unit is the payload of results that carry no value.
type Unit = struct{}

// Status is the result of an operation that only succeeds or fails.
type Status = Result[Unit]

// ErrFailure is matched by every *Error through errors.Is.
var ErrFailure = errors.New("rsbl: failure")

// Error is the Go error view of a failed Result.
type Error struct {
	Text  string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case e.Text != "":
		return e.Text
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return ErrFailure.Error()
	}
}

// Unwrap returns the cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is ErrFailure.
func (e *Error) Is(target error) bool { return target == ErrFailure }

// Result is either a success holding a V or a failure holding a message.
//
// The failure message belongs to the Result that failed. A Result carries
// its own text, so interleaved failures never overwrite each other.
//
// The zero Result is a failure without text, which is also the state a
// Result is left in after Take or MoveFrom.
type Result[V any] struct {
	code  Code
	value V
	text  string
	cause error
}

// Ok creates a successful Result holding v.
func Ok[V any](v V) Result[V] {
	return Result[V]{code: Success, value: v}
}

// FromCode creates a Result from a bare code.
// Success holds the zero V; Failure holds no value and no text.
func FromCode[V any](c Code) Result[V] {
	return Result[V]{code: c}
}

// Fail creates a failed Result described by text.
func Fail[V any](text string) Result[V] {
	return Result[V]{text: text}
}

// Failf creates a failed Result with a formatted description.
func Failf[V any](format string, args ...any) Result[V] {
	return Result[V]{text: fmt.Sprintf(format, args...)}
}

// FailWith creates a failed Result described by text with cause as its
// underlying error, so callers can match the failure with errors.Is.
func FailWith[V any](text string, cause error) Result[V] {
	return Result[V]{text: text, cause: cause}
}

// FromError creates a failed Result caused by err.
// A nil err yields success with the zero V.
func FromError[V any](err error) Result[V] {
	if err == nil {
		return Result[V]{code: Success}
	}
	return Result[V]{text: err.Error(), cause: err}
}

// FromTuple converts a Go (value, error) pair to a Result.
func FromTuple[V any](v V, err error) Result[V] {
	if err != nil {
		return FromError[V](err)
	}
	return Ok(v)
}

// Done returns a successful Status.
func Done() Status {
	return Status{code: Success}
}

// Failed returns a failed Status described by text.
func Failed(text string) Status {
	return Status{text: text}
}

// Propagate re-types a failed Result, keeping its text and cause.
// Passing a successful Result is a programmer error.
func Propagate[V, W any](r Result[W]) Result[V] {
	if r.code == Success {
		assertFailed("r.Code() == Failure", "Propagate called on successful Result", 2)
		return Result[V]{text: "rsbl: propagated success"}
	}
	return Result[V]{text: r.text, cause: r.cause}
}

// Code returns the state of the Result without side effects.
func (r Result[V]) Code() Code { return r.code }

// IsOk reports whether the Result holds a value.
func (r Result[V]) IsOk() bool { return r.code == Success }

// IsFailure reports whether the Result failed.
func (r Result[V]) IsFailure() bool { return r.code != Success }

// Value returns the held value.
// Calling Value on a failed Result is a programmer error and is asserted.
func (r Result[V]) Value() V {
	if r.code != Success {
		assertFailed("r.Code() == Success", "Value called on failed Result", 2)
	}
	return r.value
}

// ValuePtr returns the address of the held value for in-place mutation.
// The same precondition as Value applies.
func (r *Result[V]) ValuePtr() *V {
	if r.code != Success {
		assertFailed("r.Code() == Success", "ValuePtr called on failed Result", 2)
	}
	return &r.value
}

// Get returns the value and true, or the zero V and false on failure.
func (r Result[V]) Get() (V, bool) {
	if r.code == Success {
		return r.value, true
	}
	var zero V
	return zero, false
}

// Or returns the value on success and fallback otherwise.
func (r Result[V]) Or(fallback V) V {
	if r.code == Success {
		return r.value
	}
	return fallback
}

// FailureText returns the message this Result failed with.
// It is empty on success and for failures created from a bare code.
func (r Result[V]) FailureText() string {
	if r.code == Success {
		return ""
	}
	if r.text == "" && r.cause != nil {
		return r.cause.Error()
	}
	return r.text
}

// Err returns nil on success and an *Error otherwise.
func (r Result[V]) Err() error {
	if r.code == Success {
		return nil
	}
	return &Error{Text: r.text, Cause: r.cause}
}

// Unwrap returns the value and error, mirroring Go's (T, error) convention.
func (r Result[V]) Unwrap() (V, error) {
	if r.code == Success {
		return r.value, nil
	}
	var zero V
	return zero, r.Err()
}

// Take moves the contents out of r and leaves r failed.
func (r *Result[V]) Take() Result[V] {
	out := *r
	*r = Result[V]{}
	return out
}

// MoveFrom disposes r's current value, moves src into r and leaves src
// failed. Moving a Result into itself does nothing.
func (r *Result[V]) MoveFrom(src *Result[V]) {
	if r == src {
		return
	}
	r.Dispose()
	*r = *src
	*src = Result[V]{}
}

// Dispose releases a held value that implements Disposer, exactly once,
// and leaves r failed. A failed Result's payload is never touched.
func (r *Result[V]) Dispose() {
	if r.code != Success {
		return
	}
	r.code = Failure
	disposeValue(&r.value)
	var zero V
	r.value = zero
}

// MatchResult pattern matches on the Result, calling onFailure or onSuccess.
func MatchResult[V, T any](r Result[V], onFailure func(string) T, onSuccess func(V) T) T {
	if r.code == Success {
		return onSuccess(r.value)
	}
	return onFailure(r.FailureText())
}

// MapResult applies f to the value of a successful Result.
func MapResult[V, W any](r Result[V], f func(V) W) Result[W] {
	if r.code == Success {
		return Ok(f(r.value))
	}
	return Result[W]{text: r.text, cause: r.cause}
}

// FlatMapResult sequences two fallible computations.
func FlatMapResult[V, W any](r Result[V], f func(V) Result[W]) Result[W] {
	if r.code == Success {
		return f(r.value)
	}
	return Result[W]{text: r.text, cause: r.cause}
}
