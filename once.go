// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

import (
	"sync/atomic"
)

// Once wraps a Func with one-shot enforcement.
// The callable runs at most once; subsequent attempts panic (Call) or
// report false (TryCall). The callable is destroyed right after it runs.
type Once[R any] struct {
	used  atomic.Uintptr
	valid bool
	fn    Func[R]
}

// NewOnce takes ownership of fn. fn is left empty.
func NewOnce[R any](fn *Func[R]) *Once[R] {
	o := &Once[R]{valid: fn.Valid()}
	o.fn.MoveFrom(fn)
	return o
}

// Call invokes the callable.
// Panics if it has already been called or discarded.
func (o *Once[R]) Call() R {
	if o.used.Add(1) != 1 {
		panic("rsbl: once callable invoked twice")
	}
	fn := o.fn.Take()
	defer fn.Reset()
	return fn.Call()
}

// TryCall attempts to invoke the callable.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *Once[R]) TryCall() (R, bool) {
	if o.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	fn := o.fn.Take()
	defer fn.Reset()
	return fn.Call(), true
}

// Discard marks the callable as used and destroys it without invoking.
func (o *Once[R]) Discard() {
	if o.used.Add(1) == 1 {
		o.fn.Reset()
	}
}

// Pending reports whether the callable can still be invoked.
func (o *Once[R]) Pending() bool {
	return o.valid && o.used.Load() == 0
}
