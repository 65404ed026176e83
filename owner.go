// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

// Owner is the sole owner of a heap-allocated T.
//
// Ownership moves with Take and MoveFrom, which empty the source, so at most
// one Owner refers to an address at a time. Copying an Owner value by
// assignment bypasses that discipline and must be avoided.
//
// When an Owner gives up its pointee through Dispose, Reset or being
// overwritten by MoveFrom, a pointee implementing Disposer is disposed.
// Release hands the pointer back without disposing.
type Owner[T any] struct {
	ptr *T
}

// Own takes ownership of p. A nil p yields an empty Owner.
func Own[T any](p *T) Owner[T] {
	return Owner[T]{ptr: p}
}

// MakeOwner allocates a T initialized to v and owns it.
func MakeOwner[T any](v T) Owner[T] {
	p := new(T)
	*p = v
	return Owner[T]{ptr: p}
}

// MakeOwnerFunc allocates a zero T, lets init construct it in place and
// owns the result. Use it for types that must not be copied.
func MakeOwnerFunc[T any](init func(*T)) Owner[T] {
	p := new(T)
	if init != nil {
		init(p)
	}
	return Owner[T]{ptr: p}
}

// Get returns the owned pointer, or nil.
func (o Owner[T]) Get() *T { return o.ptr }

// Valid reports whether o owns an object.
func (o Owner[T]) Valid() bool { return o.ptr != nil }

// Value returns a copy of the pointee. Dereferencing an empty Owner is
// asserted.
func (o Owner[T]) Value() T {
	if o.ptr == nil {
		assertFailed("o.Valid()", "dereference of empty Owner", 2)
		var zero T
		return zero
	}
	return *o.ptr
}

// Release disarms o and returns the pointer without disposing it.
func (o *Owner[T]) Release() *T {
	p := o.ptr
	o.ptr = nil
	return p
}

// Reset disposes the current pointee and takes ownership of p.
// Resetting to the pointer already owned does nothing.
func (o *Owner[T]) Reset(p *T) {
	old := o.ptr
	if old == p {
		return
	}
	o.ptr = p
	if old != nil {
		disposeValue(&old)
	}
}

// Take moves ownership out of o, leaving o empty.
func (o *Owner[T]) Take() Owner[T] {
	out := *o
	o.ptr = nil
	return out
}

// MoveFrom disposes o's pointee and takes ownership from src.
// Moving an Owner into itself does nothing.
func (o *Owner[T]) MoveFrom(src *Owner[T]) {
	if o == src {
		return
	}
	o.Reset(src.Release())
}

// Dispose releases the pointee. Typical use is defer o.Dispose().
func (o *Owner[T]) Dispose() {
	o.Reset(nil)
}
