// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

// Move-only callables.
//
// A Func holds one callable of unknown concrete type behind an invoke
// pointer and an optional destroy hook. Func values are handed between
// owners with Take and MoveFrom; the source is left empty so only one
// owner can call or destroy the stored callable.
//
// Go closures are a single pointer word, so no inline buffer is needed
// and constructing a Func from a closure never copies captured state.

// Invoker is a functor object taking no arguments.
type Invoker[R any] interface {
	Invoke() R
}

// Invoker1 is a functor object taking one argument.
type Invoker1[A, R any] interface {
	Invoke(A) R
}

// Invoker2 is a functor object taking two arguments.
type Invoker2[A, B, R any] interface {
	Invoke(A, B) R
}

// destroyHook returns obj's Dispose method when it has one.
func destroyHook(obj any) func() {
	if d, ok := obj.(Disposer); ok {
		return d.Dispose
	}
	return nil
}

// Func is a move-only callable with signature func() R.
type Func[R any] struct {
	invoke  func() R
	destroy func()
}

// NewFunc wraps fn. A nil fn yields an empty Func.
func NewFunc[R any](fn func() R) Func[R] {
	return Func[R]{invoke: fn}
}

// FuncOf stores a functor object. If obj implements Disposer it is
// disposed when the Func is reset or overwritten.
func FuncOf[R any](obj Invoker[R]) Func[R] {
	if obj == nil {
		return Func[R]{}
	}
	return Func[R]{invoke: obj.Invoke, destroy: destroyHook(obj)}
}

// Action adapts a function without a result.
func Action(fn func()) Func[Unit] {
	if fn == nil {
		return Func[Unit]{}
	}
	return Func[Unit]{invoke: func() Unit {
		fn()
		return Unit{}
	}}
}

// Call invokes the stored callable. Calling an empty Func is asserted.
func (f Func[R]) Call() R {
	if f.invoke == nil {
		assertFailed("f.Valid()", "call of empty Func", 2)
		var zero R
		return zero
	}
	return f.invoke()
}

// Valid reports whether f holds a callable.
func (f Func[R]) Valid() bool { return f.invoke != nil }

// Take moves the callable out of f, leaving f empty.
func (f *Func[R]) Take() Func[R] {
	out := *f
	*f = Func[R]{}
	return out
}

// MoveFrom destroys f's callable, then moves src into f. Self-move is a no-op.
func (f *Func[R]) MoveFrom(src *Func[R]) {
	if f == src {
		return
	}
	f.Reset()
	*f = *src
	*src = Func[R]{}
}

// Reset destroys the stored callable and empties f.
func (f *Func[R]) Reset() {
	destroy := f.destroy
	*f = Func[R]{}
	if destroy != nil {
		destroy()
	}
}

// Dispose is Reset; it lets a Func sit inside a Result or Owner.
func (f *Func[R]) Dispose() { f.Reset() }

// Func1 is a move-only callable with signature func(A) R.
type Func1[A, R any] struct {
	invoke  func(A) R
	destroy func()
}

// NewFunc1 wraps fn. A nil fn yields an empty Func1.
func NewFunc1[A, R any](fn func(A) R) Func1[A, R] {
	return Func1[A, R]{invoke: fn}
}

// Func1Of stores a functor object, disposing it with the Func1.
func Func1Of[A, R any](obj Invoker1[A, R]) Func1[A, R] {
	if obj == nil {
		return Func1[A, R]{}
	}
	return Func1[A, R]{invoke: obj.Invoke, destroy: destroyHook(obj)}
}

// Call invokes the stored callable with a.
func (f Func1[A, R]) Call(a A) R {
	if f.invoke == nil {
		assertFailed("f.Valid()", "call of empty Func1", 2)
		var zero R
		return zero
	}
	return f.invoke(a)
}

// Valid reports whether f holds a callable.
func (f Func1[A, R]) Valid() bool { return f.invoke != nil }

// Take moves the callable out of f, leaving f empty.
func (f *Func1[A, R]) Take() Func1[A, R] {
	out := *f
	*f = Func1[A, R]{}
	return out
}

// MoveFrom destroys f's callable, then moves src into f.
func (f *Func1[A, R]) MoveFrom(src *Func1[A, R]) {
	if f == src {
		return
	}
	f.Reset()
	*f = *src
	*src = Func1[A, R]{}
}

// Reset destroys the stored callable and empties f.
func (f *Func1[A, R]) Reset() {
	destroy := f.destroy
	*f = Func1[A, R]{}
	if destroy != nil {
		destroy()
	}
}

// Dispose is Reset.
func (f *Func1[A, R]) Dispose() { f.Reset() }

// Func2 is a move-only callable with signature func(A, B) R.
type Func2[A, B, R any] struct {
	invoke  func(A, B) R
	destroy func()
}

// NewFunc2 wraps fn. A nil fn yields an empty Func2.
func NewFunc2[A, B, R any](fn func(A, B) R) Func2[A, B, R] {
	return Func2[A, B, R]{invoke: fn}
}

// Func2Of stores a functor object, disposing it with the Func2.
func Func2Of[A, B, R any](obj Invoker2[A, B, R]) Func2[A, B, R] {
	if obj == nil {
		return Func2[A, B, R]{}
	}
	return Func2[A, B, R]{invoke: obj.Invoke, destroy: destroyHook(obj)}
}

// Call invokes the stored callable with a and b.
func (f Func2[A, B, R]) Call(a A, b B) R {
	if f.invoke == nil {
		assertFailed("f.Valid()", "call of empty Func2", 2)
		var zero R
		return zero
	}
	return f.invoke(a, b)
}

// Valid reports whether f holds a callable.
func (f Func2[A, B, R]) Valid() bool { return f.invoke != nil }

// Take moves the callable out of f, leaving f empty.
func (f *Func2[A, B, R]) Take() Func2[A, B, R] {
	out := *f
	*f = Func2[A, B, R]{}
	return out
}

// MoveFrom destroys f's callable, then moves src into f.
func (f *Func2[A, B, R]) MoveFrom(src *Func2[A, B, R]) {
	if f == src {
		return
	}
	f.Reset()
	*f = *src
	*src = Func2[A, B, R]{}
}

// Reset destroys the stored callable and empties f.
func (f *Func2[A, B, R]) Reset() {
	destroy := f.destroy
	*f = Func2[A, B, R]{}
	if destroy != nil {
		destroy()
	}
}

// Dispose is Reset.
func (f *Func2[A, B, R]) Dispose() { f.Reset() }

// Member binding.
//
// A bound member is a small functor holding the object pointer and a method
// expression such as (*Counter).Add. It is stored like any other functor;
// the Func does not own obj and never disposes it.

type member0[T, R any] struct {
	obj    *T
	method func(*T) R
}

func (m member0[T, R]) Invoke() R { return m.method(m.obj) }

type member1[T, A, R any] struct {
	obj    *T
	method func(*T, A) R
}

func (m member1[T, A, R]) Invoke(a A) R { return m.method(m.obj, a) }

type member2[T, A, B, R any] struct {
	obj    *T
	method func(*T, A, B) R
}

func (m member2[T, A, B, R]) Invoke(a A, b B) R { return m.method(m.obj, a, b) }

// BindMember0 binds a method taking no arguments to obj.
// A nil obj or method yields an empty Func.
func BindMember0[T, R any](obj *T, method func(*T) R) Func[R] {
	if obj == nil || method == nil {
		return Func[R]{}
	}
	return FuncOf[R](member0[T, R]{obj: obj, method: method})
}

// BindMember binds a one-argument method to obj.
//
//	c := &Counter{}
//	add := rsbl.BindMember(c, (*Counter).Add)
//	add.Call(3)
func BindMember[T, A, R any](obj *T, method func(*T, A) R) Func1[A, R] {
	if obj == nil || method == nil {
		return Func1[A, R]{}
	}
	return Func1Of[A, R](member1[T, A, R]{obj: obj, method: method})
}

// BindMember2 binds a two-argument method to obj.
func BindMember2[T, A, B, R any](obj *T, method func(*T, A, B) R) Func2[A, B, R] {
	if obj == nil || method == nil {
		return Func2[A, B, R]{}
	}
	return Func2Of[A, B, R](member2[T, A, B, R]{obj: obj, method: method})
}
