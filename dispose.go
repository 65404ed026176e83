// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

// Disposer is implemented by values that hold a resource which must be
// released exactly once when their owner gives them up.
//
// Result, Owner and the Func types call Dispose when the holder itself is
// disposed or reset, and when a holder is overwritten by MoveFrom.
type Disposer interface {
	Dispose()
}

// disposeValue runs Dispose on *v if either the value or its address
// implements Disposer. Pointer-receiver methods are found through v itself,
// value-receiver methods and pointer-shaped V through *v.
func disposeValue[V any](v *V) {
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
		return
	}
	if d, ok := any(*v).(Disposer); ok {
		d.Dispose()
	}
}
