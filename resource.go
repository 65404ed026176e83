// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl

// Resource safety helpers built on Result.
// These cover the acquire → use → release shape that fallible platform code
// (open/read/close, create/join) repeats at every call site.

// Bracket acquires a resource, runs use on it, and always runs release
// once the resource was acquired, also when use halts on an assertion.
//
// A failed use wins over a failed release; a failed release turns an
// otherwise successful use into a failure carrying the release text.
func Bracket[R, A any](
	acquire func() Result[R],
	release func(R) Status,
	use func(R) Result[A],
) (out Result[A]) {
	res := acquire()
	if res.code != Success {
		return Propagate[A](res)
	}
	defer func() {
		rel := release(res.value)
		if out.code == Success && rel.code != Success {
			out.Dispose()
			out = Propagate[A](rel)
		}
	}()
	return use(res.value)
}

// OnFailure runs cleanup only if body fails, then returns body's Result.
func OnFailure[A any](body func() Result[A], cleanup func(text string)) Result[A] {
	out := body()
	if out.code != Success {
		cleanup(out.FailureText())
	}
	return out
}

// Using runs use on the object owned by o and disposes it afterwards,
// whatever use returns. An empty Owner fails without calling use.
func Using[T, A any](o *Owner[T], use func(*T) Result[A]) Result[A] {
	defer o.Dispose()
	if !o.Valid() {
		return Fail[A]("rsbl: empty owner")
	}
	return use(o.Get())
}
