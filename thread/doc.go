// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package thread runs functions on dedicated OS threads and captures their
// outcome.
//
// A [Thread] owns one goroutine locked to its own OS thread. The body is an
// rsbl.Func returning rsbl.Status; its result and a bounded copy of its
// failure text stay on the Thread after the worker exits.
//
//	res := thread.Spawn(func() rsbl.Status {
//		return decodeTextures(batch)
//	})
//	if res.IsFailure() {
//		return rsbl.Propagate[rsbl.Unit](res)
//	}
//	owner := res.Take().Value()
//	defer owner.Dispose()
//
//	t := owner.Get()
//	if st := t.Join(); st.IsFailure() {
//		return st
//	}
//	if t.FunctionResult().IsFailure() {
//		log.Println(t.ResultText())
//	}
//
// Lifecycle: a Thread is running when Create returns; [Thread.IsActive]
// turns false when the body returns; [Thread.Join], [Thread.JoinTimeout]
// and [Thread.JoinContext] block the caller until then. A Thread is joined
// at most once. Disposing its rsbl.Owner joins it if needed.
//
// There is no cancellation: a timeout abandons the wait, not the body.
//
// [Options] name the OS thread and optionally pin it to a CPU; they can be
// loaded from YAML with [ParseOptions]. [Group] joins a set of threads in
// creation order.
package thread
