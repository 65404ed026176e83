// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rsbl provides the exception-free primitives the rest of the
// rendering framework is built on: a discriminated result, move-only
// callables, exclusive ownership and assertions for programmer errors.
//
// Concurrent work is started with the thread subpackage, which composes
// these types.
//
// # Design Philosophy
//
// rsbl provides:
//   - One return convention for every fallible call: [Result]
//   - Explicit ownership transfer: Take/MoveFrom leave the source empty
//   - Deterministic release through [Disposer] instead of finalizers
//   - Contract violations reported through [Assert], never through Result
//
// # Result
//
// [Result] is either a success holding a value or a failure holding its own
// message. The zero Result is a failure, which is also the moved-from state.
//
//   - [Ok], [FromCode], [Fail], [Failf], [FailWith], [FromError], [FromTuple]: Constructors
//   - [Done], [Failed]: [Status] shorthands ([Status] is Result[[Unit]])
//   - [Result.Code], [Result.IsOk], [Result.IsFailure]: Discriminant
//   - [Result.Value], [Result.ValuePtr]: Access (asserted on failure)
//   - [Result.Get], [Result.Or]: Checked access
//   - [Result.FailureText], [Result.Err], [Result.Unwrap]: Failure details
//   - [Result.Take], [Result.MoveFrom], [Result.Dispose]: Ownership
//   - [Propagate]: Re-type a failure keeping its text
//   - [MatchResult], [MapResult], [FlatMapResult]: Combinators
//
// Every caller checks the Code before reading the value:
//
//	res := loadMesh(path)
//	if res.IsFailure() {
//		return rsbl.Propagate[Scene](res)
//	}
//	mesh := res.Value()
//
// # Callables
//
// [Func], [Func1] and [Func2] hold one callable behind an invoke pointer and
// an optional destroy hook:
//
//   - [NewFunc], [FuncOf], [Action]: Construct from closures, functors, void functions
//   - [Func.Call]: Invoke (asserted when empty)
//   - [Func.Valid]: Validity
//   - [Func.Take], [Func.MoveFrom], [Func.Reset]: Move-only ownership
//   - [BindMember0], [BindMember], [BindMember2]: Bind a method expression to an object
//   - [Once]: Run a callable at most once
//
// # Ownership
//
//   - [Owner]: Sole owner of a heap-allocated value
//   - [Own], [MakeOwner], [MakeOwnerFunc]: Constructors
//   - [Owner.Get], [Owner.Value], [Owner.Valid]: Access
//   - [Owner.Release], [Owner.Reset], [Owner.Take], [Owner.MoveFrom], [Owner.Dispose]: Transfer and release
//
// # Resource Safety
//
//   - [Bracket]: Acquire-use-release with guaranteed release
//   - [OnFailure]: Run cleanup only on failure
//   - [Using]: Use and dispose an owned object
//
// # Assertions
//
// Failed assertions go to the installed [AssertHandler]. The default handler
// logs "file(line): Assert Failure: 'condition' msg" to stderr and halts by
// panicking with an [*AssertionError]. Tests install a handler returning
// [Continue] to observe failures without halting.
//
//   - [Assert], [AssertMsg]: Check a condition
//   - [SetAssertHandler], [CurrentAssertHandler], [DefaultAssertHandler]: Handler management
//   - [ReportFailure]: Forward a failure to the handler
//   - [SetAssertOutput]: Redirect the default handler
package rsbl
