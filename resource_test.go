// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl_test

import (
	"io"
	"testing"

	"github.com/robbiesri/rsbl"
)

func TestBracketSuccess(t *testing.T) {
	var acquired, released bool

	res := rsbl.Bracket(
		func() rsbl.Result[int] { return rsbl.Ok(42) },
		func(r int) rsbl.Status {
			released = true
			return rsbl.Done()
		},
		func(r int) rsbl.Result[int] {
			acquired = true
			return rsbl.Ok(r * 2)
		},
	)

	if !acquired || !released {
		t.Fatalf("acquired=%v released=%v", acquired, released)
	}
	if res.Value() != 84 {
		t.Fatalf("got %d, want 84", res.Value())
	}
}

func TestBracketAcquireFailure(t *testing.T) {
	var used, released bool
	res := rsbl.Bracket(
		func() rsbl.Result[int] { return rsbl.Fail[int]("Failed to open file") },
		func(int) rsbl.Status { released = true; return rsbl.Done() },
		func(int) rsbl.Result[string] { used = true; return rsbl.Ok("x") },
	)
	if used || released {
		t.Fatal("use and release must not run when acquire fails")
	}
	if res.FailureText() != "Failed to open file" {
		t.Fatalf("got %q", res.FailureText())
	}
}

func TestBracketUseFailureStillReleases(t *testing.T) {
	var released bool
	res := rsbl.Bracket(
		func() rsbl.Result[int] { return rsbl.Ok(1) },
		func(int) rsbl.Status { released = true; return rsbl.Failed("close failed") },
		func(int) rsbl.Result[int] { return rsbl.Fail[int]("read failed") },
	)
	if !released {
		t.Fatal("release must run after a failed use")
	}
	if res.FailureText() != "read failed" {
		t.Fatalf("use failure must win, got %q", res.FailureText())
	}
}

func TestBracketReleaseFailure(t *testing.T) {
	var disposed int
	res := rsbl.Bracket(
		func() rsbl.Result[int] { return rsbl.Ok(1) },
		func(int) rsbl.Status { return rsbl.Failed("close failed") },
		func(int) rsbl.Result[*tracker] { return rsbl.Ok(&tracker{disposed: &disposed}) },
	)
	if res.IsOk() {
		t.Fatal("release failure must fail the bracket")
	}
	if res.FailureText() != "close failed" {
		t.Fatalf("got %q", res.FailureText())
	}
	if disposed != 1 {
		t.Fatalf("successful use value disposed %d times, want 1", disposed)
	}
}

func TestOnFailure(t *testing.T) {
	var cleaned string
	res := rsbl.OnFailure(
		func() rsbl.Result[int] { return rsbl.Fail[int]("boom") },
		func(text string) { cleaned = text },
	)
	if cleaned != "boom" || res.IsOk() {
		t.Fatalf("cleanup got %q", cleaned)
	}

	called := false
	res = rsbl.OnFailure(
		func() rsbl.Result[int] { return rsbl.Ok(3) },
		func(string) { called = true },
	)
	if called || res.Value() != 3 {
		t.Fatal("cleanup must not run on success")
	}
}

func TestUsing(t *testing.T) {
	var disposed int
	o := rsbl.Own(&resource{value: 9, disposed: &disposed})
	res := rsbl.Using(&o, func(r *resource) rsbl.Result[int] {
		return rsbl.Ok(r.value + 1)
	})
	if res.Value() != 10 {
		t.Fatalf("got %d, want 10", res.Value())
	}
	if disposed != 1 || o.Valid() {
		t.Fatal("Using must dispose the owned object")
	}
}

func TestUsingDisposesOnFailure(t *testing.T) {
	var disposed int
	o := rsbl.Own(&resource{disposed: &disposed})
	res := rsbl.Using(&o, func(*resource) rsbl.Result[int] {
		return rsbl.Fail[int]("nope")
	})
	if res.IsOk() || disposed != 1 {
		t.Fatal("Using must dispose even when use fails")
	}
}

func TestUsingEmptyOwner(t *testing.T) {
	var o rsbl.Owner[resource]
	called := false
	res := rsbl.Using(&o, func(*resource) rsbl.Result[int] {
		called = true
		return rsbl.Ok(0)
	})
	if called || res.IsOk() {
		t.Fatal("empty owner must fail without calling use")
	}
}

func TestBracketReleasesWhenUseHalts(t *testing.T) {
	rsbl.SetAssertOutput(io.Discard)
	defer rsbl.SetAssertOutput(nil)

	var released bool
	func() {
		defer func() {
			if _, ok := recover().(*rsbl.AssertionError); !ok {
				t.Fatal("expected *AssertionError panic from use")
			}
		}()
		rsbl.Bracket(
			func() rsbl.Result[int] { return rsbl.Ok(1) },
			func(int) rsbl.Status { released = true; return rsbl.Done() },
			func(int) rsbl.Result[int] { return rsbl.Ok(rsbl.Fail[int]("x").Value()) },
		)
	}()
	if !released {
		t.Fatal("release must run when use halts")
	}
}
