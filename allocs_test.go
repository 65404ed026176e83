// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rsbl_test

import (
	"testing"

	"github.com/robbiesri/rsbl"
)

func TestResultAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		r := rsbl.Ok(42)
		if r.Code() != rsbl.Success {
			t.Fatal("unexpected failure")
		}
		_ = r.Value()
	})
	if allocs > 0 {
		t.Errorf("Ok/Code/Value allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		r := rsbl.Fail[int]("static text")
		_ = r.FailureText()
	})
	if allocs > 0 {
		t.Errorf("Fail/FailureText allocs = %v; want 0", allocs)
	}
}

func TestFuncCallAllocations(t *testing.T) {
	f := rsbl.NewFunc1(func(x int) int { return x + 1 })
	allocs := testing.AllocsPerRun(100, func() {
		_ = f.Call(1)
	})
	if allocs > 0 {
		t.Errorf("Func1.Call allocs = %v; want 0", allocs)
	}
}

func TestOwnerTakeAllocations(t *testing.T) {
	o := rsbl.MakeOwner(7)
	allocs := testing.AllocsPerRun(100, func() {
		moved := o.Take()
		o.MoveFrom(&moved)
	})
	if allocs > 0 {
		t.Errorf("Owner move allocs = %v; want 0", allocs)
	}
}
