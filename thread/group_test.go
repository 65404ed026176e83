// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/robbiesri/rsbl"
	"github.com/robbiesri/rsbl/thread"
)

func TestGroupWaitSuccess(t *testing.T) {
	var sum atomic.Int64
	g := thread.NewGroup()
	for i := 1; i <= 8; i++ {
		if st := g.Go(func() rsbl.Status {
			sum.Add(int64(i))
			return rsbl.Done()
		}); st.IsFailure() {
			t.Fatalf("Go: %s", st.FailureText())
		}
	}
	if g.Len() != 8 {
		t.Fatalf("got Len %d, want 8", g.Len())
	}
	if st := g.Wait(); st.IsFailure() {
		t.Fatalf("Wait: %s", st.FailureText())
	}
	if sum.Load() != 36 {
		t.Fatalf("got %d, want 36", sum.Load())
	}
	if g.Len() != 0 {
		t.Fatal("Wait must drain the group")
	}
}

func TestGroupWaitReportsFirstFailureInCreationOrder(t *testing.T) {
	release := make(chan struct{})
	g := thread.NewGroup()
	g.Go(func() rsbl.Status { return rsbl.Done() })
	g.Go(func() rsbl.Status {
		<-release
		return rsbl.Failed("second failed")
	})
	g.Go(func() rsbl.Status { return rsbl.Failed("third failed") })
	close(release)

	st := g.Wait()
	if st.IsOk() {
		t.Fatal("Wait must report the failing body")
	}
	if st.FailureText() != "second failed" {
		t.Fatalf("got %q, want the earliest created failure", st.FailureText())
	}
	if !errors.Is(st.Err(), rsbl.ErrFailure) {
		t.Fatal("failure must unwrap to rsbl.ErrFailure")
	}
}

func TestGroupWaitEmpty(t *testing.T) {
	if st := thread.NewGroup().Wait(); st.IsFailure() {
		t.Fatalf("empty Wait: %s", st.FailureText())
	}
}

func TestGroupNames(t *testing.T) {
	var mu sync.Mutex
	var ids []uint64
	g := thread.NewGroupWithOptions(thread.DefaultOptions().WithName("decode"))
	for range 3 {
		g.Go(func() rsbl.Status {
			mu.Lock()
			ids = append(ids, thread.CurrentID())
			mu.Unlock()
			return rsbl.Done()
		})
	}
	if st := g.Wait(); st.IsFailure() {
		t.Fatalf("Wait: %s", st.FailureText())
	}
	if len(ids) != 3 {
		t.Fatalf("got %d bodies, want 3", len(ids))
	}
}

func TestGroupGoFailure(t *testing.T) {
	g := thread.NewGroupWithOptions(thread.DefaultOptions().WithCPU(1 << 16))
	st := g.Go(func() rsbl.Status { return rsbl.Done() })
	if st.IsOk() {
		g.Wait()
		t.Fatal("Go must report creation failure")
	}
	if !errors.Is(st.Err(), thread.ErrCreateFailed) {
		t.Fatalf("got %v", st.Err())
	}
	if g.Len() != 0 {
		t.Fatal("failed Go must not enqueue")
	}
}

func ExampleGroup() {
	results := make([]int, 4)
	g := thread.NewGroup()
	for i := range results {
		g.Go(func() rsbl.Status {
			results[i] = i * i
			return rsbl.Done()
		})
	}
	if st := g.Wait(); st.IsFailure() {
		fmt.Println(st.FailureText())
		return
	}
	fmt.Println(results)
	// Output: [0 1 4 9]
}

func ExampleSpawn() {
	res := thread.Spawn(func() rsbl.Status {
		return rsbl.Failed("Failed to load texture")
	})
	if res.IsFailure() {
		fmt.Println(res.FailureText())
		return
	}
	owner := res.Take().Value()
	defer owner.Dispose()

	t := owner.Get()
	t.Join()
	fmt.Println(t.FunctionResult().Code(), t.ResultText())
	// Output: Failure Failed to load texture
}
