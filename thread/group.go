// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/robbiesri/rsbl"
)

// Group owns a set of Threads and joins them in creation order.
//
// Every body gets its own OS thread; a Group neither reuses threads nor
// queues work. It is used from one goroutine.
type Group struct {
	threads *queue.Queue
	opts    Options
	started int
}

// NewGroup returns an empty Group whose threads use default options.
func NewGroup() *Group {
	return NewGroupWithOptions(DefaultOptions())
}

// NewGroupWithOptions returns an empty Group. A non-empty opts.Name is
// used as prefix for the threads' names.
func NewGroupWithOptions(opts Options) *Group {
	return &Group{threads: queue.New(), opts: opts}
}

// Go starts fn on a new Thread owned by g.
func (g *Group) Go(fn func() rsbl.Status) rsbl.Status {
	opts := g.opts
	if opts.Name != "" {
		opts.Name = fmt.Sprintf("%s-%d", opts.Name, g.started)
	}
	body := rsbl.NewFunc(fn)
	res := CreateWithOptions(&body, opts)
	if res.IsFailure() {
		return rsbl.Propagate[rsbl.Unit](res)
	}
	owner := res.Take()
	g.threads.Add(owner.ValuePtr().Release())
	g.started++
	return rsbl.Done()
}

// Len returns the number of threads not yet waited for.
func (g *Group) Len() int {
	return g.threads.Length()
}

// Wait joins every thread in creation order and releases them.
// It returns the first failure: a failed join, or else the first body
// that failed, carrying that body's captured text.
func (g *Group) Wait() rsbl.Status {
	first := rsbl.Done()
	for g.threads.Length() > 0 {
		t := g.threads.Remove().(*Thread)
		st := t.Join()
		if first.IsOk() {
			switch {
			case st.IsFailure():
				first = st
			case t.FunctionResult().IsFailure():
				first = rsbl.FailWith[rsbl.Unit](t.ResultText(), t.FunctionResult().Err())
			}
		}
		t.Dispose()
	}
	return first
}
