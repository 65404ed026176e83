// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/robbiesri/rsbl"
)

// handle is the platform side of a Thread: one goroutine locked to its own
// OS thread for its whole life. The lock is never released, so the OS
// thread exits together with the goroutine and any affinity or name set on
// it never leaks to other goroutines.
type handle struct {
	done chan struct{}
	tid  atomic.Uint64
}

// startPlatformThread launches entry on a fresh OS thread configured by
// opts. It returns once the thread is set up; setup errors are reported
// here and entry is then never run.
func startPlatformThread(entry func(), opts Options) rsbl.Result[*handle] {
	h := &handle{done: make(chan struct{})}
	ready := make(chan error, 1)

	go func() {
		runtime.LockOSThread()
		defer close(h.done)

		h.tid.Store(platformCurrentID())
		if err := setupPlatformThread(opts); err != nil {
			ready <- err
			return
		}
		ready <- nil
		entry()
	}()

	if err := <-ready; err != nil {
		return rsbl.FailWith[*handle](err.Error(), fmt.Errorf("%w: %w", ErrCreateFailed, err))
	}
	return rsbl.Ok(h)
}

func setupPlatformThread(opts Options) error {
	if opts.Name != "" {
		if err := platformSetName(opts.Name); err != nil {
			return fmt.Errorf("Failed to name thread: %w", err)
		}
	}
	if opts.CPU != nil {
		if err := platformSetAffinity(*opts.CPU); err != nil {
			return fmt.Errorf("Failed to set thread affinity: %w", err)
		}
	}
	return nil
}

// truncateName cuts name to at most limit bytes without splitting a rune.
func truncateName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// Sleep blocks the calling goroutine for ms milliseconds.
func Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Yield is a spin-wait hint. It gives the Go scheduler a chance to run
// another goroutine and does not enter the OS scheduler.
func Yield() {
	runtime.Gosched()
}

// CurrentID returns the OS thread id the caller is running on.
// Inside a Thread body the id is stable; elsewhere the runtime may move the
// goroutine between calls. Returns 0 where the platform exposes no id.
func CurrentID() uint64 {
	return platformCurrentID()
}
