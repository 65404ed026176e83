// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/robbiesri/rsbl"
)

// MaxFailureTextLength is the capacity of a Thread's failure text buffer,
// terminator included, so at most MaxFailureTextLength-1 bytes are kept.
const MaxFailureTextLength = 256

var (
	// ErrAlreadyJoined is the cause of joining a Thread a second time.
	ErrAlreadyJoined = errors.New("thread: already joined")
	// ErrInvalidHandle is the cause of joining a Thread without a platform handle.
	ErrInvalidHandle = errors.New("thread: invalid handle")
	// ErrJoinTimeout is the cause of a JoinTimeout that expired.
	ErrJoinTimeout = errors.New("thread: join timeout")
	// ErrJoinCanceled is the cause of a JoinContext whose context ended.
	ErrJoinCanceled = errors.New("thread: join canceled")
	// ErrCreateFailed wraps platform errors raised while starting a Thread.
	ErrCreateFailed = errors.New("thread: create failed")
	// ErrInvalidFunction is the cause of creating a Thread from an empty Func.
	ErrInvalidFunction = errors.New("thread: invalid function")
)

// Thread runs one function on its own OS thread and keeps its outcome.
//
// A Thread is created by Create, which returns it inside an rsbl.Owner.
// Disposing the owner joins the thread if nobody did. The body's Status
// and a bounded copy of its failure text are stored on the Thread, so they
// stay readable after the worker exits.
//
// A Thread is used from one goroutine. Concurrent Join calls on the same
// Thread are not supported.
type Thread struct {
	body    *rsbl.Once[rsbl.Status]
	result  rsbl.Status
	text    [MaxFailureTextLength]byte
	textLen int
	active  atomic.Bool
	joined  bool
	handle  *handle
	id      uuid.UUID
	opts    Options
}

// Create starts fn on a new OS thread with default options.
// The Thread takes ownership of fn; fn is empty when Create returns.
func Create(fn *rsbl.Func[rsbl.Status]) rsbl.Result[rsbl.Owner[Thread]] {
	return CreateWithOptions(fn, DefaultOptions())
}

// Spawn is Create for a plain function.
func Spawn(fn func() rsbl.Status) rsbl.Result[rsbl.Owner[Thread]] {
	body := rsbl.NewFunc(fn)
	return Create(&body)
}

// CreateWithOptions starts fn on a new OS thread configured by opts.
//
// fn is moved into the Thread and is empty when CreateWithOptions returns,
// whether or not the thread started. A callable that never runs is
// destroyed here.
//
// The thread is running when CreateWithOptions returns. If the platform
// cannot set the thread up, fn never runs and the failure carries the
// platform's error text with ErrCreateFailed as cause.
func CreateWithOptions(fn *rsbl.Func[rsbl.Status], opts Options) rsbl.Result[rsbl.Owner[Thread]] {
	if fn == nil || !fn.Valid() {
		return rsbl.FailWith[rsbl.Owner[Thread]]("Invalid thread function", ErrInvalidFunction)
	}
	body := rsbl.NewOnce(fn)
	if st := opts.Validate(); st.IsFailure() {
		body.Discard()
		return rsbl.Propagate[rsbl.Owner[Thread]](st)
	}

	t := &Thread{
		body: body,
		id:   uuid.New(),
		opts: opts,
	}
	if t.opts.Name == "" {
		t.opts.Name = defaultName(t.id)
	}

	t.active.Store(true)
	h := startPlatformThread(t.entry, t.opts)
	if h.IsFailure() {
		t.active.Store(false)
		t.body.Discard()
		return rsbl.Propagate[rsbl.Owner[Thread]](h)
	}
	t.handle = h.Value()
	return rsbl.Ok(rsbl.Own(t))
}

// defaultName fits the Linux 15-byte thread name limit.
func defaultName(id uuid.UUID) string {
	return "rsbl-" + id.String()[:8]
}

// entry runs on the worker thread.
func (t *Thread) entry() {
	t.result = t.body.Call()
	if t.result.IsFailure() {
		t.captureText(t.result.FailureText())
	}
	t.active.Store(false)
}

// captureText copies text into the bounded buffer, cutting at a rune
// boundary when it does not fit.
func (t *Thread) captureText(text string) {
	text = truncateName(text, t.opts.textLimit()-1)
	t.textLen = copy(t.text[:], text)
}

// IsActive reports whether the body is still running.
// It turns false when the body returns, whether or not the Thread has been
// joined; after that the body's writes are visible to the caller.
func (t *Thread) IsActive() bool {
	return t.active.Load()
}

// joinable checks the preconditions shared by the Join variants.
func (t *Thread) joinable() rsbl.Status {
	if t.joined {
		return rsbl.FailWith[rsbl.Unit]("Thread already joined", ErrAlreadyJoined)
	}
	if t.handle == nil {
		return rsbl.FailWith[rsbl.Unit]("Invalid thread handle", ErrInvalidHandle)
	}
	return rsbl.Done()
}

// Join blocks until the body has returned.
func (t *Thread) Join() rsbl.Status {
	if st := t.joinable(); st.IsFailure() {
		return st
	}
	<-t.handle.done
	t.joined = true
	return rsbl.Done()
}

// JoinTimeout is Join bounded by timeoutMs milliseconds.
// On timeout the Thread is not marked joined and may be joined again.
func (t *Thread) JoinTimeout(timeoutMs uint32) rsbl.Status {
	if st := t.joinable(); st.IsFailure() {
		return st
	}
	select {
	case <-t.handle.done:
		t.joined = true
		return rsbl.Done()
	default:
	}

	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-t.handle.done:
		t.joined = true
		return rsbl.Done()
	case <-timer.C:
		return rsbl.FailWith[rsbl.Unit]("Thread join timeout", ErrJoinTimeout)
	}
}

// JoinContext is Join bounded by ctx.
// When ctx ends first the Thread is not marked joined.
func (t *Thread) JoinContext(ctx context.Context) rsbl.Status {
	if st := t.joinable(); st.IsFailure() {
		return st
	}
	select {
	case <-t.handle.done:
		t.joined = true
		return rsbl.Done()
	case <-ctx.Done():
		err := ctx.Err()
		return rsbl.FailWith[rsbl.Unit]("Thread join canceled: "+err.Error(), fmt.Errorf("%w: %w", ErrJoinCanceled, err))
	}
}

// Joined reports whether a Join variant has succeeded.
func (t *Thread) Joined() bool { return t.joined }

// FunctionResult returns the body's Status. Read it after a successful join.
func (t *Thread) FunctionResult() rsbl.Status { return t.result }

// ResultText returns the captured failure text of the body, or "" if the
// body succeeded. Read it after a successful join.
func (t *Thread) ResultText() string { return string(t.text[:t.textLen]) }

// ID returns the identity assigned at creation.
func (t *Thread) ID() uuid.UUID { return t.id }

// Name returns the OS thread name requested at creation.
func (t *Thread) Name() string { return t.opts.Name }

// OSThreadID returns the id of the OS thread running the body, or 0 when
// the platform exposes none or the handle was released.
func (t *Thread) OSThreadID() uint64 {
	if t.handle == nil {
		return 0
	}
	return t.handle.tid.Load()
}

// Dispose joins an unjoined Thread, discarding the join Status, then
// releases the platform handle. It runs when the owning rsbl.Owner is
// disposed, reset or overwritten.
func (t *Thread) Dispose() {
	if !t.joined && t.handle != nil {
		_ = t.Join()
	}
	t.handle = nil
}
