package generator

import (
	"iter"
	"runtime"
)

// Co is the handle a Routine body uses to await pending tasks.
type Co struct {
	yield func(struct{}) bool
}

// stopRoutine unwinds a parked routine whose coroutine was stopped.
type stopRoutine struct{}

// park hands control back to whoever polled the routine.
func (co *Co) park() {
	if !co.yield(struct{}{}) {
		panic(stopRoutine{})
	}
}

// Await polls task until it completes, parking the routine each time the
// task is pending, and returns its output.
func Await[O any](co *Co, task Task[O]) O {
	for {
		output, done := task.Poll()
		if done {
			return output
		}
		co.park()
	}
}

// Call suspends on ch with value and returns the value it is resumed with.
func Call[Y, R any](co *Co, ch Channel[Y, R], value Y) R {
	return Await[R](co, ch.Suspend(value))
}

// Routine returns a task that runs fn as a native coroutine. The body is
// written as straight-line code; each Await on a pending task parks the
// coroutine until the next poll.
//
// The coroutine is created on the first poll. Closing a routine before it
// completes unwinds the body, so its deferred calls run. A routine that is
// dropped without Close is unwound once it is garbage collected, provided
// fn does not itself refer to the routine.
func Routine[O any](fn func(co *Co) O) Task[O] {
	return &routine[O]{fn: fn}
}

type routine[O any] struct {
	fn      func(co *Co) O
	next    func() (struct{}, bool)
	stop    func()
	output  *O
	cleanup runtime.Cleanup
	done    bool
}

func (r *routine[O]) Poll() (output O, done bool) {
	if r.done {
		panic(violation("poll", ErrCompleted))
	}

	if r.next == nil {
		r.start()
	}

	finished := false
	defer func() {
		if !finished {
			// The body panicked; the coroutine is gone.
			r.release()
		}
	}()

	_, parked := r.next()
	finished = true
	if parked {
		return
	}

	output = *r.output
	r.release()

	return output, true
}

// start creates the coroutine. The coroutine only refers to fn and the
// output cell, so an abandoned routine stays collectable and its cleanup
// can stop the coroutine.
func (r *routine[O]) start() {
	fn := r.fn
	out := new(O)

	r.output = out
	r.next, r.stop = iter.Pull(func(yield func(struct{}) bool) {
		defer func() {
			if p := recover(); p != nil {
				if _, ok := p.(stopRoutine); !ok {
					panic(p)
				}
			}
		}()

		*out = fn(&Co{yield: yield})
	})
	r.cleanup = runtime.AddCleanup(r, func(stop func()) { stop() }, r.stop)
}

// release stops the coroutine and drops the body.
func (r *routine[O]) release() {
	if r.stop != nil {
		r.cleanup.Stop()
		r.stop()
		r.stop = nil
	}
	r.done = true
	r.fn = nil
	r.output = nil
}

// Close stops the coroutine if it is parked.
func (r *routine[O]) Close() (err error) {
	r.release()
	return
}
