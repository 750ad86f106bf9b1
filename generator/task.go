package generator

import (
	"io"
)

// Task is a computation advanced one inspection at a time.
//
// Poll runs the task until it either completes, returning its output and
// true, or reaches a suspension, returning false. Tasks never block.
type Task[O any] interface {
	Poll() (output O, done bool)
}

// TaskFunc adapts a poll function to the Task interface.
type TaskFunc[O any] func() (O, bool)

// Poll calls fn.
func (fn TaskFunc[O]) Poll() (O, bool) {
	return fn()
}

// Ready returns a task that completes on its first poll with value.
func Ready[O any](value O) Task[O] {
	return TaskFunc[O](func() (O, bool) {
		return value, true
	})
}

// Then sequences two tasks: once first completes, next builds the task
// that produces the final output. The second task is polled in the same
// step in which the first completes.
func Then[A, B any](first Task[A], next func(A) Task[B]) Task[B] {
	return &then[A, B]{first: first, next: next}
}

// Map transforms the output of task with fn.
func Map[A, B any](task Task[A], fn func(A) B) Task[B] {
	return Then(task, func(a A) Task[B] {
		return Ready(fn(a))
	})
}

type then[A, B any] struct {
	first  Task[A]
	next   func(A) Task[B]
	second Task[B]
}

func (t *then[A, B]) Poll() (output B, done bool) {
	if t.second == nil {
		var value A
		value, done = t.first.Poll()
		if !done {
			return
		}
		t.second = t.next(value)
		t.first = nil
		t.next = nil
	}

	return t.second.Poll()
}

// Close releases whichever stage is active.
func (t *then[A, B]) Close() (err error) {
	if t.second != nil {
		return closeTask(t.second)
	}
	if t.first != nil {
		return closeTask(t.first)
	}
	return
}

// closeTask closes task if it holds resources.
func closeTask(task any) (err error) {
	if closer, ok := task.(io.Closer); ok {
		err = closer.Close()
	}
	return
}
