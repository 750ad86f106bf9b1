package generator

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type phase int

const (
	phaseCreated   = phase(0) // Task attached, not yet driven.
	phaseRunning   = phase(1) // Between suspensions.
	phaseCompleted = phase(2) // Output delivered.
	phaseBroken    = phase(3) // Torn down by a violation or Close.
)

// Generator drives a task that suspends through a Channel.
//
// The driver calls Start once, then Resume with the answer to each
// Suspended state until a Completed state is returned. A Generator must
// not be driven from two call sites at once. A generator abandoned before
// completion must be closed so its task can release what it holds.
type Generator[Y, R, O any] struct {
	Id      string // Unique identifier, used in log entries.
	Verbose bool   // If set, enables verbose logging.

	ch      Channel[Y, R]
	task    Task[O]
	phase   phase
	steps   int
	driving atomic.Bool
}

// New creates a generator whose task is built by producer. The producer
// receives the channel it must suspend on; it is called immediately, but
// the task is not polled until Start. Close the generator if it is
// abandoned before completing.
func New[Y, R, O any](producer func(ch Channel[Y, R]) Task[O]) (g *Generator[Y, R, O]) {
	ch := NewChannel[Y, R]()
	g = NewWithChannel(ch, producer(ch.Clone()))
	return
}

// NewWithChannel creates a generator for a task that suspends on an
// existing channel. Nested producers use this to share the channel of an
// enclosing generator.
func NewWithChannel[Y, R, O any](ch Channel[Y, R], task Task[O]) (g *Generator[Y, R, O]) {
	g = &Generator[Y, R, O]{
		Id:   uuid.NewString(),
		ch:   ch,
		task: task,
	}
	return
}

// Channel returns a clone of the generator's channel.
func (g *Generator[Y, R, O]) Channel() Channel[Y, R] {
	return g.ch.Clone()
}

// Steps returns the number of driving steps taken.
func (g *Generator[Y, R, O]) Steps() int {
	return g.steps
}

// Done reports whether the generator can no longer be driven.
func (g *Generator[Y, R, O]) Done() bool {
	return g.phase == phaseCompleted || g.phase == phaseBroken
}

// Start performs the first driving step.
func (g *Generator[Y, R, O]) Start() (state State[Y, O], err error) {
	if !g.driving.CompareAndSwap(false, true) {
		err = violation("start", ErrConcurrent)
		return
	}
	defer g.driving.Store(false)

	switch g.phase {
	case phaseCreated:
		// pass
	case phaseRunning:
		err = violation("start", ErrStarted)
		return
	case phaseCompleted:
		err = violation("start", ErrCompleted)
		return
	default:
		err = violation("start", ErrBroken)
		return
	}

	if g.Verbose {
		g.logger().Printf("generator: start")
	}

	return g.step("start")
}

// Resume supplies value to the pending suspension and performs one
// driving step.
func (g *Generator[Y, R, O]) Resume(value R) (state State[Y, O], err error) {
	if !g.driving.CompareAndSwap(false, true) {
		err = violation("resume", ErrConcurrent)
		return
	}
	defer g.driving.Store(false)

	switch g.phase {
	case phaseRunning:
		// pass
	case phaseCreated:
		err = violation("resume", ErrNotStarted)
		return
	case phaseCompleted:
		err = violation("resume", ErrCompleted)
		return
	default:
		err = violation("resume", ErrBroken)
		return
	}

	err = g.ch.resume(value)
	if err != nil {
		err = violation("resume", err)
		g.breakDown(err)
		return
	}

	return g.step("resume")
}

// Poll advances the task by one inspection without touching the yield
// slot, making a Generator usable as a nested Task of another producer
// sharing its channel.
func (g *Generator[Y, R, O]) Poll() (output O, done bool) {
	switch g.phase {
	case phaseCompleted:
		panic(violation("poll", ErrCompleted))
	case phaseBroken:
		panic(violation("poll", ErrBroken))
	}
	if g.task == nil {
		panic(violation("poll", ErrNoTask))
	}

	g.phase = phaseRunning

	finished := false
	defer func() {
		if !finished {
			g.phase = phaseBroken
		}
	}()

	output, done = g.task.Poll()
	finished = true

	if done {
		g.phase = phaseCompleted
		g.task = nil
	}

	return
}

// Close releases the task of a generator abandoned before completion.
// A closed generator can no longer be driven. Close fails with an
// ErrConcurrent violation while the generator is being driven.
func (g *Generator[Y, R, O]) Close() (err error) {
	if !g.driving.CompareAndSwap(false, true) {
		err = violation("close", ErrConcurrent)
		return
	}
	defer g.driving.Store(false)

	if g.task != nil {
		err = closeTask(g.task)
		g.task = nil
	}

	if g.phase != phaseCompleted {
		g.ch.reset()
		g.phase = phaseBroken
	}

	return
}

// step polls the task once and reports where it stopped.
func (g *Generator[Y, R, O]) step(op string) (state State[Y, O], err error) {
	defer func() {
		if p := recover(); p != nil {
			v, ok := p.(*ErrViolation)
			if !ok {
				panic(p)
			}
			err = v
			g.breakDown(err)
		}
	}()

	g.steps++

	output, done := g.Poll()
	if done {
		state = State[Y, O]{Kind: Completed, Output: output}
		if g.Verbose {
			g.logger().Printf("generator: completed")
		}
		return
	}

	value, ok := g.ch.yield()
	if !ok {
		err = violation(op, ErrNoYield)
		g.breakDown(err)
		return
	}

	state = State[Y, O]{Kind: Suspended, Yield: value}
	if g.Verbose {
		g.logger().Printf("generator: suspended %v", value)
	}

	return
}

// breakDown tears the task down after a violation.
func (g *Generator[Y, R, O]) breakDown(cause error) {
	if g.Verbose {
		g.logger().WithError(cause).Printf("generator: broken")
	}

	if g.task != nil {
		_ = closeTask(g.task)
		g.task = nil
	}
	g.ch.reset()
	g.phase = phaseBroken
}

func (g *Generator[Y, R, O]) logger() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"generator": g.Id,
		"step":      g.steps,
	})
}
