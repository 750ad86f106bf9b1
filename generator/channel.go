package generator

import (
	"github.com/ezrec/yieldgen/internal"
)

// exchange is the slot pair behind every clone of a Channel.
type exchange[Y, R any] struct {
	yielded internal.Slot[Y]
	resumed internal.Slot[R]
	pending bool // A token has published and awaits its resume value.
}

// Channel is the suspension channel shared by a producer and its driver.
//
// A Channel is a handle; copies and clones refer to the same slots. Only
// the producer side calls Suspend. The zero Channel is not usable, call
// NewChannel.
type Channel[Y, R any] struct {
	ex *exchange[Y, R]
}

// NewChannel creates a channel with empty yield and resume slots.
func NewChannel[Y, R any]() Channel[Y, R] {
	return Channel[Y, R]{ex: &exchange[Y, R]{}}
}

// Clone returns another handle on the same slots, granting its holder the
// ability to suspend through the same driver.
func (ch Channel[Y, R]) Clone() Channel[Y, R] {
	return Channel[Y, R]{ex: ch.ex}
}

// Suspend creates the token for one suspension that yields value.
//
// Suspend panics with an ErrViolation if an earlier token on the channel
// has not yet received its resume value.
func (ch Channel[Y, R]) Suspend(value Y) *Token[Y, R] {
	if ch.ex.pending {
		panic(violation("suspend", ErrPending))
	}

	return &Token[Y, R]{
		ex:    ch.ex,
		value: value,
	}
}

// Pending reports whether a suspension on the channel awaits a resume value.
func (ch Channel[Y, R]) Pending() bool {
	return ch.ex.pending
}

// yield takes the value published by the pending token.
func (ch Channel[Y, R]) yield() (value Y, ok bool) {
	return ch.ex.yielded.Take()
}

// resume deposits the answer for the pending token.
func (ch Channel[Y, R]) resume(value R) (err error) {
	if !ch.ex.resumed.Put(value) {
		err = ErrOccupied
	}
	return
}

// reset discards slot contents after the task has been torn down.
func (ch Channel[Y, R]) reset() {
	ch.ex.yielded.Reset()
	ch.ex.resumed.Reset()
	ch.ex.pending = false
}
