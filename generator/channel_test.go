package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// catch runs fn and returns the protocol violation it panicked with.
func catch(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = p.(*ErrViolation)
		}
	}()
	fn()
	return
}

func TestToken_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	ch := NewChannel[string, int]()
	tok := ch.Suspend("ping")
	assert.False(ch.Pending())

	// Phase 1: publish, not ready.
	value, ready := tok.Poll()
	assert.False(ready)
	assert.Equal(0, value)
	assert.True(ch.Pending())

	yielded, ok := ch.yield()
	assert.True(ok)
	assert.Equal("ping", yielded)

	// Phase 2: ready with the resumed value.
	assert.NoError(ch.resume(99))
	value, ready = tok.Poll()
	assert.True(ready)
	assert.Equal(99, value)
	assert.True(tok.Spent())
	assert.False(ch.Pending())

	// Spent.
	err := catch(func() { tok.Poll() })
	assert.ErrorIs(err, ErrProtocol)
	assert.ErrorIs(err, ErrSpent)
}

func TestToken_NoResume(t *testing.T) {
	assert := assert.New(t)

	ch := NewChannel[string, int]()
	tok := ch.Suspend("ping")
	tok.Poll()

	err := catch(func() { tok.Poll() })
	assert.ErrorIs(err, ErrNoResume)
}

func TestChannel_Overlap(t *testing.T) {
	assert := assert.New(t)

	ch := NewChannel[int, int]()
	first := ch.Suspend(1)
	first.Poll()

	err := catch(func() { ch.Suspend(2) })
	assert.ErrorIs(err, ErrPending)

	// A token created before the first published cannot publish either.
	ch = NewChannel[int, int]()
	a := ch.Suspend(1)
	b := ch.Suspend(2)
	a.Poll()
	err = catch(func() { b.Poll() })
	assert.ErrorIs(err, ErrPending)
}

func TestChannel_Clone(t *testing.T) {
	assert := assert.New(t)

	ch := NewChannel[int, int]()
	clone := ch.Clone()

	tok := clone.Suspend(5)
	tok.Poll()
	assert.True(ch.Pending())

	value, ok := ch.yield()
	assert.True(ok)
	assert.Equal(5, value)

	assert.NoError(ch.resume(6))
	assert.ErrorIs(ch.resume(7), ErrOccupied)

	got, ready := tok.Poll()
	assert.True(ready)
	assert.Equal(6, got)
	assert.False(clone.Pending())
}
