package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThen(t *testing.T) {
	assert := assert.New(t)

	polls := 0
	slow := TaskFunc[int](func() (int, bool) {
		polls++
		return polls * 10, polls == 3
	})

	task := Then[int, string](slow, func(v int) Task[string] {
		return Ready(f("got %d", v))
	})

	for range 2 {
		_, done := task.Poll()
		assert.False(done)
	}

	out, done := task.Poll()
	assert.True(done)
	assert.Equal("got 30", out)
	assert.Equal(3, polls)
}

func TestMap(t *testing.T) {
	assert := assert.New(t)

	out, done := Map(Ready(4), func(v int) bool { return v%2 == 0 }).Poll()
	assert.True(done)
	assert.True(out)
}

type closer struct {
	closed int
}

func (c *closer) Poll() (int, bool) { return 0, false }
func (c *closer) Close() error {
	c.closed++
	return errors.New("closed")
}

func TestThen_Close(t *testing.T) {
	assert := assert.New(t)

	first := &closer{}
	task := Then[int, int](first, func(v int) Task[int] { return Ready(v) })
	task.Poll()

	err := closeTask(task)
	assert.EqualError(err, "closed")
	assert.Equal(1, first.closed)

	// Tasks without resources close silently.
	assert.NoError(closeTask(Ready(1)))
}

func TestRoutine(t *testing.T) {
	assert := assert.New(t)

	ticks := 0
	tick := TaskFunc[int](func() (int, bool) {
		ticks++
		return ticks, ticks%2 == 0
	})

	task := Routine(func(co *Co) []int {
		return []int{Await[int](co, tick), Await[int](co, tick)}
	})

	var polls int
	var out []int
	for done := false; !done; {
		out, done = task.Poll()
		polls++
	}

	assert.Equal([]int{2, 4}, out)
	assert.Equal(3, polls)

	err := catch(func() { task.Poll() })
	assert.ErrorIs(err, ErrCompleted)
}

func TestRoutine_Panic(t *testing.T) {
	task := Routine(func(co *Co) int {
		panic(violation("test", ErrNoTask))
	})

	err := catch(func() { task.Poll() })
	assert.ErrorIs(t, err, ErrNoTask)
}

func TestRoutine_Close(t *testing.T) {
	assert := assert.New(t)

	unwound := false
	task := Routine(func(co *Co) int {
		defer func() { unwound = true }()
		return Await[int](co, TaskFunc[int](func() (int, bool) { return 0, false }))
	})

	_, done := task.Poll()
	assert.False(done)
	assert.False(unwound)

	assert.NoError(closeTask(task))
	assert.True(unwound)
}

func TestStatus_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Suspended", Suspended.String())
	assert.Equal("Completed", Completed.String())
	assert.Equal("Status(7)", Status(7).String())
}
