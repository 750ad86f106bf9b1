package generator

type tokenPhase int

const (
	tokenFresh    = tokenPhase(0) // Holds the value to yield.
	tokenAwaiting = tokenPhase(1) // Value published, awaiting resume.
	tokenSpent    = tokenPhase(2) // Resume value consumed.
)

// Token is a single pending suspension. It is a Task that becomes ready
// with the resume value on its second poll.
type Token[Y, R any] struct {
	ex    *exchange[Y, R]
	value Y
	phase tokenPhase
}

// Poll inspects the token.
//
// The first poll publishes the value to the yield slot and reports not
// ready. The second poll, which must follow a resume by the driver, reports
// ready with the resumed value. Any further poll panics with an
// ErrViolation.
func (t *Token[Y, R]) Poll() (value R, ready bool) {
	switch t.phase {
	case tokenFresh:
		ex := t.ex
		if ex.pending {
			panic(violation("poll", ErrPending))
		}
		if !ex.yielded.Put(t.value) {
			panic(violation("poll", ErrPending))
		}
		var zero Y
		t.value = zero
		ex.pending = true
		t.phase = tokenAwaiting
	case tokenAwaiting:
		var ok bool
		value, ok = t.ex.resumed.Take()
		if !ok {
			panic(violation("poll", ErrNoResume))
		}
		t.ex.pending = false
		t.phase = tokenSpent
		ready = true
	default:
		panic(violation("poll", ErrSpent))
	}

	return
}

// Spent reports whether the token has delivered its resume value.
func (t *Token[Y, R]) Spent() bool {
	return t.phase == tokenSpent
}
