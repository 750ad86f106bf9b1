package negotiate

import (
	"errors"
)

// Result is the output of a negotiation: a value on success, or an error,
// usually a *Failure.
type Result struct {
	Value uint32
	Err   error
}

// Ok is a successful result.
func Ok(value uint32) Result {
	return Result{Value: value}
}

// Fail is a failed result reported by mechanism.
func Fail(kind FailureKind, mechanism string, err error) Result {
	return Result{Err: &Failure{Kind: kind, Mechanism: mechanism, Err: err}}
}

// Failure returns the failure carried by the result, if any.
func (res Result) Failure() (fail *Failure, ok bool) {
	ok = errors.As(res.Err, &fail)
	return
}

// Recoverable reports whether the result is a failure that permits a
// fallback mechanism.
func (res Result) Recoverable() bool {
	fail, ok := res.Failure()
	return ok && fail.Recoverable()
}

func (res Result) String() string {
	if res.Err != nil {
		return f("Err(%v)", res.Err)
	}
	return f("Ok(%d)", res.Value)
}
