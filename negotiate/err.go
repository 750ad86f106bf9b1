package negotiate

import (
	"errors"

	"github.com/ezrec/yieldgen/translate"
)

var f = translate.From

var (
	ErrUnexpected = errors.New(f("unexpected response"))
	ErrNoResponse = errors.New(f("no response"))
	ErrMechanism  = errors.New(f("unknown mechanism"))
)

// FailureKind tells whether a failed mechanism may be replaced by another.
type FailureKind int

// Recoverable failures try the fallback mechanism; Fatal ones stop the
// negotiation.
//
//go:generate go tool stringer -linecomment -type=FailureKind
const (
	Recoverable = FailureKind(1) // recoverable
	Fatal       = FailureKind(2) // fatal
)

// Failure is a negotiation outcome reported by a mechanism.
type Failure struct {
	Kind      FailureKind
	Mechanism string
	Err       error
}

func (err *Failure) Error() string {
	return f("%v: %v failure: %v", err.Mechanism, err.Kind, err.Err)
}

func (err *Failure) Unwrap() error {
	return err.Err
}

// Recoverable reports whether a fallback mechanism should be attempted.
func (err *Failure) Recoverable() bool {
	return err.Kind == Recoverable
}

// ErrOverLimit is the rejection of a value above the accepted limit.
type ErrOverLimit struct {
	Value uint32
	Limit uint32
}

func (err ErrOverLimit) Error() string {
	return f("value %d over limit %d", err.Value, err.Limit)
}

// ErrUnknownMechanism names a mechanism that is not implemented.
type ErrUnknownMechanism string

func (err ErrUnknownMechanism) Error() string {
	return f("%v '%v'", ErrMechanism, string(err))
}

func (err ErrUnknownMechanism) Unwrap() error {
	return ErrMechanism
}
