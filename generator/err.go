package generator

import (
	"errors"

	"github.com/ezrec/yieldgen/translate"
)

var f = translate.From

var (
	// ErrProtocol is matched by every protocol violation.
	ErrProtocol = errors.New(f("generator protocol violation"))

	// Generator lifecycle errors
	ErrStarted    = errors.New(f("generator already started"))
	ErrNotStarted = errors.New(f("generator not started"))
	ErrCompleted  = errors.New(f("generator completed"))
	ErrBroken     = errors.New(f("generator torn down"))
	ErrConcurrent = errors.New(f("generator driven concurrently"))
	ErrNoYield    = errors.New(f("task pending without suspension"))
	ErrNoTask     = errors.New(f("generator has no task"))

	// Suspension errors
	ErrPending  = errors.New(f("suspension already pending"))
	ErrSpent    = errors.New(f("suspension token spent"))
	ErrNoResume = errors.New(f("no resumed value"))
	ErrOccupied = errors.New(f("resume slot occupied"))
)

// ErrViolation is a protocol violation detected by operation Op.
type ErrViolation struct {
	Op  string
	Err error
}

func (err *ErrViolation) Error() string {
	return f("%v: %v: %v", ErrProtocol, err.Op, err.Err)
}

func (err *ErrViolation) Unwrap() []error {
	return []error{ErrProtocol, err.Err}
}

func violation(op string, err error) *ErrViolation {
	return &ErrViolation{Op: op, Err: err}
}
