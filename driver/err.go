package driver

import (
	"errors"

	"github.com/ezrec/yieldgen/translate"
)

var f = translate.From

var (
	ErrNoRespond = errors.New(f("script does not define respond()"))
	ErrEvent     = errors.New(f("unsupported event"))
	ErrReturn    = errors.New(f("unsupported respond() return value"))
)

// ErrStep indicates the driving step at which a run failed.
type ErrStep struct {
	Step int
	Err  error
}

func (err *ErrStep) Error() string {
	return f("step %d: %v", err.Step, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}
