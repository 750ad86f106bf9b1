package driver

import (
	"context"

	"github.com/ezrec/yieldgen/generator"
)

// Responder answers the values yielded by a generator.
type Responder[Y, R any] interface {
	Respond(ctx context.Context, yield Y) (R, error)
}

// ResponderFunc adapts a function to a Responder.
type ResponderFunc[Y, R any] func(ctx context.Context, yield Y) (R, error)

func (fn ResponderFunc[Y, R]) Respond(ctx context.Context, yield Y) (R, error) {
	return fn(ctx, yield)
}

// Run starts g and answers each suspension with r until g completes.
//
// The context is checked before every step; a cancelled run abandons the
// generator. Errors are wrapped in *ErrStep. The generator is always closed
// on return.
func Run[Y, R, O any](ctx context.Context, g *generator.Generator[Y, R, O], r Responder[Y, R]) (output O, err error) {
	defer func() {
		cerr := g.Close()
		if err == nil && cerr != nil {
			err = &ErrStep{Step: g.Steps(), Err: cerr}
		}
	}()

	fail := func(e error) {
		err = &ErrStep{Step: g.Steps(), Err: e}
	}

	if err = ctx.Err(); err != nil {
		fail(err)
		return
	}

	state, err := g.Start()
	for err == nil && state.Kind == generator.Suspended {
		if g.Verbose {
			Log.WithField("generator", g.Id).Printf("driver: step %d yielded %v", g.Steps(), state.Yield)
		}

		var value R
		value, err = r.Respond(ctx, state.Yield)
		if err != nil {
			break
		}

		if err = ctx.Err(); err != nil {
			break
		}

		state, err = g.Resume(value)
	}

	if err != nil {
		fail(err)
		return
	}

	output = state.Output
	return
}
