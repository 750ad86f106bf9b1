package driver

import (
	"context"
	"strconv"

	"github.com/dlsniper/debugger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/yieldgen/negotiate"
)

// Session is one negotiation to drive.
type Session struct {
	Id        string                                          // Generated if empty.
	Generator *negotiate.Generator                            // Negotiation to drive.
	Responder Responder[negotiate.Event, negotiate.Response] // Answers its events.
}

// Outcome is the result of driving one Session.
type Outcome struct {
	Id     string
	Result negotiate.Result // Set when Err is nil.
	Steps  int
	Err    error // Driving failure, never a negotiation failure.
}

// RunAll drives the sessions concurrently, at most limit at a time, or
// without bound if limit is not positive. Outcomes are returned in session
// order. A failing session does not stop the others; the returned error
// is only set if ctx ends before every session was driven.
func RunAll(ctx context.Context, limit int, sessions []Session) (outcomes []Outcome, err error) {
	outcomes = make([]Outcome, len(sessions))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for n, session := range sessions {
		id := session.Id
		if len(id) == 0 {
			id = uuid.NewString()
		}
		outcomes[n].Id = id

		eg.Go(func() error {
			debugger.SetLabels(func() []string {
				return []string{
					"driver: session", id,
					"index", strconv.Itoa(n),
				}
			})

			result, rerr := Run(egCtx, session.Generator, session.Responder)
			outcomes[n].Result = result
			outcomes[n].Steps = session.Generator.Steps()
			outcomes[n].Err = rerr

			// Session failures are reported per outcome.
			return nil
		})
	}

	err = eg.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return
}
