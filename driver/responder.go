package driver

import (
	"context"

	"github.com/ezrec/yieldgen/negotiate"
)

// Static answers negotiation events from a fixed table: an HttpRequest
// gets Payload, and PayloadLen(n) gets SomeValue(n).
type Static struct {
	Payload negotiate.Response // Answer to HttpRequest; Payload{1, 2, 3} if nil.
}

func (s *Static) Respond(ctx context.Context, event negotiate.Event) (rsp negotiate.Response, err error) {
	switch event := event.(type) {
	case negotiate.HttpRequest:
		rsp = s.Payload
		if rsp == nil {
			rsp = negotiate.Payload{1, 2, 3}
		}
	case negotiate.PayloadLen:
		rsp = negotiate.SomeValue(event)
	default:
		err = ErrEvent
	}

	return
}
