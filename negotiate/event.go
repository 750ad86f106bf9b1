package negotiate

import (
	"github.com/ezrec/yieldgen/generator"
)

// Event is a request a negotiation hands to its driver.
type Event interface {
	isEvent()
	String() string
}

// HttpRequest asks the driver to fetch Url.
type HttpRequest struct {
	Url string
}

// PayloadLen asks the driver for a value derived from a payload length.
type PayloadLen int

func (HttpRequest) isEvent() {}
func (PayloadLen) isEvent()  {}

func (ev HttpRequest) String() string {
	return f("HttpRequest{%v}", ev.Url)
}

func (ev PayloadLen) String() string {
	return f("PayloadLen(%d)", int(ev))
}

// Response is the driver's answer to an Event.
type Response interface {
	isResponse()
	String() string
}

// Payload is raw response data.
type Payload []byte

// SomeValue is a numeric response.
type SomeValue uint32

func (Payload) isResponse()   {}
func (SomeValue) isResponse() {}

func (rsp Payload) String() string {
	return f("Payload(%x)", []byte(rsp))
}

func (rsp SomeValue) String() string {
	return f("SomeValue(%d)", uint32(rsp))
}

// Instantiations of the generator types used throughout the package.
type (
	Channel   = generator.Channel[Event, Response]
	Generator = generator.Generator[Event, Response, Result]
	Task      = generator.Task[Result]
	State     = generator.State[Event, Result]
)
