package driver

import (
	"context"
	"errors"
	"math"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/yieldgen/negotiate"
)

// Script answers negotiation events by calling respond(event) in a
// Starlark program.
//
// The event is a dict with a "kind" key: {"kind": "http_request", "url":
// ...} or {"kind": "payload_len", "len": ...}. An int result is answered
// as SomeValue; a string, bytes, or list of ints as Payload.
type Script struct {
	Name    string
	respond starlark.Callable
}

// LoadScript compiles the Starlark program in file.
func LoadScript(file string) (s *Script, err error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return
	}

	return NewScript(file, src)
}

// NewScript compiles a Starlark program. The program must define a
// respond function.
func NewScript(name string, src any) (s *Script, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, nil)
	if err != nil {
		return
	}

	respond, ok := globals["respond"].(starlark.Callable)
	if !ok {
		err = ErrNoRespond
		return
	}

	s = &Script{
		Name:    name,
		respond: respond,
	}
	return
}

func (s *Script) Respond(ctx context.Context, event negotiate.Event) (rsp negotiate.Response, err error) {
	dict := starlark.NewDict(2)
	switch event := event.(type) {
	case negotiate.HttpRequest:
		err = errors.Join(
			dict.SetKey(starlark.String("kind"), starlark.String("http_request")),
			dict.SetKey(starlark.String("url"), starlark.String(event.Url)),
		)
	case negotiate.PayloadLen:
		err = errors.Join(
			dict.SetKey(starlark.String("kind"), starlark.String("payload_len")),
			dict.SetKey(starlark.String("len"), starlark.MakeInt(int(event))),
		)
	default:
		err = ErrEvent
	}
	if err != nil {
		return
	}

	thread := &starlark.Thread{Name: s.Name}
	thread.SetLocal("context", ctx)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	value, err := starlark.Call(thread, s.respond, starlark.Tuple{dict}, nil)
	if err != nil {
		return
	}

	return toResponse(value)
}

// toResponse converts the result of respond().
func toResponse(value starlark.Value) (rsp negotiate.Response, err error) {
	switch value := value.(type) {
	case starlark.Int:
		n, ok := value.Uint64()
		if !ok || n > math.MaxUint32 {
			err = errors.Join(ErrReturn, errors.New(f("%v out of range", value)))
			return
		}
		rsp = negotiate.SomeValue(n)
	case starlark.String:
		rsp = negotiate.Payload(value.GoString())
	case starlark.Bytes:
		rsp = negotiate.Payload(string(value))
	case *starlark.List:
		payload := make(negotiate.Payload, 0, value.Len())
		for i := range value.Len() {
			elem, ok := value.Index(i).(starlark.Int)
			if !ok {
				err = errors.Join(ErrReturn, errors.New(f("list element %v", value.Index(i))))
				return
			}
			b, ok := elem.Uint64()
			if !ok || b > math.MaxUint8 {
				err = errors.Join(ErrReturn, errors.New(f("list element %v out of range", elem)))
				return
			}
			payload = append(payload, byte(b))
		}
		rsp = payload
	default:
		err = errors.Join(ErrReturn, errors.New(f("type %v", value.Type())))
	}

	return
}
