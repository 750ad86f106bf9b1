package negotiate

import (
	"github.com/ezrec/yieldgen/generator"
)

// Digest reports the length of its challenge and accepts the SomeValue it
// gets back. A payload answer is fatal.
type Digest struct {
	Challenge []byte
}

func (d *Digest) Name() string {
	return "digest"
}

func (d *Digest) Begin(ch Channel) *Generator {
	task := generator.Then[Response, Result](ch.Suspend(PayloadLen(len(d.Challenge))), func(rsp Response) Task {
		return generator.Ready(d.accept(rsp))
	})

	return generator.NewWithChannel(ch, task)
}

func (d *Digest) accept(rsp Response) (res Result) {
	switch rsp := rsp.(type) {
	case SomeValue:
		res = Ok(uint32(rsp))
	case Payload:
		res = Fail(Fatal, d.Name(), ErrUnexpected)
	default:
		res = Fail(Fatal, d.Name(), ErrNoResponse)
	}

	return
}
