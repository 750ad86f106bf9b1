package negotiate

import (
	"github.com/ezrec/yieldgen/generator"
)

const (
	DefaultUrl   = "test" // Default request target.
	DefaultLimit = 100    // Largest value Kerberos accepts by default.
)

// Kerberos requests Url, or DefaultUrl if empty, once and accepts a
// SomeValue no larger than Limit. Any other answer is a recoverable failure,
// except a missing one, which is fatal.
type Kerberos struct {
	Url   string
	Limit uint32
}

func (k *Kerberos) Name() string {
	return "kerberos"
}

func (k *Kerberos) Begin(ch Channel) *Generator {
	url := k.Url
	if len(url) == 0 {
		url = DefaultUrl
	}

	task := generator.Then[Response, Result](ch.Suspend(HttpRequest{Url: url}), func(rsp Response) Task {
		return generator.Ready(k.accept(rsp))
	})

	return generator.NewWithChannel(ch, task)
}

func (k *Kerberos) accept(rsp Response) (res Result) {
	switch rsp := rsp.(type) {
	case SomeValue:
		if uint32(rsp) > k.Limit {
			res = Fail(Recoverable, k.Name(), ErrOverLimit{Value: uint32(rsp), Limit: k.Limit})
			return
		}
		res = Ok(uint32(rsp))
	case Payload:
		res = Fail(Recoverable, k.Name(), ErrUnexpected)
	default:
		res = Fail(Fatal, k.Name(), ErrNoResponse)
	}

	return
}
