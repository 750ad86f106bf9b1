package negotiate

import (
	"github.com/ezrec/yieldgen/generator"
)

const DefaultNtlmValue = 10

// Ntlm completes at once with Value, without any round trip.
type Ntlm struct {
	Value uint32
}

func (n *Ntlm) Name() string {
	return "ntlm"
}

func (n *Ntlm) Begin(ch Channel) *Generator {
	return generator.NewWithChannel(ch, generator.Ready(Ok(n.Value)))
}
