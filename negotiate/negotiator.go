package negotiate

import (
	"github.com/ezrec/yieldgen/generator"
)

// Config selects and parameterises the mechanisms of a Negotiator.
type Config struct {
	Url       string // Kerberos request target.
	Limit     uint32 // Largest value Kerberos accepts.
	Fallback  string // "ntlm" or "digest".
	NtlmValue uint32 // Value Ntlm completes with.
	Challenge []byte // Digest challenge.
	Verbose   bool   // If set, enables verbose logging.
}

// DefaultConfig is Kerberos on DefaultUrl falling back to Ntlm.
func DefaultConfig() Config {
	return Config{
		Url:       DefaultUrl,
		Limit:     DefaultLimit,
		Fallback:  "ntlm",
		NtlmValue: DefaultNtlmValue,
	}
}

// Negotiator begins negotiations of Primary with fallback to Fallback.
type Negotiator struct {
	Primary  Mechanism
	Fallback Mechanism
	Verbose  bool
}

// NewNegotiator builds a Kerberos negotiator with the configured fallback.
func NewNegotiator(cfg Config) (n *Negotiator, err error) {
	var fallback Mechanism
	switch cfg.Fallback {
	case "", "ntlm":
		fallback = &Ntlm{Value: cfg.NtlmValue}
	case "digest":
		fallback = &Digest{Challenge: cfg.Challenge}
	default:
		err = ErrUnknownMechanism(cfg.Fallback)
		return
	}

	n = &Negotiator{
		Primary:  &Kerberos{Url: cfg.Url, Limit: cfg.Limit},
		Fallback: fallback,
		Verbose:  cfg.Verbose,
	}
	return
}

// Begin creates the generator of a new negotiation. Drive it with Start
// and Resume, answering each Event, until it completes with a Result, or
// Close it if the negotiation is abandoned.
func (n *Negotiator) Begin() (g *Generator) {
	g = generator.New(func(ch Channel) Task {
		c := NewComposite(ch, n.Primary, n.Fallback)
		c.Verbose = n.Verbose
		return c
	})
	g.Verbose = n.Verbose
	return
}
