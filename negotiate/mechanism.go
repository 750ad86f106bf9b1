package negotiate

// Mechanism is one authentication method of a negotiation.
type Mechanism interface {
	// Name identifies the mechanism in failures and logs.
	Name() string
	// Begin builds the mechanism's generator on ch. The generator is
	// polled by the enclosing negotiation, never started directly.
	Begin(ch Channel) *Generator
}
