// Package negotiate implements a two stage authentication negotiation on
// top of the generator package.
//
// A [Negotiator] tries its primary [Mechanism] and, when that reports a
// recoverable [Failure], starts its fallback mechanism on the same
// suspension channel. Every network round trip is a suspension: the
// negotiation yields an [Event] and continues with the [Response] the
// driver supplies.
package negotiate
