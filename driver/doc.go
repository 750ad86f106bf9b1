// Package driver runs generators to completion by answering each value
// they yield with a Responder.
//
// Run drives a single generator. RunAll drives many independent
// negotiations at once, one goroutine per generator. Static and Script are
// responders for negotiation events: Static reproduces a fixed answer
// table, Script delegates to a Starlark function.
package driver
