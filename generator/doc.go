// Package generator emulates generators on top of a single-step, cooperative
// driver.
//
// A producer is a computation that pauses at explicit suspension points. At
// each one it hands a value to its driver and later continues with the value
// the driver supplies. No scheduler is involved: the driver pulls the
// producer forward one step at a time with [Generator.Start] and
// [Generator.Resume], and every step ends either at the next suspension
// ([Suspended]) or with the producer's output ([Completed]).
//
// # Suspension Channel and Token
//
// A [Channel] is a pair of single-value cells shared between a producer and
// its driver: the yield cell and the resume cell. Calling [Channel.Suspend]
// inside the producer creates a [Token]. The first time a token is polled it
// publishes its value into the yield cell and reports that it is not ready.
// The driver takes the value out, deposits its answer into the resume cell
// and polls again; the second poll reports ready with that answer. Only one
// token may be outstanding per channel at any time.
//
// # Tasks
//
// Everything the driver steps is a [Task]. Tasks may be written as explicit
// state machines, either by hand or with [Then] and [Map], or as ordinary
// straight-line code with [Routine], which runs the code on a native
// coroutine and parks it whenever it awaits a pending task.
//
// A [Generator] is itself a Task, so a producer can build nested generators
// over clones of its own channel and poll them. A suspension raised deep in a
// nested producer surfaces through the outermost generator unchanged.
//
// # Protocol Violations
//
// Misusing the protocol (resuming before starting, driving a completed
// generator, overlapping suspensions on one channel) is a programming error.
// Violations inside a task panic with an [*ErrViolation]; the generator
// recovers it at the step boundary, returns it as an error and refuses any
// further driving. All violations satisfy errors.Is(err, [ErrProtocol]).
package generator
