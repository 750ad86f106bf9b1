package generator

// Status tags the outcome of one driving step.
type Status int

//go:generate go tool stringer -type=Status
const (
	Suspended = Status(0) // Paused at a suspension; Yield is valid.
	Completed = Status(1) // Finished; Output is valid.
)

// State is the result of one driving step.
type State[Y, O any] struct {
	Kind   Status
	Yield  Y
	Output O
}

// Done reports whether the step completed the generator.
func (st State[Y, O]) Done() bool {
	return st.Kind == Completed
}
