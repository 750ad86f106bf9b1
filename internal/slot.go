package internal

// Slot is a single-value exchange cell. It is either empty or holds
// exactly one value.
type Slot[T any] struct {
	value T
	full  bool
}

// Put stores value, returning false if the slot is already occupied.
func (s *Slot[T]) Put(value T) (ok bool) {
	if s.full {
		return
	}

	s.value = value
	s.full = true
	return true
}

// Take removes and returns the value held by the slot.
func (s *Slot[T]) Take() (value T, ok bool) {
	value, ok = s.Peek()
	if ok {
		var zero T
		s.value = zero
		s.full = false
	}
	return
}

// Peek returns the held value without removing it.
func (s *Slot[T]) Peek() (value T, ok bool) {
	if !s.full {
		return
	}

	return s.value, true
}

func (s *Slot[T]) Full() bool {
	return s.full
}

func (s *Slot[T]) Reset() {
	var zero T
	s.value = zero
	s.full = false
}
