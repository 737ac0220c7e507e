package spec

// LazySlot holds an auxiliary object that is created on first access and then
// returned unchanged for the lifetime of its owner.
type LazySlot[T any] struct {
	value        T
	set          bool
	initializing bool
}

// GetOrInit returns the stored value, calling factory exactly once to create it.
// Calling GetOrInit on the same slot from inside factory panics.
func (s *LazySlot[T]) GetOrInit(factory func() T) T {
	if s.set {
		return s.value
	}
	if s.initializing {
		panic("spec: reentrant LazySlot initialization")
	}

	s.initializing = true
	defer func() { s.initializing = false }()

	s.value = factory()
	s.set = true
	return s.value
}

// Get returns the value without creating it.
func (s *LazySlot[T]) Get() (T, bool) {
	return s.value, s.set
}
