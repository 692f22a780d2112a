package anim

import "time"

type mapped[S, T any] struct {
	src Animation[S]
	f   func(S) T
}

// Map converts the values of src with f.
func Map[S, T any](src Animation[S], f func(S) T) Animation[T] {
	return &mapped[S, T]{src: src, f: f}
}

func (m *mapped[S, T]) Duration() time.Duration { return m.src.Duration() }

func (m *mapped[S, T]) Animate(elapsed time.Duration) (T, Status) {
	v, st := m.src.Animate(elapsed)
	return m.f(v), st
}
