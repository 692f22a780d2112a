package anim

import "time"

type sequence[T any] struct {
	children []Animation[T]
	duration time.Duration
}

// Sequence plays children one after another.
func Sequence[T any](children ...Animation[T]) Animation[T] {
	s := &sequence[T]{children: children}
	for _, c := range children {
		s.duration = addDuration(s.duration, c.Duration())
	}
	return s
}

// Chain appends next to first.
func Chain[T any](first, next Animation[T]) Animation[T] {
	return Sequence(first, next)
}

func (s *sequence[T]) Duration() time.Duration { return s.duration }

func (s *sequence[T]) Animate(elapsed time.Duration) (T, Status) {
	if len(s.children) == 0 {
		var zero T
		return zero, Completed
	}
	elapsed = nonNegative(elapsed)

	var offset time.Duration
	for i, c := range s.children {
		end := addDuration(offset, c.Duration())
		if i < len(s.children)-1 && elapsed >= end {
			offset = end
			continue
		}

		v, st := c.Animate(elapsed - offset)
		switch {
		case s.duration != Forever && elapsed >= s.duration:
			st = Completed
		case i > 0 && (st == Completed || (st == Idle && elapsed > 0)):
			// Boundaries between children are still mid-sequence.
			st = Running
		}
		return v, st
	}
	panic("unreachable")
}
