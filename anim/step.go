package anim

import "time"

type steps[T any] struct {
	values   func(n int) T
	size     int
	interval time.Duration
}

// Steps shows each value for interval, without interpolation.
func Steps[T any](values []T, interval time.Duration) Animation[T] {
	return &steps[T]{
		values:   func(n int) T { return values[n] },
		size:     len(values),
		interval: nonNegative(interval),
	}
}

// StepsFunc shows f(0), f(1), ... for interval each, forever.
func StepsFunc[T any](f func(n int) T, interval time.Duration) Animation[T] {
	return &steps[T]{values: f, size: -1, interval: nonNegative(interval)}
}

func (s *steps[T]) Duration() time.Duration {
	switch {
	case s.interval == 0:
		return 0
	case s.size < 0:
		return Forever
	}
	return mulDuration(s.interval, float64(s.size))
}

func (s *steps[T]) Animate(elapsed time.Duration) (T, Status) {
	if s.size == 0 {
		var zero T
		return zero, Completed
	}
	status := statusAt(elapsed, s.Duration())
	if s.interval == 0 || elapsed <= 0 {
		return s.values(0), status
	}
	n := int(elapsed / s.interval)
	if s.size > 0 && n >= s.size {
		n = s.size - 1
	}
	return s.values(n), status
}
