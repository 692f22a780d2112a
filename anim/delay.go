package anim

import "time"

type delay[T any] struct {
	child Animation[T]
	lead  time.Duration
}

// Delay holds child's start value for lead before playing it. Negative leads have no effect.
func Delay[T any](child Animation[T], lead time.Duration) Animation[T] {
	return &delay[T]{child: child, lead: nonNegative(lead)}
}

func (d *delay[T]) Duration() time.Duration {
	return addDuration(d.lead, d.child.Duration())
}

func (d *delay[T]) Animate(elapsed time.Duration) (T, Status) {
	if elapsed < d.lead {
		v, _ := d.child.Animate(0)
		return v, Idle
	}
	return d.child.Animate(elapsed - d.lead)
}
