package anim

import "time"

type parallel[T any] struct {
	children []Animation[T]
	duration time.Duration
}

// Parallel plays children at the same time until the longest one finishes.
// Children that finish early hold their final value.
func Parallel[T any](children ...Animation[T]) Animation[[]T] {
	p := &parallel[T]{children: children}
	for _, c := range children {
		if d := c.Duration(); d > p.duration {
			p.duration = d
		}
	}
	return p
}

func (p *parallel[T]) Duration() time.Duration { return p.duration }

func (p *parallel[T]) Animate(elapsed time.Duration) ([]T, Status) {
	values := make([]T, len(p.children))
	statuses := make([]Status, len(p.children))
	for i, c := range p.children {
		values[i], statuses[i] = c.Animate(elapsed)
	}
	return values, combine(statuses...)
}

// combine is Completed when every status is, Idle when every status is.
func combine(statuses ...Status) Status {
	completed, idle := true, true
	for _, st := range statuses {
		if st != Completed {
			completed = false
		}
		if st != Idle {
			idle = false
		}
	}
	switch {
	case completed:
		return Completed
	case idle:
		return Idle
	}
	return Running
}

type zip[A, B any] struct {
	first  Animation[A]
	second Animation[B]
}

// Zip plays two animations of different types in parallel.
func Zip[A, B any](first Animation[A], second Animation[B]) Animation[Pair[A, B]] {
	return &zip[A, B]{first: first, second: second}
}

func (z *zip[A, B]) Duration() time.Duration {
	a, b := z.first.Duration(), z.second.Duration()
	if a > b {
		return a
	}
	return b
}

func (z *zip[A, B]) Animate(elapsed time.Duration) (Pair[A, B], Status) {
	a, sa := z.first.Animate(elapsed)
	b, sb := z.second.Animate(elapsed)
	return Pair[A, B]{First: a, Second: b}, combine(sa, sb)
}

// Merge plays children in parallel and folds their values into one.
func Merge[T any](fold func([]T) T, children ...Animation[T]) Animation[T] {
	return Map(Parallel(children...), fold)
}
