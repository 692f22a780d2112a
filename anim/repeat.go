package anim

import (
	"math"
	"time"
)

// RepeatForever repeats an animation until the Timeline is stopped.
var RepeatForever = math.Inf(1)

type repeat[T any] struct {
	child       Animation[T]
	count       float64
	autoReverse bool
	duration    time.Duration
}

// Repeat plays child count times (count may be fractional or RepeatForever).
// With autoReverse every odd cycle plays backwards.
func Repeat[T any](child Animation[T], count float64, autoReverse bool) Animation[T] {
	if count < 0 || math.IsNaN(count) {
		count = 0
	}
	r := &repeat[T]{child: child, count: count, autoReverse: autoReverse}
	switch d := child.Duration(); {
	case d == 0:
		r.duration = 0
	case d == Forever:
		r.duration = Forever
	default:
		r.duration = mulDuration(d, count)
	}
	return r
}

// Times repeats child count times.
func Times[T any](child Animation[T], count float64) Animation[T] {
	return Repeat(child, count, false)
}

// Loop repeats child forever.
func Loop[T any](child Animation[T]) Animation[T] {
	return Repeat(child, RepeatForever, false)
}

// PingPong plays child forwards then backwards forever.
func PingPong[T any](child Animation[T]) Animation[T] {
	return Repeat(child, RepeatForever, true)
}

func (r *repeat[T]) Duration() time.Duration { return r.duration }

func (r *repeat[T]) Animate(elapsed time.Duration) (T, Status) {
	cycle := r.child.Duration()
	if cycle == Forever {
		return r.child.Animate(elapsed)
	}
	elapsed = nonNegative(elapsed)
	status := statusAt(elapsed, r.duration)
	if cycle == 0 || r.duration == 0 {
		var at time.Duration
		if r.count > 0 {
			at = cycle
		}
		v, _ := r.child.Animate(at)
		return v, Completed
	}
	if elapsed > r.duration {
		elapsed = r.duration
	}

	n := int64(elapsed / cycle)
	local := elapsed - time.Duration(n)*cycle
	if n > 0 && local == 0 {
		// The end of a cycle belongs to that cycle, not the start of the next.
		n--
		local = cycle
	}
	if r.autoReverse && n%2 == 1 {
		local = cycle - local
	}
	v, _ := r.child.Animate(local)
	return v, status
}
