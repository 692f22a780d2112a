package anim

import (
	"errors"
	"math"
	"time"
)

// Forever is the duration of an animation that never completes.
const Forever = time.Duration(math.MaxInt64)

// DefaultDuration is used when no duration was given.
const DefaultDuration = time.Second

var (
	// ErrEmpty is returned when a node needs at least one input.
	ErrEmpty = errors.New("anim: empty animation")
	// ErrInfinite is returned when an operation needs a finite duration.
	ErrInfinite = errors.New("anim: animation lasts forever")
	// ErrOutOfRange is returned for fractions outside their valid range.
	ErrOutOfRange = errors.New("anim: value out of range")
	// ErrNegative is returned for negative scale factors.
	ErrNegative = errors.New("anim: negative value")
)

// An Animation is an immutable node of an animation tree. Its duration is fixed
// when it is built and Animate is a pure function of the elapsed time, so nodes
// can be shared freely between trees.
type Animation[T any] interface {
	// Duration is the total play time, or Forever.
	Duration() time.Duration
	// Animate returns the value and local status after elapsed time.
	Animate(elapsed time.Duration) (T, Status)
}

// addDuration saturates at Forever.
func addDuration(a, b time.Duration) time.Duration {
	if a == Forever || b == Forever || a > Forever-b {
		return Forever
	}
	return a + b
}

func mulDuration(d time.Duration, f float64) time.Duration {
	if d == Forever || math.IsInf(f, 1) {
		return Forever
	}
	v := float64(d) * f
	if v >= float64(Forever) {
		return Forever
	}
	if v <= 0 {
		return 0
	}
	return time.Duration(v)
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// statusAt reports the status of a node of the given duration.
func statusAt(elapsed, duration time.Duration) Status {
	elapsed = nonNegative(elapsed)
	switch {
	case duration != Forever && elapsed >= duration:
		return Completed
	case elapsed <= 0:
		return Idle
	}
	return Running
}

type tween[T any] struct {
	from     T
	to       T
	duration time.Duration
	lerp     Interpolator[T]
	easing   Easing
}

// Tween interpolates from -> to over d, shaping progress with easing (nil is linear).
func Tween[T any](from, to T, d time.Duration, lerp Interpolator[T], easing Easing) Animation[T] {
	return &tween[T]{from: from, to: to, duration: nonNegative(d), lerp: lerp, easing: easing}
}

func (a *tween[T]) Duration() time.Duration { return a.duration }

func (a *tween[T]) Animate(elapsed time.Duration) (T, Status) {
	elapsed = nonNegative(elapsed)
	if elapsed >= a.duration {
		return a.to, Completed
	}
	if elapsed <= 0 {
		return a.from, Idle
	}
	t := float64(elapsed) / float64(a.duration)
	return a.lerp(a.from, a.to, a.easing.At(t)), Running
}

type constant[T any] struct {
	value    T
	duration time.Duration
}

// Constant outputs value for d.
func Constant[T any](value T, d time.Duration) Animation[T] {
	return &constant[T]{value: value, duration: nonNegative(d)}
}

func (a *constant[T]) Duration() time.Duration { return a.duration }

func (a *constant[T]) Animate(elapsed time.Duration) (T, Status) {
	return a.value, statusAt(elapsed, a.duration)
}

// Progress outputs the linear progress fraction 0 -> 1 over d.
func Progress(d time.Duration) Animation[float64] {
	return Tween(0.0, 1.0, d, LerpFloat64, Linear)
}
