package anim

import (
	"fmt"
	"math"
	"time"
)

// SeekFrom describes where a Seek starts playing its child.
type SeekFrom struct {
	offset  time.Duration
	percent float64
	whence  int
}

const (
	seekStart = iota
	seekEnd
	seekPercent
)

// FromStart skips d from the beginning.
func FromStart(d time.Duration) SeekFrom { return SeekFrom{offset: d, whence: seekStart} }

// FromEnd starts d before the end.
func FromEnd(d time.Duration) SeekFrom { return SeekFrom{offset: d, whence: seekEnd} }

// FromPercent starts at fraction p of the child; negative p counts back from the end.
func FromPercent(p float64) SeekFrom { return SeekFrom{percent: p, whence: seekPercent} }

type skip[T any] struct {
	child    Animation[T]
	progress time.Duration
}

// Skip starts child d into its play time.
func Skip[T any](child Animation[T], d time.Duration) Animation[T] {
	return &skip[T]{child: child, progress: nonNegative(d)}
}

// Seek starts child at the given position. Seeking from the end or by percent
// needs a finite child.
func Seek[T any](child Animation[T], from SeekFrom) (Animation[T], error) {
	d := child.Duration()
	switch from.whence {
	case seekEnd:
		if d == Forever {
			return nil, fmt.Errorf("seek from end: %w", ErrInfinite)
		}
		return Skip(child, d-from.offset), nil
	case seekPercent:
		if d == Forever {
			return nil, fmt.Errorf("seek by percent: %w", ErrInfinite)
		}
		p := from.percent
		if p < -1 || p > 1 || math.IsNaN(p) {
			return nil, fmt.Errorf("seek by percent %v: %w", p, ErrOutOfRange)
		}
		if p < 0 {
			p = 1 + p
		}
		return Skip(child, mulDuration(d, p)), nil
	}
	return Skip(child, from.offset), nil
}

func (s *skip[T]) Duration() time.Duration {
	d := s.child.Duration()
	switch {
	case d == Forever:
		return Forever
	case d > s.progress:
		return d - s.progress
	}
	return 0
}

func (s *skip[T]) Animate(elapsed time.Duration) (T, Status) {
	v, st := s.child.Animate(addDuration(s.progress, nonNegative(elapsed)))
	if st != Completed {
		st = statusAt(elapsed, s.Duration())
	}
	return v, st
}

type take[T any] struct {
	child    Animation[T]
	duration time.Duration
}

// Take cuts child off after d.
func Take[T any](child Animation[T], d time.Duration) Animation[T] {
	d = nonNegative(d)
	if cd := child.Duration(); cd < d {
		d = cd
	}
	return &take[T]{child: child, duration: d}
}

func (t *take[T]) Duration() time.Duration { return t.duration }

func (t *take[T]) Animate(elapsed time.Duration) (T, Status) {
	if elapsed > t.duration {
		elapsed = t.duration
	}
	v, _ := t.child.Animate(elapsed)
	return v, statusAt(elapsed, t.duration)
}

type scale[T any] struct {
	child  Animation[T]
	factor float64
}

// Scale stretches child's play time by factor: below 1 plays faster, above 1 slower.
func Scale[T any](child Animation[T], factor float64) (Animation[T], error) {
	if factor < 0 || math.IsNaN(factor) {
		return nil, fmt.Errorf("scale %v: %w", factor, ErrNegative)
	}
	return &scale[T]{child: child, factor: factor}, nil
}

// SpeedUp plays child ratio times faster.
func SpeedUp[T any](child Animation[T], ratio float64) (Animation[T], error) {
	if ratio <= 0 || math.IsNaN(ratio) {
		return nil, fmt.Errorf("speed up %v: %w", ratio, ErrNegative)
	}
	return Scale(child, 1/ratio)
}

func (s *scale[T]) Duration() time.Duration {
	if s.factor == 0 {
		return 0
	}
	return mulDuration(s.child.Duration(), s.factor)
}

func (s *scale[T]) Animate(elapsed time.Duration) (T, Status) {
	if s.factor == 0 || elapsed >= s.Duration() {
		v, _ := s.child.Animate(s.child.Duration())
		return v, Completed
	}
	return s.child.Animate(mulDuration(nonNegative(elapsed), 1/s.factor))
}
