package anim

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// An Interpolator produces the value at fraction t between from and to.
// It must return from at t=0 and to at t=1.
type Interpolator[T any] func(from, to T, t float64) T

// Animatable is implemented by value types that know how to interpolate themselves.
type Animatable[T any] interface {
	Animate(to T, t float64) T
}

// LerpAnimatable returns the Interpolator of an Animatable type.
func LerpAnimatable[T Animatable[T]]() Interpolator[T] {
	return func(from, to T, t float64) T {
		return from.Animate(to, clamp01(t))
	}
}

// Integer is the set of integer types understood by LerpInt.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// LerpFloat64 interpolates linearly between two float64 values.
func LerpFloat64(from, to float64, t float64) float64 {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return from*(1-t) + to*t
}

// LerpFloat32 interpolates linearly between two float32 values.
func LerpFloat32(from, to float32, t float64) float32 {
	return float32(LerpFloat64(float64(from), float64(to), t))
}

// LerpInt interpolates between two integers, rounding to the nearest step.
func LerpInt[T Integer](from, to T, t float64) T {
	switch {
	case t <= 0 || from == to:
		return from
	case t >= 1:
		return to
	}
	return T(math.Round(LerpFloat64(float64(from), float64(to), t)))
}

// LerpBool holds from until the very end.
func LerpBool(from, to bool, t float64) bool {
	if t < 1 {
		return from
	}
	return to
}

// LerpDuration interpolates between two durations.
func LerpDuration(from, to time.Duration, t float64) time.Duration {
	return LerpInt(from, to, t)
}

// LerpColor blends two colours in RGB space.
func LerpColor(from, to colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return from.BlendRgb(to, t)
}

// LerpColorHcl blends two colours in HCL space, which keeps perceived lightness even.
func LerpColorHcl(from, to colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return from.BlendHcl(to, t)
}

// LerpSlice interpolates two slices element by element. The result has the length
// of to; elements missing from from start at their destination value.
func LerpSlice[T any](elem Interpolator[T]) Interpolator[[]T] {
	return func(from, to []T, t float64) []T {
		out := make([]T, len(to))
		for i := range to {
			if i < len(from) {
				out[i] = elem(from[i], to[i], t)
			} else {
				out[i] = to[i]
			}
		}
		return out
	}
}

// Point is a 2D position.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Animate implements Animatable.
func (p Point) Animate(to Point, t float64) Point {
	return Point{X: LerpFloat64(p.X, to.X, t), Y: LerpFloat64(p.Y, to.Y, t)}
}

// Size is a 2D extent.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Animate implements Animatable.
func (s Size) Animate(to Size, t float64) Size {
	return Size{Width: LerpFloat64(s.Width, to.Width, t), Height: LerpFloat64(s.Height, to.Height, t)}
}

// Pair holds two values animated side by side.
type Pair[A, B any] struct {
	First  A
	Second B
}

// LerpPair interpolates each half of a Pair independently.
func LerpPair[A, B any](a Interpolator[A], b Interpolator[B]) Interpolator[Pair[A, B]] {
	return func(from, to Pair[A, B], t float64) Pair[A, B] {
		return Pair[A, B]{First: a(from.First, to.First, t), Second: b(from.Second, to.Second, t)}
	}
}
