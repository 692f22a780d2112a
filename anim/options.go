package anim

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Options builds the common single tween animation. Every setter returns a
// modified copy, so an Options value can be reused as a template.
type Options[T any] struct {
	from        T
	to          T
	lerp        Interpolator[T]
	duration    time.Duration
	easing      Easing
	delay       time.Duration
	beginTime   time.Duration
	count       float64
	autoReverse bool
}

// NewOptions starts a from -> to animation lasting DefaultDuration with linear easing.
func NewOptions[T any](from, to T, lerp Interpolator[T]) Options[T] {
	return Options[T]{
		from:     from,
		to:       to,
		lerp:     lerp,
		duration: DefaultDuration,
		easing:   Linear,
		count:    1,
	}
}

// Float starts a float64 animation.
func Float(from, to float64) Options[float64] {
	return NewOptions(from, to, LerpFloat64)
}

// ColorOptions starts a colour animation blended in HCL space.
func ColorOptions(from, to colorful.Color) Options[colorful.Color] {
	return NewOptions(from, to, LerpColorHcl)
}

// From sets the start value.
func (o Options[T]) From(v T) Options[T] {
	o.from = v
	return o
}

// To sets the end value.
func (o Options[T]) To(v T) Options[T] {
	o.to = v
	return o
}

// Duration sets the length of a single play.
func (o Options[T]) Duration(d time.Duration) Options[T] {
	o.duration = nonNegative(d)
	return o
}

// Easing sets the easing curve.
func (o Options[T]) Easing(e Easing) Options[T] {
	o.easing = e
	return o
}

// Delay holds the start value for d before playing.
func (o Options[T]) Delay(d time.Duration) Options[T] {
	o.delay = nonNegative(d)
	return o
}

// BeginTime starts playback d in. It applies once, not on every repeat.
func (o Options[T]) BeginTime(d time.Duration) Options[T] {
	o.beginTime = nonNegative(d)
	return o
}

// Times plays the tween count times.
func (o Options[T]) Times(count float64) Options[T] {
	o.count = count
	return o
}

// Forever repeats the tween until the timeline is stopped.
func (o Options[T]) Forever() Options[T] {
	o.count = RepeatForever
	return o
}

// AutoReverse plays every second repeat backwards, so Times(2) goes there and back.
func (o Options[T]) AutoReverse(autoReverse bool) Options[T] {
	o.autoReverse = autoReverse
	return o
}

// Build creates the animation tree.
func (o Options[T]) Build() Animation[T] {
	a := Tween(o.from, o.to, o.duration, o.lerp, o.easing)
	if o.count != 1 || o.autoReverse {
		a = Repeat(a, o.count, o.autoReverse)
	}
	if o.beginTime > 0 {
		a = Skip(a, o.beginTime)
	}
	if o.delay > 0 {
		a = Delay(a, o.delay)
	}
	return a
}

// Timeline builds an Idle Timeline.
func (o Options[T]) Timeline(opts ...TimelineOption) *Timeline[T] {
	return NewTimeline(o.Build(), opts...)
}

// BeginAnimation builds a Timeline that is already Running at elapsed 0.
func (o Options[T]) BeginAnimation(opts ...TimelineOption) *Timeline[T] {
	tl := o.Timeline(opts...)
	tl.Begin()
	return tl
}
