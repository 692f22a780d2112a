package anim

import (
	"log"
	"time"
)

type timelineConfig struct {
	loop        bool
	count       float64
	autoReverse bool
	logger      *log.Logger
}

// A TimelineOption configures a Timeline.
type TimelineOption func(*timelineConfig)

// WithLoop repeats the whole animation count times (RepeatForever for endless).
func WithLoop(count float64, autoReverse bool) TimelineOption {
	return func(c *timelineConfig) {
		c.loop = true
		c.count = count
		c.autoReverse = autoReverse
	}
}

// WithLogger logs status transitions.
func WithLogger(logger *log.Logger) TimelineOption {
	return func(c *timelineConfig) {
		c.logger = logger
	}
}

// Timeline drives an Animation tree from externally supplied time deltas.
//
// A new Timeline is Idle; the first Update starts it. Stop returns it to Idle with
// its progress cleared. A Timeline is not safe for concurrent use, see SyncTimeline.
type Timeline[T any] struct {
	animation Animation[T]
	status    Status
	elapsed   time.Duration
	value     T
	logger    *log.Logger
}

// NewTimeline creates an Idle Timeline that owns animation.
func NewTimeline[T any](animation Animation[T], opts ...TimelineOption) *Timeline[T] {
	var cfg timelineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.loop {
		animation = Repeat(animation, cfg.count, cfg.autoReverse)
	}

	tl := new(Timeline[T])
	tl.animation = animation
	tl.status = Idle
	tl.logger = cfg.logger
	tl.evaluate()
	return tl
}

// Animation returns the root of the animation tree.
func (tl *Timeline[T]) Animation() Animation[T] { return tl.animation }

// Duration is the total play time of the animation tree.
func (tl *Timeline[T]) Duration() time.Duration { return tl.animation.Duration() }

// Status returns the current playback status.
func (tl *Timeline[T]) Status() Status { return tl.status }

// Elapsed returns the accumulated play time.
func (tl *Timeline[T]) Elapsed() time.Duration { return tl.elapsed }

// Value returns the value produced by the last evaluation.
func (tl *Timeline[T]) Value() T { return tl.value }

// Update advances the timeline by delta and returns the new status. Negative
// deltas count as zero. Paused and Completed timelines do not move.
func (tl *Timeline[T]) Update(delta time.Duration) Status {
	switch tl.status {
	case Paused, Completed:
		return tl.status
	case Idle:
		tl.setStatus(Running)
	}

	if delta > 0 {
		tl.elapsed = addDuration(tl.elapsed, delta)
	}
	if tl.evaluate() == Completed {
		tl.setStatus(Completed)
	}
	return tl.status
}

// Begin (re)starts playback from the beginning.
func (tl *Timeline[T]) Begin() {
	tl.elapsed = 0
	tl.setStatus(Running)
	if tl.evaluate() == Completed {
		tl.setStatus(Completed)
	}
}

// Pause freezes a running timeline.
func (tl *Timeline[T]) Pause() {
	if tl.status == Running {
		tl.setStatus(Paused)
	}
}

// Resume continues a paused timeline from where it was paused.
func (tl *Timeline[T]) Resume() {
	if tl.status == Paused {
		tl.setStatus(Running)
	}
}

// Stop returns the timeline to Idle and clears its progress.
func (tl *Timeline[T]) Stop() {
	tl.elapsed = 0
	tl.setStatus(Idle)
	tl.evaluate()
}

// Seek jumps to elapsed. Running and Completed timelines pick their status from the
// new position; Idle and Paused timelines keep theirs.
func (tl *Timeline[T]) Seek(elapsed time.Duration) {
	tl.elapsed = nonNegative(elapsed)
	st := tl.evaluate()
	switch {
	case tl.status == Running && st == Completed:
		tl.setStatus(Completed)
	case tl.status == Completed && st != Completed:
		tl.setStatus(Running)
	}
}

func (tl *Timeline[T]) evaluate() Status {
	var st Status
	tl.value, st = tl.animation.Animate(tl.elapsed)
	return st
}

func (tl *Timeline[T]) setStatus(s Status) {
	if tl.status == s {
		return
	}
	if tl.logger != nil {
		tl.logger.Printf("timeline %v -> %v at %v", tl.status, s, tl.elapsed)
	}
	tl.status = s
}
