// Package anim computes animated values from elapsed time.
//
// Animations are immutable trees built from Tween and the combinators Sequence,
// Parallel, Repeat, Delay and Map (plus KeyFrames, Steps, Seek, Take and Scale).
// A Timeline owns one tree and turns the deltas a host passes to Update into a
// cached value and a Status. Nothing in this package starts goroutines or timers;
// the host owns the clock.
//
//	tl := anim.Float(20, 100).Duration(time.Second).BeginAnimation()
//	tl.Update(500 * time.Millisecond) // Running, tl.Value() == 60
//	tl.Update(500 * time.Millisecond) // Completed, tl.Value() == 100
package anim
