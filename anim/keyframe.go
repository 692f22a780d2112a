package anim

import (
	"fmt"
	"sort"
	"time"
)

// A KeyTime places a KeyFrame either at a fixed offset or at a fraction of the
// whole animation.
type KeyTime struct {
	offset    time.Duration
	percent   float64
	byPercent bool
}

// At places a key frame at offset d.
func At(d time.Duration) KeyTime {
	return KeyTime{offset: nonNegative(d)}
}

// Percent places a key frame at fraction p (0..1) of the animation.
func Percent(p float64) KeyTime {
	return KeyTime{percent: p, byPercent: true}
}

// A KeyFrame is a value the animation passes through. Easing shapes the segment
// leading up to the frame.
type KeyFrame[T any] struct {
	Value  T
	Time   KeyTime
	Easing Easing
}

// Key creates a linear KeyFrame.
func Key[T any](value T, at KeyTime) KeyFrame[T] {
	return KeyFrame[T]{Value: value, Time: at, Easing: Linear}
}

// WithEasing returns a copy of k using e.
func (k KeyFrame[T]) WithEasing(e Easing) KeyFrame[T] {
	k.Easing = e
	return k
}

type resolvedFrame[T any] struct {
	value  T
	at     time.Duration
	easing Easing
}

type keyFrames[T any] struct {
	frames   []resolvedFrame[T]
	lerp     Interpolator[T]
	duration time.Duration
}

// KeyFrames passes through each frame in time order. The duration is the latest
// fixed offset, or DefaultDuration when all frames are placed by percentage.
func KeyFrames[T any](lerp Interpolator[T], frames ...KeyFrame[T]) (Animation[T], error) {
	if len(frames) == 0 {
		return nil, ErrEmpty
	}

	duration := time.Duration(-1)
	for _, f := range frames {
		if !f.Time.byPercent && f.Time.offset > duration {
			duration = f.Time.offset
		}
	}
	if duration < 0 {
		duration = DefaultDuration
	}

	k := &keyFrames[T]{lerp: lerp, duration: duration, frames: make([]resolvedFrame[T], 0, len(frames))}
	for i, f := range frames {
		at := f.Time.offset
		if f.Time.byPercent {
			if f.Time.percent < 0 || f.Time.percent > 1 {
				return nil, fmt.Errorf("key frame %d at %v: %w", i, f.Time.percent, ErrOutOfRange)
			}
			at = mulDuration(duration, f.Time.percent)
		}
		k.frames = append(k.frames, resolvedFrame[T]{value: f.Value, at: at, easing: f.Easing})
	}
	sort.SliceStable(k.frames, func(i, j int) bool {
		return k.frames[i].at < k.frames[j].at
	})
	return k, nil
}

func (k *keyFrames[T]) Duration() time.Duration { return k.duration }

func (k *keyFrames[T]) Animate(elapsed time.Duration) (T, Status) {
	status := statusAt(elapsed, k.duration)
	if elapsed < k.duration {
		var last *resolvedFrame[T]
		for i := range k.frames {
			f := &k.frames[i]
			if f.at <= elapsed {
				last = f
				continue
			}
			if last == nil {
				return f.value, status
			}
			t := float64(elapsed-last.at) / float64(f.at-last.at)
			return k.lerp(last.value, f.value, f.easing.At(t)), status
		}
	}
	return k.frames[len(k.frames)-1].value, status
}
