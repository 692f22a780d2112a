package stream

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/util"
)

// ErrNoScenes is returned when a config has nothing to play.
var ErrNoScenes = errors.New("no scenes configured")

const defaultTrailLength = 180

// SceneBuilder turns scene configs into frame animations.
type SceneBuilder struct {
	pixels   int
	memoizer util.Memoizer
}

// NewSceneBuilder creates a SceneBuilder for a strip of pixels.
func NewSceneBuilder(pixels int) *SceneBuilder {
	b := new(SceneBuilder)
	b.pixels = pixels
	return b
}

// Build creates the animation of one scene.
func (b *SceneBuilder) Build(sc SceneConfig) (anim.Animation[*Frame], error) {
	easing, err := b.easing(sc)
	if err != nil {
		return nil, err
	}

	switch sc.Kind {
	case "", "fade":
		from, to, err := parseColours(sc.From, sc.To)
		if err != nil {
			return nil, err
		}
		opts := anim.NewOptions(FilledFrame(b.pixels, from), FilledFrame(b.pixels, to), LerpFrame)
		return configure(opts, sc, easing).Build(), nil

	case "pulse":
		from, to, err := parseColours(sc.From, sc.To)
		if err != nil {
			return nil, err
		}
		// A pulse rises to the target colour and falls back within one play.
		pulse := util.Sample(b.memoizer.Get("pulse:"+sc.Easing, lutLength(sc.Lut), func(n int) []float64 {
			return util.GenerateLut(n, easing)
		}))
		fromFrame, toFrame := FilledFrame(b.pixels, from), FilledFrame(b.pixels, to)
		progress := configure(anim.Float(0, 1), sc, anim.Linear).Build()
		return anim.Map(progress, func(p float64) *Frame {
			return LerpFrame(fromFrame, toFrame, pulse(p))
		}), nil

	case "gradient":
		gradient := sc.Gradient
		if len(gradient) == 0 {
			gradient = Rainbow
		}
		trail := sc.TrailLength
		if trail <= 0 {
			trail = defaultTrailLength
		}
		offset := configure(anim.Float(0, 1), sc, easing).Build()
		return anim.Map(offset, func(p float64) *Frame {
			return gradient.Trail(b.pixels, trail, p)
		}), nil

	case "steps":
		if len(sc.Colours) == 0 {
			return nil, fmt.Errorf("scene %q: steps need colours", sc.Name)
		}
		frames := make([]*Frame, len(sc.Colours))
		for i, hex := range sc.Colours {
			c, err := colorful.Hex(hex)
			if err != nil {
				return nil, fmt.Errorf("scene %q: colour %d: %w", sc.Name, i, err)
			}
			frames[i] = FilledFrame(b.pixels, c)
		}
		interval := sc.Duration
		if interval <= 0 {
			interval = anim.DefaultDuration
		}
		var a anim.Animation[*Frame] = anim.Steps(frames, interval)
		if count := repeatCount(sc); count != 1 || sc.AutoReverse {
			a = anim.Repeat(a, count, sc.AutoReverse)
		}
		if sc.Delay > 0 {
			a = anim.Delay(a, sc.Delay)
		}
		return a, nil
	}

	return nil, fmt.Errorf("scene %q: unknown kind %q", sc.Name, sc.Kind)
}

// BuildAll creates the animation of every configured scene.
func (b *SceneBuilder) BuildAll(scenes []SceneConfig) ([]anim.Animation[*Frame], error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	out := make([]anim.Animation[*Frame], 0, len(scenes))
	for i, sc := range scenes {
		a, err := b.Build(sc)
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Show plays scenes in order, looping when loop is set.
func Show(scenes []anim.Animation[*Frame], loop bool) anim.Animation[*Frame] {
	show := anim.Sequence(scenes...)
	if loop {
		show = anim.Loop(show)
	}
	return show
}

func (b *SceneBuilder) easing(sc SceneConfig) (anim.Easing, error) {
	name := sc.Easing
	if name == "" {
		name = "linear"
	}
	easing, ok := anim.EasingByName(name)
	if !ok {
		return nil, fmt.Errorf("scene %q: unknown easing %q", sc.Name, name)
	}
	if sc.Lut > 1 {
		lut := b.memoizer.Get(name, sc.Lut, func(n int) []float64 {
			return util.Tabulate(easing, n)
		})
		easing = util.Sample(lut)
	}
	return easing, nil
}

func configure[T any](opts anim.Options[T], sc SceneConfig, easing anim.Easing) anim.Options[T] {
	if sc.Duration > 0 {
		opts = opts.Duration(sc.Duration)
	}
	return opts.
		Easing(easing).
		Delay(sc.Delay).
		Times(repeatCount(sc)).
		AutoReverse(sc.AutoReverse)
}

func repeatCount(sc SceneConfig) float64 {
	switch {
	case sc.Forever:
		return anim.RepeatForever
	case sc.Times > 0:
		return sc.Times
	}
	return 1
}

func lutLength(n int) int {
	if n > 1 {
		return n
	}
	return 64
}

func parseColours(from, to string) (colorful.Color, colorful.Color, error) {
	c1, err := colorful.Hex(from)
	if err != nil {
		return c1, c1, fmt.Errorf("from colour: %w", err)
	}
	c2, err := colorful.Hex(to)
	if err != nil {
		return c1, c2, fmt.Errorf("to colour: %w", err)
	}
	return c1, c2, nil
}

// crossFade blends from into to over d, then carries on playing to.
func crossFade(from, to anim.Animation[*Frame], d time.Duration) anim.Animation[*Frame] {
	if d <= 0 {
		return to
	}
	blend := anim.Map(anim.Zip(anim.Zip(from, to), anim.Progress(d)), func(p anim.Pair[anim.Pair[*Frame, *Frame], float64]) *Frame {
		return LerpFrame(p.First.First, p.First.Second, p.Second)
	})
	return anim.Sequence(anim.Take(blend, d), anim.Skip(to, d))
}
