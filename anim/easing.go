package anim

import (
	"math"
	"sort"

	"github.com/fogleman/ease"
	gween "github.com/tanema/gween/ease"
)

// An Easing reshapes a normalized progress fraction in [0,1].
type Easing func(t float64) float64

// Standard easing curves.
var (
	Linear       Easing = ease.Linear
	InQuad       Easing = ease.InQuad
	OutQuad      Easing = ease.OutQuad
	InOutQuad    Easing = ease.InOutQuad
	InCubic      Easing = ease.InCubic
	OutCubic     Easing = ease.OutCubic
	InOutCubic   Easing = ease.InOutCubic
	InQuart      Easing = ease.InQuart
	OutQuart     Easing = ease.OutQuart
	InOutQuart   Easing = ease.InOutQuart
	InQuint      Easing = ease.InQuint
	OutQuint     Easing = ease.OutQuint
	InOutQuint   Easing = ease.InOutQuint
	InSine       Easing = ease.InSine
	OutSine      Easing = ease.OutSine
	InOutSine    Easing = ease.InOutSine
	InExpo       Easing = ease.InExpo
	OutExpo      Easing = ease.OutExpo
	InOutExpo    Easing = ease.InOutExpo
	InCirc       Easing = ease.InCirc
	OutCirc      Easing = ease.OutCirc
	InOutCirc    Easing = ease.InOutCirc
	InElastic    Easing = ease.InElastic
	OutElastic   Easing = ease.OutElastic
	InOutElastic Easing = ease.InOutElastic
	InBack       Easing = ease.InBack
	OutBack      Easing = ease.OutBack
	InOutBack    Easing = ease.InOutBack
	InBounce     Easing = ease.InBounce
	OutBounce    Easing = ease.OutBounce
	InOutBounce  Easing = ease.InOutBounce
)

var easings = map[string]Easing{
	"linear":       Linear,
	"inQuad":       InQuad,
	"outQuad":      OutQuad,
	"inOutQuad":    InOutQuad,
	"inCubic":      InCubic,
	"outCubic":     OutCubic,
	"inOutCubic":   InOutCubic,
	"inQuart":      InQuart,
	"outQuart":     OutQuart,
	"inOutQuart":   InOutQuart,
	"inQuint":      InQuint,
	"outQuint":     OutQuint,
	"inOutQuint":   InOutQuint,
	"inSine":       InSine,
	"outSine":      OutSine,
	"inOutSine":    InOutSine,
	"inExpo":       InExpo,
	"outExpo":      OutExpo,
	"inOutExpo":    InOutExpo,
	"inCirc":       InCirc,
	"outCirc":      OutCirc,
	"inOutCirc":    InOutCirc,
	"inElastic":    InElastic,
	"outElastic":   OutElastic,
	"inOutElastic": InOutElastic,
	"inBack":       InBack,
	"outBack":      OutBack,
	"inOutBack":    InOutBack,
	"inBounce":     InBounce,
	"outBounce":    OutBounce,
	"inOutBounce":  InOutBounce,

	// gween ships the out-in family that fogleman/ease lacks.
	"tween.outInQuad":   FromTween(gween.OutInQuad),
	"tween.outInCubic":  FromTween(gween.OutInCubic),
	"tween.outInSine":   FromTween(gween.OutInSine),
	"tween.outInBounce": FromTween(gween.OutInBounce),
}

// EasingByName looks up a standard easing curve, e.g. "inOutQuad".
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}

// EasingNames lists the names accepted by EasingByName.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTween adapts a gween tween function (t, begin, change, duration) into an Easing.
func FromTween(f gween.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(f(float32(t), 0, 1, 1))
	}
}

// At evaluates the curve with t clamped to [0,1]. A nil Easing is linear.
func (e Easing) At(t float64) float64 {
	t = clamp01(t)
	if e == nil {
		return t
	}
	return e(t)
}

// Reverse turns an ease-in curve into the matching ease-out curve.
func Reverse(e Easing) Easing {
	return func(t float64) float64 {
		return 1 - e.At(1-t)
	}
}

// Mirror plays e over the first half and its reverse over the second half.
func Mirror(e Easing) Easing {
	return func(t float64) float64 {
		if t < 0.5 {
			return e.At(t*2) / 2
		}
		return 1 - e.At(2-t*2)/2
	}
}

// Pow is the ease-in curve t^p.
func Pow(p float64) Easing {
	return func(t float64) float64 {
		return math.Pow(t, p)
	}
}

func clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
