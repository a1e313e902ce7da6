package tempo

import (
	"sort"

	"github.com/fogleman/ease"
	tweenease "github.com/tanema/gween/ease"
)

// EaseFunc maps linear progress in [0, 1] to an eased blend factor. Curves
// may overshoot the unit range (back, elastic). The functions of
// github.com/fogleman/ease satisfy EaseFunc directly.
type EaseFunc func(p float64) float64

// FromTween adapts a gween easing curve to an EaseFunc by evaluating it over a
// unit change and unit duration.
func FromTween(fn tweenease.TweenFunc) EaseFunc {
	if fn == nil {
		return nil
	}
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

// easePresets are the named curves accepted by EaseByName.
var easePresets = map[string]EaseFunc{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
}

// EaseByName returns the preset curve registered under name, e.g. "linear",
// "in-out-quad" or "out-bounce".
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easePresets[name]
	return fn, ok
}

// EaseNames returns the preset names in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(easePresets))
	for name := range easePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
