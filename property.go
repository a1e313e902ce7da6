package tempo

import (
	"math"
	"slices"
	"sort"
)

// Number is the set of value types that interpolate arithmetically.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// LerpFunc blends a toward b by t in [0, 1]. It lets non-numeric values such
// as colors take part in linear and eased segments.
type LerpFunc[T any] func(a, b T, t float64) T

// Track is the type-erased view of a property used by Object.
type Track interface {
	// ResolveAny returns the value at time t boxed as any.
	ResolveAny(t float64) any
	// Len returns the number of keyframes.
	Len() int
}

// Property is one animatable value: a default plus a time-ordered set of
// keyframes. Outside the authored span [first, last] a property resolves to
// its default.
//
// Resolution is pure. Property is not safe for concurrent mutation.
type Property[T any] struct {
	// Default is returned when there are no keyframes or the query time lies
	// outside the authored span.
	Default T

	keys []Keyframe[T]

	// Numeric conversions; nil for non-numeric properties.
	toFloat   func(T) float64
	fromFloat func(float64) T

	lerp LerpFunc[T]
}

// NewProperty creates a numeric property. All interpolation families apply.
// Integer types truncate interpolated values toward zero.
func NewProperty[T Number](def T) *Property[T] {
	return &Property[T]{
		Default:   def,
		toFloat:   func(v T) float64 { return float64(v) },
		fromFloat: func(f float64) T { return T(f) },
	}
}

// NewPropertyFunc creates a property over an arbitrary value type. Linear and
// Eased segments blend with lerp; Bezier and CatmullRom segments fall back to
// Linear. With a nil lerp every segment holds the earlier value.
func NewPropertyFunc[T any](def T, lerp LerpFunc[T]) *Property[T] {
	return &Property[T]{Default: def, lerp: lerp}
}

// AddKeyframe inserts k in time order. A keyframe with the same time as
// existing ones is placed after them, so the most recently added keyframe
// wins exact-time queries.
func (p *Property[T]) AddKeyframe(k Keyframe[T]) {
	i := p.upperBound(k.Time)
	p.keys = slices.Insert(p.keys, i, k)
}

// ClearKeyframes removes every keyframe.
func (p *Property[T]) ClearKeyframes() {
	clear(p.keys)
	p.keys = p.keys[:0]
}

// RemoveKeyframeAt removes the keyframe at index i. Out-of-range indices are
// ignored and report false.
func (p *Property[T]) RemoveKeyframeAt(i int) bool {
	if i < 0 || i >= len(p.keys) {
		return false
	}
	p.keys = slices.Delete(p.keys, i, i+1)
	return true
}

// Keyframes returns the keyframes in time order. The returned slice MUST NOT
// be mutated by the caller.
func (p *Property[T]) Keyframes() []Keyframe[T] {
	return p.keys
}

// Len returns the number of keyframes.
func (p *Property[T]) Len() int {
	return len(p.keys)
}

// Span returns the times of the first and last keyframe. ok is false when the
// property has no keyframes.
func (p *Property[T]) Span() (start, end float64, ok bool) {
	if len(p.keys) == 0 {
		return 0, 0, false
	}
	return p.keys[0].Time, p.keys[len(p.keys)-1].Time, true
}

// ResolveAny implements Track.
func (p *Property[T]) ResolveAny(t float64) any {
	return p.ResolveValue(t)
}

// ResolveValue returns the property's value at time t.
func (p *Property[T]) ResolveValue(t float64) T {
	n := len(p.keys)
	if n == 0 {
		return p.Default
	}
	if math.IsNaN(t) {
		if p.fromFloat != nil {
			return p.fromFloat(t)
		}
		return p.Default
	}
	if t < p.keys[0].Time || t > p.keys[n-1].Time {
		return p.Default
	}

	i := p.upperBound(t)
	if prev := &p.keys[i-1]; prev.Time == t {
		return prev.Value
	}
	return p.interpolate(i, t)
}

// interpolate resolves t inside the segment ending at keys[i].
func (p *Property[T]) interpolate(i int, t float64) T {
	before, after := &p.keys[i-1], &p.keys[i]
	progress := segmentProgress(before.Time, after.Time, t)

	switch after.Interpolation {
	case Linear:
		return p.blend(before.Value, after.Value, progress)

	case Bezier:
		if p.toFloat == nil {
			return p.blend(before.Value, after.Value, progress)
		}
		cp := DefaultControlPoints
		if after.Control != nil {
			cp = *after.Control
		}
		return p.blend(before.Value, after.Value, bezierProgress(cp, progress))

	case CatmullRom:
		if p.toFloat == nil {
			return p.blend(before.Value, after.Value, progress)
		}
		v1, v2 := p.toFloat(before.Value), p.toFloat(after.Value)
		// Missing outer neighbors are extrapolated along the boundary segment.
		v0 := 2*v1 - v2
		if i >= 2 {
			v0 = p.toFloat(p.keys[i-2].Value)
		}
		v3 := 2*v2 - v1
		if i+1 < len(p.keys) {
			v3 = p.toFloat(p.keys[i+1].Value)
		}
		return p.fromFloat(catmullRom(v0, v1, v2, v3, progress))

	case Eased:
		if after.Ease != nil {
			progress = after.Ease(progress)
		}
		return p.blend(before.Value, after.Value, progress)

	default:
		return before.Value
	}
}

// blend mixes a toward b by f using the property's arithmetic, its LerpFunc,
// or a hold of a until f reaches 1.
func (p *Property[T]) blend(a, b T, f float64) T {
	switch {
	case p.toFloat != nil:
		return p.fromFloat(lerp(p.toFloat(a), p.toFloat(b), f))
	case p.lerp != nil:
		return p.lerp(a, b, f)
	case f >= 1:
		return b
	default:
		return a
	}
}

// upperBound returns the index of the first keyframe later than t.
func (p *Property[T]) upperBound(t float64) int {
	return sort.Search(len(p.keys), func(i int) bool {
		return p.keys[i].Time > t
	})
}
