package tempo

// Tween adds one eased segment to p: a keyframe holding from at start and an
// Eased keyframe reaching to at end. fn may be any EaseFunc, including
// github.com/fogleman/ease curves or gween curves wrapped with FromTween.
// It returns p so segments can be chained.
func Tween[T any](p *Property[T], start, end float64, from, to T, fn EaseFunc) *Property[T] {
	p.AddKeyframe(Keyframe[T]{Time: start, Value: from, Interpolation: Step})
	p.AddKeyframe(Keyframe[T]{Time: end, Value: to, Interpolation: Eased, Ease: fn})
	return p
}

// TweenTo continues p from its last keyframe to value to at time end. A
// property with no keyframes starts from its default at time zero.
func TweenTo[T any](p *Property[T], end float64, to T, fn EaseFunc) *Property[T] {
	if len(p.keys) == 0 {
		p.AddKeyframe(Keyframe[T]{Time: 0, Value: p.Default, Interpolation: Step})
	}
	p.AddKeyframe(Keyframe[T]{Time: end, Value: to, Interpolation: Eased, Ease: fn})
	return p
}
