package tempo

// Interpolation selects how a property moves into a keyframe from the
// keyframe before it.
type Interpolation uint8

const (
	Step       Interpolation = iota // hold the previous value for the whole segment
	Linear                          // constant-rate blend
	Bezier                          // cubic Bezier easing of the blend factor
	CatmullRom                      // uniform Catmull-Rom spline through neighboring keys
	Eased                           // blend factor shaped by Keyframe.Ease
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case Step:
		return "step"
	case Linear:
		return "linear"
	case Bezier:
		return "bezier"
	case CatmullRom:
		return "catmull-rom"
	case Eased:
		return "eased"
	default:
		return "unknown"
	}
}

// Point is a (time, value) pair in normalized segment space.
type Point struct {
	Time, Value float64
}

// ControlPoints are the two inner points of a cubic Bezier easing curve whose
// end points are fixed at (0,0) and (1,1). Time maps to time progress through
// the segment, Value to the blend factor, independent of the real value range.
type ControlPoints struct {
	CP1, CP2 Point
}

// DefaultControlPoints is the ease-in-out curve used when a Bezier keyframe
// carries no control points of its own.
var DefaultControlPoints = ControlPoints{
	CP1: Point{Time: 0.25, Value: 0.1},
	CP2: Point{Time: 0.25, Value: 1},
}

// Keyframe is an authored value at a point in time. Interpolation, Control
// and Ease describe the segment that ends at this keyframe; they are ignored
// on the first keyframe of a property.
type Keyframe[T any] struct {
	Time          float64
	Value         T
	Interpolation Interpolation

	// Control reshapes a Bezier segment. Nil means DefaultControlPoints.
	Control *ControlPoints

	// Ease shapes an Eased segment. Nil behaves as Linear.
	Ease EaseFunc
}

// At returns a keyframe at time t with the given value and interpolation.
func At[T any](t float64, v T, interp Interpolation) Keyframe[T] {
	return Keyframe[T]{Time: t, Value: v, Interpolation: interp}
}
