// Package tempo is a hierarchical timeline and keyframe-interpolation engine.
//
// Tempo manages frame-rate-independent time across nested, independently
// time-scaled contexts, and computes property values from sparse keyframes.
// It renders nothing itself: resolved values reach your code through an
// [Applier], and lifecycle changes through typed event [Channel]s.
//
// # Quick start
//
//	root := tempo.NewTimeline("root")
//	root.SetDuration(2)
//	_ = root.SetInfiniteLoop()
//
//	obj := tempo.NewObject("box", tempo.ApplierFunc(func(s tempo.State) {
//		fmt.Println(s["x"])
//	}))
//	x := tempo.AddProperty(obj, "x", 0.0)
//	x.AddKeyframe(tempo.At(0, 0.0, tempo.Linear))
//	x.AddKeyframe(tempo.At(2, 100.0, tempo.Bezier))
//	root.AddObject(obj)
//
//	root.Play()
//	for range frames {
//		root.Update(1.0 / 60)
//	}
//
// There is no global clock: the host calls [Timeline.Update] on the root
// with its own elapsed time each tick.
//
// # Properties and interpolation
//
// A [Property] holds a default value and keyframes. Between two keyframes the
// later key's [Interpolation] decides the curve: [Step], [Linear], [Bezier]
// (cubic easing with [ControlPoints]), [CatmullRom] (spline through the
// neighboring keys) or [Eased] (any [EaseFunc], such as the curves of
// github.com/fogleman/ease or gween curves via [FromTween]). Outside the
// authored span a property resolves to its default.
//
// Numeric properties come from [NewProperty] or [AddProperty]; other value
// types, such as colors, from [NewPropertyFunc] with a [LerpFunc]
// ([NewColorProperty] for go-colorful colors).
//
// # Timelines
//
// A [Timeline] owns child timelines and attached targets. A child's local
// time is
//
//	max(0, (parentTime - StartTime) * TimeScale)
//
// both for tick-driven updates and for cascading seeks. Each timeline may
// have a duration and loop once, a fixed number of times, or forever.
// Play, Pause, Stop and Seek cascade to descendants.
//
// # Concurrency
//
// Everything is synchronous and single-threaded. A multi-threaded host must
// serialize calls on a tree; see the stream package for a driver that owns a
// tree on one goroutine.
package tempo
