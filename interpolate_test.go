package tempo

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
	tweenease "github.com/tanema/gween/ease"
)

const eps = 1e-6

// --- Bezier ---

func TestBezierEndpointsExact(t *testing.T) {
	controls := []*ControlPoints{
		nil,
		{CP1: Point{0.9, -0.5}, CP2: Point{0.1, 1.5}},
		{CP1: Point{0, 0}, CP2: Point{1, 1}},
		{CP1: Point{1, 0}, CP2: Point{0, 1}},
	}
	for i, cp := range controls {
		p := NewProperty(0.0)
		p.AddKeyframe(At(1, 20.0, Linear))
		p.AddKeyframe(Keyframe[float64]{Time: 3, Value: 80, Interpolation: Bezier, Control: cp})

		if got := p.ResolveValue(1); got != 20 {
			t.Errorf("controls %d: ResolveValue(1) = %v, want 20", i, got)
		}
		if got := p.ResolveValue(3); got != 80 {
			t.Errorf("controls %d: ResolveValue(3) = %v, want 80", i, got)
		}
	}
}

func TestBezierDefaultEaseInOut(t *testing.T) {
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, Linear))
	p.AddKeyframe(At(1, 100.0, Bezier))

	// The default curve starts slowly: early samples trail linear.
	if got := p.ResolveValue(0.1); got >= 10 {
		t.Errorf("ResolveValue(0.1) = %v, want < 10 for ease-in", got)
	}
	// And finishes ahead of linear.
	if got := p.ResolveValue(0.5); got <= 50 {
		t.Errorf("ResolveValue(0.5) = %v, want > 50", got)
	}
}

func TestBezierLinearControlsMatchLinear(t *testing.T) {
	cp := &ControlPoints{CP1: Point{1.0 / 3, 1.0 / 3}, CP2: Point{2.0 / 3, 2.0 / 3}}
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, Linear))
	p.AddKeyframe(Keyframe[float64]{Time: 2, Value: 100, Interpolation: Bezier, Control: cp})

	for _, q := range []float64{0.2, 0.5, 1, 1.5, 1.9} {
		want := q * 50
		if got := p.ResolveValue(q); math.Abs(got-want) > 1e-4 {
			t.Errorf("ResolveValue(%v) = %v, want ~%v", q, got, want)
		}
	}
}

func TestBezierMonotonicForOrderedControls(t *testing.T) {
	controls := []ControlPoints{
		DefaultControlPoints,
		{CP1: Point{0.42, 0}, CP2: Point{0.58, 1}},
		{CP1: Point{0.1, 0.2}, CP2: Point{0.9, 0.3}},
		{CP1: Point{0.8, 0.5}, CP2: Point{0.2, 0.5}},
		{CP1: Point{1, 0}, CP2: Point{0, 1}},
	}
	for i := range controls {
		cp := controls[i]
		p := NewProperty(0.0)
		p.AddKeyframe(At(0, -10.0, Linear))
		p.AddKeyframe(Keyframe[float64]{Time: 1, Value: 30, Interpolation: Bezier, Control: &cp})

		prev := p.ResolveValue(0)
		for s := 1; s <= 200; s++ {
			got := p.ResolveValue(float64(s) / 200)
			if got < prev-1e-9 {
				t.Fatalf("controls %d: value decreased at %v: %v < %v", i, float64(s)/200, got, prev)
			}
			prev = got
		}
	}
}

func TestBezierProgressSolvesTime(t *testing.T) {
	cp := ControlPoints{CP1: Point{0.42, 0}, CP2: Point{0.58, 1}}
	for _, x := range []float64{0, 0.01, 0.25, 0.5, 0.75, 0.99, 1} {
		y := bezierProgress(cp, x)
		if y < -eps || y > 1+eps {
			t.Errorf("bezierProgress(%v) = %v, want within [0, 1]", x, y)
		}
	}
	// Symmetric control points give a symmetric curve.
	if got := bezierProgress(cp, 0.5); math.Abs(got-0.5) > 1e-4 {
		t.Errorf("bezierProgress(0.5) = %v, want ~0.5 for symmetric controls", got)
	}
}

func TestBezierFlatSlopeFallsBackToBisection(t *testing.T) {
	// x'(0.5) == 0 for these control times, which stalls Newton.
	cp := ControlPoints{CP1: Point{1, 0}, CP2: Point{0, 1}}
	for _, x := range []float64{0.3, 0.5, 0.7} {
		u := bezierBisect(cp.CP1.Time, cp.CP2.Time, x)
		if got := bezierCoord(u, cp.CP1.Time, cp.CP2.Time); math.Abs(got-x) > 1e-5 {
			t.Errorf("bisect x=%v: x(u) = %v", x, got)
		}
		if y := bezierProgress(cp, x); math.IsNaN(y) {
			t.Errorf("bezierProgress(%v) = NaN", x)
		}
	}
}

func TestBezierNaNProgress(t *testing.T) {
	if got := bezierProgress(DefaultControlPoints, math.NaN()); !math.IsNaN(got) {
		t.Errorf("bezierProgress(NaN) = %v, want NaN", got)
	}
}

// --- Catmull-Rom ---

func TestCatmullRomChainHitsKeyframes(t *testing.T) {
	p := NewProperty(0.0)
	keys := []Keyframe[float64]{
		At(0, 3.0, CatmullRom),
		At(1, 10.0, CatmullRom),
		At(2, -4.0, CatmullRom),
		At(3.5, 7.0, CatmullRom),
		At(4, 7.5, CatmullRom),
	}
	for _, k := range keys {
		p.AddKeyframe(k)
	}
	for _, k := range keys {
		if got := p.ResolveValue(k.Time); got != k.Value {
			t.Errorf("ResolveValue(%v) = %v, want %v", k.Time, got, k.Value)
		}
	}
}

func TestCatmullRomInteriorSegment(t *testing.T) {
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, CatmullRom))
	p.AddKeyframe(At(1, 10.0, CatmullRom))
	p.AddKeyframe(At(2, 0.0, CatmullRom))
	p.AddKeyframe(At(3, 10.0, CatmullRom))

	if got := p.ResolveValue(1.5); math.Abs(got-5) > eps {
		t.Errorf("ResolveValue(1.5) = %v, want 5", got)
	}
}

func TestCatmullRomBoundaryExtrapolation(t *testing.T) {
	// With only two keys both neighbors are extrapolated along the segment,
	// which makes the spline a straight line.
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, CatmullRom))
	p.AddKeyframe(At(1, 10.0, CatmullRom))

	for _, q := range []float64{0.1, 0.25, 0.5, 0.8} {
		if got := p.ResolveValue(q); math.Abs(got-q*10) > eps {
			t.Errorf("ResolveValue(%v) = %v, want %v", q, got, q*10)
		}
	}
}

func TestCatmullRomOvershootsBetweenPeaks(t *testing.T) {
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, CatmullRom))
	p.AddKeyframe(At(1, 10.0, CatmullRom))
	p.AddKeyframe(At(2, 10.0, CatmullRom))
	p.AddKeyframe(At(3, 0.0, CatmullRom))

	if got := p.ResolveValue(1.5); got <= 10 {
		t.Errorf("ResolveValue(1.5) = %v, want > 10 between equal peaks", got)
	}
}

func TestCatmullRomFormulaEndpoints(t *testing.T) {
	if got := catmullRom(1, 2, 3, 4, 0); got != 2 {
		t.Errorf("catmullRom(u=0) = %v, want 2", got)
	}
	if got := catmullRom(1, 2, 3, 4, 1); got != 3 {
		t.Errorf("catmullRom(u=1) = %v, want 3", got)
	}
}

// --- Eased ---

func TestEasedUsesEaseFunc(t *testing.T) {
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, Linear))
	p.AddKeyframe(Keyframe[float64]{Time: 1, Value: 100, Interpolation: Eased, Ease: ease.InQuad})

	if got := p.ResolveValue(0.5); math.Abs(got-25) > eps {
		t.Errorf("ResolveValue(0.5) = %v, want 25", got)
	}
}

func TestEasedNilEaseIsLinear(t *testing.T) {
	p := NewProperty(0.0)
	p.AddKeyframe(At(0, 0.0, Linear))
	p.AddKeyframe(At(4, 100.0, Eased))

	if got := p.ResolveValue(1); got != 25 {
		t.Errorf("ResolveValue(1) = %v, want 25", got)
	}
}

func TestFromTweenMatchesGween(t *testing.T) {
	fn := FromTween(tweenease.InQuad)
	if got := fn(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("FromTween(InQuad)(0.5) = %v, want 0.25", got)
	}
	if FromTween(nil) != nil {
		t.Error("FromTween(nil) should be nil")
	}
}

func TestEaseByName(t *testing.T) {
	fn, ok := EaseByName("in-out-quad")
	if !ok {
		t.Fatal("in-out-quad should be registered")
	}
	if got := fn(0.5); math.Abs(got-0.5) > eps {
		t.Errorf("in-out-quad(0.5) = %v, want 0.5", got)
	}
	if _, ok := EaseByName("wobble"); ok {
		t.Error("unknown ease name should not resolve")
	}
	names := EaseNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("EaseNames not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

// --- Tween helpers ---

func TestTweenAddsEasedSegment(t *testing.T) {
	p := Tween(NewProperty(0.0), 1, 3, 10.0, 30.0, ease.Linear)

	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if got := p.ResolveValue(2); math.Abs(got-20) > eps {
		t.Errorf("ResolveValue(2) = %v, want 20", got)
	}
	if got := p.ResolveValue(0.5); got != 0 {
		t.Errorf("ResolveValue(0.5) = %v, want default 0 before the tween", got)
	}
}

func TestTweenToChainsFromDefault(t *testing.T) {
	p := NewProperty(5.0)
	TweenTo(p, 1, 15.0, nil)
	TweenTo(p, 2, 5.0, FromTween(tweenease.Linear))

	if got := p.ResolveValue(0.5); math.Abs(got-10) > eps {
		t.Errorf("ResolveValue(0.5) = %v, want 10", got)
	}
	if got := p.ResolveValue(1.5); math.Abs(got-10) > 1e-5 {
		t.Errorf("ResolveValue(1.5) = %v, want 10", got)
	}
}
