package tempo

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestColorPropertyEndpoints(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")
	p := NewColorProperty(colorful.Color{})
	p.AddKeyframe(At(0, red, Linear))
	p.AddKeyframe(At(1, blue, Linear))

	if got := p.ResolveValue(0); got.Hex() != "#ff0000" {
		t.Errorf("ResolveValue(0) = %s, want #ff0000", got.Hex())
	}
	if got := p.ResolveValue(1); got.Hex() != "#0000ff" {
		t.Errorf("ResolveValue(1) = %s, want #0000ff", got.Hex())
	}
}

func TestColorPropertyBlendsInLab(t *testing.T) {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	p := NewColorProperty(black)
	p.AddKeyframe(At(0, black, Linear))
	p.AddKeyframe(At(2, white, Linear))

	mid := p.ResolveValue(1)
	want := black.BlendLab(white, 0.5)
	if !mid.AlmostEqualRgb(want) {
		t.Errorf("midpoint = %s, want %s", mid.Hex(), want.Hex())
	}
	l, _, _ := mid.Lab()
	if l < 0.45 || l > 0.55 {
		t.Errorf("midpoint lightness = %v, want ~0.5", l)
	}
}

func TestColorPropertyStepHolds(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	green, _ := colorful.Hex("#00ff00")
	p := NewColorProperty(colorful.Color{})
	p.AddKeyframe(At(0, red, Linear))
	p.AddKeyframe(At(1, green, Step))

	if got := p.ResolveValue(0.8); got.Hex() != "#ff0000" {
		t.Errorf("ResolveValue(0.8) = %s, want #ff0000", got.Hex())
	}
}
