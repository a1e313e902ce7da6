package tempo

import colorful "github.com/lucasb-eyer/go-colorful"

// LerpColor blends a toward b in CIE L*a*b* space, which keeps perceived
// brightness steady through the transition.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendLab(b, t)
}

// NewColorProperty creates a color-valued property that blends with
// LerpColor on Linear and Eased segments.
func NewColorProperty(def colorful.Color) *Property[colorful.Color] {
	return NewPropertyFunc(def, LerpColor)
}
