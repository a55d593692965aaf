package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Gradient linearly interpolates from one color to another along x.
// The blend is unbounded: x outside [0, 1) extrapolates.
type Gradient struct {
	patternBase
	from, to core.Color
}

// NewGradient creates a gradient from one color to another
func NewGradient(from, to core.Color) *Gradient {
	return &Gradient{
		patternBase: newPatternBase(),
		from:        from,
		to:          to,
	}
}

// WithTransform returns a copy of the pattern with a new transform
func (g *Gradient) WithTransform(m core.Matrix) *Gradient {
	out := *g
	out.transform = m
	return &out
}

// ColorAt returns from + (to - from) * x
func (g *Gradient) ColorAt(point core.Tuple) (core.Color, bool) {
	return g.from.Add(g.to.Subtract(g.from).Multiply(point.X)), true
}

// Equal reports structural equality
func (g *Gradient) Equal(other Pattern) bool {
	o, ok := other.(*Gradient)
	return ok && g.transform == o.transform && g.from == o.from && g.to == o.to
}
