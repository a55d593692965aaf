package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Blended averages two patterns. Each child is evaluated in its own pattern
// space, reached through the child's transform from the blend's space.
type Blended struct {
	patternBase
	first, second Pattern
}

// NewBlended creates a pattern averaging first and second
func NewBlended(first, second Pattern) *Blended {
	return &Blended{
		patternBase: newPatternBase(),
		first:       first,
		second:      second,
	}
}

// WithTransform returns a copy of the pattern with a new transform
func (b *Blended) WithTransform(m core.Matrix) *Blended {
	out := *b
	out.transform = m
	return &out
}

// ColorAt returns the mean of both child colors
func (b *Blended) ColorAt(point core.Tuple) (core.Color, bool) {
	c1, ok := childColorAt(b.first, point)
	if !ok {
		return core.Color{}, false
	}
	c2, ok := childColorAt(b.second, point)
	if !ok {
		return core.Color{}, false
	}
	return c1.Add(c2).Divide(2), true
}

// Equal reports structural equality
func (b *Blended) Equal(other Pattern) bool {
	o, ok := other.(*Blended)
	return ok && b.transform == o.transform &&
		patternsEqual(b.first, o.first) && patternsEqual(b.second, o.second)
}

func childColorAt(child Pattern, point core.Tuple) (core.Color, bool) {
	if child == nil {
		return core.Color{}, false
	}
	inverse, ok := child.Transform().Inverse()
	if !ok {
		return core.Color{}, false
	}
	return child.ColorAt(inverse.MultiplyTuple(point))
}
