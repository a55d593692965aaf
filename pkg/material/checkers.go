package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Checkers is a 3D checkerboard of unit cubes alternating two colors
type Checkers struct {
	patternBase
	even, odd core.Color
}

// NewCheckers creates a checker pattern
func NewCheckers(even, odd core.Color) *Checkers {
	return &Checkers{
		patternBase: newPatternBase(),
		even:        even,
		odd:         odd,
	}
}

// WithTransform returns a copy of the pattern with a new transform
func (c *Checkers) WithTransform(m core.Matrix) *Checkers {
	out := *c
	out.transform = m
	return &out
}

// ColorAt picks a color from the parity of the summed cell indices
func (c *Checkers) ColorAt(point core.Tuple) (core.Color, bool) {
	sum := math.Abs(math.Floor(point.X)) +
		math.Abs(math.Floor(point.Y)) +
		math.Abs(math.Floor(point.Z))
	if cyclicIndex(sum, 2) == 0 {
		return c.even, true
	}
	return c.odd, true
}

// Equal reports structural equality
func (c *Checkers) Equal(other Pattern) bool {
	o, ok := other.(*Checkers)
	return ok && c.transform == o.transform && c.even == o.even && c.odd == o.odd
}
