package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Stripes alternates between any number of colors along the x axis
type Stripes struct {
	patternBase
	colors []core.Color
}

// NewStripes creates a stripe pattern cycling through colors
func NewStripes(colors ...core.Color) *Stripes {
	return &Stripes{
		patternBase: newPatternBase(),
		colors:      copyColors(colors),
	}
}

// WithTransform returns a copy of the pattern with a new transform
func (s *Stripes) WithTransform(m core.Matrix) *Stripes {
	out := *s
	out.transform = m
	return &out
}

// Colors returns the stripe colors in order
func (s *Stripes) Colors() []core.Color {
	return copyColors(s.colors)
}

// ColorAt returns the stripe color at |floor(x)| mod len(colors)
func (s *Stripes) ColorAt(point core.Tuple) (core.Color, bool) {
	if len(s.colors) == 0 {
		return core.Color{}, false
	}
	band := math.Abs(math.Floor(point.X))
	return s.colors[cyclicIndex(band, len(s.colors))], true
}

// Equal reports structural equality
func (s *Stripes) Equal(other Pattern) bool {
	o, ok := other.(*Stripes)
	return ok && s.transform == o.transform && colorsEqual(s.colors, o.colors)
}
