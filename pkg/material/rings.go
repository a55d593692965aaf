package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Rings are concentric circles around the y axis cycling through colors
type Rings struct {
	patternBase
	colors []core.Color
}

// NewRings creates a ring pattern cycling through colors
func NewRings(colors ...core.Color) *Rings {
	return &Rings{
		patternBase: newPatternBase(),
		colors:      copyColors(colors),
	}
}

// WithTransform returns a copy of the pattern with a new transform
func (r *Rings) WithTransform(m core.Matrix) *Rings {
	out := *r
	out.transform = m
	return &out
}

// ColorAt indexes by the distance from the y axis in the xz plane
func (r *Rings) ColorAt(point core.Tuple) (core.Color, bool) {
	if len(r.colors) == 0 {
		return core.Color{}, false
	}
	band := math.Floor(math.Hypot(point.X, point.Z))
	return r.colors[cyclicIndex(band, len(r.colors))], true
}

// Equal reports structural equality
func (r *Rings) Equal(other Pattern) bool {
	o, ok := other.(*Rings)
	return ok && r.transform == o.transform && colorsEqual(r.colors, o.colors)
}
