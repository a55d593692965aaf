package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Pattern is a procedural color field defined in its own pattern space.
// The set of patterns is closed: Stripes, Gradient, Rings, Checkers and
// Blended are the only implementations.
type Pattern interface {
	// ColorAt returns the color at a point already expressed in pattern space.
	// The second result is false when the pattern cannot be evaluated.
	ColorAt(point core.Tuple) (core.Color, bool)

	// Transform maps pattern space into the host object's space
	Transform() core.Matrix

	// Equal reports structural equality with another pattern
	Equal(other Pattern) bool

	isPattern()
}

// ColorAtObject evaluates a pattern at a world-space point on an object whose
// transform is objectTransform. Returns false if either the object or the
// pattern transform is singular.
func ColorAtObject(p Pattern, objectTransform core.Matrix, worldPoint core.Tuple) (core.Color, bool) {
	objectInverse, ok := objectTransform.Inverse()
	if !ok {
		return core.Color{}, false
	}
	patternInverse, ok := p.Transform().Inverse()
	if !ok {
		return core.Color{}, false
	}

	objectPoint := objectInverse.MultiplyTuple(worldPoint)
	patternPoint := patternInverse.MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}

// patternBase carries the transform every pattern owns
type patternBase struct {
	transform core.Matrix
}

func (pb patternBase) Transform() core.Matrix {
	return pb.transform
}

func (patternBase) isPattern() {}

func newPatternBase() patternBase {
	return patternBase{transform: core.Identity()}
}

func copyColors(colors []core.Color) []core.Color {
	out := make([]core.Color, len(colors))
	copy(out, colors)
	return out
}

func colorsEqual(a, b []core.Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// patternsEqual compares two possibly nil patterns
func patternsEqual(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// cyclicIndex picks a color for a band index, wrapping around the list.
// Non-finite bands map to the first color.
func cyclicIndex(band float64, count int) int {
	if math.IsNaN(band) || math.IsInf(band, 0) {
		return 0
	}
	return int(math.Mod(band, float64(count)))
}
