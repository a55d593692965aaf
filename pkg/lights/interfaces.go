package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a source of direct illumination used by the Phong shading model.
// Only point lights exist today; a new light kind adds a type here and
// implements the same contract.
type Light interface {
	Type() LightType

	// Position is the world-space point shadow rays are cast toward
	Position() core.Tuple

	// Intensity is the color and brightness of the emitted light
	Intensity() core.Color
}
