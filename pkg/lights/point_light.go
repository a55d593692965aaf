package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// PointLight is an infinitely small light with no area
type PointLight struct {
	position  core.Tuple
	intensity core.Color
}

// NewPointLight creates a point light at position with the given intensity
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{
		position:  position,
		intensity: intensity,
	}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light position
func (pl *PointLight) Position() core.Tuple {
	return pl.position
}

// Intensity returns the light color
func (pl *PointLight) Intensity() core.Color {
	return pl.intensity
}
