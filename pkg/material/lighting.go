package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// Lighting evaluates the Phong model for a single light at a surface point.
// objectTransform is the transform of the shape the material belongs to and
// is only used to move the point into pattern space.
func Lighting(m Material, objectTransform core.Matrix, light lights.Light, point, eye, normal core.Tuple, inShadow bool) core.Color {
	base := m.baseColor(objectTransform, point)

	intensity := light.Intensity()
	effective := base.Hadamard(intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir := light.Position().Subtract(point).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black()
	reflectDotEye := lightDir.Negate().Reflect(normal).Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, float64(int(m.Shininess)))
		specular = intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

// baseColor resolves the pattern at point, falling back to the flat color
func (m Material) baseColor(objectTransform core.Matrix, point core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	if c, ok := ColorAtObject(m.Pattern, objectTransform, point); ok {
		return c
	}
	return m.Color
}
