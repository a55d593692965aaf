package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Shape is a closed-form primitive with its own transform and material.
// Spheres and planes are the only implementations.
type Shape interface {
	// Intersect returns every intersection of the ray with the shape, in
	// ascending t, including negative t. Nil when the ray misses or the
	// transform is singular.
	Intersect(ray core.Ray) Intersections

	// NormalAt returns the normalized world-space normal at a world point.
	// False when the transform is singular.
	NormalAt(worldPoint core.Tuple) (core.Tuple, bool)

	Material() material.Material
	Transform() core.Matrix

	// Equal reports structural equality of kind, transform and material
	Equal(other Shape) bool

	isShape()
}
