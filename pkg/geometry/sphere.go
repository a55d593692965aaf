package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the identity transform and the default material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent material of index 1.5
func NewGlassSphere() *Sphere {
	return NewSphere().WithMaterial(
		material.DefaultMaterial().WithTransparency(1).WithRefractiveIndex(1.5),
	)
}

// WithTransform returns a copy of the sphere with a new transform
func (s *Sphere) WithTransform(m core.Matrix) *Sphere {
	out := *s
	out.setTransform(m)
	return &out
}

// WithMaterial returns a copy of the sphere with a new material
func (s *Sphere) WithMaterial(m material.Material) *Sphere {
	out := *s
	out.material = m
	return &out
}

// Intersect solves |o + td|² = 1 in object space
func (s *Sphere) Intersect(ray core.Ray) Intersections {
	local, ok := s.localRay(ray)
	if !ok {
		return nil
	}

	// Vector from sphere center to ray origin
	sphereToRay := local.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// NormalAt returns the outward normal at a world point on the sphere
func (s *Sphere) NormalAt(worldPoint core.Tuple) (core.Tuple, bool) {
	local, ok := s.localPoint(worldPoint)
	if !ok {
		return core.Tuple{}, false
	}
	return s.worldNormal(local.Subtract(core.NewPoint(0, 0, 0))), true
}

// Equal reports whether other is a sphere with the same transform and material
func (s *Sphere) Equal(other Shape) bool {
	o, ok := other.(*Sphere)
	return ok && s.equal(&o.shapeBase)
}
