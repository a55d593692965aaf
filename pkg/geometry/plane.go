package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	shapeBase
}

// NewPlane creates a plane with the identity transform and the default material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// WithTransform returns a copy of the plane with a new transform
func (p *Plane) WithTransform(m core.Matrix) *Plane {
	out := *p
	out.setTransform(m)
	return &out
}

// WithMaterial returns a copy of the plane with a new material
func (p *Plane) WithMaterial(m material.Material) *Plane {
	out := *p
	out.material = m
	return &out
}

// Intersect returns a single intersection, or none for rays parallel to or
// lying in the plane
func (p *Plane) Intersect(ray core.Ray) Intersections {
	local, ok := p.localRay(ray)
	if !ok {
		return nil
	}
	if math.Abs(local.Direction.Y) < core.EPS {
		return nil
	}

	t := -local.Origin.Y / local.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(worldPoint core.Tuple) (core.Tuple, bool) {
	if !p.invertible {
		return core.Tuple{}, false
	}
	return p.worldNormal(core.NewVector(0, 1, 0)), true
}

// Equal reports whether other is a plane with the same transform and material
func (p *Plane) Equal(other Shape) bool {
	o, ok := other.(*Plane)
	return ok && p.equal(&o.shapeBase)
}
