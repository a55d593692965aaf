package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// shapeBase holds the state common to every primitive. The inverse of the
// transform is computed once when the transform is set.
type shapeBase struct {
	transform  core.Matrix
	inverse    core.Matrix
	invertible bool
	material   material.Material
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:  core.Identity(),
		inverse:    core.Identity(),
		invertible: true,
		material:   material.DefaultMaterial(),
	}
}

func (sb *shapeBase) setTransform(m core.Matrix) {
	sb.transform = m
	sb.inverse, sb.invertible = m.Inverse()
}

// Transform returns the object-to-world transform
func (sb *shapeBase) Transform() core.Matrix {
	return sb.transform
}

// Material returns the surface material
func (sb *shapeBase) Material() material.Material {
	return sb.material
}

func (sb *shapeBase) isShape() {}

// localRay moves a world ray into object space
func (sb *shapeBase) localRay(ray core.Ray) (core.Ray, bool) {
	if !sb.invertible {
		return core.Ray{}, false
	}
	return ray.Transform(sb.inverse), true
}

// localPoint moves a world point into object space
func (sb *shapeBase) localPoint(p core.Tuple) (core.Tuple, bool) {
	if !sb.invertible {
		return core.Tuple{}, false
	}
	return sb.inverse.MultiplyTuple(p), true
}

// worldNormal maps an object-space normal back to world space using the
// inverse transpose of the transform
func (sb *shapeBase) worldNormal(local core.Tuple) core.Tuple {
	n := sb.inverse.Transpose().MultiplyTuple(local)
	n.W = 0
	return n.Normalize()
}

func (sb *shapeBase) equal(other *shapeBase) bool {
	return sb.transform == other.transform && sb.material.Equal(other.material)
}
