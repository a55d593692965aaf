package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// HitData is the geometry derived for one intersection, ready for shading
type HitData struct {
	T      float64
	Object Shape

	Point     core.Tuple // Point of intersection
	Eye       core.Tuple // Direction back toward the ray origin
	Normal    core.Tuple // Surface normal, flipped to face the eye
	Inside    bool       // Whether the ray started inside the object
	OverPoint core.Tuple // Point nudged along the normal, used as the origin of secondary rays
	Reflect   core.Tuple // Ray direction reflected about the normal

	N1 float64 // Refractive index of the medium being exited
	N2 float64 // Refractive index of the medium being entered
}

// PrepareHit computes the shading data for hit, which must belong to xs.
// Returns false when the object's normal cannot be computed.
func PrepareHit(hit Intersection, ray core.Ray, xs Intersections) (HitData, bool) {
	point := ray.Position(hit.T)
	normal, ok := hit.Object.NormalAt(point)
	if !ok {
		return HitData{}, false
	}

	eye := ray.Direction.Negate()
	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	n1, n2 := RefractiveIndices(hit, xs)

	return HitData{
		T:         hit.T,
		Object:    hit.Object,
		Point:     point,
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
		OverPoint: point.Add(normal.Multiply(core.EPS)),
		Reflect:   ray.Direction.Reflect(normal),
		N1:        n1,
		N2:        n2,
	}, true
}

// RefractiveIndices walks the sorted intersections tracking which objects
// the ray is inside of, and returns the indices on either side of hit.
// An empty container list means vacuum (1.0).
func RefractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	top := func() float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}

	for _, x := range xs {
		isHit := x.Equal(hit)
		if isHit {
			n1 = top()
		}

		if i := indexOf(containers, x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = top()
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate.Equal(s) {
			return i
		}
	}
	return -1
}
