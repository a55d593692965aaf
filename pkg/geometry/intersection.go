package geometry

import (
	"math"
	"sort"
)

// Intersection records where along a ray a shape was crossed
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Equal matches intersections by t and structural shape equality
func (i Intersection) Equal(other Intersection) bool {
	if i.T != other.T {
		return false
	}
	if i.Object == nil || other.Object == nil {
		return i.Object == nil && other.Object == nil
	}
	return i.Object.Equal(other.Object)
}

// Intersections is a list of intersections along a single ray
type Intersections []Intersection

// NewIntersections collects intersections in the order given
func NewIntersections(xs ...Intersection) Intersections {
	return Intersections(xs)
}

// Sort orders the list by ascending t. Equal t keep their relative order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit sorts the list and returns the intersection with the smallest finite,
// strictly positive t
func (xs Intersections) Hit() (Intersection, bool) {
	xs.Sort()

	best := -1
	for i, x := range xs {
		if x.T <= 0 || math.IsNaN(x.T) || math.IsInf(x.T, 0) {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
