package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		origin   core.Tuple
		expected []float64
	}{
		{"two points", core.NewPoint(0, 0, -5), []float64{4, 6}},
		{"tangent", core.NewPoint(0, 1, -5), []float64{5, 5}},
		{"miss", core.NewPoint(0, 2, -5), nil},
		{"origin inside", core.NewPoint(0, 0, 0), []float64{-1, 1}},
		{"sphere behind ray", core.NewPoint(0, 0, 5), []float64{-6, -4}},
	}

	s := NewSphere()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := s.Intersect(core.NewRay(tt.origin, core.NewVector(0, 0, 1)))
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, x := range xs {
				if math.Abs(x.T-tt.expected[i]) > 1e-9 {
					t.Errorf("Intersection %d: expected t=%v, got t=%v", i, tt.expected[i], x.T)
				}
				if x.Object != Shape(s) {
					t.Errorf("Intersection %d: expected object to be the sphere", i)
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere().WithTransform(core.Scaling(2, 2, 2))
	xs := scaled.Intersect(ray)
	if len(xs) != 2 || xs[0].T != 3 || xs[1].T != 7 {
		t.Errorf("Expected t=3 and t=7, got %v", xs)
	}

	translated := NewSphere().WithTransform(core.Translation(5, 0, 0))
	if xs := translated.Intersect(ray); len(xs) != 0 {
		t.Errorf("Expected no intersections, got %v", xs)
	}

	singular := NewSphere().WithTransform(core.Scaling(0, 1, 1))
	if xs := singular.Intersect(ray); xs != nil {
		t.Errorf("Expected no intersections for a singular transform, got %v", xs)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s3 := math.Sqrt(3) / 3
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name     string
		sphere   *Sphere
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", NewSphere(), core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"y axis", NewSphere(), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"z axis", NewSphere(), core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"nonaxial", NewSphere(), core.NewPoint(s3, s3, s3), core.NewVector(s3, s3, s3)},
		{
			"translated",
			NewSphere().WithTransform(core.Translation(0, 1, 0)),
			core.NewPoint(0, 1.70711, -0.70711),
			core.NewVector(0, 0.70711, -0.70711),
		},
		{
			"scaled and rotated",
			NewSphere().WithTransform(core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5))),
			core.NewPoint(0, s2, -s2),
			core.NewVector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tt.sphere.NormalAt(tt.point)
			if !ok {
				t.Fatal("Expected a normal")
			}
			if !n.ApproxEqual(tt.expected, 1e-4) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
			if math.Abs(n.Magnitude()-1) > 1e-9 {
				t.Errorf("Expected a normalized vector, got magnitude %v", n.Magnitude())
			}
		})
	}
}

func TestSphere_NormalAtSingular(t *testing.T) {
	s := NewSphere().WithTransform(core.Scaling(1, 0, 1))
	if _, ok := s.NormalAt(core.NewPoint(1, 0, 0)); ok {
		t.Error("Expected no normal for a singular transform")
	}
}

func TestSphere_Equal(t *testing.T) {
	a := NewSphere().WithTransform(core.Translation(1, 0, 0))
	b := NewSphere().WithTransform(core.Translation(1, 0, 0))
	if !a.Equal(b) {
		t.Error("Expected structurally equal spheres to be equal")
	}
	if a.Equal(NewSphere()) {
		t.Error("Expected spheres with different transforms to differ")
	}
	if NewSphere().Equal(NewPlane()) {
		t.Error("Expected a sphere and a plane to differ")
	}
	if NewSphere().Equal(NewGlassSphere()) {
		t.Error("Expected spheres with different materials to differ")
	}
}

func TestSphere_Builders(t *testing.T) {
	m := material.DefaultMaterial().WithAmbient(1)
	base := NewSphere()
	s := base.WithMaterial(m).WithTransform(core.Translation(2, 3, 4))

	if !s.Material().Equal(m) {
		t.Errorf("Expected material %+v, got %+v", m, s.Material())
	}
	if s.Transform() != core.Translation(2, 3, 4) {
		t.Errorf("Expected translation, got %v", s.Transform())
	}
	if base.Transform() != core.Identity() || !base.Material().Equal(material.DefaultMaterial()) {
		t.Error("Expected the base sphere to be unchanged")
	}
}

func TestGlassSphere(t *testing.T) {
	s := NewGlassSphere()
	if s.Transform() != core.Identity() {
		t.Errorf("Expected identity transform, got %v", s.Transform())
	}
	if s.Material().Transparency != 1 || s.Material().RefractiveIndex != 1.5 {
		t.Errorf("Unexpected glass material %+v", s.Material())
	}
}
