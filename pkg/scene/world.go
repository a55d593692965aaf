package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// World holds every shape and light of a scene and resolves ray colors.
// A World is read-only during a render and safe for concurrent use.
type World struct {
	Objects []geometry.Shape
	Lights  []lights.Light
}

// NewWorld creates a world from shapes and lights
func NewWorld(objects []geometry.Shape, lightList []lights.Light) *World {
	return &World{
		Objects: objects,
		Lights:  lightList,
	}
}

// DefaultWorld returns two concentric spheres lit by a white point light at (-10, 10, -10)
func DefaultWorld() *World {
	outer := geometry.NewSphere().WithMaterial(
		material.DefaultMaterial().
			WithColor(core.NewColor(0.8, 1.0, 0.6)).
			WithDiffuse(0.7).
			WithSpecular(0.2),
	)
	inner := geometry.NewSphere().WithTransform(core.Scaling(0.5, 0.5, 0.5))
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())

	return NewWorld(
		[]geometry.Shape{outer, inner},
		[]lights.Light{light},
	)
}

// AddObject adds a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// AddLight adds a light to the world
func (w *World) AddLight(l lights.Light) {
	w.Lights = append(w.Lights, l)
}

// Intersect returns every intersection of the ray with the world, sorted by t.
// The result is never nil.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	xs := make(geometry.Intersections, 0, 2*len(w.Objects))
	for _, object := range w.Objects {
		xs = append(xs, object.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt returns the color seen along a ray, following at most remaining
// reflections. Rays that hit nothing are black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black()
	}

	comps, ok := geometry.PrepareHit(hit, ray, xs)
	if !ok {
		return core.Black()
	}
	return w.ShadeHit(comps, remaining)
}

// ShadeHit sums the direct lighting from every light, each tested for shadow
// independently, plus the reflected color. The result is not clamped.
func (w *World) ShadeHit(comps geometry.HitData, remaining int) core.Color {
	m := comps.Object.Material()
	transform := comps.Object.Transform()

	surface := core.Black()
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(material.Lighting(m, transform, light, comps.OverPoint, comps.Eye, comps.Normal, shadowed))
	}

	return surface.Add(w.ReflectedColor(comps, remaining))
}

// ReflectedColor traces the mirror reflection at a hit. Black when the
// surface is not reflective or no recursion budget remains.
func (w *World) ReflectedColor(comps geometry.HitData, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black()
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.Reflect)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// IsShadowed reports whether any object lies between point and the light.
// Objects beyond the light do not cast shadows.
func (w *World) IsShadowed(point core.Tuple, light lights.Light) bool {
	toLight := light.Position().Subtract(point)
	distance := toLight.Magnitude()

	ray := core.NewRay(point, toLight.Normalize())
	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}
