package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// builtinScene is a scene compiled into the binary
type builtinScene struct {
	info  SceneInfo
	build func(width, height int) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Three spheres on a floor lit by a single point light",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "reflection",
			Name:        "Reflections",
			Description: "Mirror spheres above a reflective checkered floor",
		},
		build: NewReflectionScene,
	},
	{
		info: SceneInfo{
			ID:          "patterns",
			Name:        "Patterns",
			Description: "Stripes, gradient, rings, checkers and a blended pattern",
		},
		build: NewPatternScene,
	},
}

// NewBuiltinScene builds the built-in scene with the given ID at the requested resolution
func NewBuiltinScene(id string, width, height int) (*Scene, bool) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(width, height), true
		}
	}
	return nil, false
}

// newSceneCamera creates the camera shared by the built-in scenes
func newSceneCamera(width, height int, from, to core.Tuple) *camera.Camera {
	return camera.NewCamera(width, height, math.Pi/3).
		WithTransform(core.ViewTransform(from, to, core.NewVector(0, 1, 0)))
}

// NewDefaultScene creates three colored spheres resting on a floor
func NewDefaultScene(width, height int) *Scene {
	floor := geometry.NewPlane().WithMaterial(
		material.DefaultMaterial().
			WithColor(core.NewColor(1, 0.9, 0.9)).
			WithSpecular(0),
	)

	middle := geometry.NewSphere().
		WithTransform(core.Translation(-0.5, 1, 0.5)).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(0.1, 1, 0.5)).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	right := geometry.NewSphere().
		WithTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5))).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(0.5, 1, 0.1)).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	left := geometry.NewSphere().
		WithTransform(core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33))).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(1, 0.8, 0.1)).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	world := NewWorld(
		[]geometry.Shape{floor, middle, right, left},
		[]lights.Light{lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())},
	)

	cam := newSceneCamera(width, height, core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0))
	return NewScene("Default Scene", world, cam)
}

// NewReflectionScene creates mirror spheres over a reflective checkered floor.
// Two lights exercise additive shading and per-light shadows.
func NewReflectionScene(width, height int) *Scene {
	floor := geometry.NewPlane().WithMaterial(
		material.DefaultMaterial().
			WithPattern(material.NewCheckers(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.1, 0.1, 0.1))).
			WithSpecular(0).
			WithReflective(0.4),
	)

	backWall := geometry.NewPlane().
		WithTransform(core.Translation(0, 0, 6).Multiply(core.RotationX(math.Pi / 2))).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(0.2, 0.3, 0.5)).
			WithSpecular(0))

	mirror := geometry.NewSphere().
		WithTransform(core.Translation(-0.6, 1, 0.5)).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(0.1, 0.1, 0.1)).
			WithDiffuse(0.2).
			WithSpecular(1).
			WithShininess(300).
			WithReflective(0.9))

	red := geometry.NewSphere().
		WithTransform(core.Translation(1.4, 0.6, -0.4).Multiply(core.Scaling(0.6, 0.6, 0.6))).
		WithMaterial(material.DefaultMaterial().
			WithColor(core.NewColor(0.9, 0.2, 0.1)).
			WithDiffuse(0.8).
			WithSpecular(0.4).
			WithReflective(0.1))

	glass := geometry.NewGlassSphere().
		WithTransform(core.Translation(0.3, 0.35, -1.6).Multiply(core.Scaling(0.35, 0.35, 0.35)))

	world := NewWorld(
		[]geometry.Shape{floor, backWall, mirror, red, glass},
		[]lights.Light{
			lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(0.7, 0.7, 0.7)),
			lights.NewPointLight(core.NewPoint(5, 8, -6), core.NewColor(0.3, 0.3, 0.3)),
		},
	)

	cam := newSceneCamera(width, height, core.NewPoint(0, 2, -6), core.NewPoint(0, 0.8, 0))
	return NewScene("Reflections", world, cam)
}

// NewPatternScene shows every procedural pattern
func NewPatternScene(width, height int) *Scene {
	white := core.White()
	floor := geometry.NewPlane().WithMaterial(
		material.DefaultMaterial().
			WithPattern(material.NewBlended(
				material.NewStripes(white, core.NewColor(0.3, 0.6, 0.3)),
				material.NewStripes(white, core.NewColor(0.3, 0.6, 0.3)).WithTransform(core.RotationY(math.Pi/2)),
			)).
			WithSpecular(0),
	)

	wall := geometry.NewPlane().
		WithTransform(core.Translation(0, 0, 8).Multiply(core.RotationX(math.Pi / 2))).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.NewRings(
				core.NewColor(0.8, 0.8, 0.9),
				core.NewColor(0.4, 0.4, 0.6),
				core.NewColor(0.6, 0.3, 0.3),
			).WithTransform(core.Scaling(0.5, 0.5, 0.5))).
			WithSpecular(0))

	striped := geometry.NewSphere().
		WithTransform(core.Translation(-1.6, 1, 0.5)).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.NewStripes(
				core.NewColor(0.9, 0.1, 0.1),
				core.NewColor(0.9, 0.9, 0.1),
				core.NewColor(0.1, 0.4, 0.9),
			).WithTransform(core.Scaling(0.25, 0.25, 0.25).Multiply(core.RotationZ(math.Pi / 4)))))

	gradient := geometry.NewSphere().
		WithTransform(core.Translation(0.4, 1, 0.5)).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.NewGradient(core.NewColor(0.1, 0.2, 0.9), core.NewColor(0.9, 0.3, 0.1)).
				WithTransform(core.Translation(-1, 0, 0).Multiply(core.Scaling(2, 1, 1)))))

	checkered := geometry.NewSphere().
		WithTransform(core.Translation(2.2, 0.6, -0.5).Multiply(core.Scaling(0.6, 0.6, 0.6))).
		WithMaterial(material.DefaultMaterial().
			WithPattern(material.NewCheckers(white, core.NewColor(0.2, 0.2, 0.2)).
				WithTransform(core.Scaling(0.4, 0.4, 0.4))))

	world := NewWorld(
		[]geometry.Shape{floor, wall, striped, gradient, checkered},
		[]lights.Light{lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White())},
	)

	cam := newSceneCamera(width, height, core.NewPoint(0, 2.5, -6), core.NewPoint(0.3, 1, 0))
	return NewScene("Patterns", world, cam)
}
