package scene

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
)

// Scene is a world paired with the camera that views it.
// Camera may be nil when a scene file does not describe one.
type Scene struct {
	Name   string
	World  *World
	Camera *camera.Camera
}

// NewScene creates a named scene
func NewScene(name string, world *World, cam *camera.Camera) *Scene {
	return &Scene{
		Name:   name,
		World:  world,
		Camera: cam,
	}
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return len(s.World.Objects)
}

// Validate checks that every material and the camera configuration can be rendered
func (s *Scene) Validate() error {
	if s.World == nil {
		return fmt.Errorf("scene %q has no world", s.Name)
	}
	for i, object := range s.World.Objects {
		if err := object.Material().Validate(); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	if s.Camera != nil {
		if s.Camera.HSize() <= 0 || s.Camera.VSize() <= 0 {
			return fmt.Errorf("camera size must be positive: %d×%d", s.Camera.HSize(), s.Camera.VSize())
		}
		if err := s.Camera.AntiAliasing().Validate(); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
	}
	return nil
}
