package camera

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Camera maps pixels of an hsize × vsize canvas to world-space rays.
// The canvas sits one unit in front of the eye; the view transform moves the
// eye into the world.
type Camera struct {
	hsize int
	vsize int
	fov   float64

	halfWidth  float64
	halfHeight float64
	pixelSize  float64

	transform  core.Matrix
	inverse    core.Matrix
	invertible bool

	antiAliasing AntiAliasing
}

// NewCamera creates a camera with an identity view transform and no anti-aliasing
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		hsize:        hsize,
		vsize:        vsize,
		fov:          fov,
		transform:    core.Identity(),
		inverse:      core.Identity(),
		invertible:   true,
		antiAliasing: NoAntiAliasing(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// WithTransform sets the view transform and returns the camera
func (c *Camera) WithTransform(m core.Matrix) *Camera {
	c.transform = m
	c.inverse, c.invertible = m.Inverse()
	return c
}

// WithAntiAliasing replaces the anti-aliasing configuration and returns the camera
func (c *Camera) WithAntiAliasing(aa AntiAliasing) *Camera {
	c.antiAliasing = aa
	return c
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int {
	return c.hsize
}

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int {
	return c.vsize
}

// FieldOfView returns the horizontal or vertical field of view in radians,
// whichever canvas side is longer
func (c *Camera) FieldOfView() float64 {
	return c.fov
}

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// AntiAliasing returns the anti-aliasing configuration
func (c *Camera) AntiAliasing() AntiAliasing {
	return c.antiAliasing
}

// Invertible reports whether rays can be generated at all
func (c *Camera) Invertible() bool {
	return c.invertible
}

// RayForPixel returns the ray from the eye through pixel (px, py) shifted by
// (xOffset, yOffset) within the pixel. (0.5, 0.5) is the pixel center.
// False when the view transform is singular.
func (c *Camera) RayForPixel(px, py int, xOffset, yOffset float64) (core.Ray, bool) {
	if !c.invertible {
		return core.Ray{}, false
	}

	// Offset from the canvas edge to the sample
	xOff := (float64(px) + xOffset) * c.pixelSize
	yOff := (float64(py) + yOffset) * c.pixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOff
	worldY := c.halfHeight - yOff

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction), true
}
