package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Canvas is a width × height grid of unclamped linear colors.
// Pixel (0, 0) is the top-left corner.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Pixel returns the color at (x, y)
func (c *Canvas) Pixel(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// SetPixel sets the color at (x, y)
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// setRow copies a full row of colors into the canvas
func (c *Canvas) setRow(y int, row []core.Color) {
	copy(c.pixels[y*c.Width:(y+1)*c.Width], row)
}

// quantize clamps a channel to [0, 0.999] and scales it to a byte
func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(0.999, v))
	return uint8(v * 256)
}

// ToRGBA converts a color to an opaque 8-bit RGBA value
func ToRGBA(col core.Color) color.RGBA {
	return color.RGBA{
		R: quantize(col.R),
		G: quantize(col.G),
		B: quantize(col.B),
		A: 255,
	}
}

// ToImage quantizes the canvas into an RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, ToRGBA(c.Pixel(x, y)))
		}
	}
	return img
}

// WritePNG encodes the canvas as a PNG image
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// AverageLuminance returns the mean Rec. 709 luminance of the unclamped canvas
func (c *Canvas) AverageLuminance() float64 {
	if len(c.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range c.pixels {
		total += 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
	}
	return total / float64(len(c.pixels))
}
