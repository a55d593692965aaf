package renderer

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{0.999, 255},
		{1, 255},
		{1.5, 255},
		{math.Inf(1), 255},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := quantize(tt.input); got != tt.expected {
			t.Errorf("quantize(%v) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestCanvas_Pixels(t *testing.T) {
	c := NewCanvas(10, 20)
	if c.Pixel(9, 19) != core.Black() {
		t.Errorf("Expected a black canvas, got %v", c.Pixel(9, 19))
	}

	red := core.NewColor(1, 0, 0)
	c.SetPixel(2, 3, red)
	if c.Pixel(2, 3) != red {
		t.Errorf("Expected %v, got %v", red, c.Pixel(2, 3))
	}
	if c.Pixel(3, 2) != core.Black() {
		t.Errorf("Expected untouched pixel to stay black, got %v", c.Pixel(3, 2))
	}
}

func TestCanvas_PNG(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetPixel(0, 0, core.NewColor(1.5, 0, 0))
	c.SetPixel(1, 0, core.NewColor(0, 0.5, 0))
	c.SetPixel(2, 1, core.NewColor(-0.5, 0, 1))

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("Expected clamped red, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	_, g, _, _ = img.At(1, 0).RGBA()
	if g>>8 != 128 {
		t.Errorf("Expected green 128, got %d", g>>8)
	}
	r, _, b, _ = img.At(2, 1).RGBA()
	if r>>8 != 0 || b>>8 != 255 {
		t.Errorf("Expected (0,_,255), got (%d,_,%d)", r>>8, b>>8)
	}
}

func TestCanvas_AverageLuminance(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetPixel(0, 0, core.NewColor(1, 0, 0))
	c.SetPixel(1, 0, core.NewColor(0, 1, 0))
	c.SetPixel(0, 1, core.NewColor(0, 0, 1))

	if got := c.AverageLuminance(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Expected average luminance 0.25, got %v", got)
	}
}
