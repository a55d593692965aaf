package core

import "math"

// Color is a linear RGB triple. Channels are unclamped; clamping happens
// only when a canvas is quantized for export.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns (0, 0, 0)
func Black() Color {
	return Color{}
}

// White returns (1, 1, 1)
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Divide returns the color divided by a scalar
func (c Color) Divide(scalar float64) Color {
	return Color{c.R / scalar, c.G / scalar, c.B / scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Square returns component-wise squares of the color
func (c Color) Square() Color {
	return c.Hadamard(c)
}

// Sum returns R + G + B
func (c Color) Sum() float64 {
	return c.R + c.G + c.B
}

// IsFinite reports whether every channel is a finite number
func (c Color) IsFinite() bool {
	return !math.IsNaN(c.R) && !math.IsInf(c.R, 0) &&
		!math.IsNaN(c.G) && !math.IsInf(c.G, 0) &&
		!math.IsNaN(c.B) && !math.IsInf(c.B, 0)
}

// ApproxEqual compares every channel within eps
func (c Color) ApproxEqual(other Color, eps float64) bool {
	return math.Abs(c.R-other.R) <= eps &&
		math.Abs(c.G-other.G) <= eps &&
		math.Abs(c.B-other.B) <= eps
}
