package renderer

import (
	"math"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Pixels in the canvas
	SkippedPixels  int           // Pixels left black because no ray could be generated
	TotalSamples   int           // Camera rays traced
	AverageSamples float64       // Average samples per rendered pixel
	MinSamples     int           // Fewest samples taken by a rendered pixel
	MaxSamplesUsed int           // Most samples taken by a rendered pixel
	Workers        int           // Concurrent row workers
	Duration       time.Duration // Wall time of the render
}

// addPixel records the sample count of one rendered pixel
func (rs *RenderStats) addPixel(samples int) {
	if rs.TotalPixels == rs.SkippedPixels || samples < rs.MinSamples {
		rs.MinSamples = samples
	}
	if samples > rs.MaxSamplesUsed {
		rs.MaxSamplesUsed = samples
	}
	rs.TotalPixels++
	rs.TotalSamples += samples
}

// addSkipped records a pixel that could not be rendered
func (rs *RenderStats) addSkipped() {
	rs.TotalPixels++
	rs.SkippedPixels++
}

// merge folds the stats of one row into rs
func (rs *RenderStats) merge(row RenderStats) {
	rendered := rs.TotalPixels - rs.SkippedPixels
	rowRendered := row.TotalPixels - row.SkippedPixels
	if rowRendered > 0 && (rendered == 0 || row.MinSamples < rs.MinSamples) {
		rs.MinSamples = row.MinSamples
	}
	if row.MaxSamplesUsed > rs.MaxSamplesUsed {
		rs.MaxSamplesUsed = row.MaxSamplesUsed
	}
	rs.TotalPixels += row.TotalPixels
	rs.SkippedPixels += row.SkippedPixels
	rs.TotalSamples += row.TotalSamples
}

// finish computes the derived averages
func (rs *RenderStats) finish() {
	rendered := rs.TotalPixels - rs.SkippedPixels
	if rendered > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rendered)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	Sum         core.Color // Sum of sample colors
	SumSquares  core.Color // Per-channel sum of squared sample colors
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(c core.Color) {
	ps.Sum = ps.Sum.Add(c)
	ps.SumSquares = ps.SumSquares.Add(c.Square())
	ps.SampleCount++
}

// Mean returns the average color, black when no samples were taken
func (ps *PixelStats) Mean() core.Color {
	if ps.SampleCount == 0 {
		return core.Black()
	}
	return ps.Sum.Divide(float64(ps.SampleCount))
}

// MeanVariance estimates the variance of the mean color: the per-channel
// sample variance summed over channels and divided by the sample count.
// Infinite when no samples were taken.
func (ps *PixelStats) MeanVariance() float64 {
	if ps.SampleCount == 0 {
		return math.Inf(1)
	}
	n := float64(ps.SampleCount)
	mean := ps.Sum.Divide(n)
	variance := ps.SumSquares.Divide(n).Subtract(mean.Square())
	return variance.Sum() / n
}
