package renderer

import (
	"math/rand"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// traceFunc returns the color seen through the current pixel at a sub-pixel offset
type traceFunc func(xOffset, yOffset float64) core.Color

// sampleStochastic averages exactly level jittered samples
func sampleStochastic(trace traceFunc, level int, random *rand.Rand) PixelStats {
	var ps PixelStats
	for i := 0; i < level; i++ {
		ps.AddSample(trace(random.Float64(), random.Float64()))
	}
	return ps
}

// sampleMultisampling takes aa.Level jittered samples, then keeps adding one
// at a time until the variance of the mean drops to aa.Tolerance² or the
// aa.MaxSamples ceiling (when positive) is reached
func sampleMultisampling(trace traceFunc, aa camera.AntiAliasing, random *rand.Rand) PixelStats {
	var ps PixelStats
	for ps.SampleCount < aa.Level {
		ps.AddSample(trace(random.Float64(), random.Float64()))
	}

	threshold := aa.Tolerance * aa.Tolerance
	for ps.MeanVariance() > threshold {
		if aa.MaxSamples > 0 && ps.SampleCount >= aa.MaxSamples {
			break
		}
		ps.AddSample(trace(random.Float64(), random.Float64()))
	}
	return ps
}

// samplePixel estimates a pixel color according to the anti-aliasing configuration.
// Level 0 traces a single ray through the pixel center.
func samplePixel(trace traceFunc, aa camera.AntiAliasing, random *rand.Rand) PixelStats {
	if !aa.Enabled() {
		var ps PixelStats
		ps.AddSample(trace(0.5, 0.5))
		return ps
	}

	switch aa.Method {
	case camera.Multisampling:
		return sampleMultisampling(trace, aa, random)
	default:
		return sampleStochastic(trace, aa.Level, random)
	}
}
