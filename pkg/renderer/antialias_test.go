package renderer

import (
	"math/rand"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// countingTrace returns a trace function that records its calls and
// produces colors from a per-call generator
func countingTrace(colorFor func(call int) core.Color) (traceFunc, *int) {
	calls := 0
	return func(xOffset, yOffset float64) core.Color {
		c := colorFor(calls)
		calls++
		return c
	}, &calls
}

func constantColor(c core.Color) func(int) core.Color {
	return func(int) core.Color { return c }
}

// alternating yields white, black, white, ...
func alternating(call int) core.Color {
	if call%2 == 0 {
		return core.White()
	}
	return core.Black()
}

func TestSampleStochastic_ExactSampleCount(t *testing.T) {
	for _, level := range []int{1, 4, 16} {
		trace, calls := countingTrace(alternating)
		ps := sampleStochastic(trace, level, rand.New(rand.NewSource(1)))

		if *calls != level || ps.SampleCount != level {
			t.Errorf("Level %d: expected %d samples, got %d calls and count %d", level, level, *calls, ps.SampleCount)
		}
	}
}

func TestSampleStochastic_Offsets(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	trace := func(xOffset, yOffset float64) core.Color {
		if xOffset < 0 || xOffset >= 1 || yOffset < 0 || yOffset >= 1 {
			t.Errorf("Offset (%v, %v) outside [0, 1)", xOffset, yOffset)
		}
		return core.Black()
	}
	sampleStochastic(trace, 100, random)
}

func TestSampleStochastic_Average(t *testing.T) {
	trace, _ := countingTrace(alternating)
	ps := sampleStochastic(trace, 4, rand.New(rand.NewSource(1)))

	expected := core.NewColor(0.5, 0.5, 0.5)
	if !ps.Mean().ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, ps.Mean())
	}
}

func TestSampleMultisampling_NeverBelowLevel(t *testing.T) {
	trace, calls := countingTrace(constantColor(core.NewColor(0.3, 0.6, 0.9)))
	aa := camera.NewMultisampling(8, 0.5)
	ps := sampleMultisampling(trace, aa, rand.New(rand.NewSource(1)))

	if *calls != 8 || ps.SampleCount != 8 {
		t.Errorf("Expected exactly 8 samples for a constant color, got %d", *calls)
	}
	if !ps.Mean().ApproxEqual(core.NewColor(0.3, 0.6, 0.9), 1e-12) {
		t.Errorf("Unexpected mean %v", ps.Mean())
	}
}

func TestSampleMultisampling_StopsAtTolerance(t *testing.T) {
	// Alternating black and white has a mean variance of about 0.75/n, which
	// first reaches 0.1² at n = 75
	trace, calls := countingTrace(alternating)
	aa := camera.NewMultisampling(10, 0.1)
	ps := sampleMultisampling(trace, aa, rand.New(rand.NewSource(1)))

	if *calls != 75 {
		t.Errorf("Expected 75 samples, got %d", *calls)
	}
	if v := ps.MeanVariance(); v > 0.01+1e-12 {
		t.Errorf("Expected mean variance at most 0.01, got %v", v)
	}
}

func TestSampleMultisampling_Ceiling(t *testing.T) {
	trace, calls := countingTrace(alternating)
	aa := camera.NewMultisampling(4, 0)
	aa.MaxSamples = 50
	sampleMultisampling(trace, aa, rand.New(rand.NewSource(1)))

	if *calls != 50 {
		t.Errorf("Expected the ceiling of 50 samples, got %d", *calls)
	}
}

func TestSamplePixel(t *testing.T) {
	tests := []struct {
		name     string
		aa       camera.AntiAliasing
		expected int
	}{
		{"no anti-aliasing", camera.NoAntiAliasing(), 1},
		{"stochastic", camera.NewStochastic(6), 6},
		{"multisampling constant color", camera.NewMultisampling(3, 0.01), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace, calls := countingTrace(constantColor(core.White()))
			samplePixel(trace, tt.aa, rand.New(rand.NewSource(1)))
			if *calls != tt.expected {
				t.Errorf("Expected %d samples, got %d", tt.expected, *calls)
			}
		})
	}
}

func TestSamplePixel_CenterRay(t *testing.T) {
	trace := func(xOffset, yOffset float64) core.Color {
		if xOffset != 0.5 || yOffset != 0.5 {
			t.Errorf("Expected the pixel center, got (%v, %v)", xOffset, yOffset)
		}
		return core.White()
	}
	samplePixel(trace, camera.NoAntiAliasing(), rand.New(rand.NewSource(1)))
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.Mean() != core.Black() {
		t.Errorf("Expected black with no samples, got %v", ps.Mean())
	}

	ps.AddSample(core.NewColor(1, 0, 0))
	ps.AddSample(core.NewColor(0, 0, 0))

	if !ps.Mean().ApproxEqual(core.NewColor(0.5, 0, 0), 1e-12) {
		t.Errorf("Expected mean (0.5,0,0), got %v", ps.Mean())
	}
	// Variance of the red channel is 0.25, divided by two samples
	if v := ps.MeanVariance(); v < 0.125-1e-12 || v > 0.125+1e-12 {
		t.Errorf("Expected mean variance 0.125, got %v", v)
	}
}
