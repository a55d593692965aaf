package camera

import (
	"fmt"
	"math"
	"strings"
)

// Method selects how a pixel's color is estimated from jittered samples
type Method int

const (
	// Stochastic averages a fixed number of jittered samples
	Stochastic Method = iota
	// Multisampling keeps sampling until the variance of the mean is small enough
	Multisampling
)

const (
	// DefaultLevel is the sample count used when a configuration omits one
	DefaultLevel = 5
	// DefaultTolerance is the multisampling tolerance used when a configuration omits one
	DefaultTolerance = 1.0
	// DefaultMaxSamples caps multisampling per pixel
	DefaultMaxSamples = 4096
)

// String returns the canonical method name
func (m Method) String() string {
	switch m {
	case Stochastic:
		return "stochastic"
	case Multisampling:
		return "multisampling"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "stochastic" (or "random") and "multisampling" (or "msaa")
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stochastic", "random":
		return Stochastic, nil
	case "multisampling", "msaa":
		return Multisampling, nil
	default:
		return 0, fmt.Errorf("unknown anti-aliasing method %q", s)
	}
}

// AntiAliasing is an immutable sampling configuration. Level 0 disables
// anti-aliasing and a single ray is cast through each pixel center.
type AntiAliasing struct {
	Method    Method
	Level     int     // Samples per pixel, or the minimum for multisampling
	Tolerance float64 // Multisampling stops once the variance of the mean is at most Tolerance²

	// MaxSamples bounds multisampling per pixel. 0 means no bound.
	MaxSamples int
}

// NoAntiAliasing returns a configuration that samples each pixel once
func NoAntiAliasing() AntiAliasing {
	return AntiAliasing{
		Method:     Stochastic,
		Level:      0,
		Tolerance:  DefaultTolerance,
		MaxSamples: DefaultMaxSamples,
	}
}

// NewStochastic returns a configuration taking exactly level samples per pixel
func NewStochastic(level int) AntiAliasing {
	return AntiAliasing{
		Method:     Stochastic,
		Level:      level,
		Tolerance:  DefaultTolerance,
		MaxSamples: DefaultMaxSamples,
	}
}

// NewMultisampling returns an adaptive configuration taking at least level
// samples per pixel
func NewMultisampling(level int, tolerance float64) AntiAliasing {
	return AntiAliasing{
		Method:     Multisampling,
		Level:      level,
		Tolerance:  tolerance,
		MaxSamples: DefaultMaxSamples,
	}
}

// Enabled reports whether more than the pixel center is sampled
func (aa AntiAliasing) Enabled() bool {
	return aa.Level > 0
}

// Validate checks the configuration can drive a render
func (aa AntiAliasing) Validate() error {
	if aa.Method != Stochastic && aa.Method != Multisampling {
		return fmt.Errorf("unknown anti-aliasing method %v", aa.Method)
	}
	if aa.Level < 0 {
		return fmt.Errorf("anti-aliasing level must not be negative: %d", aa.Level)
	}
	if aa.MaxSamples < 0 {
		return fmt.Errorf("anti-aliasing max samples must not be negative: %d", aa.MaxSamples)
	}
	if aa.Method == Multisampling {
		if math.IsNaN(aa.Tolerance) || aa.Tolerance < 0 {
			return fmt.Errorf("anti-aliasing tolerance must not be negative: %v", aa.Tolerance)
		}
		if aa.MaxSamples > 0 && aa.MaxSamples < aa.Level {
			return fmt.Errorf("anti-aliasing max samples %d is below level %d", aa.MaxSamples, aa.Level)
		}
	}
	return nil
}

// String describes the configuration for logs and stats
func (aa AntiAliasing) String() string {
	if !aa.Enabled() {
		return "none"
	}
	if aa.Method == Multisampling {
		return fmt.Sprintf("%s (level %d, tolerance %g)", aa.Method, aa.Level, aa.Tolerance)
	}
	return fmt.Sprintf("%s (level %d)", aa.Method, aa.Level)
}
