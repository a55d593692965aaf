package material

import (
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Material holds the Phong reflectance parameters of a surface.
// When Pattern is set it replaces Color as the base color.
type Material struct {
	Color           core.Color
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns the baseline material: white, ambient 0.1,
// diffuse 0.9, specular 0.9, shininess 200, no reflection or transparency
// and a vacuum refractive index.
func DefaultMaterial() Material {
	return Material{
		Color:           core.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// WithColor returns a copy with a flat base color
func (m Material) WithColor(c core.Color) Material {
	m.Color = c
	return m
}

// WithPattern returns a copy with a procedural base color
func (m Material) WithPattern(p Pattern) Material {
	m.Pattern = p
	return m
}

// WithAmbient returns a copy with a new ambient coefficient
func (m Material) WithAmbient(v float64) Material {
	m.Ambient = v
	return m
}

// WithDiffuse returns a copy with a new diffuse coefficient
func (m Material) WithDiffuse(v float64) Material {
	m.Diffuse = v
	return m
}

// WithSpecular returns a copy with a new specular coefficient
func (m Material) WithSpecular(v float64) Material {
	m.Specular = v
	return m
}

// WithShininess returns a copy with a new specular exponent
func (m Material) WithShininess(v float64) Material {
	m.Shininess = v
	return m
}

// WithReflective returns a copy with a new reflective coefficient
func (m Material) WithReflective(v float64) Material {
	m.Reflective = v
	return m
}

// WithTransparency returns a copy with a new transparency
func (m Material) WithTransparency(v float64) Material {
	m.Transparency = v
	return m
}

// WithRefractiveIndex returns a copy with a new refractive index
func (m Material) WithRefractiveIndex(v float64) Material {
	m.RefractiveIndex = v
	return m
}

// Validate reports the first coefficient that cannot produce a sensible render
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
		{"reflective", m.Reflective},
		{"transparency", m.Transparency},
		{"refractive-index", m.RefractiveIndex},
	}
	for _, c := range coefficients {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("material %s is not finite: %v", c.name, c.value)
		}
		if c.value < 0 {
			return fmt.Errorf("material %s must not be negative: %v", c.name, c.value)
		}
	}
	if !m.Color.IsFinite() {
		return fmt.Errorf("material color is not finite: %v", m.Color)
	}
	if m.Reflective > 1 {
		return fmt.Errorf("material reflective must be in [0, 1]: %v", m.Reflective)
	}
	if m.Transparency > 1 {
		return fmt.Errorf("material transparency must be in [0, 1]: %v", m.Transparency)
	}
	if m.RefractiveIndex < 1 {
		return fmt.Errorf("material refractive-index must be at least 1: %v", m.RefractiveIndex)
	}
	return nil
}

// Equal reports structural equality, including the pattern
func (m Material) Equal(other Material) bool {
	if m.Color != other.Color ||
		m.Ambient != other.Ambient ||
		m.Diffuse != other.Diffuse ||
		m.Specular != other.Specular ||
		m.Shininess != other.Shininess ||
		m.Reflective != other.Reflective ||
		m.Transparency != other.Transparency ||
		m.RefractiveIndex != other.RefractiveIndex {
		return false
	}
	return patternsEqual(m.Pattern, other.Pattern)
}
