package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// SupportedVersions is the range of scene file versions this loader reads
const SupportedVersions = "^1.0"

var (
	// ErrUnsupportedVersion is returned for a version item outside SupportedVersions
	ErrUnsupportedVersion = errors.New("unsupported scene version")
	// ErrUnknownItem is returned for an item that is neither a version nor a known add
	ErrUnknownItem = errors.New("unknown scene item")
)

var logger = log.New("loader")

// sceneItem is one entry of the top-level YAML sequence. Which fields are
// meaningful depends on Add.
type sceneItem struct {
	Version string `yaml:"version"`
	Add     string `yaml:"add"`

	// camera
	HSize *int     `yaml:"hsize"`
	VSize *int     `yaml:"vsize"`
	FOV   *float64 `yaml:"fov"`
	From  *triple  `yaml:"from"`
	To    *triple  `yaml:"to"`
	Up    *triple  `yaml:"up"`
	AA    *aaDef   `yaml:"aa"`

	// light
	Type      string  `yaml:"type"`
	At        *triple `yaml:"at"`
	Intensity *triple `yaml:"intensity"`

	// shapes
	Material  *materialDef  `yaml:"material"`
	Transform transformList `yaml:"transform"`
}

type aaDef struct {
	Method     string   `yaml:"method"`
	Level      *int     `yaml:"level"`
	Tolerance  *float64 `yaml:"tolerance"`
	MaxSamples *int     `yaml:"max-samples"`
}

type materialDef struct {
	Color           *triple     `yaml:"color"`
	Pattern         *patternDef `yaml:"pattern"`
	Ambient         *float64    `yaml:"ambient"`
	Diffuse         *float64    `yaml:"diffuse"`
	Specular        *float64    `yaml:"specular"`
	Shininess       *float64    `yaml:"shininess"`
	Reflective      *float64    `yaml:"reflective"`
	Transparency    *float64    `yaml:"transparency"`
	RefractiveIndex *float64    `yaml:"refractive-index"`
}

type patternDef struct {
	Type      string        `yaml:"type"`
	Colors    []triple      `yaml:"colors"`
	Transform transformList `yaml:"transform"`
	Pattern1  *patternDef   `yaml:"pattern1"`
	Pattern2  *patternDef   `yaml:"pattern2"`
}

// triple is a three-number sequence such as [1, 0.5, 0]
type triple [3]float64

// UnmarshalYAML requires exactly three numbers
func (t *triple) UnmarshalYAML(node *yaml.Node) error {
	var values []float64
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("line %d: expected a sequence of 3 numbers: %w", node.Line, err)
	}
	if len(values) != 3 {
		return fmt.Errorf("line %d: expected 3 numbers, got %d", node.Line, len(values))
	}
	copy(t[:], values)
	return nil
}

func (t triple) point() core.Tuple  { return core.NewPoint(t[0], t[1], t[2]) }
func (t triple) vector() core.Tuple { return core.NewVector(t[0], t[1], t[2]) }
func (t triple) color() core.Color  { return core.NewColor(t[0], t[1], t[2]) }

// transformStep is one entry of a transform list, e.g. [translate, 1, 2, 3]
type transformStep struct {
	op   string
	args []float64
	line int
}

// UnmarshalYAML reads an operation name followed by its numeric arguments
func (ts *transformStep) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return fmt.Errorf("line %d: transform step must be a non-empty sequence", node.Line)
	}
	if err := node.Content[0].Decode(&ts.op); err != nil {
		return fmt.Errorf("line %d: transform name: %w", node.Line, err)
	}
	ts.args = make([]float64, len(node.Content)-1)
	for i, arg := range node.Content[1:] {
		if err := arg.Decode(&ts.args[i]); err != nil {
			return fmt.Errorf("line %d: %s argument %d: %w", node.Line, ts.op, i+1, err)
		}
	}
	ts.line = node.Line
	return nil
}

// transformArity is the number of arguments each operation takes
var transformArity = map[string]int{
	"scale":     3,
	"translate": 3,
	"rotate-x":  1,
	"rotate-y":  1,
	"rotate-z":  1,
	"shear":     6,
}

func (ts transformStep) matrix() (core.Matrix, error) {
	arity, known := transformArity[ts.op]
	if !known {
		logger.Warningf("line %d: unknown transformation %q, using identity", ts.line, ts.op)
		return core.Identity(), nil
	}
	if len(ts.args) != arity {
		return core.Matrix{}, fmt.Errorf("line %d: %s takes %d arguments, got %d", ts.line, ts.op, arity, len(ts.args))
	}

	a := ts.args
	switch ts.op {
	case "scale":
		return core.Scaling(a[0], a[1], a[2]), nil
	case "translate":
		return core.Translation(a[0], a[1], a[2]), nil
	case "rotate-x":
		return core.RotationX(a[0]), nil
	case "rotate-y":
		return core.RotationY(a[0]), nil
	case "rotate-z":
		return core.RotationZ(a[0]), nil
	default:
		return core.Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
}

// transformList composes its steps by right-multiplying in list order, so the
// last step listed is the first applied to a point
type transformList []transformStep

func (tl transformList) matrix() (core.Matrix, error) {
	total := core.Identity()
	for _, step := range tl {
		m, err := step.matrix()
		if err != nil {
			return core.Matrix{}, err
		}
		total = total.Multiply(m)
	}
	return total, nil
}

// LoadYAMLScene loads and parses a YAML scene file
func LoadYAMLScene(filename string) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	base := filepath.Base(filename)
	return ParseYAMLScene(strings.TrimSuffix(base, filepath.Ext(base)), file)
}

// ParseYAMLScene parses a scene document: a sequence of `- version:` and
// `- add: camera|light|sphere|plane` items. The camera is optional.
func ParseYAMLScene(name string, reader io.Reader) (*scene.Scene, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	var items []yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("invalid scene document: %w", err)
		}
	}

	world := scene.NewWorld(nil, nil)
	var cam *camera.Camera

	for i := range items {
		node := &items[i]
		var item sceneItem
		if err := node.Decode(&item); err != nil {
			return nil, fmt.Errorf("item %d (line %d): %w", i+1, node.Line, err)
		}

		if err := addItem(item, world, &cam); err != nil {
			return nil, fmt.Errorf("item %d (line %d): %w", i+1, node.Line, err)
		}
	}

	if cam == nil {
		logger.Noticef("scene %q has no camera", name)
	}

	s := scene.NewScene(name, world, cam)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func addItem(item sceneItem, world *scene.World, cam **camera.Camera) error {
	if item.Version != "" {
		return checkVersion(item.Version)
	}

	switch item.Add {
	case "camera":
		c, err := makeCamera(item)
		if err != nil {
			return err
		}
		if *cam != nil {
			logger.Warning("multiple cameras in scene, using the last one")
		}
		*cam = c
	case "light":
		l, err := makeLight(item)
		if err != nil {
			return err
		}
		world.AddLight(l)
	case "sphere", "plane":
		s, err := makeShape(item)
		if err != nil {
			return fmt.Errorf("%s: %w", item.Add, err)
		}
		world.AddObject(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItem, item.Add)
	}
	return nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

func makeCamera(item sceneItem) (*camera.Camera, error) {
	if item.HSize == nil || item.VSize == nil || item.FOV == nil ||
		item.From == nil || item.To == nil || item.Up == nil {
		return nil, fmt.Errorf("camera requires hsize, vsize, fov, from, to and up")
	}
	if *item.HSize <= 0 || *item.VSize <= 0 {
		return nil, fmt.Errorf("camera size must be positive: %d×%d", *item.HSize, *item.VSize)
	}
	if *item.FOV <= 0 || *item.FOV >= math.Pi {
		return nil, fmt.Errorf("camera fov must be in (0, π): %v", *item.FOV)
	}

	view := core.ViewTransform(item.From.point(), item.To.point(), item.Up.vector())
	c := camera.NewCamera(*item.HSize, *item.VSize, *item.FOV).WithTransform(view)

	if item.AA != nil {
		aa, err := makeAntiAliasing(*item.AA)
		if err != nil {
			return nil, err
		}
		c.WithAntiAliasing(aa)
	}
	return c, nil
}

func makeAntiAliasing(def aaDef) (camera.AntiAliasing, error) {
	method, err := camera.ParseMethod(def.Method)
	if err != nil {
		return camera.AntiAliasing{}, err
	}

	level := camera.DefaultLevel
	if def.Level != nil {
		level = *def.Level
	}
	tolerance := camera.DefaultTolerance
	if def.Tolerance != nil {
		tolerance = *def.Tolerance
	}

	aa := camera.NewStochastic(level)
	if method == camera.Multisampling {
		aa = camera.NewMultisampling(level, tolerance)
	}
	if def.MaxSamples != nil {
		aa.MaxSamples = *def.MaxSamples
	}
	return aa, aa.Validate()
}

func makeLight(item sceneItem) (lights.Light, error) {
	switch item.Type {
	case "point", "":
		if item.At == nil || item.Intensity == nil {
			return nil, fmt.Errorf("point light requires at and intensity")
		}
		return lights.NewPointLight(item.At.point(), item.Intensity.color()), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", item.Type)
	}
}

func makeShape(item sceneItem) (geometry.Shape, error) {
	m, err := makeMaterial(item.Material)
	if err != nil {
		return nil, err
	}
	transform, err := item.Transform.matrix()
	if err != nil {
		return nil, err
	}

	switch item.Add {
	case "sphere":
		return geometry.NewSphere().WithTransform(transform).WithMaterial(m), nil
	default:
		return geometry.NewPlane().WithTransform(transform).WithMaterial(m), nil
	}
}

func makeMaterial(def *materialDef) (material.Material, error) {
	m := material.DefaultMaterial()
	if def == nil {
		return m, nil
	}

	if def.Color != nil {
		m = m.WithColor(def.Color.color())
	}
	if def.Pattern != nil {
		p, err := makePattern(def.Pattern)
		if err != nil {
			return m, fmt.Errorf("pattern: %w", err)
		}
		m = m.WithPattern(p)
	}

	coefficients := []struct {
		value *float64
		set   func(material.Material, float64) material.Material
	}{
		{def.Ambient, material.Material.WithAmbient},
		{def.Diffuse, material.Material.WithDiffuse},
		{def.Specular, material.Material.WithSpecular},
		{def.Shininess, material.Material.WithShininess},
		{def.Reflective, material.Material.WithReflective},
		{def.Transparency, material.Material.WithTransparency},
		{def.RefractiveIndex, material.Material.WithRefractiveIndex},
	}
	for _, c := range coefficients {
		if c.value != nil {
			m = c.set(m, *c.value)
		}
	}

	return m, m.Validate()
}

func makePattern(def *patternDef) (material.Pattern, error) {
	transform, err := def.Transform.matrix()
	if err != nil {
		return nil, err
	}

	colors := make([]core.Color, len(def.Colors))
	for i, c := range def.Colors {
		colors[i] = c.color()
	}

	switch def.Type {
	case "stripes", "striped":
		if len(colors) == 0 {
			return nil, fmt.Errorf("stripes require at least one color")
		}
		return material.NewStripes(colors...).WithTransform(transform), nil
	case "rings", "ring":
		if len(colors) == 0 {
			return nil, fmt.Errorf("rings require at least one color")
		}
		return material.NewRings(colors...).WithTransform(transform), nil
	case "gradient":
		if len(colors) != 2 {
			return nil, fmt.Errorf("gradient requires 2 colors, got %d", len(colors))
		}
		return material.NewGradient(colors[0], colors[1]).WithTransform(transform), nil
	case "checkers", "checkered":
		if len(colors) != 2 {
			return nil, fmt.Errorf("checkers require 2 colors, got %d", len(colors))
		}
		return material.NewCheckers(colors[0], colors[1]).WithTransform(transform), nil
	case "blended", "blend":
		if def.Pattern1 == nil || def.Pattern2 == nil {
			return nil, fmt.Errorf("blended pattern requires pattern1 and pattern2")
		}
		p1, err := makePattern(def.Pattern1)
		if err != nil {
			return nil, fmt.Errorf("pattern1: %w", err)
		}
		p2, err := makePattern(def.Pattern2)
		if err != nil {
			return nil, fmt.Errorf("pattern2: %w", err)
		}
		return material.NewBlended(p1, p2).WithTransform(transform), nil
	default:
		return nil, fmt.Errorf("unknown pattern type %q", def.Type)
	}
}

// validateFilePath rejects paths that cannot name a scene file
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Null bytes could indicate path manipulation
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid file type: only .yml and .yaml files are allowed")
	}

	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	return nil
}
