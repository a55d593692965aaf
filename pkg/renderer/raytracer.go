package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// ErrRenderFailed is returned when a row worker fails; no partial image is produced
var ErrRenderFailed = errors.New("render failed")

// DefaultMaxDepth is the usual reflection budget
const DefaultMaxDepth = 5

var logger = log.New("renderer")

// Config contains rendering configuration
type Config struct {
	MaxDepth   int   // Reflection recursion budget
	NumWorkers int   // Rows rendered concurrently, 0 uses every CPU
	Seed       int64 // Base seed for sub-pixel jitter, each row derives its own
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   DefaultMaxDepth,
		NumWorkers: runtime.NumCPU(),
		Seed:       42,
	}
}

// Raytracer renders a world through a camera. Rows are traced concurrently
// into private buffers and gathered into the canvas once every row is done.
type Raytracer struct {
	camera *camera.Camera
	world  *scene.World
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(cam *camera.Camera, world *scene.World, config Config) *Raytracer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	return &Raytracer{
		camera: cam,
		world:  world,
		config: config,
	}
}

// rowResult is the output of one row worker
type rowResult struct {
	colors []core.Color
	stats  RenderStats
}

// Render traces every pixel. Pixels for which the camera cannot produce a
// ray stay black and are counted as skipped. A failing row aborts the render.
func (rt *Raytracer) Render() (*Canvas, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.HSize(), rt.camera.VSize()
	aa := rt.camera.AntiAliasing()

	logger.Debugf("rendering %dx%d, depth %d, anti-aliasing %s, %d workers",
		width, height, rt.config.MaxDepth, aa, rt.config.NumWorkers)

	rows := make([]rowResult, height)

	var g errgroup.Group
	g.SetLimit(rt.config.NumWorkers)
	for y := 0; y < height; y++ {
		y := y // per-iteration copy; go.mod targets Go 1.21 loop semantics
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: row %d: %v", ErrRenderFailed, y, r)
				}
			}()
			rows[y] = rt.renderRow(y, width, aa)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	canvas := NewCanvas(width, height)
	stats := RenderStats{Workers: rt.config.NumWorkers}
	for y, row := range rows {
		canvas.setRow(y, row.colors)
		stats.merge(row.stats)
	}
	stats.finish()
	stats.Duration = time.Since(start)

	if stats.SkippedPixels > 0 {
		logger.Warningf("skipped %d of %d pixels: camera transform is not invertible",
			stats.SkippedPixels, stats.TotalPixels)
	}
	logger.Infof("rendered %d samples in %v (%.2f per pixel)",
		stats.TotalSamples, stats.Duration, stats.AverageSamples)

	return canvas, stats, nil
}

// renderRow traces one row with its own random source
func (rt *Raytracer) renderRow(y, width int, aa camera.AntiAliasing) rowResult {
	random := rand.New(rand.NewSource(rt.config.Seed + int64(y)))
	result := rowResult{colors: make([]core.Color, width)}

	for x := 0; x < width; x++ {
		if !rt.camera.Invertible() {
			result.stats.addSkipped()
			continue
		}

		trace := func(xOffset, yOffset float64) core.Color {
			ray, _ := rt.camera.RayForPixel(x, y, xOffset, yOffset)
			return rt.world.ColorAt(ray, rt.config.MaxDepth)
		}

		ps := samplePixel(trace, aa, random)
		result.colors[x] = ps.Mean()
		result.stats.addPixel(ps.SampleCount)
	}
	return result
}

// Render is a convenience wrapper rendering world through cam with default
// worker and seed settings
func Render(cam *camera.Camera, world *scene.World, depth int) (*Canvas, error) {
	config := DefaultConfig()
	config.MaxDepth = depth
	canvas, _, err := NewRaytracer(cam, world, config).Render()
	return canvas, err
}
