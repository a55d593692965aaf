package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-recursive-raytracer/pkg/camera"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

const defaultSceneID = "default"

// watchDebounce coalesces the burst of events editors emit for one save
const watchDebounce = 200 * time.Millisecond

// renderOptions are the render command flags
type renderOptions struct {
	out     string // empty picks a timestamped path under output/
	depth   int
	workers int
	seed    int64
	aa      aaOverride
}

// aaOverride holds anti-aliasing flags. Unset flags leave the scene camera alone.
type aaOverride struct {
	method       string
	level        int
	levelSet     bool
	tolerance    float64
	toleranceSet bool
}

func (o aaOverride) empty() bool {
	return o.method == "" && !o.levelSet && !o.toleranceSet
}

// apply merges the overrides into the camera configuration
func (o aaOverride) apply(current camera.AntiAliasing) (camera.AntiAliasing, error) {
	if o.empty() {
		return current, nil
	}

	aa := current
	if o.method != "" {
		method, err := camera.ParseMethod(o.method)
		if err != nil {
			return current, err
		}
		aa.Method = method
		if !current.Enabled() {
			aa.Level = o.level
		}
	}
	if o.levelSet {
		aa.Level = o.level
	}
	if o.toleranceSet {
		aa.Tolerance = o.tolerance
	}
	return aa, aa.Validate()
}

// Render a scene to a PNG image.
func renderCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 1 {
		return errors.New("render takes at most one scene argument")
	}
	sceneID := ctx.Args().First()
	if sceneID == "" {
		sceneID = defaultSceneID
	}

	opts := renderOptions{
		out:     ctx.String("out"),
		depth:   ctx.Int("depth"),
		workers: ctx.Int("workers"),
		seed:    ctx.Int64("seed"),
		aa: aaOverride{
			method:       ctx.String("aa"),
			level:        ctx.Int("aa-level"),
			levelSet:     ctx.IsSet("aa-level"),
			tolerance:    ctx.Float64("aa-tolerance"),
			toleranceSet: ctx.IsSet("aa-tolerance"),
		},
	}
	if opts.depth < 0 {
		return fmt.Errorf("depth must not be negative: %d", opts.depth)
	}

	scenesDir := ctx.String("scenes-dir")
	width, height := ctx.Int("width"), ctx.Int("height")

	load := func() (*scene.Scene, error) {
		return createScene(sceneID, scenesDir, width, height)
	}

	s, err := load()
	if err != nil {
		return err
	}
	if err := renderScene(s, sceneID, opts, ctx.App.Writer); err != nil {
		return err
	}

	if !ctx.Bool("watch") {
		return nil
	}

	path, ok := resolveSceneFile(sceneID, scenesDir)
	if !ok {
		return fmt.Errorf("--watch requires a YAML scene, %q is built in", sceneID)
	}

	watchCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Noticef("watching %s for changes", path)
	return watchScene(watchCtx, path, func() {
		s, err := load()
		if err != nil {
			logger.Errorf("failed to reload scene: %v", err)
			return
		}
		if err := renderScene(s, sceneID, opts, ctx.App.Writer); err != nil {
			logger.Errorf("render failed: %v", err)
		}
	})
}

// isSceneFile reports whether the argument names a YAML scene file rather than a scene ID
func isSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

// resolveSceneFile maps a scene argument to the YAML file it refers to.
// Accepts a file path, "yaml:<name>" or a bare name found in the scenes directory.
func resolveSceneFile(sceneID, scenesDir string) (string, bool) {
	if isSceneFile(sceneID) {
		return sceneID, true
	}

	yamlScenes, err := scene.ListYAMLScenes(scenesDir)
	if err != nil {
		logger.Warningf("failed to list YAML scenes: %v", err)
		return "", false
	}

	id := sceneID
	if !strings.HasPrefix(id, "yaml:") {
		id = "yaml:" + id
	}
	for _, info := range yamlScenes {
		if info.ID == id {
			return info.FilePath, true
		}
	}
	return "", false
}

// createScene builds a built-in scene or loads a YAML scene
func createScene(sceneID, scenesDir string, width, height int) (*scene.Scene, error) {
	if sceneID == "" {
		return nil, errors.New("scene name cannot be empty")
	}

	if !isSceneFile(sceneID) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("frame size must be positive: %d×%d", width, height)
		}
		if s, ok := scene.NewBuiltinScene(sceneID, width, height); ok {
			return s, nil
		}
	}

	path, ok := resolveSceneFile(sceneID, scenesDir)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", sceneID)
	}

	s, err := loaders.LoadYAMLScene(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return s, nil
}

// sceneBaseName derives a file-system friendly name from a scene argument
func sceneBaseName(sceneID string) string {
	name := strings.TrimPrefix(sceneID, "yaml:")
	if isSceneFile(name) {
		base := filepath.Base(name)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return name
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(sceneID string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneBaseName(sceneID), fmt.Sprintf("render_%s.png", timestamp))
}

func renderScene(s *scene.Scene, sceneID string, opts renderOptions, statsOut io.Writer) error {
	if s.Camera == nil {
		return fmt.Errorf("scene %q has no camera", s.Name)
	}

	aa, err := opts.aa.apply(s.Camera.AntiAliasing())
	if err != nil {
		return err
	}
	s.Camera.WithAntiAliasing(aa)

	out := opts.out
	if out == "" {
		out = createOutputPath(sceneID, time.Now())
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	logger.Infof("rendering %q (%d objects, %d lights)",
		s.Name, s.GetPrimitiveCount(), len(s.World.Lights))

	rt := renderer.NewRaytracer(s.Camera, s.World, renderer.Config{
		MaxDepth:   opts.depth,
		NumWorkers: opts.workers,
		Seed:       opts.seed,
	})
	canvas, stats, err := rt.Render()
	if err != nil {
		return err
	}

	if err := canvas.SavePNG(out); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	logger.Noticef("render statistics\n%s", formatRenderStats(s, stats))
	if statsOut != nil {
		fmt.Fprintf(statsOut, "Render saved as %s\n", out)
	}
	return nil
}

func formatRenderStats(s *scene.Scene, stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Anti-aliasing", "Workers", "Samples/pixel", "Skipped pixels", "Render time"})
	table.Append([]string{
		s.Name,
		fmt.Sprintf("%dx%d", s.Camera.HSize(), s.Camera.VSize()),
		s.Camera.AntiAliasing().String(),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.1f (%d - %d)", stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed),
		fmt.Sprintf("%d", stats.SkippedPixels),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL SAMPLES", fmt.Sprintf("%d", stats.TotalSamples), ""})
	table.Render()
	return buf.String()
}

// watchScene calls onChange after the file at path is written or replaced,
// until ctx is cancelled. The parent directory is watched so that editors
// which save by renaming a temporary file are noticed.
func watchScene(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debugf("scene file event: %s", ev)
				pending = time.After(watchDebounce)
			}
		case <-pending:
			pending = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warningf("watch error: %v", err)
		}
	}
}

// List available scenes.
func listScenesCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	groups, err := scene.ListAllScenes(ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Group", "Description"})
	for _, group := range groups {
		for _, info := range group.Scenes {
			table.Append([]string{info.ID, info.DisplayName, group.Name, info.Description})
		}
	}
	table.Render()
	return nil
}
