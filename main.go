package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/renderer"
	"github.com/df07/go-photon-raytracer/pkg/scene"
)

// options holds the parsed command line. set records which flags were given
// explicitly, so scene defaults only apply to the rest.
type options struct {
	sceneName    string
	threads      int
	superSamples int
	adaptive     bool
	octree       bool
	photons      int
	width        int
	height       int
	shutter      float64
	timeSteps    int
	schedule     string
	gridX, gridY int
	seed         int64
	gamma        float64
	out          string
	help         bool
	set          map[string]bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	defaults := renderer.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name: "+strings.Join(scene.SceneNames(), ", "))
	fs.IntVar(&opts.threads, "threads", defaults.NumWorkers, "Number of worker goroutines (0 = all CPUs)")
	fs.IntVar(&opts.superSamples, "supersamples", defaults.SuperSamples, "Grid anti-aliasing samples per axis (1 = off)")
	fs.BoolVar(&opts.adaptive, "adaptive", false, "Use adaptive anti-aliasing")
	fs.BoolVar(&opts.octree, "octree", false, "Index the scene with an octree")
	fs.IntVar(&opts.photons, "photons", 0, "Caustic photons emitted per light")
	fs.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 = from the scene aspect ratio)")
	fs.Float64Var(&opts.shutter, "shutter", 0, "Motion blur shutter duration")
	fs.IntVar(&opts.timeSteps, "timesteps", defaults.TimeSteps, "Time steps sampled across the shutter")
	fs.StringVar(&opts.schedule, "schedule", string(defaults.Schedule), "Work distribution: queue or grid")
	fs.IntVar(&opts.gridX, "gridx", 2, "Horizontal blocks for the grid schedule")
	fs.IntVar(&opts.gridY, "gridy", 2, "Vertical blocks for the grid schedule")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "Random seed")
	fs.Float64Var(&opts.gamma, "gamma", defaults.Gamma, "Output gamma")
	fs.StringVar(&opts.out, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// createScene builds the named scene, resized when width is given
func createScene(opts options) (*scene.Scene, error) {
	var overrides geometry.CameraConfig
	if opts.width > 0 {
		overrides.Width = opts.width
		if opts.height > 0 {
			overrides.AspectRatio = float64(opts.width) / float64(opts.height)
		}
	}
	return scene.NewSceneByName(opts.sceneName, overrides)
}

// buildConfig starts from the scene's recommended settings and applies the
// flags given explicitly
func buildConfig(opts options, s *scene.Scene) renderer.Config {
	config := renderer.DefaultConfig().ApplyScene(s)
	if opts.height > 0 {
		config.Height = opts.height
	}

	config.NumWorkers = opts.threads
	config.Seed = opts.seed
	config.Gamma = opts.gamma
	config.Schedule = renderer.Schedule(opts.schedule)
	config.GridX, config.GridY = opts.gridX, opts.gridY

	if opts.set["supersamples"] {
		config.SuperSamples = opts.superSamples
		if !opts.set["adaptive"] {
			config.Adaptive = false
		}
	}
	if opts.set["adaptive"] {
		config.Adaptive = opts.adaptive
		if opts.adaptive && !opts.set["supersamples"] {
			config.SuperSamples = 1
		}
	}
	if opts.set["octree"] {
		config.UseOctree = opts.octree
	}
	if opts.set["photons"] {
		config.PhotonsPerLight = opts.photons
	}
	if opts.set["shutter"] {
		config.Shutter = opts.shutter
	}
	if opts.set["timesteps"] {
		config.TimeSteps = opts.timeSteps
	}
	return config
}

// createOutputDir returns the directory renders of sceneName are saved in
func createOutputDir(sceneName string) string {
	return filepath.Join("output", sceneName)
}

// outputPath resolves the PNG path, creating its directory
func outputPath(opts options, now time.Time) (string, error) {
	path := opts.out
	if path == "" {
		timestamp := now.Format("20060102_150405")
		path = filepath.Join(createOutputDir(opts.sceneName), fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	return path, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if opts.help {
		fmt.Fprintln(stdout, "Photon Mapping Raytracer")
		fmt.Fprintln(stdout, "Usage: raytracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Available scenes:", strings.Join(scene.SceneNames(), ", "))
		fmt.Fprintln(stdout, "Output will be saved to output/<scene>/render_<timestamp>.png")
		return nil
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}
	config := buildConfig(opts, selectedScene)

	logger := renderer.NewDefaultLogger()
	logger.Printf("Rendering scene %q at %dx%d...\n", opts.sceneName, config.Width, config.Height)

	r, err := renderer.NewRenderer(selectedScene, config, logger)
	if err != nil {
		return err
	}
	img, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Photons: %d, max depth: %d, workers: %d\n", stats.Photons, stats.MaxDepth, stats.Workers)

	filename, err := outputPath(opts, time.Now())
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := img.EncodePNG(file, config.Gamma); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
