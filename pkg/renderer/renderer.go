package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/integrator"
	"github.com/df07/go-photon-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer renders one scene with a fixed configuration
type Renderer struct {
	scene     *scene.Scene
	config    Config
	camera    geometry.Camera
	container *scene.Container
	logger    core.Logger
}

// NewRenderer validates the configuration, indexes the scene and builds its
// photon map. Building can take a while for large photon counts.
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) (*Renderer, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}

	camera := s.Camera
	if config.Width != s.CameraConfig.Width || config.Height != s.CameraConfig.Height() {
		camera = geometry.NewCamera(geometry.MergeCameraConfig(s.CameraConfig, geometry.CameraConfig{
			Width:       config.Width,
			AspectRatio: float64(config.Width) / float64(config.Height),
		}))
	}

	logger.Printf("Scene: %d primitives, %d lights\n", s.GetPrimitiveCount(), len(s.Lights))
	container := scene.NewSceneContainer(s, config.containerOptions(), logger)

	return &Renderer{
		scene:     s,
		config:    config,
		camera:    camera,
		container: container,
		logger:    logger,
	}, nil
}

// Container returns the scene container the renderer traces against
func (r *Renderer) Container() *scene.Container {
	return r.container
}

// tasks builds the tile tasks for the configured schedule. The queue schedule
// submits one whole-image tile per worker; all of them drain the same queue.
func (r *Renderer) tasks(workers int) []TileTask {
	width, height := r.config.Width, r.config.Height

	var tiles []*Tile
	if r.config.Schedule == ScheduleGrid {
		tiles = NewTileGrid(width, height, r.config.GridX, r.config.GridY)
	} else {
		shared := NewTile(0, image.Rect(0, 0, width, height))
		for i := 0; i < workers; i++ {
			tiles = append(tiles, shared)
		}
	}

	tasks := make([]TileTask, len(tiles))
	for i, tile := range tiles {
		tasks[i] = TileTask{Tile: tile, TaskID: i}
	}
	return tasks
}

// newRayTracer creates the per-worker ray tracer seeded Seed+workerID
func (r *Renderer) newRayTracer(workerID int) *integrator.RayTracer {
	options := integrator.Options{
		Ambient:    r.scene.Ambient,
		Background: r.scene.Background,
		Shutter:    r.config.Shutter,
		TimeSteps:  r.config.TimeSteps,
	}
	random := rand.New(rand.NewSource(r.config.Seed + int64(workerID)))
	return integrator.NewRayTracer(r.container, r.camera, r.config.sampler(), options, random)
}

// Render traces every pixel and blocks until the image is complete, the
// context is cancelled or a worker fails. On failure the partial image is
// returned along with the first error.
func (r *Renderer) Render(ctx context.Context) (*FloatImage, RenderStats, error) {
	width, height := r.config.Width, r.config.Height
	img := NewFloatImage(width, height)

	workers := r.config.workerCount()
	tasks := r.tasks(workers)
	stats := RenderStats{
		TotalPixels: width * height,
		Photons:     r.container.Photons().Len(),
		Workers:     workers,
		Tasks:       len(tasks),
	}

	r.logger.Printf("Tracing rays (%dx%d, %d workers, %s schedule)...\n", width, height, workers, r.schedule())
	startTime := time.Now()

	progress := core.NewProgressReporter("Tracing rays", int64(stats.TotalPixels), r.config.ProgressInterval, r.logger)
	pool := NewWorkerPool(workers, len(tasks), img, progress, r.newRayTracer)

	progress.Start()
	pool.Start(ctx)
	for _, task := range tasks {
		pool.SubmitTask(task)
	}

	var errs []error
	for range tasks {
		result, ok := pool.GetResult()
		if !ok {
			errs = append(errs, errors.New("worker pool closed unexpectedly"))
			break
		}
		stats.Rendered += result.Pixels
		stats.Rays += result.Stats.Rays
		stats.MaxDepth = max(stats.MaxDepth, result.Stats.MaxDepth)
		if result.Error != nil {
			errs = append(errs, result.Error)
		}
	}
	pool.Stop()
	progress.Stop()

	stats.Duration = time.Since(startTime)
	r.logger.Printf("Render completed in %v (%d rays, %.2f rays/pixel)\n", stats.Duration, stats.Rays, stats.RaysPerPixel())

	if len(errs) > 0 {
		return img, stats, fmt.Errorf("render failed: %w", errors.Join(errs...))
	}
	return img, stats, nil
}

func (r *Renderer) schedule() Schedule {
	if r.config.Schedule == "" {
		return ScheduleQueue
	}
	return r.config.Schedule
}
