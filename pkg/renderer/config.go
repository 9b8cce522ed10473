package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/integrator"
	"github.com/df07/go-photon-raytracer/pkg/scene"
)

var (
	// ErrConflictingAntiAliasing is returned when grid and adaptive anti-aliasing are both requested
	ErrConflictingAntiAliasing = errors.New("supersampling and adaptive anti-aliasing are mutually exclusive")

	// ErrInvalidDimensions is returned for non-positive image or grid sizes
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrUnknownSchedule is returned for schedules other than queue and grid
	ErrUnknownSchedule = errors.New("unknown schedule")
)

// Schedule selects how pixels are distributed to workers
type Schedule string

const (
	// ScheduleQueue lets every worker pull the next pixel from one shared queue
	ScheduleQueue Schedule = "queue"

	// ScheduleGrid splits the image into GridX x GridY blocks, one task per block
	ScheduleGrid Schedule = "grid"
)

// Config contains everything a render needs besides the scene
type Config struct {
	Width, Height    int
	NumWorkers       int // 0 = runtime.NumCPU()
	SuperSamples     int // Grid anti-aliasing samples per axis (1 = off)
	Adaptive         bool
	UseOctree        bool
	PhotonsPerLight  int
	Shutter          float64
	TimeSteps        int
	Schedule         Schedule
	GridX, GridY     int // Block counts for ScheduleGrid
	Seed             int64
	ProgressInterval time.Duration
	Gamma            float64 // Applied by FloatImage.ToRGBA
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:            400,
		Height:           300,
		NumWorkers:       1,
		SuperSamples:     1,
		TimeSteps:        1,
		Schedule:         ScheduleQueue,
		GridX:            1,
		GridY:            1,
		Seed:             42,
		ProgressInterval: core.DefaultProgressInterval,
		Gamma:            1.0,
	}
}

// ApplyScene copies the render settings a scene was designed for. Image size
// comes from the scene camera.
func (c Config) ApplyScene(s *scene.Scene) Config {
	c.Width = s.CameraConfig.Width
	c.Height = s.CameraConfig.Height()

	sampling := s.SamplingConfig
	if sampling.SuperSamples > 0 {
		c.SuperSamples = sampling.SuperSamples
	}
	c.Adaptive = sampling.Adaptive
	c.UseOctree = sampling.UseOctree
	c.PhotonsPerLight = sampling.PhotonsPerLight
	c.Shutter = sampling.Shutter
	if sampling.TimeSteps > 0 {
		c.TimeSteps = sampling.TimeSteps
	}
	return c
}

// Validate checks the configuration for contradictions
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SuperSamples > 1 && c.Adaptive {
		return ErrConflictingAntiAliasing
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidDimensions, c.NumWorkers)
	}
	switch c.Schedule {
	case ScheduleQueue, "":
	case ScheduleGrid:
		if c.GridX <= 0 || c.GridY <= 0 {
			return fmt.Errorf("%w: grid %dx%d", ErrInvalidDimensions, c.GridX, c.GridY)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSchedule, c.Schedule)
	}
	return nil
}

// workerCount resolves NumWorkers
func (c Config) workerCount() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// sampler picks the anti-aliasing strategy
func (c Config) sampler() integrator.Sampler {
	switch {
	case c.Adaptive:
		return integrator.AdaptiveSampler{MaxDepth: integrator.DefaultAdaptiveDepth}
	case c.SuperSamples > 1:
		return integrator.GridSampler{N: c.SuperSamples}
	default:
		return integrator.CenterSampler{}
	}
}

// containerOptions maps the render settings onto the scene container
func (c Config) containerOptions() scene.ContainerOptions {
	return scene.ContainerOptions{
		UseOctree:       c.UseOctree,
		Shutter:         c.Shutter,
		PhotonsPerLight: c.PhotonsPerLight,
		Seed:            c.Seed,
	}
}
