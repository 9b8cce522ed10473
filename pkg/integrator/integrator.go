package integrator

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

const (
	// MaxDepth is the recursion depth at which rays stop contributing
	MaxDepth = 9

	// MinPowerCoef is the contribution below which a ray is not traced
	MinPowerCoef = 0.05

	// GlossSamples is the number of perturbed reflections averaged on glossy surfaces
	GlossSamples = 8
)

// Tracer finds and shades the surface visible along a ray at a point in time
type Tracer interface {
	TimeRayTrace(ray core.Ray, ambient core.Vec3, time float64) (core.Vec3, *material.HitRecord, bool)
}

// Options holds the per-render settings of a RayTracer
type Options struct {
	Ambient    core.Vec3 // Ambient light passed to every shade
	Background core.Vec3 // Colour of primary rays that leave the scene
	Shutter    float64   // Shutter duration; times are sampled in [0, Shutter)
	TimeSteps  int       // Number of discrete times per pixel (<= 0 means 1)
}

// Stats counts the work done by a RayTracer
type Stats struct {
	Rays     int64 // Rays traced against the scene
	MaxDepth int   // Deepest recursion level that traced a ray
}

// Merge folds other into s
func (s *Stats) Merge(other Stats) {
	s.Rays += other.Rays
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
}
