package integrator

import (
	"math/rand"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
)

// RayTracer computes pixel colours by recursive ray tracing. It owns its random
// generator and statistics, so each worker needs its own RayTracer.
type RayTracer struct {
	tracer  Tracer
	camera  geometry.Camera
	sampler Sampler
	options Options
	random  *rand.Rand
	stats   Stats
}

// NewRayTracer creates a ray tracer over a scene tracer and camera
func NewRayTracer(tracer Tracer, camera geometry.Camera, sampler Sampler, options Options, random *rand.Rand) *RayTracer {
	if sampler == nil {
		sampler = CenterSampler{}
	}
	if options.TimeSteps <= 0 {
		options.TimeSteps = 1
	}
	return &RayTracer{
		tracer:  tracer,
		camera:  camera,
		sampler: sampler,
		options: options,
		random:  random,
	}
}

// Stats returns the work counted since the ray tracer was created
func (rt *RayTracer) Stats() Stats {
	return rt.stats
}

// TracePixel returns the colour of pixel (x, y): the average over time steps
// across the shutter of the average over depth of field eye samples of the
// anti-aliased pixel colour.
func (rt *RayTracer) TracePixel(x, y int) core.Vec3 {
	steps := rt.options.TimeSteps
	dofRays := max(1, rt.camera.DOFSampleCount())

	var total core.Vec3
	for t := 0; t < steps; t++ {
		time := rt.options.Shutter * float64(t) / float64(steps)

		var dofTotal core.Vec3
		for d := 0; d < dofRays; d++ {
			eye := rt.camera.RandomEye(rt.random)
			dofTotal = dofTotal.Add(rt.sampler.Sample(func(u, v float64) core.Vec3 {
				return rt.tracePrimary(rt.camera.RayThroughPixel(x, y, u, v, eye), time)
			}))
		}
		total = total.Add(dofTotal.Multiply(1.0 / float64(dofRays)))
	}
	return total.Multiply(1.0 / float64(steps))
}

// tracePrimary traces a camera ray, returning the background when it escapes
func (rt *RayTracer) tracePrimary(ray core.Ray, time float64) core.Vec3 {
	colour, ok := rt.traceRay(ray, 1.0, 0, time)
	if !ok {
		return rt.options.Background
	}
	return colour
}

// TraceRay returns the light arriving along ray, scaled by powerCoef.
// Rays contributing at most MinPowerCoef, rays at MaxDepth and rays that
// leave the scene are black.
func (rt *RayTracer) TraceRay(ray core.Ray, powerCoef float64, depth int, time float64) core.Vec3 {
	colour, _ := rt.traceRay(ray, powerCoef, depth, time)
	return colour
}

// traceRay reports whether ray hit anything in addition to its colour
func (rt *RayTracer) traceRay(ray core.Ray, powerCoef float64, depth int, time float64) (core.Vec3, bool) {
	if powerCoef <= MinPowerCoef || depth >= MaxDepth {
		return core.Vec3{}, true
	}

	rt.stats.Rays++
	rt.stats.MaxDepth = max(rt.stats.MaxDepth, depth)

	local, hit, ok := rt.tracer.TimeRayTrace(ray, rt.options.Ambient, time)
	if !ok {
		return core.Vec3{}, false
	}

	index, glossiness, refractive := hit.Material.Refraction()
	if !refractive {
		return local.Multiply(powerCoef), true
	}

	next := depth + 1
	fr := core.Fresnel(ray.Direction, hit.Normal, index)
	reflected := ray.Reflect(hit.Point, fr.Normal, fr.CosI)
	if fr.TotalInternal {
		return rt.TraceRay(reflected, powerCoef, next, time), true
	}

	reflCoef := powerCoef * fr.Reflectance
	var reflColour core.Vec3
	if glossiness > 0 {
		for i := 0; i < GlossSamples; i++ {
			sample := core.NewVec2(rt.random.Float64(), rt.random.Float64())
			glossRay := core.NewRay(reflected.Origin, core.SampleGlossyLobe(reflected.Direction, fr.Normal, glossiness, sample))
			reflColour = reflColour.Add(rt.TraceRay(glossRay, reflCoef, next, time))
		}
		reflColour = reflColour.Multiply(1.0 / GlossSamples)
	} else {
		reflColour = rt.TraceRay(reflected, reflCoef, next, time)
	}

	refrCoef := powerCoef * fr.Transmittance()
	refracted := ray.Refract(hit.Point, fr.Normal, fr)
	refrColour := local.Multiply(refrCoef).Add(rt.TraceRay(refracted, refrCoef, next, time))

	return reflColour.Add(refrColour), true
}
