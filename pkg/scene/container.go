package scene

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/lights"
	"github.com/df07/go-photon-raytracer/pkg/material"
	"github.com/df07/go-photon-raytracer/pkg/photon"
)

// ContainerOptions selects the object index and photon map settings
type ContainerOptions struct {
	UseOctree        bool
	OctreeMaxObjects int     // 0 = core.DefaultOctreeMaxObjects
	OctreeMaxLevels  int     // 0 = core.DefaultOctreeMaxLevels
	Shutter          float64 // latest time rays are traced at; movers are indexed over [0, Shutter]
	PhotonsPerLight  int
	Seed             int64
}

// objectIndex narrows the shapes a ray has to be tested against
type objectIndex interface {
	Candidates(ray core.Ray) []geometry.Shape
}

// bruteForceIndex tests every shape
type bruteForceIndex struct {
	shapes []geometry.Shape
}

func (b *bruteForceIndex) Candidates(ray core.Ray) []geometry.Shape {
	return b.shapes
}

// indexedShape is a shape stored under the bounds it sweeps during the shutter
type indexedShape struct {
	shape  geometry.Shape
	bounds core.AABB
}

func (s indexedShape) BoundingBox() core.AABB {
	return s.bounds
}

// octreeIndex tests the shapes in octree nodes the ray passes through
type octreeIndex struct {
	tree *core.Octree[indexedShape]
}

func newOctreeIndex(shapes []geometry.Shape, opts ContainerOptions) *octreeIndex {
	entries := make([]indexedShape, len(shapes))
	for i, shape := range shapes {
		entries[i] = indexedShape{shape: shape, bounds: geometry.SweptBounds(shape, opts.Shutter)}
	}
	return &octreeIndex{tree: core.NewOctreeFromObjects(entries, opts.OctreeMaxObjects, opts.OctreeMaxLevels)}
}

func (o *octreeIndex) Candidates(ray core.Ray) []geometry.Shape {
	entries := o.tree.Trace(ray)
	shapes := make([]geometry.Shape, len(entries))
	for i, entry := range entries {
		shapes[i] = entry.shape
	}
	return shapes
}

// Container answers every ray query the renderer and photon tracer make.
// It is immutable after NewContainer returns and safe for concurrent use.
type Container struct {
	index   objectIndex
	lights  []lights.Light
	photons *photon.PhotonMap
}

// NewContainer indexes the shapes and builds the caustic photon map. It blocks
// until photon mapping is complete.
func NewContainer(shapes []geometry.Shape, sceneLights []lights.Light, opts ContainerOptions, logger core.Logger) *Container {
	if logger == nil {
		logger = core.NopLogger{}
	}

	c := &Container{lights: sceneLights}
	if opts.UseOctree && len(shapes) > 0 {
		logger.Printf("Building octree...\n")
		index := newOctreeIndex(shapes, opts)
		stats := index.tree.Stats()
		logger.Printf("Octree: %d objects, %d nodes, %d leaves, depth %d\n",
			stats.Objects, stats.Nodes, stats.Leaves, stats.MaxDepth)
		c.index = index
	} else {
		c.index = &bruteForceIndex{shapes: shapes}
	}

	c.photons = photon.New(c, sceneLights, opts.PhotonsPerLight, opts.Seed, logger)
	c.photons.BuildTree()
	return c
}

// NewSceneContainer builds a container for a scene
func NewSceneContainer(s *Scene, opts ContainerOptions, logger core.Logger) *Container {
	return NewContainer(s.Shapes, s.Lights, opts, logger)
}

// closestHit finds the nearest surface beyond core.RayEpsilon at time
func (c *Container) closestHit(ray core.Ray, time float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	tMax := math.Inf(1)
	for _, shape := range c.index.Candidates(ray) {
		if hit, ok := geometry.HitAt(shape, ray, core.RayEpsilon, tMax, time); ok {
			closest, tMax = hit, hit.T
		}
	}
	return closest, closest != nil
}

// RayTrace finds the visible surface along ray and shades it
func (c *Container) RayTrace(ray core.Ray, ambient core.Vec3) (core.Vec3, *material.HitRecord, bool) {
	return c.TimeRayTrace(ray, ambient, 0)
}

// TimeRayTrace is RayTrace with moving shapes placed at time
func (c *Container) TimeRayTrace(ray core.Ray, ambient core.Vec3, time float64) (core.Vec3, *material.HitRecord, bool) {
	hit, ok := c.closestHit(ray, time)
	if !ok {
		return core.Vec3{}, nil, false
	}
	return hit.Material.Shade(c, ray, *hit, ambient, time), hit, true
}

// DepthTrace returns the distance to the nearest surface without shading
func (c *Container) DepthTrace(ray core.Ray) (float64, bool) {
	return c.TimeDepthTrace(ray, 0)
}

// TimeDepthTrace is DepthTrace with moving shapes placed at time
func (c *Container) TimeDepthTrace(ray core.Ray, time float64) (float64, bool) {
	hit, ok := c.closestHit(ray, time)
	if !ok {
		return 0, false
	}
	return hit.T, true
}

// PhotonTrace returns the nearest surface for photon transport
func (c *Container) PhotonTrace(ray core.Ray) (*material.HitRecord, bool) {
	return c.closestHit(ray, 0)
}

// LocatePhotons queries the caustic photon map
func (c *Container) LocatePhotons(point core.Vec3, radiusSquared float64) ([]*core.Photon, float64) {
	return c.photons.LocatePhotons(point, radiusSquared)
}

// Lights returns the scene lights
func (c *Container) Lights() []lights.Light {
	return c.lights
}

// Photons returns the photon map
func (c *Container) Photons() *photon.PhotonMap {
	return c.photons
}
