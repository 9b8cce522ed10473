package scene

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/lights"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape // Objects in the scene
	Lights         []lights.Light   // Lights in the scene
	Ambient        core.Vec3        // Ambient light applied to every diffuse surface
	Background     core.Vec3        // Colour of primary rays that escape the scene
	SamplingConfig SamplingConfig
}

// SamplingConfig holds the render settings a scene is designed for
type SamplingConfig struct {
	SuperSamples    int     // Grid anti-aliasing samples per axis (1 = off)
	Adaptive        bool    // Adaptive anti-aliasing instead of a fixed grid
	PhotonsPerLight int     // Caustic photons emitted per light
	Shutter         float64 // Motion blur shutter duration
	TimeSteps       int     // Discrete times sampled across the shutter
	UseOctree       bool
}

// NewGroundBox creates a thin box whose top face is a horizontal floor at center.Y
func NewGroundBox(center core.Vec3, size float64, mat material.Material) *geometry.Box {
	half := size / 2
	return geometry.NewBox(
		core.NewVec3(center.X-half, center.Y-1, center.Z-half),
		core.NewVec3(center.X+half, center.Y, center.Z+half),
		mat,
	)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, colour core.Vec3, power float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, colour, power))
}

// AddSphereLight adds a spherical area light to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, colour core.Vec3, power float64) {
	s.Lights = append(s.Lights, lights.NewSphereLight(center, radius, colour, power))
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// newScene creates a scene around a camera configuration, applying overrides
func newScene(defaults geometry.CameraConfig, sampling SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		Lights:         make([]lights.Light, 0),
		Ambient:        core.NewVec3(0.1, 0.1, 0.1),
		SamplingConfig: sampling,
	}
}
