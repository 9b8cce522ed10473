package scene

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// NewMotionBlurScene creates spheres moving at different speeds across the shutter
func NewMotionBlurScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 7),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	const shutter = 1.0
	s := newScene(defaultCameraConfig, SamplingConfig{
		SuperSamples: 1,
		Shutter:      shutter,
		TimeSteps:    10,
	}, cameraOverrides...)

	gray := material.NewPhong(core.NewVec3(0.6, 0.6, 0.6), core.Vec3{}, 1)
	orange := material.NewPhong(core.NewVec3(0.9, 0.5, 0.1), core.NewVec3(0.4, 0.4, 0.4), 40)
	teal := material.NewPhong(core.NewVec3(0.1, 0.6, 0.6), core.NewVec3(0.4, 0.4, 0.4), 40)

	s.Shapes = append(s.Shapes,
		NewGroundBox(core.NewVec3(0, 0, 0), 40, gray),
		geometry.NewSphere(core.NewVec3(-2, 0.6, 0), 0.6, teal),
		geometry.NewMoving(geometry.NewSphere(core.NewVec3(0, 0.6, 0), 0.6, orange), core.NewVec3(0.8, 0, 0), shutter),
		geometry.NewMoving(geometry.NewSphere(core.NewVec3(2, 0.6, -1), 0.6, orange), core.NewVec3(0, 1.2, 0), shutter),
	)
	s.AddPointLight(core.NewVec3(2, 8, 6), core.NewVec3(1, 1, 1), 50)

	return s
}
