package scene

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with diffuse, shiny and glass spheres on a floor
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 6),
		LookAt:      core.NewVec3(0, 0.75, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		SuperSamples:    1,
		Adaptive:        true,
		PhotonsPerLight: 20000,
		TimeSteps:       1,
	}, cameraOverrides...)

	gray := material.NewPhong(core.NewVec3(0.6, 0.6, 0.6), core.Vec3{}, 1)
	red := material.NewPhong(core.NewVec3(0.7, 0.2, 0.15), core.NewVec3(0.3, 0.3, 0.3), 20)
	blue := material.NewPhong(core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.8, 0.8, 0.8), 80)
	glass := material.NewGlass(core.Vec3{}, core.NewVec3(0.5, 0.5, 0.5), 100, 1.5, 0)

	s.Shapes = append(s.Shapes,
		NewGroundBox(core.NewVec3(0, 0, 0), 40, gray),
		geometry.NewSphere(core.NewVec3(-1.6, 0.75, -0.5), 0.75, red),
		geometry.NewSphere(core.NewVec3(1.6, 0.75, -0.5), 0.75, blue),
		geometry.NewSphere(core.NewVec3(0, 0.6, 0.8), 0.6, glass),
	)
	s.AddPointLight(core.NewVec3(3, 8, 5), core.NewVec3(0.9, 0.9, 0.85), 60)

	return s
}
