package scene

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// NewGlossyScene lines up glass spheres of decreasing glossiness in front of a
// striped wall, with a lens camera focused on the middle sphere
func NewGlossyScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 1.2, 6),
		LookAt:        core.NewVec3(0, 0.7, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Focus on LookAt
		DOFRays:       4,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		SuperSamples:    2,
		PhotonsPerLight: 10000,
		TimeSteps:       1,
	}, cameraOverrides...)

	gray := material.NewPhong(core.NewVec3(0.6, 0.6, 0.6), core.Vec3{}, 1)
	s.Shapes = append(s.Shapes, NewGroundBox(core.NewVec3(0, 0, 0), 40, gray))

	for i := 0; i < 8; i++ {
		stripe := material.NewPhong(oklchToRGB(0.65, 0.12, float64(i)*45), core.Vec3{}, 1)
		x := float64(i) - 4
		s.Shapes = append(s.Shapes, geometry.NewBox(core.NewVec3(x, 0, -3), core.NewVec3(x+1, 4, -2.5), stripe))
	}

	for i, gloss := range []float64{0, 2000, 200, 20} {
		glass := material.NewGlass(core.Vec3{}, core.NewVec3(0.5, 0.5, 0.5), 100, 1.5, gloss)
		x := -2.25 + 1.5*float64(i)
		s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(x, 0.6, 0), 0.6, glass))
	}
	s.AddPointLight(core.NewVec3(0, 8, 6), core.NewVec3(1, 1, 1), 60)

	return s
}
