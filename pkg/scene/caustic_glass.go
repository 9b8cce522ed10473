package scene

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// NewCausticGlassScene creates a scene where glass focuses a sphere light onto the floor
func NewCausticGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 4, 7),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 4.0 / 3.0,
		VFov:        35.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		SuperSamples:    2,
		PhotonsPerLight: 100000,
		TimeSteps:       1,
		UseOctree:       true,
	}, cameraOverrides...)
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)

	floor := material.NewPhong(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, 1)
	back := material.NewPhong(core.NewVec3(0.3, 0.35, 0.5), core.Vec3{}, 1)
	glass := material.NewGlass(core.Vec3{}, core.NewVec3(0.6, 0.6, 0.6), 150, 1.5, 0)
	amber := material.NewGlass(core.NewVec3(0.05, 0.03, 0), core.NewVec3(0.6, 0.6, 0.6), 150, 1.33, 0)

	s.Shapes = append(s.Shapes,
		NewGroundBox(core.NewVec3(0, 0, 0), 30, floor),
		geometry.NewBox(core.NewVec3(-15, 0, -4), core.NewVec3(15, 10, -3), back),
		geometry.NewSphere(core.NewVec3(-1, 1.2, 0), 1, glass),
		geometry.NewAxisAlignedBox(core.NewVec3(1.6, 0.9, 0.3), core.NewVec3(0.5, 0.5, 0.5), amber),
	)
	s.AddSphereLight(core.NewVec3(0, 6, 0.5), 0.5, core.NewVec3(1, 0.95, 0.9), 120)

	return s
}
