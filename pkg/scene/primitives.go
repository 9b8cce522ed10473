package scene

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// NewPrimitivesScene shows cylinders, cones and polygon meshes, with a glass
// cylinder and octahedron casting caustics
func NewPrimitivesScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 3, 8),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        38.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		SuperSamples:    2,
		PhotonsPerLight: 50000,
		TimeSteps:       1,
		UseOctree:       true,
	}, cameraOverrides...)
	s.Ambient = core.NewVec3(0.05, 0.05, 0.05)

	floor := material.NewPhong(core.NewVec3(0.75, 0.75, 0.75), core.Vec3{}, 1)
	glass := material.NewGlass(core.Vec3{}, core.NewVec3(0.6, 0.6, 0.6), 150, 1.5, 0)
	green := material.NewPhong(oklchToRGB(0.6, 0.15, 150), core.NewVec3(0.3, 0.3, 0.3), 30)
	orange := material.NewPhong(oklchToRGB(0.7, 0.15, 50), core.NewVec3(0.3, 0.3, 0.3), 30)
	violet := material.NewPhong(oklchToRGB(0.55, 0.15, 300), core.NewVec3(0.5, 0.5, 0.5), 60)

	cone, err := geometry.NewCone(core.NewVec3(-1.2, 0, -1.5), 0.7, core.NewVec3(-1.2, 1.8, -1.5), 0, true, orange)
	if err != nil {
		panic(err)
	}
	frustum, err := geometry.NewCone(core.NewVec3(1.4, 0, -1.5), 0.7, core.NewVec3(1.4, 1, -1.5), 0.35, true, green)
	if err != nil {
		panic(err)
	}

	// Square pyramid with a quad base, turned to face the camera edge on
	pivot := core.NewVec3(3, 0, 0)
	pyramidVertices := geometry.RotateY([]core.Vec3{
		core.NewVec3(2.4, 0, -0.6), core.NewVec3(3.6, 0, -0.6),
		core.NewVec3(3.6, 0, 0.6), core.NewVec3(2.4, 0, 0.6),
		core.NewVec3(3, 1.2, 0),
	}, pivot, math.Pi/4)
	pyramid, err := geometry.NewTriangleMesh(pyramidVertices, [][]int{
		{0, 1, 2, 3}, {3, 2, 4}, {2, 1, 4}, {1, 0, 4}, {0, 3, 4},
	}, violet)
	if err != nil {
		panic(err)
	}

	s.Shapes = append(s.Shapes,
		NewGroundBox(core.NewVec3(0, 0, 0), 30, floor),
		geometry.NewCylinder(core.NewVec3(-2.8, 0, 0.2), core.NewVec3(-2.8, 1.4, 0.2), 0.5, true, glass),
		geometry.NewOctahedron(core.NewVec3(0, 0.75, 0.6), 0.75, glass),
		cone,
		frustum,
		pyramid,
	)
	s.AddSphereLight(core.NewVec3(0, 6, 2), 0.5, core.NewVec3(1, 0.95, 0.9), 120)

	return s
}
