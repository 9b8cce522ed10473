package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/lights"
	"github.com/df07/go-photon-raytracer/pkg/material"
	"github.com/df07/go-photon-raytracer/pkg/scene"
)

func renderPixels(t *testing.T, container *scene.Container, config geometry.CameraConfig, options Options) [][]core.Vec3 {
	t.Helper()
	rt := NewRayTracer(container, geometry.NewCamera(config), CenterSampler{}, options, rand.New(rand.NewSource(1)))

	pixels := make([][]core.Vec3, config.Height())
	for y := range pixels {
		pixels[y] = make([]core.Vec3, config.Width)
		for x := range pixels[y] {
			pixels[y][x] = rt.TracePixel(x, y)
		}
	}
	return pixels
}

func TestDiffuseSphereImage(t *testing.T) {
	kd := core.NewVec3(0.8, 0.3, 0.3)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewPhong(kd, core.Vec3{}, 1))
	light := lights.NewPointLight(core.NewVec3(0, 5, 5), core.NewVec3(1, 1, 1), 1)

	config := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       4,
		AspectRatio: 1,
		VFov:        40,
	}
	ambient := core.NewVec3(0.1, 0.1, 0.1)
	background := core.NewVec3(0.2, 0.3, 0.4)
	options := Options{Ambient: ambient, Background: background}

	lit := renderPixels(t, scene.NewContainer([]geometry.Shape{sphere}, []lights.Light{light}, scene.ContainerOptions{}, nil), config, options)
	dark := renderPixels(t, scene.NewContainer([]geometry.Shape{sphere}, nil, scene.ContainerOptions{}, nil), config, options)

	for _, corner := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}} {
		x, y := corner[0], corner[1]
		if lit[y][x] != background {
			t.Errorf("Pixel (%d,%d): expected background %v, got %v", x, y, background, lit[y][x])
		}
	}

	ambientOnly := ambient.MultiplyVec(kd)
	if dark[1][1].Subtract(ambientOnly).Length() > 1e-12 {
		t.Errorf("Expected ambient-only colour %v without lights, got %v", ambientOnly, dark[1][1])
	}
	if lit[1][1].Luminance() <= dark[1][1].Luminance() {
		t.Errorf("Expected the lit pixel %v to be brighter than %v", lit[1][1], dark[1][1])
	}
	// The light is above the camera, so the upper half of the sphere is brighter
	if lit[1][1].Luminance() <= lit[2][1].Luminance() {
		t.Errorf("Expected upper pixel %v brighter than lower pixel %v", lit[1][1], lit[2][1])
	}
}

func TestNestedGlassSpheres(t *testing.T) {
	wall := material.NewPhong(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, 1)
	shapes := []geometry.Shape{
		scene.NewGroundBox(core.NewVec3(0, -0.5, 0), 20, wall),
		geometry.NewBox(core.NewVec3(-10, -0.5, -5), core.NewVec3(10, 10, -4), wall),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.5, material.NewGlass(core.Vec3{}, core.NewVec3(0.5, 0.5, 0.5), 50, 1.5, 0)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 0.7, material.NewGlass(core.Vec3{}, core.Vec3{}, 1, 1.2, 0)),
	}
	sceneLights := []lights.Light{lights.NewPointLight(core.NewVec3(0, 5, 3), core.NewVec3(1, 1, 1), 1)}

	config := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       8,
		AspectRatio: 1,
		VFov:        40,
	}

	for _, useOctree := range []bool{false, true} {
		container := scene.NewContainer(shapes, sceneLights, scene.ContainerOptions{UseOctree: useOctree}, nil)
		pixels := renderPixels(t, container, config, Options{Ambient: core.NewVec3(0.1, 0.1, 0.1)})

		centre := pixels[4][4]
		if centre.IsZero() {
			t.Errorf("octree=%v: expected light through nested glass, got black", useOctree)
		}
		for y := range pixels {
			for x, p := range pixels[y] {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) || math.IsInf(p.Luminance(), 0) {
					t.Fatalf("octree=%v: pixel (%d,%d) is not finite: %v", useOctree, x, y, p)
				}
			}
		}
	}
}
