package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// RandomBoxes returns count non-overlapping boxes. Each box sits in its own
// unit cell of a 10-wide grid, so no two boxes can touch.
func RandomBoxes(random *rand.Rand, count int) []geometry.Shape {
	const columns = 10
	shapes := make([]geometry.Shape, 0, count)
	for i := 0; i < count; i++ {
		cellX := float64(i%columns) - columns/2
		cellZ := -float64(i / columns)

		half := core.NewVec3(0.1+0.3*random.Float64(), 0.1+0.3*random.Float64(), 0.1+0.3*random.Float64())
		center := core.NewVec3(
			cellX+0.5+(random.Float64()*2-1)*(0.45-half.X),
			half.Y+random.Float64()*1.5,
			cellZ-0.5+(random.Float64()*2-1)*(0.45-half.Z),
		)

		colour := oklchToRGB(0.7, 0.15, float64(i)*360/float64(count))
		mat := material.NewPhong(colour, core.NewVec3(0.2, 0.2, 0.2), 30)
		shapes = append(shapes, geometry.NewAxisAlignedBox(center, half, mat))
	}
	return shapes
}

// NewRandomBoxesScene creates a scene of randomly placed boxes, the workload
// the octree is designed for
func NewRandomBoxesScene(seed int64, count int, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 6, 6),
		LookAt:      core.NewVec3(0, 0.5, -2),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        50.0,
	}

	s := newScene(defaultCameraConfig, SamplingConfig{
		SuperSamples: 1,
		TimeSteps:    1,
		UseOctree:    true,
	}, cameraOverrides...)

	s.Shapes = append(s.Shapes, RandomBoxes(rand.New(rand.NewSource(seed)), count)...)
	s.AddPointLight(core.NewVec3(-4, 10, 4), core.NewVec3(1, 1, 1), 50)

	return s
}
