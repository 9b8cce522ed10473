package lights

import "github.com/df07/go-photon-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint  LightType = "point"
	LightTypeSphere LightType = "sphere"
)

// Occluder answers shadow queries against the scene at a point in time
type Occluder interface {
	// TimeDepthTrace returns the distance to the nearest surface along ray
	TimeDepthTrace(ray core.Ray, time float64) (float64, bool)
}

// Light interface for emitters used by direct lighting and photon emission
type Light interface {
	Type() LightType

	// Position is the emission origin for photons and the light direction for shading
	Position() core.Vec3

	Colour() core.Vec3

	// Power scales the photon energy emitted by this light
	Power() float64

	// Intensity returns the visible fraction of the light from point in [0, 1].
	// Point lights are either fully visible or fully occluded.
	Intensity(occluder Occluder, point core.Vec3, time float64) float64
}

// IsVisibleFrom reports whether lightPos can be seen from point. Surfaces closer
// than core.RayEpsilon or beyond the light do not occlude.
func IsVisibleFrom(occluder Occluder, lightPos, point core.Vec3, time float64) bool {
	toLight := lightPos.Subtract(point)
	lightDist := toLight.Length()
	if lightDist == 0 {
		return true
	}

	dist, hit := occluder.TimeDepthTrace(core.NewRay(point, toLight), time)
	return !(hit && dist > core.RayEpsilon && dist < lightDist)
}
