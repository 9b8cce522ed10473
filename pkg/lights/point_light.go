package lights

import "github.com/df07/go-photon-raytracer/pkg/core"

// PointLight is an infinitely small light with hard shadows
type PointLight struct {
	position core.Vec3
	colour   core.Vec3
	power    float64
}

// NewPointLight creates a new point light
func NewPointLight(position, colour core.Vec3, power float64) *PointLight {
	return &PointLight{position: position, colour: colour, power: power}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

func (pl *PointLight) Position() core.Vec3 { return pl.position }
func (pl *PointLight) Colour() core.Vec3   { return pl.colour }
func (pl *PointLight) Power() float64      { return pl.power }

// Intensity implements the Light interface with a single shadow ray
func (pl *PointLight) Intensity(occluder Occluder, point core.Vec3, time float64) float64 {
	if IsVisibleFrom(occluder, pl.position, point, time) {
		return 1.0
	}
	return 0.0
}
