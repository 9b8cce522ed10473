package lights

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
)

const (
	DefaultNumRings   = 4
	DefaultRingPoints = 4
)

// SphereLight is a spherical area light. Soft shadows come from shadow rays to
// points laid out on concentric rings across the disc the sphere presents to
// the shading point.
type SphereLight struct {
	center     core.Vec3
	radius     float64
	colour     core.Vec3
	power      float64
	NumRings   int
	RingPoints int
}

// NewSphereLight creates a new spherical light with the default ring layout
func NewSphereLight(center core.Vec3, radius float64, colour core.Vec3, power float64) *SphereLight {
	return &SphereLight{
		center:     center,
		radius:     radius,
		colour:     colour,
		power:      power,
		NumRings:   DefaultNumRings,
		RingPoints: DefaultRingPoints,
	}
}

func (sl *SphereLight) Type() LightType {
	return LightTypeSphere
}

func (sl *SphereLight) Position() core.Vec3 { return sl.center }
func (sl *SphereLight) Colour() core.Vec3   { return sl.colour }
func (sl *SphereLight) Power() float64      { return sl.power }
func (sl *SphereLight) Radius() float64     { return sl.radius }

// Intensity implements the Light interface. The result is the number of visible
// ring points divided by NumRings*RingPoints, so an unoccluded light gives 1.
func (sl *SphereLight) Intensity(occluder Occluder, point core.Vec3, time float64) float64 {
	total := sl.NumRings * sl.RingPoints
	if total <= 0 {
		return 0
	}
	visible := 0
	for _, p := range sl.RingSamples(point) {
		if IsVisibleFrom(occluder, p, point, time) {
			visible++
		}
	}
	return float64(visible) / float64(total)
}

// RingSamples returns the sample points on the light disc facing point.
// Ring i has radius (i+1)/NumRings and each ring is rotated half a step
// from the previous one.
func (sl *SphereLight) RingSamples(point core.Vec3) []core.Vec3 {
	normal := point.Subtract(sl.center).Normalize()
	if normal.IsZero() {
		normal = core.NewVec3(0, 1, 0)
	}
	u, v := orthonormalBasis(normal)
	u = u.Multiply(sl.radius)
	v = v.Multiply(sl.radius)

	samples := make([]core.Vec3, 0, sl.NumRings*sl.RingPoints)
	angleStep := 2 * math.Pi / float64(sl.RingPoints)
	for ring := 0; ring < sl.NumRings; ring++ {
		r := float64(ring+1) / float64(sl.NumRings)
		offset := 0.5 * angleStep * float64(ring)
		for j := 0; j < sl.RingPoints; j++ {
			theta := offset + angleStep*float64(j)
			p := sl.center.Add(u.Multiply(r * math.Sin(theta))).Add(v.Multiply(r * math.Cos(theta)))
			samples = append(samples, p)
		}
	}
	return samples
}

// orthonormalBasis returns two unit vectors perpendicular to n and each other
func orthonormalBasis(n core.Vec3) (core.Vec3, core.Vec3) {
	axis := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		axis = core.NewVec3(0, 1, 0)
	}
	u := axis.Cross(n).Normalize()
	v := n.Cross(u)
	return u, v
}
