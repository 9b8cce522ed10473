package material

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/lights"
)

// Material interface for surfaces that can be lit
type Material interface {
	// Shade computes local illumination at a hit: ambient, caustic, diffuse and specular
	Shade(ctx ShadingContext, rayIn core.Ray, hit HitRecord, ambient core.Vec3, time float64) core.Vec3

	// Refraction returns the refractive index and glossiness of transparent
	// materials. ok is false for opaque materials.
	Refraction() (index, glossiness float64, ok bool)
}

// ShadingContext is the scene view a material needs while shading
type ShadingContext interface {
	lights.Occluder

	Lights() []lights.Light

	// LocatePhotons returns the caustic photons within sqrt(radiusSquared) of point
	// and the largest squared distance among them (core.NoMatchDistance if none)
	LocatePhotons(point core.Vec3, radiusSquared float64) ([]*core.Photon, float64)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Outward unit surface normal
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal stores the outward normal and records which face was hit.
// The normal is not flipped; refraction code relies on its orientation.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	h.Normal = outwardNormal
}
