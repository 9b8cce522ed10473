package geometry

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Sphere is a solid sphere with a single material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit intersects the ray with the sphere using the closest point of approach
// to the centre, which stays accurate for rays starting far away
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dirLen2 := ray.Direction.LengthSquared()
	if dirLen2 == 0 {
		return nil, false
	}
	toCenter := s.Center.Subtract(ray.Origin)
	tClosest := ray.Direction.Dot(toCenter) / dirLen2
	miss := toCenter.Subtract(ray.Direction.Multiply(tClosest)).LengthSquared()

	halfChord2 := s.Radius*s.Radius - miss
	if halfChord2 < 0 {
		return nil, false
	}
	halfChord := math.Sqrt(halfChord2 / dirLen2)

	t := tClosest - halfChord
	if t < tMin || t > tMax {
		t = tClosest + halfChord
		if t < tMin || t > tMax {
			return nil, false
		}
	}

	point := ray.At(t)
	hit := &material.HitRecord{T: t, Point: point, Material: s.Material}
	hit.SetFaceNormal(ray, point.Subtract(s.Center).Multiply(1/s.Radius))
	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
