package geometry

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// parallelEpsilon is the quadratic or plane coefficient below which a ray is
// treated as parallel to the surface
const parallelEpsilon = 1e-8

// Cylinder is a finite cylinder between two end centres. Capped cylinders are
// closed solids and can hold refractive materials.
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Capped     bool
	Material   material.Material

	axis   core.Vec3 // unit vector from base to top
	height float64
}

// NewCylinder creates a cylinder from its end centres and radius
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, capped bool, mat material.Material) *Cylinder {
	axis := topCenter.Subtract(baseCenter)
	return &Cylinder{
		BaseCenter: baseCenter,
		TopCenter:  topCenter,
		Radius:     radius,
		Capped:     capped,
		Material:   mat,
		axis:       axis.Normalize(),
		height:     axis.Length(),
	}
}

// Hit returns the nearest of the side and cap intersections
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit := c.hitSide(ray, tMin, tMax)
	if c.Capped {
		closest := tMax
		if hit != nil {
			closest = hit.T
		}
		if capHit := hitDisc(ray, c.BaseCenter, c.axis.Negate(), c.Radius, tMin, closest, c.Material); capHit != nil {
			hit, closest = capHit, capHit.T
		}
		if capHit := hitDisc(ray, c.TopCenter, c.axis, c.Radius, tMin, closest, c.Material); capHit != nil {
			hit = capHit
		}
	}
	return hit, hit != nil
}

// hitSide intersects the curved surface. With Δ = O - base and v the axis, the
// part of the ray perpendicular to v must have length r.
func (c *Cylinder) hitSide(ray core.Ray, tMin, tMax float64) *material.HitRecord {
	delta := ray.Origin.Subtract(c.BaseCenter)
	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.LengthSquared() - dv*dv
	if a < parallelEpsilon {
		return nil
	}
	halfB := delta.Dot(ray.Direction) - deltaV*dv
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	discriminant := halfB*halfB - a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	// a > 0, so the roots are in ascending order
	for _, t := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if t < tMin || t > tMax {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}
		hit := &material.HitRecord{T: t, Point: point, Material: c.Material}
		axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
		hit.SetFaceNormal(ray, point.Subtract(axisPoint).Multiply(1/c.Radius))
		return hit
	}
	return nil
}

// BoundingBox returns the exact box around both end discs
func (c *Cylinder) BoundingBox() core.AABB {
	return discBounds(c.BaseCenter, c.axis, c.Radius).Union(discBounds(c.TopCenter, c.axis, c.Radius))
}

// hitDisc intersects a flat disc facing normal
func hitDisc(ray core.Ray, center, normal core.Vec3, radius, tMin, tMax float64, mat material.Material) *material.HitRecord {
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < parallelEpsilon {
		return nil
	}
	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return nil
	}
	point := ray.At(t)
	if point.Subtract(center).LengthSquared() > radius*radius {
		return nil
	}
	hit := &material.HitRecord{T: t, Point: point, Material: mat}
	hit.SetFaceNormal(ray, normal)
	return hit
}

// discBounds returns the box around a disc with unit normal axis. Along each
// world axis the disc extends radius*sqrt(1 - axis_i²) from its centre.
func discBounds(center, axis core.Vec3, radius float64) core.AABB {
	extent := core.NewVec3(
		radius*math.Sqrt(math.Max(0, 1-axis.X*axis.X)),
		radius*math.Sqrt(math.Max(0, 1-axis.Y*axis.Y)),
		radius*math.Sqrt(math.Max(0, 1-axis.Z*axis.Z)),
	)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}
