package geometry

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// Mover is implemented by shapes travelling at a constant velocity.
// A mover's Hit answers for time zero.
type Mover interface {
	Shape
	Velocity() core.Vec3
}

// HitAt intersects shape as it is positioned at time. Movers are hit by
// translating the ray into the shape's frame at time zero and moving the hit
// point back out again.
func HitAt(shape Shape, ray core.Ray, tMin, tMax, time float64) (*material.HitRecord, bool) {
	mover, ok := shape.(Mover)
	if !ok || time == 0 {
		return shape.Hit(ray, tMin, tMax)
	}

	offset := mover.Velocity().Multiply(time)
	hit, isHit := shape.Hit(ray.Offset(offset.Negate()), tMin, tMax)
	if !isHit {
		return nil, false
	}
	hit.Point = hit.Point.Add(offset)
	return hit, true
}

// SweptBounds returns the box shape occupies at any time in [0, shutter]
func SweptBounds(shape Shape, shutter float64) core.AABB {
	box := shape.BoundingBox()
	mover, ok := shape.(Mover)
	if !ok || shutter <= 0 {
		return box
	}
	return box.Union(box.Translate(mover.Velocity().Multiply(shutter)))
}
