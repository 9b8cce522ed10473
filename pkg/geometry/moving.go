package geometry

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Moving wraps a shape travelling at a constant velocity while the shutter is open
type Moving struct {
	Shape    Shape
	velocity core.Vec3
	shutter  float64
}

// NewMoving creates a moving shape. shutter is the longest time the shape will
// be traced at and widens the bounding box to cover the whole motion.
func NewMoving(shape Shape, velocity core.Vec3, shutter float64) *Moving {
	return &Moving{Shape: shape, velocity: velocity, shutter: shutter}
}

// Hit intersects the shape at time zero; use HitAt for other times
func (m *Moving) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return m.Shape.Hit(ray, tMin, tMax)
}

// Velocity implements Mover
func (m *Moving) Velocity() core.Vec3 {
	return m.velocity
}

// BoundingBox returns the box swept by the shape over the shutter interval
func (m *Moving) BoundingBox() core.AABB {
	start := m.Shape.BoundingBox()
	return start.Union(start.Translate(m.velocity.Multiply(m.shutter)))
}
