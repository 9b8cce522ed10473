package geometry

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Box represents an axis-aligned solid box
type Box struct {
	Bounds   core.AABB
	Material material.Material
}

// NewBox creates a box from its minimum and maximum corners
func NewBox(min, max core.Vec3, material material.Material) *Box {
	return &Box{Bounds: core.NewAABB(min, max), Material: material}
}

// NewAxisAlignedBox creates a box from its center and half-extents
func NewAxisAlignedBox(center, size core.Vec3, material material.Material) *Box {
	return NewBox(center.Subtract(size), center.Add(size), material)
}

// Hit tests the ray against the box slabs. The entry point is preferred;
// a ray starting inside hits the exit face.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	tNear, tFar := b.Bounds.Slab(ray)
	if tNear > tFar {
		return nil, false
	}

	root := tNear
	if root < tMin || root > tMax {
		root = tFar
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: b.Material,
	}
	hitRecord.SetFaceNormal(ray, b.faceNormal(hitRecord.Point))

	return hitRecord, true
}

// faceNormal returns the outward normal of the face closest to point
func (b *Box) faceNormal(point core.Vec3) core.Vec3 {
	best := math.Inf(1)
	var normal core.Vec3
	for axis := 0; axis < 3; axis++ {
		if d := math.Abs(point.Axis(axis) - b.Bounds.Min.Axis(axis)); d < best {
			best = d
			normal = axisVector(axis, -1)
		}
		if d := math.Abs(point.Axis(axis) - b.Bounds.Max.Axis(axis)); d < best {
			best = d
			normal = axisVector(axis, 1)
		}
	}
	return normal
}

func axisVector(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.Bounds
}
