package geometry

import (
	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Triangle is a flat triangle. Its outward normal follows the counter-clockwise
// winding of V0, V1, V2.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material

	edge1, edge2 core.Vec3
	normal       core.Vec3
}

// NewTriangle creates a triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		edge1:    edge1,
		edge2:    edge2,
		normal:   edge1.Cross(edge2).Normalize(),
	}
}

// Hit intersects the ray with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	p := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(p)
	if det > -parallelEpsilon && det < parallelEpsilon {
		return nil, false
	}
	invDet := 1 / det

	s := ray.Origin.Subtract(t.V0)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}
	q := s.Cross(t.edge1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	dist := t.edge2.Dot(q) * invDet
	if dist < tMin || dist > tMax {
		return nil, false
	}

	hit := &material.HitRecord{T: dist, Point: ray.At(dist), Material: t.Material}
	hit.SetFaceNormal(ray, t.normal)
	return hit, true
}

// BoundingBox returns the box around the three vertices
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Normal returns the unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
