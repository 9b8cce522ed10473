package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// Cone is a finite cone, or a frustum when TopRadius > 0
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64
	Capped     bool
	Material   material.Material

	axis   core.Vec3 // unit vector from base to top
	height float64
	slope  float64 // radius lost per unit of height
}

// NewCone creates a cone narrowing from baseRadius to topRadius
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool, mat material.Material) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must exceed top radius (base=%f, top=%f); use a cylinder for equal radii", baseRadius, topRadius)
	}
	axis := topCenter.Subtract(baseCenter)
	height := axis.Length()
	if height <= 0 {
		return nil, fmt.Errorf("base and top centers must differ")
	}

	return &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
		Capped:     capped,
		Material:   mat,
		axis:       axis.Normalize(),
		height:     height,
		slope:      (baseRadius - topRadius) / height,
	}, nil
}

// Hit returns the nearest of the body and cap intersections
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit := c.hitBody(ray, tMin, tMax)
	if c.Capped {
		closest := tMax
		if hit != nil {
			closest = hit.T
		}
		if capHit := hitDisc(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius, tMin, closest, c.Material); capHit != nil {
			hit, closest = capHit, capHit.T
		}
		if c.TopRadius > 0 {
			if capHit := hitDisc(ray, c.TopCenter, c.axis, c.TopRadius, tMin, closest, c.Material); capHit != nil {
				hit = capHit
			}
		}
	}
	return hit, hit != nil
}

// hitBody intersects the sloped surface. A point at height h lies on it when
// its distance from the axis equals BaseRadius - slope*h. Restricting h to
// [0, height] keeps the radius non-negative, which rules out the mirrored nappe.
func (c *Cone) hitBody(ray core.Ray, tMin, tMax float64) *material.HitRecord {
	delta := ray.Origin.Subtract(c.BaseCenter)
	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)
	radiusAtOrigin := c.BaseRadius - c.slope*deltaV

	a := ray.Direction.LengthSquared() - (1+c.slope*c.slope)*dv*dv
	halfB := delta.Dot(ray.Direction) - deltaV*dv + radiusAtOrigin*c.slope*dv
	cc := delta.LengthSquared() - deltaV*deltaV - radiusAtOrigin*radiusAtOrigin

	var roots []float64
	if math.Abs(a) < parallelEpsilon {
		// Parallel to a generating line: one crossing at most
		if halfB == 0 {
			return nil
		}
		roots = []float64{-cc / (2 * halfB)}
	} else {
		discriminant := halfB*halfB - a*cc
		if discriminant < 0 {
			return nil
		}
		sqrtD := math.Sqrt(discriminant)
		t0, t1 := (-halfB-sqrtD)/a, (-halfB+sqrtD)/a
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		roots = []float64{t0, t1}
	}

	for _, t := range roots {
		if t < tMin || t > tMax {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}
		radial := point.Subtract(c.BaseCenter.Add(c.axis.Multiply(h))).Normalize()
		hit := &material.HitRecord{T: t, Point: point, Material: c.Material}
		hit.SetFaceNormal(ray, radial.Add(c.axis.Multiply(c.slope)).Normalize())
		return hit
	}
	return nil
}

// BoundingBox returns the exact box around the base and top discs
func (c *Cone) BoundingBox() core.AABB {
	return discBounds(c.BaseCenter, c.axis, c.BaseRadius).Union(discBounds(c.TopCenter, c.axis, c.TopRadius))
}
