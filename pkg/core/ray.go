package core

// Ray represents a ray with an origin, a unit direction and the reciprocal
// direction used by box slab tests
type Ray struct {
	Origin       Vec3
	Direction    Vec3
	InvDirection Vec3
}

// NewRay creates a new ray, normalizing the direction.
// A zero direction component yields an infinite reciprocal on that axis.
func NewRay(origin, direction Vec3) Ray {
	d := direction.Normalize()
	return Ray{
		Origin:       origin,
		Direction:    d,
		InvDirection: Vec3{X: 1.0 / d.X, Y: 1.0 / d.Y, Z: 1.0 / d.Z},
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Offset returns the same ray translated by delta
func (r Ray) Offset(delta Vec3) Ray {
	r.Origin = r.Origin.Add(delta)
	return r
}

// Reflect mirrors the ray about normal at point. cosI is -dot(direction, normal)
// with normal facing the incoming ray.
func (r Ray) Reflect(point, normal Vec3, cosI float64) Ray {
	return NewRay(point, r.Direction.Add(normal.Multiply(2*cosI)))
}

// Refract bends the ray through an interface using Snell's law
func (r Ray) Refract(point, normal Vec3, fr FresnelResult) Ray {
	eta := fr.Ni / fr.Nt
	dir := r.Direction.Multiply(eta).Add(normal.Multiply(eta*fr.CosI - fr.CosT))
	return NewRay(point, dir)
}

// RayEpsilon is the self-intersection tolerance. Secondary and shadow rays
// ignore hits closer than this.
const RayEpsilon = 1e-4
