package core

import (
	"math"
	"math/rand"
)

// SampleUniformCubeDirection draws a direction by normalizing a uniform point in
// [-1,1]^3, redrawing the rare near-zero sample. The distribution is biased
// toward the cube corners, matching the photon emitter it serves.
func SampleUniformCubeDirection(random *rand.Rand) Vec3 {
	for {
		v := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		if v.LengthSquared() > 1e-12 {
			return v.Normalize()
		}
	}
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SampleGlossyLobe perturbs a unit reflection direction inside a cosine-power
// lobe using inverse-CDF sampling: cos(theta) = (1-u)^(1/(glossiness+1)),
// phi = 2*pi*v. u and v span the plane perpendicular to the reflection.
func SampleGlossyLobe(reflected, normal Vec3, glossiness float64, sample Vec2) Vec3 {
	u := reflected.Cross(normal)
	if u.LengthSquared() < 1e-12 {
		// Reflection along the normal; any perpendicular works
		if math.Abs(reflected.X) > 0.1 {
			u = NewVec3(0, 1, 0).Cross(reflected)
		} else {
			u = NewVec3(1, 0, 0).Cross(reflected)
		}
	}
	u = u.Normalize()
	v := reflected.Cross(u)

	theta := math.Acos(math.Pow(1.0-sample.X, 1.0/(glossiness+1.0)))
	phi := 2.0 * math.Pi * sample.Y
	x := math.Sin(theta) * math.Cos(phi)
	y := math.Sin(theta) * math.Sin(phi)

	return u.Multiply(x).Add(v.Multiply(y)).Add(reflected).Normalize()
}

// SampleAperture returns an offset inside the elliptical lens aperture spanned
// by the right and up radius vectors, from two uniform [-1,1] draws
func SampleAperture(right, up Vec3, random *rand.Rand) Vec3 {
	return right.Multiply(2*random.Float64() - 1).Add(up.Multiply(2*random.Float64() - 1))
}
