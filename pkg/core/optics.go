package core

import "math"

// FresnelResult describes how light splits at a refractive interface
type FresnelResult struct {
	Normal        Vec3    // Surface normal flipped to face the incoming ray
	Ni, Nt        float64 // Indices of refraction on the incident and transmitted side
	CosI          float64 // Cosine of the angle of incidence
	CosT          float64 // Cosine of the transmission angle (0 on total internal reflection)
	Sin2T         float64 // Squared sine of the transmission angle
	Reflectance   float64 // Fraction of power reflected
	TotalInternal bool    // True when no transmission is possible
}

// Transmittance returns the fraction of power carried by the refracted ray
func (f FresnelResult) Transmittance() float64 {
	if f.TotalInternal {
		return 0
	}
	return 1 - f.Reflectance
}

// Fresnel computes the unpolarized Fresnel reflectance for a unit direction
// striking a surface with outward unit normal. The sign of dot(direction, normal)
// decides whether the ray enters (negative) or leaves (positive) the medium.
func Fresnel(direction, outwardNormal Vec3, refractiveIndex float64) FresnelResult {
	fr := FresnelResult{Normal: outwardNormal}

	cosI := direction.Dot(outwardNormal)
	if cosI > 0 {
		// Leaving the medium
		fr.Ni, fr.Nt = refractiveIndex, 1.0
		fr.Normal = outwardNormal.Negate()
	} else {
		fr.Ni, fr.Nt = 1.0, refractiveIndex
		cosI = -cosI
	}
	fr.CosI = math.Min(cosI, 1.0)

	eta := fr.Ni / fr.Nt
	fr.Sin2T = eta * eta * (1.0 - fr.CosI*fr.CosI)
	if fr.Sin2T > 1.0 {
		fr.TotalInternal = true
		fr.Reflectance = 1.0
		return fr
	}

	fr.CosT = math.Sqrt(1.0 - fr.Sin2T)
	perpDen := fr.Ni*fr.CosI + fr.Nt*fr.CosT
	parDen := fr.Nt*fr.CosI + fr.Ni*fr.CosT
	if perpDen == 0 || parDen == 0 {
		// Grazing incidence across a matched interface
		fr.Reflectance = 1.0
		return fr
	}
	rPerp := (fr.Ni*fr.CosI - fr.Nt*fr.CosT) / perpDen
	rPar := (fr.Nt*fr.CosI - fr.Ni*fr.CosT) / parDen
	fr.Reflectance = (rPerp*rPerp + rPar*rPar) * 0.5
	return fr
}
