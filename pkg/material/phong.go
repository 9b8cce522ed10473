package material

import (
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
)

// DefaultCausticRadius is the world-space photon gather radius
const DefaultCausticRadius = 1.0

// Lights dimmer than this are skipped
const minIntensity = 1e-4

// Phong is a diffuse + specular material that can also be refractive
type Phong struct {
	Diffuse         core.Vec3 // kd
	Specular        core.Vec3 // ks
	Shininess       float64
	Refractive      bool
	RefractiveIndex float64
	Glossiness      float64 // Lobe exponent for blurred reflections, 0 for a mirror
	CausticRadius   float64
}

// NewPhong creates an opaque Phong material
func NewPhong(diffuse, specular core.Vec3, shininess float64) *Phong {
	return &Phong{
		Diffuse:       diffuse,
		Specular:      specular,
		Shininess:     shininess,
		CausticRadius: DefaultCausticRadius,
	}
}

// NewGlass creates a refractive Phong material. The diffuse and specular terms
// still shade the surface and are added to the refracted path.
func NewGlass(diffuse, specular core.Vec3, shininess, refractiveIndex, glossiness float64) *Phong {
	p := NewPhong(diffuse, specular, shininess)
	p.Refractive = true
	p.RefractiveIndex = refractiveIndex
	p.Glossiness = glossiness
	return p
}

// Refraction implements the Material interface
func (p *Phong) Refraction() (float64, float64, bool) {
	return p.RefractiveIndex, p.Glossiness, p.Refractive
}

// Shade implements the Material interface
func (p *Phong) Shade(ctx ShadingContext, rayIn core.Ray, hit HitRecord, ambient core.Vec3, time float64) core.Vec3 {
	colour := ambient.MultiplyVec(p.Diffuse)

	sceneLights := ctx.Lights()
	if len(sceneLights) == 0 {
		return colour
	}

	// The estimate does not depend on the light, so gather once and add it per light
	caustic := p.causticEstimate(ctx, hit)
	toEye := rayIn.Origin.Subtract(hit.Point).Normalize()

	for _, light := range sceneLights {
		colour = colour.Add(caustic)

		intensity := light.Intensity(ctx, hit.Point, time)
		if intensity < minIntensity {
			continue
		}

		lightDir := light.Position().Subtract(hit.Point).Normalize()
		lDotN := math.Max(lightDir.Dot(hit.Normal), 0)

		if !p.Diffuse.IsZero() {
			diffuse := p.Diffuse.MultiplyVec(light.Colour()).Multiply(lDotN * intensity)
			colour = colour.Add(diffuse)
		}

		if !p.Specular.IsZero() {
			reflection := hit.Normal.Multiply(2 * lDotN).Subtract(lightDir).Normalize()
			if rDotE := reflection.Dot(toEye); rDotE > 0 {
				specular := p.Specular.MultiplyVec(light.Colour()).Multiply(math.Pow(rDotE, p.Shininess) * intensity)
				colour = colour.Add(specular)
			}
		}
	}
	return colour
}

// causticEstimate sums the photons around the hit and divides by the area of
// the disc reaching the farthest one
func (p *Phong) causticEstimate(ctx ShadingContext, hit HitRecord) core.Vec3 {
	radius := p.CausticRadius
	if radius <= 0 {
		return core.Vec3{}
	}

	photons, maxDistSquared := ctx.LocatePhotons(hit.Point, radius*radius)
	if maxDistSquared <= 0 {
		return core.Vec3{}
	}

	var total core.Vec3
	for _, photon := range photons {
		cos := photon.IncidentDirection.Negate().Dot(hit.Normal)
		if cos <= 0 {
			continue
		}
		total = total.Add(p.Diffuse.MultiplyVec(photon.Power).Multiply(cos))
	}
	return total.Multiply(1.0 / (math.Pi * maxDistSquared))
}
