package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestFresnel_EnergyConservation(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	normal := NewVec3(0, 1, 0)

	for i := 0; i < 1000; i++ {
		dir := SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64()))
		index := 1.0 + random.Float64()*1.5

		fr := Fresnel(dir, normal, index)
		if fr.TotalInternal {
			if fr.Reflectance != 1.0 || fr.Transmittance() != 0 {
				t.Fatalf("TIR must reflect everything, got R=%v T=%v", fr.Reflectance, fr.Transmittance())
			}
			continue
		}
		if sum := fr.Reflectance + fr.Transmittance(); math.Abs(sum-1.0) > 1e-12 {
			t.Fatalf("R+T = %v, expected 1", sum)
		}
		if fr.Reflectance < 0 || fr.Reflectance > 1 {
			t.Fatalf("Reflectance %v out of range", fr.Reflectance)
		}
	}
}

func TestFresnel_EnteringAndLeaving(t *testing.T) {
	normal := NewVec3(0, 0, 1)

	entering := Fresnel(NewVec3(0, 0, -1), normal, 1.5)
	if entering.Ni != 1.0 || entering.Nt != 1.5 {
		t.Errorf("Entering: expected ni=1 nt=1.5, got ni=%v nt=%v", entering.Ni, entering.Nt)
	}
	if entering.Normal != normal {
		t.Errorf("Entering: normal should stay outward, got %v", entering.Normal)
	}
	// Normal incidence: ((n-1)/(n+1))^2 = 0.04
	if math.Abs(entering.Reflectance-0.04) > 1e-12 {
		t.Errorf("Expected normal incidence reflectance 0.04, got %v", entering.Reflectance)
	}

	leaving := Fresnel(NewVec3(0, 0, 1), normal, 1.5)
	if leaving.Ni != 1.5 || leaving.Nt != 1.0 {
		t.Errorf("Leaving: expected ni=1.5 nt=1, got ni=%v nt=%v", leaving.Ni, leaving.Nt)
	}
	if leaving.Normal != normal.Negate() {
		t.Errorf("Leaving: normal should be flipped, got %v", leaving.Normal)
	}
}

func TestFresnel_TotalInternalReflection(t *testing.T) {
	normal := NewVec3(0, 0, 1)
	// Leaving glass at a grazing angle, beyond the ~41.8 degree critical angle
	dir := NewVec3(math.Sin(1.2), 0, math.Cos(1.2))

	fr := Fresnel(dir, normal, 1.5)
	if !fr.TotalInternal {
		t.Fatalf("Expected total internal reflection, sin2t=%v", fr.Sin2T)
	}
	if fr.Sin2T <= 1 {
		t.Errorf("Expected sin2t > 1 on TIR, got %v", fr.Sin2T)
	}
}

func TestRay_ReflectAndRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	dir := NewVec3(1, -1, 0).Normalize()
	ray := NewRay(NewVec3(-1, 1, 0), dir)
	point := NewVec3(0, 0, 0)

	fr := Fresnel(ray.Direction, normal, 1.5)
	reflected := ray.Reflect(point, fr.Normal, fr.CosI)
	expected := NewVec3(1, 1, 0).Normalize()
	if reflected.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, reflected.Direction)
	}

	refracted := ray.Refract(point, fr.Normal, fr)
	// Snell: sin(t) = sin(i) / 1.5
	sinT := math.Sqrt(refracted.Direction.X*refracted.Direction.X + refracted.Direction.Z*refracted.Direction.Z)
	if math.Abs(sinT-math.Sin(math.Pi/4)/1.5) > 1e-9 {
		t.Errorf("Refraction violates Snell's law: sin(t)=%v", sinT)
	}
	if refracted.Direction.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", refracted.Direction)
	}
	if math.Abs(refracted.Direction.Length()-1) > 1e-12 {
		t.Errorf("Refracted direction should be unit length")
	}
}
