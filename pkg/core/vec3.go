package core

import "math"

// ColourEpsilon is the tolerance used when comparing colours for equality
const ColourEpsilon = 1e-9

// Vec3 is a point, direction or linear RGB colour
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MultiplyVec multiplies component-wise; used to filter colours
func (v Vec3) MultiplyVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Negate() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector along v, or zero for a zero vector
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l > 0 {
		return v.Multiply(1 / l)
	}
	return Vec3{}
}

// Axis returns the component for axis 0=X, 1=Y, 2=Z
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("core: axis out of range")
}

// Clamp limits every component to [lo, hi]
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{max(lo, min(hi, v.X)), max(lo, min(hi, v.Y)), max(lo, min(hi, v.Z))}
}

// GammaCorrect raises each channel to 1/gamma
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	g := 1 / gamma
	return Vec3{math.Pow(v.X, g), math.Pow(v.Y, g), math.Pow(v.Z, g)}
}

// Luminance weights RGB by 0.299, 0.587 and 0.114
func (v Vec3) Luminance() float64 {
	return 0.299*v.X + 0.587*v.Y + 0.114*v.Z
}

func (v Vec3) IsZero() bool { return v == Vec3{} }

// Equals compares within ColourEpsilon per component
func (v Vec3) Equals(o Vec3) bool {
	d := v.Subtract(o)
	return math.Abs(d.X) <= ColourEpsilon && math.Abs(d.Y) <= ColourEpsilon && math.Abs(d.Z) <= ColourEpsilon
}

// Vec2 is a 2D sample in [0,1)²
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}
