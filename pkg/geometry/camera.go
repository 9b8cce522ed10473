package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-photon-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens radius, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in focus (0 = distance to LookAt)
	DOFRays       int       // Eye samples per pixel for lens cameras
}

// DefaultDOFRays is the lens sample count when the config leaves it unset
const DefaultDOFRays = 8

// Height returns the image height implied by Width and AspectRatio
func (c CameraConfig) Height() int {
	if c.AspectRatio <= 0 {
		return c.Width
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.DOFRays != 0 {
		result.DOFRays = override.DOFRays
	}
	return result
}

// Camera generates primary rays through image pixels
type Camera interface {
	// RayThroughPixel returns the ray from eye through sub-pixel (u, v) of pixel (x, y).
	// u and v are in [0, 1]; pixel rows grow downward.
	RayThroughPixel(x, y int, u, v float64, eye core.Vec3) core.Ray

	// RandomEye returns the ray origin for one depth of field sample
	RandomEye(random *rand.Rand) core.Vec3

	// DOFSampleCount is the number of eye samples averaged per pixel
	DOFSampleCount() int
}

// NewCamera returns a LensCamera when the aperture is open, a PinholeCamera otherwise
func NewCamera(config CameraConfig) Camera {
	if config.Aperture != 0 {
		return NewLensCamera(config)
	}
	return NewPinholeCamera(config)
}

// imagePlane maps pixels onto a plane at distance focal in front of the eye
type imagePlane struct {
	eye         core.Vec3
	view        core.Vec3 // Unit view direction scaled by the plane distance
	right       core.Vec3 // Unit right vector
	down        core.Vec3 // Unit vector along increasing pixel rows
	halfWidth   float64
	halfHeight  float64
	pixelWidth  float64
	pixelHeight float64
}

func newImagePlane(config CameraConfig, focal float64) imagePlane {
	width := max(1, config.Width)
	height := config.Height()

	view := config.LookAt.Subtract(config.Center).Normalize()
	down := config.Up.Negate().Normalize()
	right := down.Cross(view).Normalize()
	// Re-orthogonalize in case Up was not perpendicular to the view
	down = view.Cross(right).Normalize()

	halfHeight := focal * math.Tan(config.VFov*math.Pi/360)
	halfWidth := halfHeight * float64(width) / float64(height)

	return imagePlane{
		eye:         config.Center,
		view:        view.Multiply(focal),
		right:       right,
		down:        down,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelWidth:  2 * halfWidth / float64(width),
		pixelHeight: 2 * halfHeight / float64(height),
	}
}

func (p imagePlane) ray(x, y int, u, v float64, eye core.Vec3) core.Ray {
	rightComp := p.right.Multiply((float64(x)+u)*p.pixelWidth - p.halfWidth)
	downComp := p.down.Multiply((float64(y)+v)*p.pixelHeight - p.halfHeight)
	target := p.eye.Add(p.view).Add(rightComp).Add(downComp)
	return core.NewRay(eye, target.Subtract(eye))
}

// PinholeCamera is a camera without depth of field
type PinholeCamera struct {
	plane imagePlane
}

// NewPinholeCamera creates a camera with the image plane one unit from the eye
func NewPinholeCamera(config CameraConfig) *PinholeCamera {
	return &PinholeCamera{plane: newImagePlane(config, 1.0)}
}

func (c *PinholeCamera) RayThroughPixel(x, y int, u, v float64, eye core.Vec3) core.Ray {
	return c.plane.ray(x, y, u, v, eye)
}

func (c *PinholeCamera) RandomEye(random *rand.Rand) core.Vec3 { return c.plane.eye }
func (c *PinholeCamera) DOFSampleCount() int                   { return 1 }

// LensCamera jitters the eye across an aperture so that only the focus plane is sharp
type LensCamera struct {
	plane         imagePlane
	apertureRight core.Vec3
	apertureUp    core.Vec3
	dofRays       int
}

// NewLensCamera creates a depth of field camera focused at config.FocusDistance
func NewLensCamera(config CameraConfig) *LensCamera {
	focus := config.FocusDistance
	if focus <= 0 {
		focus = config.LookAt.Subtract(config.Center).Length()
	}
	dofRays := config.DOFRays
	if dofRays <= 0 {
		dofRays = DefaultDOFRays
	}

	plane := newImagePlane(config, focus)
	return &LensCamera{
		plane:         plane,
		apertureRight: plane.right.Multiply(config.Aperture),
		apertureUp:    plane.down.Negate().Multiply(config.Aperture),
		dofRays:       dofRays,
	}
}

func (c *LensCamera) RayThroughPixel(x, y int, u, v float64, eye core.Vec3) core.Ray {
	return c.plane.ray(x, y, u, v, eye)
}

// RandomEye offsets the eye inside the aperture
func (c *LensCamera) RandomEye(random *rand.Rand) core.Vec3 {
	return c.plane.eye.Add(core.SampleAperture(c.apertureRight, c.apertureUp, random))
}

func (c *LensCamera) DOFSampleCount() int { return c.dofRays }
