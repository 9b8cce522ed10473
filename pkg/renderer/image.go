package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-photon-raytracer/pkg/core"
)

// FloatImage is a linear RGB raster. Rows grow downward.
type FloatImage struct {
	Width, Height int
	Pix           []core.Vec3
}

// NewFloatImage creates a black image
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{Width: width, Height: height, Pix: make([]core.Vec3, width*height)}
}

// At returns the colour of pixel (x, y)
func (f *FloatImage) At(x, y int) core.Vec3 {
	return f.Pix[y*f.Width+x]
}

// Set stores the colour of pixel (x, y)
func (f *FloatImage) Set(x, y int, c core.Vec3) {
	f.Pix[y*f.Width+x] = c
}

// ToRGBA converts to 8-bit RGBA, applying gamma and clamping to [0, 1]
func (f *FloatImage) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(f.At(x, y), gamma))
		}
	}
	return img
}

// EncodePNG writes the image as PNG
func (f *FloatImage) EncodePNG(w io.Writer, gamma float64) error {
	return png.Encode(w, f.ToRGBA(gamma))
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	if gamma > 0 && gamma != 1 {
		colorVec = colorVec.GammaCorrect(gamma)
	}
	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
