package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Pixels in the image
	Rendered    int           // Pixels actually traced
	Rays        int64         // Rays traced by all workers
	MaxDepth    int           // Deepest recursion reached by any ray
	Photons     int           // Caustic photons stored
	Workers     int           // Goroutines used
	Tasks       int           // Tiles submitted
	Duration    time.Duration // Wall time of the render, excluding scene setup
}

// RaysPerPixel returns the average number of rays per rendered pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.Rendered == 0 {
		return 0
	}
	return float64(s.Rays) / float64(s.Rendered)
}

// CalculateAverageLuminance computes the average luminance of an 8-bit image
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535 + 0.7152*float64(g)/65535 + 0.0722*float64(b)/65535
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
