package renderer

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-photon-raytracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	tests := []struct {
		name     string
		pixels   []color.RGBA
		width    int
		expected float64
	}{
		// 0.2126 + 0.7152 + 0.0722 + 0 over four pixels
		{"primaries and black", []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {0, 0, 0, 255}}, 2, 0.25},
		{"single white pixel", []color.RGBA{{255, 255, 255, 255}}, 1, 1.0},
		{"all black", []color.RGBA{{0, 0, 0, 255}, {0, 0, 0, 255}}, 2, 0.0},
		{"empty image", nil, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			height := 0
			if tt.width > 0 {
				height = len(tt.pixels) / tt.width
			}
			img := image.NewRGBA(image.Rect(0, 0, tt.width, height))
			for i, c := range tt.pixels {
				img.Set(i%tt.width, i/tt.width, c)
			}

			got := CalculateAverageLuminance(img)
			if math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("Expected average luminance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestCalculateAverageLuminance_FloatImage(t *testing.T) {
	img := NewFloatImage(2, 1)
	img.Set(0, 0, core.NewVec3(1, 1, 1))
	img.Set(1, 0, core.NewVec3(4, 4, 4)) // clamped to white

	if got := CalculateAverageLuminance(img.ToRGBA(1)); math.Abs(got-1) > 1e-4 {
		t.Errorf("Expected a saturated image to average 1, got %f", got)
	}
}

func TestRenderStats_RaysPerPixel(t *testing.T) {
	tests := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{"nothing rendered", RenderStats{Rays: 10}, 0},
		{"one ray each", RenderStats{Rendered: 16, Rays: 16}, 1},
		{"refraction", RenderStats{Rendered: 4, Rays: 10}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.RaysPerPixel(); got != tt.expected {
				t.Errorf("Expected %f rays per pixel, got %f", tt.expected, got)
			}
		})
	}
}
