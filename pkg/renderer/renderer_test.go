package renderer

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/geometry"
	"github.com/df07/go-photon-raytracer/pkg/integrator"
	"github.com/df07/go-photon-raytracer/pkg/material"
	"github.com/df07/go-photon-raytracer/pkg/scene"
)

// MockLogger records log lines
type MockLogger struct {
	mu    sync.Mutex
	lines []string
}

func (m *MockLogger) Printf(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, format)
}

func (m *MockLogger) contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// PanickingMaterial fails whenever it is shaded
type PanickingMaterial struct{}

func (PanickingMaterial) Shade(ctx material.ShadingContext, rayIn core.Ray, hit material.HitRecord, ambient core.Vec3, time float64) core.Vec3 {
	panic("shading failed")
}

func (PanickingMaterial) Refraction() (float64, float64, bool) { return 0, 0, false }

func smallConfig(s *scene.Scene) Config {
	config := DefaultConfig().ApplyScene(s)
	config.ProgressInterval = 0
	return config
}

func mustRender(t *testing.T, s *scene.Scene, config Config) (*FloatImage, RenderStats) {
	t.Helper()
	r, err := NewRenderer(s, config, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return img, stats
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"supersampling and adaptive", func(c *Config) { c.SuperSamples = 3; c.Adaptive = true }, ErrConflictingAntiAliasing},
		{"adaptive alone", func(c *Config) { c.Adaptive = true }, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidDimensions},
		{"negative workers", func(c *Config) { c.NumWorkers = -2 }, ErrInvalidDimensions},
		{"grid without blocks", func(c *Config) { c.Schedule = ScheduleGrid; c.GridX = 0 }, ErrInvalidDimensions},
		{"grid", func(c *Config) { c.Schedule = ScheduleGrid; c.GridX = 2; c.GridY = 3 }, nil},
		{"unknown schedule", func(c *Config) { c.Schedule = "spiral" }, ErrUnknownSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.err == nil && err != nil {
				t.Errorf("Unexpected error %v", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestConfig_Sampler(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		expected integrator.Sampler
	}{
		{"centre", func(c *Config) {}, integrator.CenterSampler{}},
		{"grid", func(c *Config) { c.SuperSamples = 3 }, integrator.GridSampler{N: 3}},
		{"adaptive", func(c *Config) { c.Adaptive = true }, integrator.AdaptiveSampler{MaxDepth: integrator.DefaultAdaptiveDepth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if got := config.sampler(); got != tt.expected {
				t.Errorf("Expected %#v, got %#v", tt.expected, got)
			}
		})
	}
}

func TestNewRenderer_RejectsConflictingAntiAliasing(t *testing.T) {
	s := scene.NewDefaultScene(geometry.CameraConfig{Width: 8})
	config := smallConfig(s)
	config.SuperSamples = 2
	config.Adaptive = true

	if _, err := NewRenderer(s, config, nil); !errors.Is(err, ErrConflictingAntiAliasing) {
		t.Errorf("Expected ErrConflictingAntiAliasing, got %v", err)
	}
}

func TestPixelQueue_EachPixelOnce(t *testing.T) {
	bounds := image.Rect(2, 3, 13, 11)
	q := NewPixelQueue(bounds)

	var mu sync.Mutex
	seen := make(map[image.Point]int)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				x, y, ok := q.Next()
				if !ok {
					return
				}
				mu.Lock()
				seen[image.Pt(x, y)]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != q.Len() {
		t.Fatalf("Expected %d distinct pixels, got %d", q.Len(), len(seen))
	}
	for p, n := range seen {
		if n != 1 || !p.In(bounds) {
			t.Errorf("Pixel %v returned %d times", p, n)
		}
	}
	if _, _, ok := q.Next(); ok {
		t.Error("Expected a drained queue to stay drained")
	}
}

func TestPixelQueue_RowMajor(t *testing.T) {
	q := NewPixelQueue(image.Rect(0, 0, 2, 2))
	expected := []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, p := range expected {
		x, y, ok := q.Next()
		if !ok || x != p.X || y != p.Y {
			t.Errorf("Step %d: expected %v, got (%d,%d) ok=%v", i, p, x, y, ok)
		}
	}
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		gridX, gridY  int
		tiles         int
	}{
		{"single block", 10, 7, 1, 1, 1},
		{"even split", 8, 8, 2, 2, 4},
		{"uneven split", 10, 7, 3, 2, 6},
		{"more blocks than pixels", 3, 2, 8, 8, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.gridX, tt.gridY)
			if len(tiles) != tt.tiles {
				t.Fatalf("Expected %d tiles, got %d", tt.tiles, len(tiles))
			}

			covered := make(map[image.Point]bool)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Tile %d has ID %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						p := image.Pt(x, y)
						if covered[p] {
							t.Fatalf("Pixel %v covered twice", p)
						}
						covered[p] = true
					}
				}
			}
			if len(covered) != tt.width*tt.height {
				t.Errorf("Expected %d pixels covered, got %d", tt.width*tt.height, len(covered))
			}
		})
	}
}

func TestFloatImage_ToRGBA(t *testing.T) {
	f := NewFloatImage(2, 1)
	f.Set(0, 0, core.NewVec3(1, 0.5, 0))
	f.Set(1, 0, core.NewVec3(2, -1, 0.25))

	tests := []struct {
		name     string
		gamma    float64
		expected [2][3]uint8
	}{
		{"linear", 1, [2][3]uint8{{255, 128, 0}, {255, 0, 64}}},
		{"gamma 2", 2, [2][3]uint8{{255, 180, 0}, {255, 0, 128}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := f.ToRGBA(tt.gamma)
			for x := 0; x < 2; x++ {
				c := img.RGBAAt(x, 0)
				got := [3]uint8{c.R, c.G, c.B}
				if got != tt.expected[x] || c.A != 255 {
					t.Errorf("Pixel %d: expected %v, got %v (alpha %d)", x, tt.expected[x], got, c.A)
				}
			}
		})
	}
}

func TestRender_OctreeMatchesBruteForce(t *testing.T) {
	s := scene.NewRandomBoxesScene(42, scene.RandomBoxCount, geometry.CameraConfig{Width: 32})

	config := smallConfig(s)
	config.NumWorkers = 4
	config.UseOctree = false
	brute, _ := mustRender(t, s, config)

	config.UseOctree = true
	octree, stats := mustRender(t, s, config)

	if stats.Rendered != stats.TotalPixels {
		t.Errorf("Expected %d pixels rendered, got %d", stats.TotalPixels, stats.Rendered)
	}
	lit := 0
	for i := range brute.Pix {
		if brute.Pix[i].Subtract(octree.Pix[i]).Length() > 1e-9 {
			t.Fatalf("Pixel %d differs: brute force %v, octree %v", i, brute.Pix[i], octree.Pix[i])
		}
		if !brute.Pix[i].IsZero() {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected some boxes in view")
	}
}

func TestRender_OctreeMatchesBruteForceWithLongShutter(t *testing.T) {
	s := scene.NewMotionBlurScene(geometry.CameraConfig{Width: 24})

	config := smallConfig(s)
	config.PhotonsPerLight = 0
	config.Shutter = 3 * s.SamplingConfig.Shutter
	config.TimeSteps = 3
	config.UseOctree = false
	brute, _ := mustRender(t, s, config)

	config.UseOctree = true
	octree, _ := mustRender(t, s, config)

	for i := range brute.Pix {
		if brute.Pix[i].Subtract(octree.Pix[i]).Length() > 1e-9 {
			t.Fatalf("Pixel %d differs: brute force %v, octree %v", i, brute.Pix[i], octree.Pix[i])
		}
	}
}

func TestRender_SchedulesAgree(t *testing.T) {
	s := scene.NewDefaultScene(geometry.CameraConfig{Width: 24})
	base := smallConfig(s)
	base.PhotonsPerLight = 0

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"queue with many workers", func(c *Config) { c.NumWorkers = 6 }},
		{"grid 3x2", func(c *Config) { c.Schedule = ScheduleGrid; c.GridX = 3; c.GridY = 2; c.NumWorkers = 3 }},
		{"grid with all CPUs", func(c *Config) { c.Schedule = ScheduleGrid; c.GridX = 4; c.GridY = 4; c.NumWorkers = 0 }},
	}

	reference, _ := mustRender(t, s, base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base
			tt.modify(&config)
			img, stats := mustRender(t, s, config)

			if stats.Rendered != stats.TotalPixels {
				t.Errorf("Expected every pixel rendered once, got %d of %d", stats.Rendered, stats.TotalPixels)
			}
			for i := range img.Pix {
				if img.Pix[i] != reference.Pix[i] {
					t.Fatalf("Pixel %d differs from the single worker render", i)
				}
			}
		})
	}
}

func TestRender_WorkerPanicBecomesError(t *testing.T) {
	config := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 5), LookAt: core.NewVec3(0, 0, 0), Up: core.NewVec3(0, 1, 0),
		Width: 8, AspectRatio: 1, VFov: 40,
	}
	s := &scene.Scene{
		Camera:       geometry.NewCamera(config),
		CameraConfig: config,
		Shapes:       []geometry.Shape{geometry.NewSphere(core.NewVec3(0, 0, 0), 1, PanickingMaterial{})},
	}

	renderConfig := smallConfig(s)
	renderConfig.NumWorkers = 2
	r, err := NewRenderer(s, renderConfig, nil)
	if err != nil {
		t.Fatal(err)
	}
	img, _, err := r.Render(context.Background())
	if err == nil || !strings.Contains(err.Error(), "shading failed") {
		t.Fatalf("Expected the panic to surface as an error, got %v", err)
	}
	if img == nil {
		t.Error("Expected the partial image to be returned")
	}
}

func TestRender_Cancelled(t *testing.T) {
	s := scene.NewDefaultScene(geometry.CameraConfig{Width: 16})
	config := smallConfig(s)
	config.PhotonsPerLight = 0

	r, err := NewRenderer(s, config, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, stats, err := r.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if stats.Rendered != 0 {
		t.Errorf("Expected no pixels after cancellation, got %d", stats.Rendered)
	}
}

func TestRender_LogsProgress(t *testing.T) {
	s := scene.NewDefaultScene(geometry.CameraConfig{Width: 8})
	config := smallConfig(s)
	config.PhotonsPerLight = 100
	logger := &MockLogger{}

	r, err := NewRenderer(s, config, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"Mapping", "Tracing rays", "Render completed"} {
		if !logger.contains(expected) {
			t.Errorf("Expected a log line containing %q", expected)
		}
	}
}

func TestRender_ResizesCamera(t *testing.T) {
	s := scene.NewDefaultScene(geometry.CameraConfig{Width: 8})
	config := smallConfig(s)
	config.PhotonsPerLight = 0
	config.Width, config.Height = 6, 5

	img, stats := mustRender(t, s, config)
	if img.Width != 6 || img.Height != 5 || stats.TotalPixels != 30 {
		t.Errorf("Expected a 6x5 image, got %dx%d", img.Width, img.Height)
	}
}
