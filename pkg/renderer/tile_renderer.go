package renderer

import (
	"image"

	"github.com/df07/go-photon-raytracer/pkg/integrator"
)

// Tile is a rectangular region of the image whose pixels are drawn from its queue
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Queue  *PixelQueue
}

// NewTile creates a tile with its own pixel queue
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds, Queue: NewPixelQueue(bounds)}
}

// NewTileGrid splits the image into gridX x gridY blocks. Block sizes differ
// by at most one pixel; blocks that would be empty are omitted.
func NewTileGrid(width, height, gridX, gridY int) []*Tile {
	gridX = max(1, min(gridX, width))
	gridY = max(1, min(gridY, height))

	var tiles []*Tile
	for ty := 0; ty < gridY; ty++ {
		y0 := ty * height / gridY
		y1 := (ty + 1) * height / gridY
		for tx := 0; tx < gridX; tx++ {
			x0 := tx * width / gridX
			x1 := (tx + 1) * width / gridX

			bounds := image.Rect(x0, y0, x1, y1)
			if bounds.Empty() {
				continue
			}
			tiles = append(tiles, NewTile(len(tiles), bounds))
		}
	}
	return tiles
}

// pixelRecorder receives finished pixels
type pixelRecorder interface {
	pixelDone(x, y int)
}

// renderTile drains the tile's queue into img. Tiles share no pixels, and a
// shared queue hands each pixel to one worker, so writes never overlap.
func renderTile(rt *integrator.RayTracer, tile *Tile, img *FloatImage, recorder pixelRecorder, cancelled func() bool) int {
	pixels := 0
	for {
		if cancelled() {
			return pixels
		}
		x, y, ok := tile.Queue.Next()
		if !ok {
			return pixels
		}
		img.Set(x, y, rt.TracePixel(x, y))
		recorder.pixelDone(x, y)
		pixels++
	}
}
