package renderer

import (
	"image"
	"sync"
)

// PixelQueue hands out the pixels of a rectangle in row-major order.
// Next is safe for concurrent use; each pixel is returned exactly once.
type PixelQueue struct {
	mu     sync.Mutex
	bounds image.Rectangle
	x, y   int
}

// NewPixelQueue creates a queue over bounds
func NewPixelQueue(bounds image.Rectangle) *PixelQueue {
	return &PixelQueue{bounds: bounds, x: bounds.Min.X, y: bounds.Min.Y}
}

// Next returns the next unrendered pixel, or ok=false when the queue is drained
func (q *PixelQueue) Next() (x, y int, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.bounds.Empty() || q.y >= q.bounds.Max.Y {
		return 0, 0, false
	}
	x, y = q.x, q.y
	q.x++
	if q.x >= q.bounds.Max.X {
		q.x = q.bounds.Min.X
		q.y++
	}
	return x, y, true
}

// Len returns the number of pixels the queue covers
func (q *PixelQueue) Len() int {
	return q.bounds.Dx() * q.bounds.Dy()
}
