package core

// KDPoint is a point with K indexable coordinates
type KDPoint interface {
	Axis(axis int) float64
}

// NoMatchDistance is returned as the maximum squared distance when a radius
// search finds nothing
const NoMatchDistance = -1.0

// kdNode is one slot of the tree arena; point indexes into KDTree.points
type kdNode struct {
	point       int32
	axis        int32
	left, right int32 // -1 when absent
}

// KDTree is a balanced k-d tree over a fixed point set, built by median splits
// and immutable afterwards. It references the points; it does not own what they point to.
type KDTree[T KDPoint] struct {
	k      int
	points []T
	nodes  []kdNode
	root   int32
	depth  int
}

// NewKDTree builds a tree over a snapshot of points using k dimensions.
// Each level splits on axis depth mod k at the median found by selection,
// giving O(n log n) construction.
func NewKDTree[T KDPoint](points []T, k int) *KDTree[T] {
	if k <= 0 {
		panic("core: k-d tree needs at least one dimension")
	}
	t := &KDTree[T]{
		k:      k,
		points: make([]T, len(points)),
		nodes:  make([]kdNode, 0, len(points)),
		root:   -1,
	}
	copy(t.points, points)
	t.root = t.build(0, len(t.points), 0)
	return t
}

func (t *KDTree[T]) build(lo, hi, depth int) int32 {
	if lo >= hi {
		return -1
	}
	t.depth = max(t.depth, depth+1)

	axis := depth % t.k
	mid := lo + (hi-lo)/2
	selectNth(t.points[lo:hi], mid-lo, axis)

	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, kdNode{point: int32(mid), axis: int32(axis), left: -1, right: -1})

	left := t.build(lo, mid, depth+1)
	right := t.build(mid+1, hi, depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// Len returns the number of points in the tree
func (t *KDTree[T]) Len() int {
	return len(t.points)
}

// Depth returns the height of the tree
func (t *KDTree[T]) Depth() int {
	return t.depth
}

// LocateNearby returns every point whose squared distance to query is at most
// radiusSquared, along with the largest squared distance among them.
// With no matches the distance is NoMatchDistance.
func (t *KDTree[T]) LocateNearby(query KDPoint, radiusSquared float64) ([]T, float64) {
	maxDistSquared := NoMatchDistance
	if t.root < 0 {
		return nil, maxDistSquared
	}
	var out []T
	out = t.locate(t.root, query, radiusSquared, out, &maxDistSquared)
	return out, maxDistSquared
}

// locate recurses at most Depth() levels
func (t *KDTree[T]) locate(idx int32, query KDPoint, radiusSquared float64, out []T, maxDistSquared *float64) []T {
	node := t.nodes[idx]
	p := t.points[node.point]

	if node.left >= 0 || node.right >= 0 {
		delta := query.Axis(int(node.axis)) - p.Axis(int(node.axis))
		near, far := node.left, node.right
		if delta >= 0 {
			near, far = far, near
		}
		if near >= 0 {
			out = t.locate(near, query, radiusSquared, out, maxDistSquared)
		}
		// The far side can only hold matches when the split plane is within range
		if far >= 0 && delta*delta <= radiusSquared {
			out = t.locate(far, query, radiusSquared, out, maxDistSquared)
		}
	}

	var distSquared float64
	for axis := 0; axis < t.k; axis++ {
		d := p.Axis(axis) - query.Axis(axis)
		distSquared += d * d
	}
	if distSquared <= radiusSquared {
		out = append(out, p)
		if distSquared > *maxDistSquared {
			*maxDistSquared = distSquared
		}
	}
	return out
}

// selectNth partially orders points so that points[n] holds the element that
// would be there after sorting on axis, with no smaller element after it and
// no larger element before it. Average O(n).
func selectNth[T KDPoint](points []T, n, axis int) {
	lo, hi := 0, len(points)-1
	for lo < hi {
		pivot := medianOfThree(points, lo, hi, axis)
		i, j := lo, hi
		for i <= j {
			for points[i].Axis(axis) < pivot {
				i++
			}
			for points[j].Axis(axis) > pivot {
				j--
			}
			if i <= j {
				points[i], points[j] = points[j], points[i]
				i++
				j--
			}
		}
		switch {
		case n <= j:
			hi = j
		case n >= i:
			lo = i
		default:
			return
		}
	}
}

func medianOfThree[T KDPoint](points []T, lo, hi, axis int) float64 {
	a := points[lo].Axis(axis)
	b := points[lo+(hi-lo)/2].Axis(axis)
	c := points[hi].Axis(axis)
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}
