package core

// Bounded is anything that can report an axis-aligned bounding box
type Bounded interface {
	BoundingBox() AABB
}

const (
	// DefaultOctreeMaxObjects is the resident count above which a node splits
	DefaultOctreeMaxObjects = 1
	// DefaultOctreeMaxLevels is the deepest level a node may split at
	DefaultOctreeMaxLevels = 4

	noOctant = -1
)

// octreeNode is one slot of the octree arena. Children, when present, occupy
// the eight consecutive slots starting at firstChild.
type octreeNode[T Bounded] struct {
	bounds     AABB
	objects    []T   // residents that do not fit fully inside a single child
	firstChild int32 // -1 for leaves
	depth      int
}

// Octree is a recursive 8-way subdivision of space holding bounded objects.
// Nodes live in a single arena slice; the tree does not own the objects.
type Octree[T Bounded] struct {
	nodes      []octreeNode[T]
	outside    []T // objects whose box is not inside the root bounds
	maxObjects int
	maxLevels  int
	count      int
}

// NewOctree creates an empty octree covering bounds. Non-positive limits
// select the defaults.
func NewOctree[T Bounded](bounds AABB, maxObjects, maxLevels int) *Octree[T] {
	if maxObjects <= 0 {
		maxObjects = DefaultOctreeMaxObjects
	}
	if maxLevels <= 0 {
		maxLevels = DefaultOctreeMaxLevels
	}
	return &Octree[T]{
		nodes:      []octreeNode[T]{{bounds: bounds, firstChild: -1}},
		maxObjects: maxObjects,
		maxLevels:  maxLevels,
	}
}

// NewOctreeFromObjects builds an octree whose root bounds the union of all objects
func NewOctreeFromObjects[T Bounded](objects []T, maxObjects, maxLevels int) *Octree[T] {
	var bounds AABB
	for i, obj := range objects {
		if i == 0 {
			bounds = obj.BoundingBox()
			continue
		}
		bounds = bounds.Union(obj.BoundingBox())
	}

	tree := NewOctree[T](bounds, maxObjects, maxLevels)
	for _, obj := range objects {
		tree.Insert(obj)
	}
	return tree
}

// Bounds returns the region covered by the root node
func (o *Octree[T]) Bounds() AABB {
	return o.nodes[0].bounds
}

// Len returns the number of inserted objects
func (o *Octree[T]) Len() int {
	return o.count
}

// Insert places obj at the deepest node whose region fully contains it
func (o *Octree[T]) Insert(obj T) {
	o.count++
	box := obj.BoundingBox()
	if !o.nodes[0].bounds.ContainsBox(box) {
		o.outside = append(o.outside, obj)
		return
	}
	o.insert(0, obj, box)
}

func (o *Octree[T]) insert(idx int32, obj T, box AABB) {
	// Descend while a child can take the object whole
	for o.nodes[idx].firstChild >= 0 {
		octant := octantIndex(o.nodes[idx].bounds, box)
		if octant == noOctant {
			break
		}
		idx = o.nodes[idx].firstChild + int32(octant)
	}

	node := &o.nodes[idx]
	node.objects = append(node.objects, obj)
	if len(node.objects) <= o.maxObjects || node.depth >= o.maxLevels {
		return
	}

	if node.firstChild < 0 {
		o.split(idx)
	}

	// split grows the arena, so the node is addressed by index from here on
	residents := o.nodes[idx].objects
	o.nodes[idx].objects = nil
	for _, resident := range residents {
		residentBox := resident.BoundingBox()
		octant := octantIndex(o.nodes[idx].bounds, residentBox)
		if octant == noOctant {
			o.nodes[idx].objects = append(o.nodes[idx].objects, resident)
			continue
		}
		o.insert(o.nodes[idx].firstChild+int32(octant), resident, residentBox)
	}
}

// split appends the eight child octants of node idx to the arena
func (o *Octree[T]) split(idx int32) {
	parent := o.nodes[idx]
	first := int32(len(o.nodes))
	for octant := 0; octant < 8; octant++ {
		o.nodes = append(o.nodes, octreeNode[T]{
			bounds:     octantBounds(parent.bounds, octant),
			firstChild: -1,
			depth:      parent.depth + 1,
		})
	}
	o.nodes[idx].firstChild = first
}

// Trace returns every object resident in a node whose box the ray touches.
// The result is conservative: it may hold objects the ray misses, never drops one it hits.
func (o *Octree[T]) Trace(ray Ray) []T {
	if o.count == 0 {
		return nil
	}
	var out []T
	out = append(out, o.outside...)
	return o.trace(0, ray, out)
}

func (o *Octree[T]) trace(idx int32, ray Ray, out []T) []T {
	node := &o.nodes[idx]
	if node.firstChild < 0 && len(node.objects) == 0 {
		return out
	}
	if !node.bounds.IntersectsRay(ray) {
		return out
	}

	if node.firstChild >= 0 {
		for octant := int32(0); octant < 8; octant++ {
			out = o.trace(node.firstChild+octant, ray, out)
		}
	}
	return append(out, node.objects...)
}

// Retrieve returns the objects that may overlap box
func (o *Octree[T]) Retrieve(box AABB) []T {
	if o.count == 0 {
		return nil
	}
	var out []T
	out = append(out, o.outside...)
	return o.retrieve(0, box, out)
}

func (o *Octree[T]) retrieve(idx int32, box AABB, out []T) []T {
	node := &o.nodes[idx]
	if node.firstChild >= 0 {
		octant := octantIndex(node.bounds, box)
		if octant != noOctant {
			out = o.retrieve(node.firstChild+int32(octant), box, out)
		} else {
			for child := int32(0); child < 8; child++ {
				if o.nodes[node.firstChild+child].bounds.Overlaps(box) {
					out = o.retrieve(node.firstChild+child, box, out)
				}
			}
		}
	}
	return append(out, node.objects...)
}

// OctreeStats contains statistics about the octree structure
type OctreeStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	Objects  int
	Outside  int
}

// Stats walks the arena and summarises its shape
func (o *Octree[T]) Stats() OctreeStats {
	stats := OctreeStats{Objects: o.count, Outside: len(o.outside)}
	for _, node := range o.nodes {
		stats.Nodes++
		if node.firstChild < 0 {
			stats.Leaves++
		}
		stats.MaxDepth = max(stats.MaxDepth, node.depth)
	}
	return stats
}

// octantIndex returns the child octant that fully contains box, or noOctant when
// box straddles a split plane. Bit 0 selects +X, bit 1 selects -Z (back),
// bit 2 selects -Y (bottom).
func octantIndex(bounds, box AABB) int {
	mid := bounds.Center()

	var index int
	switch {
	case box.Max.X < mid.X:
	case box.Min.X > mid.X:
		index |= 1
	default:
		return noOctant
	}
	switch {
	case box.Min.Z > mid.Z:
	case box.Max.Z < mid.Z:
		index |= 2
	default:
		return noOctant
	}
	switch {
	case box.Min.Y > mid.Y:
	case box.Max.Y < mid.Y:
		index |= 4
	default:
		return noOctant
	}
	return index
}

// octantBounds returns the region of child octant within bounds
func octantBounds(bounds AABB, octant int) AABB {
	mid := bounds.Center()
	child := bounds

	if octant&1 != 0 {
		child.Min.X = mid.X
	} else {
		child.Max.X = mid.X
	}
	if octant&2 != 0 {
		child.Max.Z = mid.Z
	} else {
		child.Min.Z = mid.Z
	}
	if octant&4 != 0 {
		child.Max.Y = mid.Y
	} else {
		child.Min.Y = mid.Y
	}
	return child
}
