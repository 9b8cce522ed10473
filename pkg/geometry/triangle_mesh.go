package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-photon-raytracer/pkg/core"
	"github.com/df07/go-photon-raytracer/pkg/material"
)

// TriangleMesh is a polygon mesh stored as triangles. Its triangles are
// indexed by an octree of their own, so a mesh is a single object to the scene.
type TriangleMesh struct {
	triangles []*Triangle
	tree      *core.Octree[*Triangle]
	bbox      core.AABB
}

// NewTriangleMesh creates a mesh from shared vertices and polygon faces. Each
// face lists three or more vertex indices and is split into a triangle fan.
func NewTriangleMesh(vertices []core.Vec3, faces [][]int, mat material.Material) (*TriangleMesh, error) {
	var triangles []*Triangle
	for f, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", f, len(face))
		}
		for _, index := range face {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", f, index, len(vertices))
			}
		}
		for i := 1; i+1 < len(face); i++ {
			triangles = append(triangles, NewTriangle(vertices[face[0]], vertices[face[i]], vertices[face[i+1]], mat))
		}
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh has no faces")
	}

	tree := core.NewOctreeFromObjects(triangles, 0, 0)
	return &TriangleMesh{triangles: triangles, tree: tree, bbox: tree.Bounds()}, nil
}

// Hit returns the nearest triangle the ray crosses
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	for _, triangle := range m.tree.Trace(ray) {
		if hit, ok := triangle.Hit(ray, tMin, tMax); ok {
			closest, tMax = hit, hit.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the box around every vertex in use
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bbox
}

// TriangleCount returns the number of triangles after splitting faces
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

// NewOctahedron creates a closed octahedron mesh with its vertices radius
// away from center along each axis
func NewOctahedron(center core.Vec3, radius float64, mat material.Material) *TriangleMesh {
	vertices := []core.Vec3{
		center.Add(core.NewVec3(radius, 0, 0)),
		center.Add(core.NewVec3(-radius, 0, 0)),
		center.Add(core.NewVec3(0, radius, 0)),
		center.Add(core.NewVec3(0, -radius, 0)),
		center.Add(core.NewVec3(0, 0, radius)),
		center.Add(core.NewVec3(0, 0, -radius)),
	}
	// Counter-clockwise seen from outside
	faces := [][]int{
		{0, 2, 4}, {4, 2, 1}, {1, 2, 5}, {5, 2, 0},
		{4, 3, 0}, {1, 3, 4}, {5, 3, 1}, {0, 3, 5},
	}
	mesh, err := NewTriangleMesh(vertices, faces, mat)
	if err != nil {
		panic(err)
	}
	return mesh
}

// RotateY rotates vertices by angle radians about the vertical axis through pivot
func RotateY(vertices []core.Vec3, pivot core.Vec3, angle float64) []core.Vec3 {
	sin, cos := math.Sincos(angle)
	rotated := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		d := v.Subtract(pivot)
		rotated[i] = pivot.Add(core.NewVec3(d.X*cos+d.Z*sin, d.Y, -d.X*sin+d.Z*cos))
	}
	return rotated
}
