package objfile

import (
	"github.com/Faultbox/objmesh/pkg/math"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// ComputeBounds returns the box enclosing every vertex of every mesh.
// ok is false when the meshes hold no vertices.
func ComputeBounds(meshes []MaterialMesh) (b Bounds, ok bool) {
	for i := range meshes {
		for _, p := range meshes[i].Positions {
			if !ok {
				b = Bounds{Min: p, Max: p}
				ok = true
				continue
			}
			b.Min = b.Min.Min(p)
			b.Max = b.Max.Max(p)
		}
	}
	return b, ok
}

// Stats summarizes a parse result.
type Stats struct {
	Meshes     int
	Triangles  int
	Vertices   int
	Degenerate int // triangles with two or more coincident positions
}

// Summarize counts meshes, triangles and corners across meshes.
func Summarize(meshes []MaterialMesh) Stats {
	s := Stats{Meshes: len(meshes)}
	for i := range meshes {
		m := &meshes[i]
		s.Triangles += m.TriangleCount()
		s.Vertices += m.VertexCount()
		for t := 0; t < m.TriangleCount(); t++ {
			if isDegenerate(m.Triangle(t)) {
				s.Degenerate++
			}
		}
	}
	return s
}

func isDegenerate(tri [3]Vertex) bool {
	a, b, c := tri[0].Position, tri[1].Position, tri[2].Position
	return a == b || b == c || a == c
}
