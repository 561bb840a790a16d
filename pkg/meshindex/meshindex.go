// Package meshindex turns the flattened meshes produced by objfile into
// indexed vertex/index buffer pairs by merging identical triangle corners.
package meshindex

import (
	"github.com/Faultbox/objmesh/pkg/math"
	"github.com/Faultbox/objmesh/pkg/objfile"
)

// Indexed is a mesh with shared vertices and a triangle index list.
type Indexed struct {
	Material  string
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Indices   []uint32
}

// VertexCount returns the number of unique vertices.
func (m *Indexed) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Indexed) TriangleCount() int {
	return len(m.Indices) / 3
}

// Index merges corners whose position, texture coordinate and normal are all
// exactly equal. Unique vertices keep the order of their first occurrence.
func Index(mesh objfile.MaterialMesh) Indexed {
	out := Indexed{
		Material: mesh.Material,
		Indices:  make([]uint32, 0, mesh.VertexCount()),
	}

	seen := make(map[objfile.Vertex]uint32, mesh.VertexCount())
	for i := 0; i < mesh.VertexCount(); i++ {
		v := mesh.Vertex(i)
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(out.Positions))
			seen[v] = idx
			out.Positions = append(out.Positions, v.Position)
			out.TexCoords = append(out.TexCoords, v.TexCoord)
			out.Normals = append(out.Normals, v.Normal)
		}
		out.Indices = append(out.Indices, idx)
	}

	return out
}

// IndexAll indexes every mesh, keeping their order.
func IndexAll(meshes []objfile.MaterialMesh) []Indexed {
	out := make([]Indexed, len(meshes))
	for i := range meshes {
		out[i] = Index(meshes[i])
	}
	return out
}

// Expand flattens an indexed mesh back into one vertex per corner.
func (m *Indexed) Expand() objfile.MaterialMesh {
	out := objfile.MaterialMesh{
		Material:  m.Material,
		Positions: make([]math.Vec3, len(m.Indices)),
		TexCoords: make([]math.Vec2, len(m.Indices)),
		Normals:   make([]math.Vec3, len(m.Indices)),
	}
	for i, idx := range m.Indices {
		out.Positions[i] = m.Positions[idx]
		out.TexCoords[i] = m.TexCoords[idx]
		out.Normals[i] = m.Normals[idx]
	}
	return out
}
