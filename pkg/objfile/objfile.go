// Package objfile parses the triangle subset of the Wavefront OBJ format
// (v, vt, vn, usemtl, f) into flattened per-material meshes.
//
// Faces are resolved against the attributes declared above them in the file,
// every triangle corner is emitted as its own vertex, and meshes come back in
// the order their material was first referenced.
package objfile

import (
	"github.com/Faultbox/objmesh/pkg/math"
)

// DefaultMaterial is the material faces belong to before the first usemtl.
const DefaultMaterial = "default"

// Recognized command words.
const (
	cmdPosition = "v"
	cmdTexCoord = "vt"
	cmdNormal   = "vn"
	cmdMaterial = "usemtl"
	cmdFace     = "f"
)

// FaceVertexRef is one face corner: 1-based indices into the position,
// texture coordinate and normal pools.
type FaceVertexRef struct {
	Position int
	TexCoord int
	Normal   int
}

// Vertex is a fully resolved triangle corner.
type Vertex struct {
	Position math.Vec3
	TexCoord math.Vec2
	Normal   math.Vec3
}

// MaterialMesh holds the flattened triangles of one material.
// Positions, TexCoords and Normals are parallel and always hold a whole
// number of triangles (three entries per face).
type MaterialMesh struct {
	Material  string
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
}

// VertexCount returns the number of triangle corners.
func (m *MaterialMesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *MaterialMesh) TriangleCount() int {
	return len(m.Positions) / 3
}

// Vertex returns corner i.
func (m *MaterialMesh) Vertex(i int) Vertex {
	return Vertex{
		Position: m.Positions[i],
		TexCoord: m.TexCoords[i],
		Normal:   m.Normals[i],
	}
}

// Triangle returns the three corners of triangle i.
func (m *MaterialMesh) Triangle(i int) [3]Vertex {
	base := i * 3
	return [3]Vertex{m.Vertex(base), m.Vertex(base + 1), m.Vertex(base + 2)}
}

// IsEmpty reports whether the material was referenced but received no faces.
func (m *MaterialMesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

func (m *MaterialMesh) appendVertex(v Vertex) {
	m.Positions = append(m.Positions, v.Position)
	m.TexCoords = append(m.TexCoords, v.TexCoord)
	m.Normals = append(m.Normals, v.Normal)
}
