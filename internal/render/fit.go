package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objmesh/pkg/objfile"
)

// FitMatrix returns a model matrix that centers the box on the origin and
// scales its largest side to length 1. A degenerate box is only centered.
func FitMatrix(b objfile.Bounds) mgl32.Mat4 {
	c := b.Center()
	center := mgl32.Translate3D(-c.X, -c.Y, -c.Z)

	extent := b.Size().MaxComponent()
	if extent <= 0 {
		return center
	}
	s := 1 / extent
	return mgl32.Scale3D(s, s, s).Mul4(center)
}

// FitMeshes computes FitMatrix over every mesh. It returns the identity when
// the meshes hold no vertices.
func FitMeshes(meshes []objfile.MaterialMesh) mgl32.Mat4 {
	b, ok := objfile.ComputeBounds(meshes)
	if !ok {
		return mgl32.Ident4()
	}
	return FitMatrix(b)
}
