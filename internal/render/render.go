// Package render prepares parsed OBJ meshes for drawing: it resolves each
// material's treatment, loads its texture, and packs vertex attributes into
// flat float32 buffers ready for upload.
package render

import (
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/internal/material"
	"github.com/Faultbox/objmesh/internal/texture"
	"github.com/Faultbox/objmesh/pkg/objfile"
)

// TextureLoader resolves texture filenames to handles.
type TextureLoader interface {
	Load(filename string) (texture.Handle, error)
}

// Batch is one material's draw data. Positions and Normals hold xyz per
// vertex, TexCoords uv per vertex; all describe the same VertexCount corners.
type Batch struct {
	Treatment   material.Treatment
	Texture     texture.Handle
	Positions   []float32
	TexCoords   []float32
	Normals     []float32
	VertexCount int
}

// Prepare builds one batch per non-empty mesh, in mesh order.
//
// A texture that cannot be loaded is not fatal: the batch falls back to the
// material's flat color and a warning is logged.
func Prepare(meshes []objfile.MaterialMesh, policy *material.Policy, textures TextureLoader) []Batch {
	log := logger.Named("render")
	batches := make([]Batch, 0, len(meshes))

	for i := range meshes {
		mesh := &meshes[i]
		if mesh.IsEmpty() {
			log.Debug("skipping empty material", zap.String("material", mesh.Material))
			continue
		}

		b := Batch{
			Treatment:   policy.Resolve(mesh.Material),
			VertexCount: mesh.VertexCount(),
		}

		if b.Treatment.UseTexture {
			h, err := textures.Load(b.Treatment.Texture)
			if err != nil {
				log.Warn("texture unavailable, using flat color",
					zap.String("material", mesh.Material),
					zap.String("texture", b.Treatment.Texture),
					zap.Error(err))
				b.Treatment = b.Treatment.Untextured()
			} else {
				b.Texture = h
			}
		}

		b.Positions, b.TexCoords, b.Normals = Pack(mesh)

		log.Debug("prepared batch",
			zap.String("material", mesh.Material),
			zap.Int("vertices", b.VertexCount),
			zap.Bool("textured", b.Treatment.UseTexture))

		batches = append(batches, b)
	}

	return batches
}

// Pack flattens a mesh's attributes into float32 slices.
func Pack(mesh *objfile.MaterialMesh) (positions, texCoords, normals []float32) {
	n := mesh.VertexCount()
	positions = make([]float32, 0, n*3)
	texCoords = make([]float32, 0, n*2)
	normals = make([]float32, 0, n*3)

	for i := 0; i < n; i++ {
		p, t, nm := mesh.Positions[i], mesh.TexCoords[i], mesh.Normals[i]
		positions = append(positions, p.X, p.Y, p.Z)
		texCoords = append(texCoords, t.X, t.Y)
		normals = append(normals, nm.X, nm.Y, nm.Z)
	}
	return positions, texCoords, normals
}
