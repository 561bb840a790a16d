// Package gpu uploads prepared render batches to OpenGL. A current OpenGL
// 4.1 core context is required; creating one is the caller's job.
package gpu

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/objmesh/internal/render"
	"github.com/Faultbox/objmesh/internal/texture"
)

// Vertex attribute locations expected by the shaders.
const (
	AttribPosition = 0
	AttribTexCoord = 1
	AttribNormal   = 2
)

// Mesh is a batch resident on the GPU: one VAO with separate position,
// texture coordinate and normal buffers, plus an optional texture.
type Mesh struct {
	VAO         uint32
	Buffers     [3]uint32
	TextureID   uint32
	UseTexture  bool
	Color       [3]float32
	VertexCount int32
}

// Upload creates GPU buffers for a batch. img is the batch's texture and may
// be nil for flat-colored batches.
func Upload(b *render.Batch, img *image.RGBA) (*Mesh, error) {
	if b.VertexCount == 0 {
		return nil, fmt.Errorf("batch %q has no vertices", b.Treatment.Material)
	}

	m := &Mesh{
		UseTexture:  b.Treatment.UseTexture && img != nil,
		Color:       b.Treatment.Color,
		VertexCount: int32(b.VertexCount),
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)
	gl.GenBuffers(3, &m.Buffers[0])

	uploadAttrib(m.Buffers[0], AttribPosition, 3, b.Positions)
	uploadAttrib(m.Buffers[1], AttribTexCoord, 2, b.TexCoords)
	uploadAttrib(m.Buffers[2], AttribNormal, 3, b.Normals)

	gl.BindVertexArray(0)

	if m.UseTexture {
		m.TextureID = uploadTexture(texture.FlipVertical(img))
	}

	return m, nil
}

func uploadAttrib(buf uint32, index uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(index)
}

func uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// Draw binds the mesh's texture (if any) to unit 0 and draws its triangles.
// Shader uniforms are left to the caller.
func (m *Mesh) Draw() {
	if m.UseTexture {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.TextureID)
	}
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount)
	gl.BindVertexArray(0)
}

// Delete releases the mesh's GPU resources.
func (m *Mesh) Delete() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		m.VAO = 0
	}
	if m.Buffers[0] != 0 {
		gl.DeleteBuffers(3, &m.Buffers[0])
		m.Buffers = [3]uint32{}
	}
	if m.TextureID != 0 {
		gl.DeleteTextures(1, &m.TextureID)
		m.TextureID = 0
	}
}

// UploadAll uploads every batch, fetching textures from loader. On failure
// the meshes uploaded so far are deleted.
func UploadAll(batches []render.Batch, loader *texture.Loader) ([]*Mesh, error) {
	meshes := make([]*Mesh, 0, len(batches))
	for i := range batches {
		b := &batches[i]

		var img *image.RGBA
		if b.Treatment.UseTexture {
			var err error
			img, err = loader.Image(b.Texture)
			if err != nil {
				DeleteAll(meshes)
				return nil, fmt.Errorf("material %s: %w", b.Treatment.Material, err)
			}
		}

		m, err := Upload(b, img)
		if err != nil {
			DeleteAll(meshes)
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// DeleteAll releases every mesh.
func DeleteAll(meshes []*Mesh) {
	for _, m := range meshes {
		m.Delete()
	}
}
