package meshindex

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Faultbox/objmesh/pkg/objfile"
)

const quad = `v -1 0 -1
v 1 0 -1
v 1 0 1
v -1 0 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
vn 0 -1 0
usemtl floor
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
usemtl underside
f 1/1/2 3/3/2 2/2/2
`

func parse(t *testing.T, src string) []objfile.MaterialMesh {
	t.Helper()
	meshes, err := objfile.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return meshes
}

func TestIndex_MergesSharedCorners(t *testing.T) {
	meshes := parse(t, quad)

	floor := Index(meshes[0])
	if floor.Material != "floor" {
		t.Errorf("expected material 'floor', got %q", floor.Material)
	}
	if floor.VertexCount() != 4 {
		t.Errorf("expected 4 unique vertices, got %d", floor.VertexCount())
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	if !reflect.DeepEqual(floor.Indices, want) {
		t.Errorf("expected indices %v, got %v", want, floor.Indices)
	}
	if floor.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", floor.TriangleCount())
	}
}

func TestIndex_DifferentNormalsStaySeparate(t *testing.T) {
	meshes := parse(t, quad)
	all := IndexAll(meshes)

	if len(all) != 2 {
		t.Fatalf("expected 2 indexed meshes, got %d", len(all))
	}
	if all[1].VertexCount() != 3 {
		t.Errorf("expected 3 vertices for underside, got %d", all[1].VertexCount())
	}
	for i, n := range all[1].Normals {
		if n.Y != -1 {
			t.Errorf("vertex %d: expected downward normal, got %v", i, n)
		}
	}
}

func TestIndex_ExpandRestoresMesh(t *testing.T) {
	for _, mesh := range parse(t, quad) {
		indexed := Index(mesh)
		if len(indexed.Indices) != mesh.VertexCount() {
			t.Errorf("%s: expected %d indices, got %d", mesh.Material, mesh.VertexCount(), len(indexed.Indices))
		}
		if got := indexed.Expand(); !reflect.DeepEqual(got, mesh) {
			t.Errorf("%s: expanded mesh differs from original", mesh.Material)
		}
	}
}

func TestIndex_EmptyMesh(t *testing.T) {
	indexed := Index(objfile.MaterialMesh{Material: "board"})
	if indexed.VertexCount() != 0 || len(indexed.Indices) != 0 {
		t.Errorf("expected empty result, got %d vertices, %d indices", indexed.VertexCount(), len(indexed.Indices))
	}
}
