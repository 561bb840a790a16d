package objfile

import (
	"testing"

	"github.com/Faultbox/objmesh/pkg/math"
)

func TestComputeBounds(t *testing.T) {
	meshes := []MaterialMesh{
		{Material: "a", Positions: []math.Vec3{{X: -1, Y: 0, Z: 2}, {X: 3, Y: 1, Z: 0}, {X: 0, Y: -2, Z: 1}}},
		{Material: "empty"},
		{Material: "b", Positions: []math.Vec3{{X: 0, Y: 5, Z: -4}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}}},
	}

	b, ok := ComputeBounds(meshes)
	if !ok {
		t.Fatal("expected bounds")
	}
	if b.Min != (math.Vec3{X: -1, Y: -2, Z: -4}) {
		t.Errorf("expected min (-1,-2,-4), got %v", b.Min)
	}
	if b.Max != (math.Vec3{X: 3, Y: 5, Z: 2}) {
		t.Errorf("expected max (3,5,2), got %v", b.Max)
	}
	if b.Center() != (math.Vec3{X: 1, Y: 1.5, Z: -1}) {
		t.Errorf("expected center (1,1.5,-1), got %v", b.Center())
	}
	if b.Size() != (math.Vec3{X: 4, Y: 7, Z: 6}) {
		t.Errorf("expected size (4,7,6), got %v", b.Size())
	}
}

func TestComputeBounds_Empty(t *testing.T) {
	if _, ok := ComputeBounds(nil); ok {
		t.Error("expected no bounds for nil meshes")
	}
	if _, ok := ComputeBounds([]MaterialMesh{{Material: "x"}}); ok {
		t.Error("expected no bounds for empty mesh")
	}
}

func TestSummarize(t *testing.T) {
	meshes := mustParse(t, singleTriangle+"usemtl board\nf 1/1/1 2/1/1 3/1/1\nf 1/1/1 3/1/1 2/1/1\n")

	s := Summarize(meshes)
	if s.Meshes != 2 {
		t.Errorf("expected 2 meshes, got %d", s.Meshes)
	}
	if s.Triangles != 3 {
		t.Errorf("expected 3 triangles, got %d", s.Triangles)
	}
	if s.Vertices != 9 {
		t.Errorf("expected 9 vertices, got %d", s.Vertices)
	}
}

func TestSummarize_Degenerate(t *testing.T) {
	meshes := mustParse(t, singleTriangle+"f 1/1/1 1/1/1 2/1/1\nf 3/1/1 2/1/1 3/1/1\n")

	s := Summarize(meshes)
	if s.Triangles != 3 {
		t.Fatalf("expected 3 triangles, got %d", s.Triangles)
	}
	if s.Degenerate != 2 {
		t.Errorf("expected 2 degenerate triangles, got %d", s.Degenerate)
	}
}
