package render

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/material"
	"github.com/Faultbox/objmesh/internal/texture"
	"github.com/Faultbox/objmesh/pkg/math"
	"github.com/Faultbox/objmesh/pkg/objfile"
)

const classroom = `v 0 0 0
v 2 0 0
v 0 2 0
v 0 0 4
vt 0 0
vt 1 1
vn 0 0 1
usemtl wood
f 1/1/1 2/2/1 3/1/1
usemtl board
f 1/1/1 3/1/1 4/2/1
usemtl projector
usemtl chalk
f 2/1/1 3/1/1 4/1/1
`

type fakeLoader struct {
	handles map[string]texture.Handle
	calls   []string
}

func (f *fakeLoader) Load(name string) (texture.Handle, error) {
	f.calls = append(f.calls, name)
	if h, ok := f.handles[name]; ok {
		return h, nil
	}
	return 0, errors.New("no such texture")
}

func parse(t *testing.T) []objfile.MaterialMesh {
	t.Helper()
	meshes, err := objfile.Parse(strings.NewReader(classroom))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return meshes
}

func TestPrepare(t *testing.T) {
	meshes := parse(t)
	policy := material.FromConfig(config.Default())
	loader := &fakeLoader{handles: map[string]texture.Handle{"bench_wood.bmp": 7}}

	batches := Prepare(meshes, policy, loader)

	// projector has no faces and is skipped.
	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}

	wood := batches[0]
	if wood.Treatment.Material != "wood" || !wood.Treatment.UseTexture || wood.Texture != 7 {
		t.Errorf("expected textured wood with handle 7, got %+v", wood.Treatment)
	}
	if wood.VertexCount != 3 {
		t.Errorf("expected 3 vertices, got %d", wood.VertexCount)
	}

	board := batches[1]
	if board.Treatment.UseTexture || board.Texture != 0 {
		t.Errorf("expected flat board, got %+v", board.Treatment)
	}
	if board.Treatment.Color != [3]float32{0.0, 0.55, 0.29} {
		t.Errorf("expected board green, got %v", board.Treatment.Color)
	}

	chalk := batches[2]
	if chalk.Treatment.Configured {
		t.Error("expected chalk to use fallback treatment")
	}

	if !reflect.DeepEqual(loader.calls, []string{"bench_wood.bmp"}) {
		t.Errorf("expected one texture load, got %v", loader.calls)
	}
}

func TestPrepare_MissingTextureFallsBack(t *testing.T) {
	meshes := parse(t)
	policy := material.FromConfig(config.Default())

	batches := Prepare(meshes, policy, &fakeLoader{})
	wood := batches[0]
	if wood.Treatment.UseTexture {
		t.Error("expected wood to fall back to flat color")
	}
	if wood.Texture != 0 {
		t.Errorf("expected no texture handle, got %d", wood.Texture)
	}
}

func TestPack(t *testing.T) {
	mesh := parse(t)[0]
	pos, uv, nrm := Pack(&mesh)

	wantPos := []float32{0, 0, 0, 2, 0, 0, 0, 2, 0}
	if !reflect.DeepEqual(pos, wantPos) {
		t.Errorf("expected positions %v, got %v", wantPos, pos)
	}
	wantUV := []float32{0, 0, 1, 1, 0, 0}
	if !reflect.DeepEqual(uv, wantUV) {
		t.Errorf("expected uvs %v, got %v", wantUV, uv)
	}
	if len(nrm) != 9 || nrm[2] != 1 {
		t.Errorf("expected 9 normal floats with z=1, got %v", nrm)
	}
}

func TestFitMatrix(t *testing.T) {
	b := objfile.Bounds{Min: math.Vec3{X: 0, Y: 0, Z: 0}, Max: math.Vec3{X: 2, Y: 2, Z: 4}}
	m := FitMatrix(b)

	corner := m.Mul4x1(mgl32.Vec4{2, 2, 4, 1})
	want := mgl32.Vec4{0.25, 0.25, 0.5, 1}
	if !corner.ApproxEqual(want) {
		t.Errorf("expected max corner at %v, got %v", want, corner)
	}
	origin := m.Mul4x1(mgl32.Vec4{1, 1, 2, 1})
	if !origin.ApproxEqual(mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("expected center at origin, got %v", origin)
	}
}

func TestFitMatrix_Degenerate(t *testing.T) {
	p := math.Vec3{X: 3, Y: 3, Z: 3}
	m := FitMatrix(objfile.Bounds{Min: p, Max: p})
	got := m.Mul4x1(mgl32.Vec4{3, 3, 3, 1})
	if !got.ApproxEqual(mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("expected point moved to origin, got %v", got)
	}
}

func TestFitMeshes_Empty(t *testing.T) {
	if FitMeshes(nil) != mgl32.Ident4() {
		t.Error("expected identity for no meshes")
	}
}

func TestOrbit_PitchClamped(t *testing.T) {
	o := NewOrbit()
	o.Rotate(0, 10000)
	if o.Pitch != maxPitch {
		t.Errorf("expected pitch %v, got %v", maxPitch, o.Pitch)
	}
	o.Rotate(0, -20000)
	if o.Pitch != -maxPitch {
		t.Errorf("expected pitch %v, got %v", -maxPitch, o.Pitch)
	}
}

func TestOrbit_ZoomClamped(t *testing.T) {
	o := NewOrbit()
	o.Zoom(1)
	if o.Distance >= 2 {
		t.Errorf("expected zoom in to shorten distance, got %v", o.Distance)
	}
	o.Zoom(1000)
	if o.Distance != MinDistance {
		t.Errorf("expected distance %v, got %v", float32(MinDistance), o.Distance)
	}
	o.Zoom(-1000)
	if o.Distance != MaxDistance {
		t.Errorf("expected distance %v, got %v", float32(MaxDistance), o.Distance)
	}
}

func TestOrbit_EyeAtDistance(t *testing.T) {
	o := Orbit{Yaw: 0.7, Pitch: -0.4, Distance: 3}
	if got := o.Eye().Len(); !mgl32.FloatEqualThreshold(got, 3, 1e-5) {
		t.Errorf("expected eye 3 from origin, got %v", got)
	}

	front := Orbit{Distance: 2}.Eye()
	if !front.ApproxEqual(mgl32.Vec3{0, 0, 2}) {
		t.Errorf("expected eye on +Z, got %v", front)
	}
}

func TestOrbit_ViewLooksAtOrigin(t *testing.T) {
	o := NewOrbit()
	origin := o.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// the origin sits straight ahead, Distance along -Z in view space
	want := mgl32.Vec4{0, 0, -o.Distance, 1}
	if !origin.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("expected %v, got %v", want, origin)
	}
}

func TestProjection_ZeroHeight(t *testing.T) {
	if Projection(640, 0) != Projection(1, 1) {
		t.Error("expected square aspect for an empty viewport")
	}
}

func TestFitMeshes_MatchesFitMatrix(t *testing.T) {
	meshes, err := objfile.Parse(strings.NewReader(classroom))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := objfile.ComputeBounds(meshes)
	if FitMeshes(meshes) != FitMatrix(b) {
		t.Error("expected FitMeshes to equal FitMatrix of the combined bounds")
	}
}
