package main

import (
	"reflect"
	"testing"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/material"
	"github.com/Faultbox/objmesh/pkg/objfile"
)

func TestUnusedMaterials(t *testing.T) {
	policy := material.NewPolicy(map[string]config.MaterialConfig{
		"wood":  {Texture: "bench_wood.bmp"},
		"board": {Color: [3]float32{0, 0.55, 0.29}},
		"metal": {Color: [3]float32{0.8, 0.8, 0.8}},
	}, config.MaterialConfig{})

	meshes := []objfile.MaterialMesh{{Material: "board"}, {Material: "chalk"}}

	want := []string{"metal", "wood"}
	if got := unusedMaterials(policy, meshes); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestUnusedMaterials_AllUsed(t *testing.T) {
	policy := material.NewPolicy(map[string]config.MaterialConfig{"wood": {}}, config.MaterialConfig{})
	meshes := []objfile.MaterialMesh{{Material: "wood"}}

	if got := unusedMaterials(policy, meshes); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}
