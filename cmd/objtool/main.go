// objtool is a CLI utility for inspecting OBJ meshes grouped by material.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/internal/material"
	"github.com/Faultbox/objmesh/internal/render"
	"github.com/Faultbox/objmesh/internal/texture"
	"github.com/Faultbox/objmesh/internal/viewer"
	"github.com/Faultbox/objmesh/pkg/encoding"
	"github.com/Faultbox/objmesh/pkg/meshindex"
	"github.com/Faultbox/objmesh/pkg/objfile"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command, operands := args[0], args[1:]

	var run func(*config.Config, string, []objfile.MaterialMesh) error
	switch command {
	case "info":
		run = cmdInfo
	case "groups", "ls":
		run = cmdGroups
	case "bounds":
		run = cmdBounds
	case "index":
		run = cmdIndex
	case "plan":
		run = cmdPlan
	case "view":
		run = cmdView
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if len(operands) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: objtool %s <file.obj>\n", command)
		os.Exit(1)
	}

	path := operands[0]
	meshes, err := load(cfg, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}

	if err := run(cfg, path, meshes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`objtool - OBJ material mesh utility

Usage:
  objtool [flags] <command> <file.obj>

Commands:
  info     Show mesh, triangle and vertex totals
  groups   List material groups in file order
  bounds   Show the bounding box, center and size
  index    Show how far each group shrinks when shared vertices are merged
  plan     Show how each group will be drawn (flat color or texture)
  view     Open the model in a window (drag to orbit, scroll to zoom, Esc to quit)

Flags:
  -config <path>           Config file (default ./objtool.yaml)
  -encoding <name>         Text encoding of the OBJ file (%s)
  -texture-dir <dir>       Directory textures are loaded from
  -max-texture-size <n>    Downscale textures larger than n pixels
  -log-file <path>         Also write logs to a rotating file
  -debug                   Enable debug logging

Examples:
  objtool info room.obj
  objtool -encoding euc-kr groups room.obj
  objtool -texture-dir ./textures plan room.obj
  objtool view room.obj
`, strings.Join(encoding.Names(), ", "))
}

func load(cfg *config.Config, path string) ([]objfile.MaterialMesh, error) {
	enc, err := encoding.Lookup(cfg.Input.Encoding)
	if err != nil {
		return nil, err
	}

	meshes, err := objfile.ParseFileEncoded(path, enc)
	if err != nil {
		logger.Error("parse failed", zap.String("file", path), zap.Error(err))
		return nil, err
	}

	stats := objfile.Summarize(meshes)
	logger.Debug("parsed OBJ",
		zap.String("file", path),
		zap.Int("meshes", stats.Meshes),
		zap.Int("triangles", stats.Triangles))
	return meshes, nil
}

func cmdInfo(cfg *config.Config, path string, meshes []objfile.MaterialMesh) error {
	stats := objfile.Summarize(meshes)
	fmt.Printf("Meshes:    %d\n", stats.Meshes)
	fmt.Printf("Triangles: %d\n", stats.Triangles)
	fmt.Printf("Vertices:  %d\n", stats.Vertices)
	if stats.Degenerate > 0 {
		fmt.Printf("Degenerate triangles: %d\n", stats.Degenerate)
	}

	if b, ok := objfile.ComputeBounds(meshes); ok {
		fmt.Println()
		printBounds(b)
	}
	return nil
}

func cmdGroups(cfg *config.Config, path string, meshes []objfile.MaterialMesh) error {
	for _, m := range meshes {
		fmt.Printf("%-20s %8d triangles\n", m.Material, m.TriangleCount())
	}
	return nil
}

func cmdBounds(cfg *config.Config, path string, meshes []objfile.MaterialMesh) error {
	b, ok := objfile.ComputeBounds(meshes)
	if !ok {
		return fmt.Errorf("no vertices")
	}
	printBounds(b)
	fmt.Printf("Fit:    scale %g\n", render.FitMeshes(meshes).At(0, 0))
	return nil
}

func printBounds(b objfile.Bounds) {
	c, s := b.Center(), b.Size()
	fmt.Printf("Min:    %g, %g, %g\n", b.Min.X, b.Min.Y, b.Min.Z)
	fmt.Printf("Max:    %g, %g, %g\n", b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Printf("Center: %g, %g, %g\n", c.X, c.Y, c.Z)
	fmt.Printf("Size:   %g, %g, %g\n", s.X, s.Y, s.Z)
}

func cmdIndex(cfg *config.Config, path string, meshes []objfile.MaterialMesh) error {
	fmt.Printf("%-20s %10s %10s %8s\n", "MATERIAL", "CORNERS", "UNIQUE", "RATIO")
	for _, idx := range meshindex.IndexAll(meshes) {
		ratio := 0.0
		if len(idx.Indices) > 0 {
			ratio = float64(idx.VertexCount()) / float64(len(idx.Indices))
		}
		fmt.Printf("%-20s %10d %10d %7.1f%%\n", idx.Material, len(idx.Indices), idx.VertexCount(), ratio*100)
	}
	return nil
}

func cmdPlan(cfg *config.Config, path string, meshes []objfile.MaterialMesh) error {
	policy := material.FromConfig(cfg)
	loader := texture.NewLoader(cfg.Textures.Dir, cfg.Textures.MaxSize)
	batches := render.Prepare(meshes, policy, loader)

	for _, b := range batches {
		t := b.Treatment
		if t.UseTexture {
			img, _ := loader.Image(b.Texture)
			fmt.Printf("%-20s texture %s (%dx%d)\n", t.Material, t.Texture, img.Bounds().Dx(), img.Bounds().Dy())
			continue
		}
		note := ""
		if !t.Configured {
			note = " (fallback)"
		}
		fmt.Printf("%-20s color   %.2f %.2f %.2f%s\n", t.Material, t.Color[0], t.Color[1], t.Color[2], note)
	}

	if unused := unusedMaterials(policy, meshes); len(unused) > 0 {
		fmt.Printf("\nConfigured but unused: %s\n", strings.Join(unused, ", "))
	}

	hits, misses := loader.Stats()
	logger.Debug("texture cache", zap.Int("hits", hits), zap.Int("misses", misses))
	fmt.Fprintf(os.Stderr, "\n(%d batches, %d textures)\n", len(batches), loader.Len())
	return nil
}

// unusedMaterials lists configured materials that no mesh references.
func unusedMaterials(policy *material.Policy, meshes []objfile.MaterialMesh) []string {
	used := make(map[string]bool, len(meshes))
	for _, m := range meshes {
		used[m.Material] = true
	}
	var unused []string
	for _, name := range policy.Names() {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	return unused
}

func cmdView(cfg *config.Config, path string, meshes []objfile.MaterialMesh) error {
	loader := texture.NewLoader(cfg.Textures.Dir, cfg.Textures.MaxSize)
	batches := render.Prepare(meshes, material.FromConfig(cfg), loader)

	title := "objtool - " + filepath.Base(path)
	return viewer.Run(title, cfg.Graphics, batches, loader, render.FitMeshes(meshes))
}
