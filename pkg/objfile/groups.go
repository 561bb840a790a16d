package objfile

// groupTable maps material names to meshes, remembering creation order so
// results come back the same way on every run.
type groupTable struct {
	meshes []*MaterialMesh
	byName map[string]int
}

func newGroupTable() *groupTable {
	return &groupTable{byName: make(map[string]int)}
}

// get returns the mesh for name, creating it on first reference.
func (g *groupTable) get(name string) *MaterialMesh {
	if i, ok := g.byName[name]; ok {
		return g.meshes[i]
	}
	mesh := &MaterialMesh{Material: name}
	g.byName[name] = len(g.meshes)
	g.meshes = append(g.meshes, mesh)
	return mesh
}

func (g *groupTable) result() []MaterialMesh {
	out := make([]MaterialMesh, len(g.meshes))
	for i, m := range g.meshes {
		out[i] = *m
	}
	return out
}
