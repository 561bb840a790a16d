// Package material decides how each parsed material is drawn. The parser
// knows nothing about material names; this mapping is owned by the renderer.
package material

import (
	"sort"

	"github.com/Faultbox/objmesh/internal/config"
)

// Treatment is the visual treatment of one material: a texture lookup when
// UseTexture is set, otherwise a flat Color.
type Treatment struct {
	Material   string
	UseTexture bool
	Texture    string
	Color      [3]float32
	Configured bool // false when the fallback was used
}

// Policy maps material names to treatments.
type Policy struct {
	byName   map[string]config.MaterialConfig
	fallback config.MaterialConfig
}

// NewPolicy creates a policy from configured materials and a fallback for
// names that are not listed.
func NewPolicy(materials map[string]config.MaterialConfig, fallback config.MaterialConfig) *Policy {
	byName := make(map[string]config.MaterialConfig, len(materials))
	for name, m := range materials {
		byName[name] = m
	}
	return &Policy{byName: byName, fallback: fallback}
}

// FromConfig creates a policy from the tool configuration.
func FromConfig(cfg *config.Config) *Policy {
	return NewPolicy(cfg.Materials, cfg.Fallback)
}

// Resolve returns the treatment for a material name.
func (p *Policy) Resolve(name string) Treatment {
	m, ok := p.byName[name]
	if !ok {
		m = p.fallback
	}
	return Treatment{
		Material:   name,
		UseTexture: m.Texture != "",
		Texture:    m.Texture,
		Color:      m.Color,
		Configured: ok,
	}
}

// Names returns the configured material names in sorted order.
func (p *Policy) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Untextured returns t drawn with its flat color instead of a texture.
func (t Treatment) Untextured() Treatment {
	t.UseTexture = false
	t.Texture = ""
	return t
}
