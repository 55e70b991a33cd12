package dsl

import (
	"slices"

	eb "github.com/timoconnellaus/eb"
)

// Identified is anything with a definition id, such as *Definition[V].
type Identified interface {
	ID() string
}

// ComponentProp is a slot holding one child component ("component") or a
// list of them ("component-collection").
type ComponentProp struct {
	common[*ComponentProp]
	accepts []string
}

// Component creates a single-child slot accepting the given definition ids
// or component types.
func Component(accepts ...string) *ComponentProp { return newComponent("component", accepts) }

// ComponentCollection creates a multi-child slot.
func ComponentCollection(accepts ...string) *ComponentProp {
	return newComponent("component-collection", accepts)
}

// ComponentOf creates a single-child slot accepting the given definitions.
func ComponentOf(defs ...Identified) *ComponentProp {
	return Component().Accepts(ids(defs)...)
}

// ComponentCollectionOf creates a multi-child slot accepting the given definitions.
func ComponentCollectionOf(defs ...Identified) *ComponentProp {
	return ComponentCollection().Accepts(ids(defs)...)
}

func newComponent(tag string, accepts []string) *ComponentProp {
	p := &ComponentProp{accepts: slices.Clone(accepts)}
	p.self, p.tag = p, tag
	return p
}

// Accepts appends accepted ids.
func (p *ComponentProp) Accepts(ids ...string) *ComponentProp {
	p.accepts = append(p.accepts, ids...)
	return p
}

func (p *ComponentProp) Descriptor() eb.SchemaProp {
	sp := p.base()
	sp.Accepts = p.accepts
	return sp.Clone()
}

func ids(defs []Identified) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		if d != nil {
			out = append(out, d.ID())
		}
	}
	return out
}
