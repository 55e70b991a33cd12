package dsl

import (
	eb "github.com/timoconnellaus/eb"
)

// Entry is one field of a schema: a Prop or a Group.
type Entry interface {
	isEntry()
}

// Prop is a leaf field. TypeTag is fixed at construction; Descriptor returns a
// fresh snapshot on every call (Prop field left empty, the Flattener fills it).
type Prop interface {
	Entry
	TypeTag() string
	Descriptor() eb.SchemaProp
}

// Catalog resolves keys that props reference (custom types, tokens, component
// types). registry.Config implements it.
type Catalog interface {
	Lookup(kind eb.CatalogKind, key string) (any, bool)
}

// checker is implemented by the built-in props to report their own
// configuration errors during Flatten.
type checker interface {
	check(at eb.PathRef, cat Catalog) []eb.Issue
}

// common holds the fields every prop kind shares. P is the concrete builder
// type so that setters keep returning it for chaining.
type common[P any] struct {
	self        P
	tag         string
	def         any
	hasDef      bool
	buildOnly   bool
	responsive  bool
	label       string
	hideLabel   bool
	description string
	layout      eb.Layout
}

func (c *common[P]) isEntry() {}

// TypeTag returns the prop kind, e.g. "string" or the custom type key.
func (c *common[P]) TypeTag() string { return c.tag }

// BuildOnly excludes the prop from the values passed to the styles function.
func (c *common[P]) BuildOnly() P {
	c.buildOnly = true
	return c.self
}

func (c *common[P]) Label(s string) P {
	c.label = s
	return c.self
}

func (c *common[P]) HideLabel() P {
	c.hideLabel = true
	return c.self
}

func (c *common[P]) Description(s string) P {
	c.description = s
	return c.self
}

func (c *common[P]) Layout(l eb.Layout) P {
	c.layout = l
	return c.self
}

func (c *common[P]) setDefault(v any) {
	c.def = v
	c.hasDef = true
}

func (c *common[P]) base() eb.SchemaProp {
	sp := eb.SchemaProp{
		Type:        c.tag,
		Label:       c.label,
		BuildOnly:   c.buildOnly,
		Responsive:  c.responsive,
		HideLabel:   c.hideLabel,
		Description: c.description,
		Layout:      c.layout,
	}
	if c.hasDef {
		sp.DefaultValue = c.def
	}
	return sp
}

func checkDevices(at eb.PathRef, unknown []string) []eb.Issue {
	var out []eb.Issue
	for _, k := range unknown {
		out = append(out, at.Field("defaultValue").Issue(eb.CodeUnknownDevice, "key", k))
	}
	return out
}
