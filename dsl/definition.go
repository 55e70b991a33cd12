package dsl

import (
	"fmt"
	"slices"

	eb "github.com/timoconnellaus/eb"
)

// Definition binds an id, a schema and an optional styles function. V is the
// caller's values type; when it is a struct it is checked against the
// flattened values shape at materialization.
type Definition[V any] struct {
	id         string
	schema     *SchemaBuilder
	styles     func(V) eb.StylesResult
	types      []string
	label      string
	pasteSlots []string
	catalog    Catalog
}

// Define starts a definition.
func Define[V any](id string, s *SchemaBuilder) *Definition[V] {
	return &Definition[V]{id: id, schema: s}
}

// ID returns the definition id, or "" for a nil definition.
func (d *Definition[V]) ID() string {
	if d == nil {
		return ""
	}
	return d.id
}

// Styles sets the styles function. It is never called here; it is handed to
// the renderer unevaluated.
func (d *Definition[V]) Styles(fn func(V) eb.StylesResult) *Definition[V] {
	d.styles = fn
	return d
}

// Type tags the definition with component types (e.g. "section", "card").
func (d *Definition[V]) Type(types ...string) *Definition[V] {
	d.types = append(d.types, types...)
	return d
}

func (d *Definition[V]) Label(s string) *Definition[V] {
	d.label = s
	return d
}

// PasteSlots lists the slots a pasted component may land in.
func (d *Definition[V]) PasteSlots(slots ...string) *Definition[V] {
	d.pasteSlots = append(d.pasteSlots, slots...)
	return d
}

// Catalog sets the registry used to resolve custom types, tokens and
// component types.
func (d *Definition[V]) Catalog(c Catalog) *Definition[V] {
	d.catalog = c
	return d
}

// Describer is a definition of any values type, as consumed by registries.
type Describer interface {
	ID() string
	Describe(cat Catalog) (eb.ComponentDefinition, error)
}

// Materialized is the output of Definition.Materialize.
type Materialized[V any] struct {
	eb.ComponentDefinition
	Styles func(V) eb.StylesResult
	Values []ValueField
}

// Materialize flattens the schema and returns the framework-facing definition.
// It has no side effects; calling it again yields deep-equal output.
func (d *Definition[V]) Materialize() (Materialized[V], error) {
	return d.materialize(d.catalog)
}

// MustMaterialize is Materialize that panics on error.
func (d *Definition[V]) MustMaterialize() Materialized[V] {
	m, err := d.Materialize()
	if err != nil {
		panic(fmt.Sprintf("dsl: materialize %q: %v", d.id, err))
	}
	return m
}

// Describe materializes with cat (or the definition's own catalog when cat is
// nil) and returns the serializable part. Registries use it to assemble
// bundles from definitions of different value types.
func (d *Definition[V]) Describe(cat Catalog) (eb.ComponentDefinition, error) {
	if cat == nil {
		cat = d.catalog
	}
	m, err := d.materialize(cat)
	if err != nil {
		return eb.ComponentDefinition{}, err
	}
	return m.ComponentDefinition, nil
}

func (d *Definition[V]) materialize(cat Catalog) (Materialized[V], error) {
	var iss eb.Issues
	if d.id == "" {
		iss = eb.AppendIssues(iss, eb.Root().Issue(eb.CodeMissingID))
	}
	if cat != nil {
		for i, t := range d.types {
			if _, ok := cat.Lookup(eb.CatalogComponentType, t); !ok {
				iss = eb.AppendIssues(iss, eb.At("/type").Index(i).Issue(eb.CodeUnknownComponentType, "key", t))
			}
		}
	}
	f, err := Flatten(d.schema, FlattenOpt{Catalog: cat, Definition: d.id})
	if err != nil {
		fi, _ := eb.AsIssues(err)
		iss = eb.AppendIssues(iss, fi...)
	} else if d.styles != nil {
		if err := CheckValueShape[V](f); err != nil {
			vi, _ := eb.AsIssues(err)
			iss = eb.AppendIssues(iss, vi...)
		}
	}
	if len(iss) > 0 {
		return Materialized[V]{}, iss.WithDefinition(d.id)
	}
	return Materialized[V]{
		ComponentDefinition: eb.ComponentDefinition{
			ID:         d.id,
			Label:      d.label,
			Type:       slices.Clone(d.types),
			PasteSlots: slices.Clone(d.pasteSlots),
			Schema:     f.Descriptors,
		},
		Styles: d.styles,
		Values: f.Values,
	}, nil
}
