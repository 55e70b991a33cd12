package dsl

import (
	eb "github.com/timoconnellaus/eb"
)

// FlattenOpt configures Flatten.
type FlattenOpt struct {
	// Catalog resolves custom type, token and component type keys. When nil
	// those references are not checked.
	Catalog Catalog
	// FailFast stops at the first issue instead of collecting all of them.
	FailFast bool
	// Definition is stamped on every returned issue.
	Definition string
}

// ValueField is one entry of a definition's values shape.
type ValueField struct {
	Name       string
	Type       string // prop type tag
	Responsive bool
}

// Flattened is the result of Flatten.
type Flattened struct {
	// Descriptors has one entry per leaf prop, in traversal order, with group
	// members expanded in place of their group.
	Descriptors []eb.SchemaProp
	// Values lists the fields passed to the styles function: every leaf except
	// build-only ones, in the same order.
	Values []ValueField
}

// Flatten walks s once, depth first and left to right. It is pure: the same
// schema always yields deep-equal output. Configuration errors are returned
// as eb.Issues.
func Flatten(s *SchemaBuilder, opt FlattenOpt) (Flattened, error) {
	f := flattener{opt: opt, seen: map[string]string{}}
	f.walk(s.Members())
	if len(f.issues) > 0 {
		return Flattened{}, f.issues.WithDefinition(opt.Definition)
	}
	return f.out, nil
}

type flattener struct {
	opt    FlattenOpt
	seen   map[string]string // flattened name -> pointer of first declaration
	out    Flattened
	issues eb.Issues
}

func (f *flattener) stop() bool { return f.opt.FailFast && len(f.issues) > 0 }

func (f *flattener) walk(members []Member) {
	for _, m := range members {
		if f.stop() {
			return
		}
		at := eb.Root().Field(m.Name)
		switch e := m.Entry.(type) {
		case *GroupBuilder:
			if e == nil {
				f.report(at.Issue(eb.CodeNilProp, "name", m.Name))
				continue
			}
			if m.Name == "" {
				f.report(at.Issue(eb.CodeEmptyName))
				continue
			}
			label := e.label
			if label == "" {
				label = Humanize(m.Name)
			}
			for _, gm := range e.members {
				if f.stop() {
					return
				}
				gat := at.Field(gm.Name)
				if _, nested := gm.Entry.(*GroupBuilder); nested {
					f.report(gat.Issue(eb.CodeNestedGroup, "name", gm.Name))
					continue
				}
				f.leaf(gat, gm, label)
			}
		default:
			f.leaf(at, m, "")
		}
	}
}

func (f *flattener) leaf(at eb.PathRef, m Member, group string) {
	if m.Name == "" {
		f.report(at.Issue(eb.CodeEmptyName))
		return
	}
	p, ok := m.Entry.(Prop)
	if !ok || isNilProp(p) {
		f.report(at.Issue(eb.CodeNilProp, "name", m.Name))
		return
	}
	if first, dup := f.seen[m.Name]; dup {
		it := at.Issue(eb.CodeDuplicateProp, "name", m.Name, "first", first)
		f.report(it)
		return
	}
	f.seen[m.Name] = at.Pointer()
	if c, ok := p.(checker); ok {
		for _, it := range c.check(at, f.opt.Catalog) {
			if f.stop() {
				return
			}
			f.report(it)
		}
	}
	d := p.Descriptor()
	d.Prop, d.Group = m.Name, group
	f.out.Descriptors = append(f.out.Descriptors, d)
	if !d.BuildOnly {
		f.out.Values = append(f.out.Values, ValueField{Name: m.Name, Type: d.Type, Responsive: d.Responsive})
	}
}

func (f *flattener) report(it eb.Issue) {
	f.issues = eb.AppendIssues(f.issues, it)
}

// isNilProp catches typed nil builders such as (*StringProp)(nil).
func isNilProp(p Prop) bool {
	switch v := p.(type) {
	case *StringProp:
		return v == nil
	case *NumberProp:
		return v == nil
	case *BooleanProp:
		return v == nil
	case *SelectProp:
		return v == nil
	case *TokenProp:
		return v == nil
	case *CustomProp:
		return v == nil
	case *ComponentProp:
		return v == nil
	}
	return false
}
