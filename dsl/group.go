package dsl

import "slices"

// Member is one named field of a Schema or Group, in declaration order.
type Member struct {
	Name  string
	Entry Entry
}

// GroupBuilder clusters props under one editor heading. Groups are one level
// deep; a group added to a group is reported as nested_group by Flatten.
type GroupBuilder struct {
	members []Member
	label   string
}

// Group creates an empty group.
func Group() *GroupBuilder { return &GroupBuilder{} }

func (g *GroupBuilder) isEntry() {}

// Field appends a member. Declaration order is kept.
func (g *GroupBuilder) Field(name string, e Entry) *GroupBuilder {
	g.members = append(g.members, Member{Name: name, Entry: e})
	return g
}

// Label sets the heading. Without it the group's field name is humanized.
func (g *GroupBuilder) Label(s string) *GroupBuilder {
	g.label = s
	return g
}

// Members returns the members in declaration order.
func (g *GroupBuilder) Members() []Member { return slices.Clone(g.members) }

// LabelText returns the explicit label, or "" when none was set.
func (g *GroupBuilder) LabelText() string { return g.label }

// SchemaBuilder is the ordered field tree of one definition.
type SchemaBuilder struct {
	members []Member
}

// Schema creates an empty schema.
func Schema() *SchemaBuilder { return &SchemaBuilder{} }

// Field appends a prop or group.
func (s *SchemaBuilder) Field(name string, e Entry) *SchemaBuilder {
	s.members = append(s.members, Member{Name: name, Entry: e})
	return s
}

// Members returns the top-level fields in declaration order.
func (s *SchemaBuilder) Members() []Member {
	if s == nil {
		return nil
	}
	return slices.Clone(s.members)
}
