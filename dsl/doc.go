// Package dsl provides the fluent builders for component definitions.
//
// Overview
//   - Leaf props: String()/Number()/Boolean()/Select()/RadioGroup()/Color()/Space()/Font()/Custom(key)/Component()/ComponentCollection().
//   - Common setters (return the receiver): DefaultValue/BuildOnly/Label/HideLabel/Description/Layout; Responsive/ResponsiveDefault where the kind allows it.
//   - Group(): one-level cluster of props under an editor heading.
//   - Schema(): ordered field tree of one definition.
//   - Flatten: turns a schema into the ordered []eb.SchemaProp plus the values shape.
//   - Define[V](id, schema): binds a styles function and materializes the definition.
//
// File layout (roles)
//   - props.go: Entry/Prop/Catalog interfaces and the shared common[P] setters.
//   - primitives.go, select.go, token.go, component.go: one builder type per kind.
//   - group.go: GroupBuilder and SchemaBuilder.
//   - flatten.go: the traversal; humanize.go: default group labels.
//   - definition.go: Define/Materialize/Describe.
//   - values.go: CheckValueShape and the values JSON Schema.
//
// Example
//
//	type BannerValues struct {
//	    Height float64 `json:"height"`
//	    Top    float64 `json:"top"`
//	}
//
//	s := dsl.Schema().
//	    Field("name", dsl.String().BuildOnly()).
//	    Field("height", dsl.Number().DefaultValue(45)).
//	    Field("paddingGroup", dsl.Group().
//	        Field("top", dsl.Number().Min(0)))
//
//	m, err := dsl.Define[BannerValues]("banner", s).
//	    Styles(func(v BannerValues) eb.StylesResult {
//	        return eb.StylesResult{Styled: map[string]any{"Root": map[string]any{"height": v.Height}}}
//	    }).
//	    Materialize()
//	// m.Schema: name, height, top (top carries group "Padding Group")
//	// m.Values: height, top
//
// Error model
//
// Configuration errors (duplicate names, nested groups, empty options, unknown
// type or token keys, ...) are returned from Flatten/Materialize as eb.Issues
// carrying the definition id and a path like /paddingGroup/top.
package dsl
