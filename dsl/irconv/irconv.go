package irconv

import (
	eb "github.com/timoconnellaus/eb"
	g "github.com/timoconnellaus/eb/dsl"
	ir "github.com/timoconnellaus/eb/internal/ir"
)

// ToSchema converts declarative props into a schema builder. Conversion
// problems (a default of the wrong type, an unknown layout) are returned as
// issues rooted at the definition; structural checks are left to
// dsl.Flatten so files and Go code report the same codes.
func ToSchema(props []ir.Prop) (*g.SchemaBuilder, eb.Issues) {
	var iss eb.Issues
	s := g.Schema()
	for _, p := range props {
		e, pi := ToEntry(eb.Root().Field(p.Name), p)
		iss = eb.AppendIssues(iss, pi...)
		s.Field(p.Name, e)
	}
	return s, iss
}

// ToEntry converts one prop (or group) declared at the given path.
func ToEntry(at eb.PathRef, p ir.Prop) (g.Entry, eb.Issues) {
	if p.IsGroup() {
		var iss eb.Issues
		grp := g.Group()
		if p.Label != "" {
			grp.Label(p.Label)
		}
		for _, m := range p.Props {
			e, mi := ToEntry(at.Field(m.Name), m)
			iss = eb.AppendIssues(iss, mi...)
			grp.Field(m.Name, e)
		}
		return grp, iss
	}
	c := conv{at: at, p: p}
	e := c.leaf()
	return e, c.iss
}

type conv struct {
	at  eb.PathRef
	p   ir.Prop
	iss eb.Issues
}

func (c *conv) bad(v any) {
	c.iss = eb.AppendIssues(c.iss, c.at.Field("default").Issue(eb.CodeInvalidDefault, "value", v))
}

// setter is the subset of common setters every builder has.
type setter[P any] interface {
	BuildOnly() P
	Label(string) P
	HideLabel() P
	Description(string) P
	Layout(eb.Layout) P
}

func applyCommon[P any](c *conv, b setter[P]) {
	p := c.p
	if p.BuildOnly {
		b.BuildOnly()
	}
	if p.Label != "" {
		b.Label(p.Label)
	}
	if p.HideLabel {
		b.HideLabel()
	}
	if p.Description != "" {
		b.Description(p.Description)
	}
	switch eb.Layout(p.Layout) {
	case "":
	case eb.LayoutRow, eb.LayoutColumn:
		b.Layout(eb.Layout(p.Layout))
	default:
		c.iss = eb.AppendIssues(c.iss, c.at.Field("layout").Issue(eb.CodeInvalidManifest, "layout", p.Layout))
	}
}

func (c *conv) leaf() g.Entry {
	p := c.p
	switch p.Type {
	case "string":
		b := g.String()
		applyCommon[*g.StringProp](c, b)
		if p.Responsive {
			b.Responsive()
		}
		switch v := p.Default.(type) {
		case nil:
		case string:
			b.DefaultValue(v)
		case map[string]any:
			if r, ok := responsiveOf[string](v); ok {
				b.ResponsiveDefault(r)
			} else {
				c.bad(v)
			}
		default:
			c.bad(v)
		}
		return b
	case "number":
		b := g.Number()
		applyCommon[*g.NumberProp](c, b)
		if p.Responsive {
			b.Responsive()
		}
		if p.Min != nil {
			b.Min(*p.Min)
		}
		if p.Max != nil {
			b.Max(*p.Max)
		}
		switch v := p.Default.(type) {
		case nil:
		case float64:
			b.DefaultValue(v)
		case map[string]any:
			if r, ok := responsiveOf[float64](v); ok {
				b.ResponsiveDefault(r)
			} else {
				c.bad(v)
			}
		default:
			c.bad(v)
		}
		return b
	case "boolean":
		b := g.Boolean()
		applyCommon[*g.BooleanProp](c, b)
		switch v := p.Default.(type) {
		case nil:
		case bool:
			b.DefaultValue(v)
		default:
			c.bad(v)
		}
		return b
	case "select", "radio-group":
		var b *g.SelectProp
		if p.Type == "select" {
			b = g.Select(p.Values...)
		} else {
			b = g.RadioGroup(p.Values...)
		}
		applyCommon[*g.SelectProp](c, b)
		for _, o := range p.Options {
			ob := g.Option()
			if o.Label != "" {
				ob.Label(o.Label)
			}
			if o.HideLabel {
				ob.HideLabel()
			}
			if o.Icon != "" {
				ob.Icon(o.Icon)
			}
			b.Option(o.Value, ob)
		}
		switch v := p.Default.(type) {
		case nil:
		case string:
			b.DefaultValue(v)
		default:
			c.bad(v)
		}
		return b
	case "color", "space", "font":
		var b *g.TokenProp
		switch p.Type {
		case "color":
			b = g.Color()
		case "space":
			b = g.Space()
		default:
			b = g.Font()
		}
		applyCommon[*g.TokenProp](c, b)
		if p.Responsive {
			b.Responsive()
		}
		switch v := p.Default.(type) {
		case nil:
		case map[string]any:
			if r, ok := responsiveOf[string](v); ok {
				b.ResponsiveDefault(r)
			} else {
				b.DefaultValue(v)
			}
		default:
			b.DefaultValue(v)
		}
		if p.DefaultToken != "" {
			b.DefaultToken(p.DefaultToken)
		}
		return b
	case "component", "component-collection":
		var b *g.ComponentProp
		if p.Type == "component" {
			b = g.Component(p.Accepts...)
		} else {
			b = g.ComponentCollection(p.Accepts...)
		}
		applyCommon[*g.ComponentProp](c, b)
		return b
	case "":
		c.iss = eb.AppendIssues(c.iss, c.at.Field("type").Issue(eb.CodeInvalidManifest, "reason", "missing type"))
		return g.String()
	default:
		b := g.Custom(p.Type)
		applyCommon[*g.CustomProp](c, b)
		if p.Responsive {
			b.Responsive()
		}
		if p.Default != nil {
			b.DefaultValue(p.Default)
		}
		return b
	}
}

// responsiveOf reads a {"$res": true, <device>: value} map. Unknown device
// keys are kept so Flatten reports them.
func responsiveOf[T any](m map[string]any) (eb.Responsive[T], bool) {
	if m[eb.ResponsiveMarker] != true {
		return nil, false
	}
	out := eb.Responsive[T]{}
	for k, v := range m {
		if k == eb.ResponsiveMarker {
			continue
		}
		t, ok := v.(T)
		if !ok {
			return nil, false
		}
		out[k] = t
	}
	return out, true
}
