package dsl

import (
	eb "github.com/timoconnellaus/eb"
)

// SelectProp is a choice among options, rendered as "select" or
// "radio-group".
type SelectProp struct {
	common[*SelectProp]
	options []eb.Option
}

// Select creates a "select" prop from a plain list; each label equals its
// value. Use Option to add entries with explicit labels or icons.
func Select(values ...string) *SelectProp { return newSelect("select", values) }

// RadioGroup is Select rendered as a row of buttons.
func RadioGroup(values ...string) *SelectProp { return newSelect("radio-group", values) }

func newSelect(tag string, values []string) *SelectProp {
	p := &SelectProp{}
	p.self, p.tag = p, tag
	for _, v := range values {
		p.options = append(p.options, eb.Option{Value: v, Label: v})
	}
	return p
}

// Option appends one option; o may be nil.
func (p *SelectProp) Option(value string, o *OptionBuilder) *SelectProp {
	opt := eb.Option{Value: value}
	if o != nil {
		opt.Label, opt.HideLabel, opt.Icon = o.label, o.hideLabel, o.icon
	}
	p.options = append(p.options, opt)
	return p
}

func (p *SelectProp) DefaultValue(v string) *SelectProp {
	p.setDefault(v)
	return p
}

func (p *SelectProp) Descriptor() eb.SchemaProp {
	sp := p.base()
	sp.Params = &eb.Params{Options: p.options}
	return sp.Clone()
}

func (p *SelectProp) check(at eb.PathRef, _ Catalog) []eb.Issue {
	if len(p.options) == 0 {
		return []eb.Issue{at.Field("params").Issue(eb.CodeEmptyOptions)}
	}
	var out []eb.Issue
	seen := make(map[string]bool, len(p.options))
	for i, o := range p.options {
		if seen[o.Value] {
			out = append(out, at.Field("params").Field("options").Index(i).Issue(eb.CodeDuplicateOption, "value", o.Value))
		}
		seen[o.Value] = true
	}
	if p.hasDef && !seen[p.def.(string)] {
		out = append(out, at.Field("defaultValue").Issue(eb.CodeInvalidDefault, "value", p.def))
	}
	return out
}

// OptionBuilder carries the display settings of one select option.
type OptionBuilder struct {
	label     string
	hideLabel bool
	icon      string
}

// Option starts an option for SelectProp.Option.
func Option() *OptionBuilder { return &OptionBuilder{} }

func (o *OptionBuilder) Label(s string) *OptionBuilder {
	o.label = s
	return o
}

func (o *OptionBuilder) HideLabel() *OptionBuilder {
	o.hideLabel = true
	return o
}

// Icon sets an icon name or URL shown instead of, or next to, the label.
func (o *OptionBuilder) Icon(s string) *OptionBuilder {
	o.icon = s
	return o
}
