package dsl

import (
	eb "github.com/timoconnellaus/eb"
)

// StringProp is a free text prop.
type StringProp struct {
	common[*StringProp]
	normalize  func(string) string
	badDevices []string
}

// String creates a "string" prop.
func String() *StringProp {
	p := &StringProp{}
	p.self, p.tag = p, "string"
	return p
}

func (p *StringProp) DefaultValue(v string) *StringProp {
	p.setDefault(v)
	p.badDevices = nil
	return p
}

func (p *StringProp) Responsive() *StringProp {
	p.responsive = true
	return p
}

// ResponsiveDefault marks the prop responsive and sets a per-device default.
func (p *StringProp) ResponsiveDefault(r eb.Responsive[string]) *StringProp {
	p.responsive = true
	p.setDefault(r.Wire())
	p.badDevices = r.UnknownDevices()
	return p
}

// Normalize registers a function the editor applies to typed input.
func (p *StringProp) Normalize(fn func(string) string) *StringProp {
	p.normalize = fn
	return p
}

func (p *StringProp) Descriptor() eb.SchemaProp {
	sp := p.base()
	if p.normalize != nil {
		sp.Params = &eb.Params{Normalize: p.normalize}
	}
	return sp.Clone()
}

func (p *StringProp) check(at eb.PathRef, _ Catalog) []eb.Issue {
	return checkDevices(at, p.badDevices)
}

// NumberProp is a numeric prop with optional bounds.
type NumberProp struct {
	common[*NumberProp]
	min, max   *float64
	defaults   []float64
	badDevices []string
}

// Number creates a "number" prop.
func Number() *NumberProp {
	p := &NumberProp{}
	p.self, p.tag = p, "number"
	return p
}

func (p *NumberProp) DefaultValue(v float64) *NumberProp {
	p.setDefault(v)
	p.defaults = []float64{v}
	p.badDevices = nil
	return p
}

func (p *NumberProp) Responsive() *NumberProp {
	p.responsive = true
	return p
}

func (p *NumberProp) ResponsiveDefault(r eb.Responsive[float64]) *NumberProp {
	p.responsive = true
	p.setDefault(r.Wire())
	p.defaults = p.defaults[:0]
	for _, k := range eb.Breakpoints() {
		if v, ok := r[k]; ok {
			p.defaults = append(p.defaults, v)
		}
	}
	p.badDevices = r.UnknownDevices()
	return p
}

// Min sets the lower bound. Zero is a valid bound.
func (p *NumberProp) Min(v float64) *NumberProp {
	p.min = &v
	return p
}

// Max sets the upper bound. Zero is a valid bound.
func (p *NumberProp) Max(v float64) *NumberProp {
	p.max = &v
	return p
}

func (p *NumberProp) Descriptor() eb.SchemaProp {
	sp := p.base()
	if p.min != nil || p.max != nil {
		sp.Params = &eb.Params{Min: p.min, Max: p.max}
	}
	return sp.Clone()
}

func (p *NumberProp) check(at eb.PathRef, _ Catalog) []eb.Issue {
	out := checkDevices(at, p.badDevices)
	if p.min != nil && p.max != nil && *p.min > *p.max {
		out = append(out, at.Field("params").Issue(eb.CodeInvalidRange, "min", *p.min, "max", *p.max))
		return out
	}
	for _, v := range p.defaults {
		if (p.min != nil && v < *p.min) || (p.max != nil && v > *p.max) {
			out = append(out, at.Field("defaultValue").Issue(eb.CodeInvalidDefault, "value", v))
		}
	}
	return out
}

// BooleanProp is an on/off prop.
type BooleanProp struct {
	common[*BooleanProp]
}

// Boolean creates a "boolean" prop.
func Boolean() *BooleanProp {
	p := &BooleanProp{}
	p.self, p.tag = p, "boolean"
	return p
}

func (p *BooleanProp) DefaultValue(v bool) *BooleanProp {
	p.setDefault(v)
	return p
}

func (p *BooleanProp) Descriptor() eb.SchemaProp { return p.base() }
