package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	eb "github.com/timoconnellaus/eb"
	"github.com/timoconnellaus/eb/dsl"
)

// builtinTags are the dsl prop kinds; custom types cannot reuse them.
var builtinTags = []string{
	"string", "number", "boolean", "select", "radio-group",
	"color", "space", "font", "component", "component-collection",
}

type namedWidget struct {
	key string
	w   *Widget
}

type namedType struct {
	key string
	t   *TypeBuilder
}

// Builder accumulates registry configuration. Build validates it once.
type Builder struct {
	table          []DeviceSpec
	devices        []*DeviceBuilder
	main           string
	tokenSets      []*TokenSet
	widgets        []namedWidget
	types          []namedType
	componentTypes []string
}

// New starts a registry with the default device table and no tokens, widgets
// or types.
func New() *Builder { return &Builder{table: DefaultDeviceTable()} }

// DeviceTable replaces the base device table.
func (b *Builder) DeviceTable(t []DeviceSpec) *Builder {
	b.table = slices.Clone(t)
	return b
}

// Devices adds per-device overrides.
func (b *Builder) Devices(overrides ...*DeviceBuilder) *Builder {
	b.devices = append(b.devices, overrides...)
	return b
}

// MainDevice makes id the only main device, after overrides are applied.
func (b *Builder) MainDevice(id string) *Builder {
	b.main = id
	return b
}

// Tokens adds token sets.
func (b *Builder) Tokens(sets ...*TokenSet) *Builder {
	b.tokenSets = append(b.tokenSets, sets...)
	return b
}

// Widget registers a widget under key.
func (b *Builder) Widget(key string, w *Widget) *Builder {
	b.widgets = append(b.widgets, namedWidget{key: key, w: w})
	return b
}

// Type registers a custom prop type under key.
func (b *Builder) Type(key string, t *TypeBuilder) *Builder {
	b.types = append(b.types, namedType{key: key, t: t})
	return b
}

// ComponentTypes registers the component type tags definitions may use.
func (b *Builder) ComponentTypes(types ...string) *Builder {
	b.componentTypes = append(b.componentTypes, types...)
	return b
}

// Build validates every reference and returns the immutable Config. All
// issues are collected.
func (b *Builder) Build() (*Config, error) {
	var iss eb.Issues
	c := &Config{
		tokens:         map[string][]eb.ConfigToken{},
		widgets:        map[string]*Widget{},
		types:          map[string]eb.CustomType{},
		componentTypes: map[string]bool{},
	}

	devs, err := NewDevices(b.table, b.devices...)
	if err != nil {
		di, _ := eb.AsIssues(err)
		iss = eb.AppendIssues(iss, di...)
	} else if b.main != "" {
		if devs, err = devs.MainDevice(b.main); err != nil {
			di, _ := eb.AsIssues(err)
			iss = eb.AppendIssues(iss, di...)
		}
	}
	c.devices = devs

	for _, s := range b.tokenSets {
		if s == nil {
			continue
		}
		if _, dup := c.tokens[s.name]; dup {
			iss = eb.AppendIssues(iss, eb.Root().Field("tokens").Field(s.name).Issue(eb.CodeDuplicateKey, "key", s.name))
			continue
		}
		toks, ti := s.build()
		iss = eb.AppendIssues(iss, ti...)
		c.tokens[s.name] = toks
		c.tokenOrder = append(c.tokenOrder, s.name)
	}

	for _, nw := range b.widgets {
		at := eb.Root().Field("widgets").Field(nw.key)
		if nw.w == nil {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeNilEntry, "key", nw.key))
			continue
		}
		if _, dup := c.widgets[nw.key]; dup {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeDuplicateKey, "key", nw.key))
			continue
		}
		if (nw.w.kind == WidgetInline || nw.w.kind == WidgetToken) && !nw.w.Validate(nw.w.defaultValue) {
			iss = eb.AppendIssues(iss, at.Field("defaultValue").Issue(eb.CodeInvalidDefault, "value", nw.w.defaultValue))
		}
		c.widgets[nw.key] = nw.w
	}

	for _, nt := range b.types {
		at := eb.Root().Field("types").Field(nt.key)
		if nt.t == nil {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeNilEntry, "key", nt.key))
			continue
		}
		if _, dup := c.types[nt.key]; dup || slices.Contains(builtinTags, nt.key) {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeDuplicateKey, "key", nt.key))
			continue
		}
		t, ti := nt.t.resolve(nt.key, c.widgets, c.tokens)
		iss = eb.AppendIssues(iss, ti...)
		c.types[nt.key] = t
	}

	for _, ct := range b.componentTypes {
		c.componentTypes[ct] = true
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return c, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Config {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("registry: build: %v", err))
	}
	return c
}

// Config is a validated registry. It implements dsl.Catalog.
type Config struct {
	devices        *Devices
	tokens         map[string][]eb.ConfigToken
	tokenOrder     []string
	widgets        map[string]*Widget
	types          map[string]eb.CustomType
	componentTypes map[string]bool
}

var _ dsl.Catalog = (*Config)(nil)

// Lookup resolves a key in the namespace selected by kind. CatalogToken keys
// are eb.TokenKey(set, id).
func (c *Config) Lookup(kind eb.CatalogKind, key string) (any, bool) {
	switch kind {
	case eb.CatalogType:
		t, ok := c.types[key]
		return t, ok
	case eb.CatalogTokenSet:
		ts, ok := c.tokens[key]
		return slices.Clone(ts), ok
	case eb.CatalogToken:
		for _, set := range c.tokenOrder {
			for _, t := range c.tokens[set] {
				if eb.TokenKey(set, t.ID) == key {
					return t, true
				}
			}
		}
	case eb.CatalogWidget:
		w, ok := c.widgets[key]
		return w, ok
	case eb.CatalogComponentType:
		if c.componentTypes[key] {
			return key, true
		}
	}
	return nil, false
}

// Devices returns the device ranges in table order.
func (c *Config) Devices() []eb.DeviceRange { return c.devices.Ranges() }

// MainDevice returns the id of the main device.
func (c *Config) MainDevice() string { return c.devices.Main() }

// TokenSets returns the set names in registration order.
func (c *Config) TokenSets() []string { return slices.Clone(c.tokenOrder) }

// Tokens returns the tokens of set in declaration order.
func (c *Config) Tokens(set string) []eb.ConfigToken { return slices.Clone(c.tokens[set]) }

// Bundle materializes defs against c and assembles the framework bundle.
// Definition ids must be unique.
func (c *Config) Bundle(defs ...dsl.Describer) (eb.Bundle, error) {
	var iss eb.Issues
	out := eb.Bundle{
		Devices:    c.Devices(),
		Components: make([]eb.ComponentDefinition, 0, len(defs)),
	}
	if len(c.tokens) > 0 {
		out.Tokens = make(map[string][]eb.ConfigToken, len(c.tokens))
		for k, v := range c.tokens {
			out.Tokens[k] = slices.Clone(v)
		}
	}
	if len(c.types) > 0 {
		out.Types = maps.Clone(c.types)
	}
	seen := map[string]bool{}
	for i, d := range defs {
		if isNil(d) {
			it := eb.Root().Field("components").Index(i).Issue(eb.CodeNilEntry, "key", fmt.Sprintf("components[%d]", i))
			iss = eb.AppendIssues(iss, it)
			continue
		}
		if seen[d.ID()] {
			it := eb.Root().Field("components").Index(i).Issue(eb.CodeDuplicateDefinition, "key", d.ID())
			it.Definition = d.ID()
			iss = eb.AppendIssues(iss, it)
			continue
		}
		seen[d.ID()] = true
		cd, err := d.Describe(c)
		if err != nil {
			if di, ok := eb.AsIssues(err); ok {
				iss = eb.AppendIssues(iss, di...)
				continue
			}
			return eb.Bundle{}, err
		}
		out.Components = append(out.Components, cd)
	}
	if len(iss) > 0 {
		return eb.Bundle{}, iss
	}
	return out, nil
}

// isNil also catches typed nil definitions such as (*dsl.Definition[V])(nil).
func isNil(d dsl.Describer) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
