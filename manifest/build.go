package manifest

import (
	eb "github.com/timoconnellaus/eb"
	"github.com/timoconnellaus/eb/dsl"
	"github.com/timoconnellaus/eb/dsl/irconv"
	ir "github.com/timoconnellaus/eb/internal/ir"
	"github.com/timoconnellaus/eb/registry"
)

// Values is the values type of definitions loaded from files.
type Values = map[string]any

// Result is a built manifest.
type Result struct {
	Config      *registry.Config
	Definitions []*dsl.Definition[Values]
}

// Definition returns the definition with the given id.
func (r *Result) Definition(id string) (*dsl.Definition[Values], bool) {
	for _, d := range r.Definitions {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}

// Bundle materializes every definition against the config.
func (r *Result) Bundle() (eb.Bundle, error) {
	ds := make([]dsl.Describer, 0, len(r.Definitions))
	for _, d := range r.Definitions {
		ds = append(ds, d)
	}
	return r.Config.Bundle(ds...)
}

// Build turns a decoded manifest into a registry config and definitions.
// Registry issues and prop conversion issues are collected together; the
// definitions themselves are flattened lazily by Bundle or Materialize.
func Build(m *Manifest) (*Result, error) {
	var iss eb.Issues
	b := registry.New().ComponentTypes(m.ComponentTypes...)

	if m.Devices != nil {
		for _, d := range m.Devices.Overrides {
			b.Devices(deviceOverride(d))
		}
		if m.Devices.Main != "" {
			b.MainDevice(m.Devices.Main)
		}
	}

	for _, ts := range m.Tokens {
		set, si := tokenSet(ts)
		iss = eb.AppendIssues(iss, si...)
		if set != nil {
			b.Tokens(set)
		}
	}

	for _, w := range m.Widgets {
		wb, wi := widget(w)
		iss = eb.AppendIssues(iss, wi...)
		if wb != nil {
			b.Widget(w.Key, wb)
		}
	}

	for _, t := range m.Types {
		tb, ti := customType(t)
		iss = eb.AppendIssues(iss, ti...)
		if tb != nil {
			b.Type(t.Key, tb)
		}
	}

	cfg, err := b.Build()
	if err != nil {
		ci, ok := eb.AsIssues(err)
		if !ok {
			return nil, err
		}
		iss = eb.AppendIssues(iss, ci...)
	}

	res := &Result{Config: cfg}
	for _, d := range m.Definitions {
		s, di := irconv.ToSchema(d.Props)
		iss = eb.AppendIssues(iss, di.WithDefinition(d.ID)...)
		def := dsl.Define[Values](d.ID, s).
			Label(d.Label).
			Type(d.Type...).
			PasteSlots(d.PasteSlots...)
		if cfg != nil {
			def.Catalog(cfg)
		}
		res.Definitions = append(res.Definitions, def)
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return res, nil
}

// LoadAndBuild is Load followed by Build.
func LoadAndBuild(path string) (*Result, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(m)
}

func deviceOverride(d ir.Device) *registry.DeviceBuilder {
	o := registry.Device(d.ID)
	if d.W != nil {
		o.W(*d.W)
	}
	if d.H != nil {
		o.H(*d.H)
	}
	if d.Breakpoint != nil {
		o.Breakpoint(*d.Breakpoint)
	}
	if d.NoBreakpoint {
		o.NoBreakpoint()
	}
	if d.Label != nil {
		o.Label(*d.Label)
	}
	if d.Hidden != nil {
		o.Hidden(*d.Hidden)
	}
	return o
}

func tokenSet(ts ir.TokenSet) (*registry.TokenSet, eb.Issues) {
	set, standard := registry.StandardTokenSet(ts.Name)
	if !standard {
		var validate func(any) bool
		switch ts.Values {
		case "", "any":
		case "string":
			validate = func(v any) bool {
				_, ok := v.(string)
				return ok
			}
		case "number":
			validate = func(v any) bool {
				_, ok := v.(float64)
				return ok
			}
		default:
			return nil, eb.Issues{eb.Root().Field("tokens").Field(ts.Name).Field("values").Issue(eb.CodeInvalidManifest, "values", ts.Values)}
		}
		set = registry.CustomTokens(ts.Name, validate)
	}
	for _, t := range ts.Tokens {
		tb := registry.Token(t.Value)
		if t.Label != "" {
			tb.Label(t.Label)
		}
		set.Add(t.ID, tb)
	}
	if ts.Default != "" {
		set.Default(ts.Default)
	}
	return set, nil
}

func widget(w ir.Widget) (*registry.Widget, eb.Issues) {
	var out *registry.Widget
	switch w.Kind {
	case registry.WidgetInline:
		out = registry.InlineWidget(w.Default, nil)
	case registry.WidgetToken:
		out = registry.TokenWidget(w.Default, nil)
	case registry.WidgetExternal:
		out = registry.ExternalWidget(w.ResourceType)
	default:
		return nil, eb.Issues{eb.Root().Field("widgets").Field(w.Key).Field("kind").Issue(eb.CodeInvalidManifest, "kind", w.Kind)}
	}
	if w.Label != "" {
		out.Label(w.Label)
	}
	return out, nil
}

func customType(t ir.Type) (*registry.TypeBuilder, eb.Issues) {
	var out *registry.TypeBuilder
	switch t.Kind {
	case eb.CustomInline:
		out = registry.InlineType(t.Widget)
	case eb.CustomToken:
		out = registry.TokenType(t.Token)
		if t.CustomValueWidget != "" {
			out.CustomValueWidget(t.CustomValueWidget)
		}
	case eb.CustomExternal:
		out = registry.ExternalType(t.Widgets...)
	default:
		return nil, eb.Issues{eb.Root().Field("types").Field(t.Key).Field("kind").Issue(eb.CodeInvalidManifest, "kind", t.Kind)}
	}
	if t.Default != nil {
		out.DefaultValue(t.Default)
	}
	return out, nil
}
