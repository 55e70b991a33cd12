package eb

import "slices"

// Layout controls how the editor arranges a prop's label and input.
type Layout string

const (
	LayoutRow    Layout = "row"
	LayoutColumn Layout = "column"
)

// SchemaProp is the framework-facing descriptor of one leaf prop.
// Absent values are omitted from every encoding, never rendered as null.
type SchemaProp struct {
	Prop         string   `json:"prop" yaml:"prop"`
	Type         string   `json:"type" yaml:"type"`
	Label        string   `json:"label,omitempty" yaml:"label,omitempty"`
	Group        string   `json:"group,omitempty" yaml:"group,omitempty"`
	DefaultValue any      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	BuildOnly    bool     `json:"buildOnly,omitempty" yaml:"buildOnly,omitempty"`
	Responsive   bool     `json:"responsive,omitempty" yaml:"responsive,omitempty"`
	HideLabel    bool     `json:"hideLabel,omitempty" yaml:"hideLabel,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Layout       Layout   `json:"layout,omitempty" yaml:"layout,omitempty"`
	Accepts      []string `json:"accepts,omitempty" yaml:"accepts,omitempty"`
	Params       *Params  `json:"params,omitempty" yaml:"params,omitempty"`
}

// Params carries kind-specific extras of a SchemaProp.
type Params struct {
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
	// Normalize is applied by the editor to string input. Not serialized.
	Normalize func(string) string `json:"-" yaml:"-"`
}

// Option is one choice of a select or radio-group prop.
type Option struct {
	Value     string `json:"value" yaml:"value"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	HideLabel bool   `json:"hideLabel,omitempty" yaml:"hideLabel,omitempty"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Clone returns a deep copy so descriptors handed out never alias builder state.
func (p SchemaProp) Clone() SchemaProp {
	out := p
	out.Accepts = slices.Clone(p.Accepts)
	if p.Params != nil {
		pp := *p.Params
		if p.Params.Min != nil {
			v := *p.Params.Min
			pp.Min = &v
		}
		if p.Params.Max != nil {
			v := *p.Params.Max
			pp.Max = &v
		}
		pp.Options = slices.Clone(p.Params.Options)
		out.Params = &pp
	}
	out.DefaultValue = cloneValue(p.DefaultValue)
	return out
}

// cloneValue copies nested maps and slices; other values are shared.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, x := range t {
			cp[k] = cloneValue(x)
		}
		return cp
	case []any:
		cp := make([]any, len(t))
		for i, x := range t {
			cp[i] = cloneValue(x)
		}
		return cp
	}
	return v
}

var breakpoints = []string{"xs", "sm", "md", "lg", "xl", "2xl"}

// Breakpoints returns the fixed device keys in ascending width order.
func Breakpoints() []string { return slices.Clone(breakpoints) }

// IsBreakpoint reports whether key is one of Breakpoints().
func IsBreakpoint(key string) bool { return slices.Contains(breakpoints, key) }

// ResponsiveMarker is the key that tags a responsive value on the wire.
const ResponsiveMarker = "$res"

// Responsive is a per-breakpoint value, keyed by Breakpoints().
type Responsive[T any] map[string]T

// Wire returns the framework representation: the per-device values plus
// "$res": true.
func (r Responsive[T]) Wire() map[string]any {
	out := make(map[string]any, len(r)+1)
	out[ResponsiveMarker] = true
	for k, v := range r {
		out[k] = v
	}
	return out
}

// UnknownDevices returns the sorted keys of r that are not breakpoints.
func (r Responsive[T]) UnknownDevices() []string {
	var bad []string
	for k := range r {
		if !IsBreakpoint(k) {
			bad = append(bad, k)
		}
	}
	slices.Sort(bad)
	return bad
}

// TokenRef is the default value of a token-backed prop.
type TokenRef struct {
	TokenID string `json:"tokenId" yaml:"tokenId"`
}

// StylesResult is what a definition's styles function returns to the renderer.
type StylesResult struct {
	Styled     map[string]any `json:"styled,omitempty" yaml:"styled,omitempty"`
	Components map[string]any `json:"components,omitempty" yaml:"components,omitempty"`
	Props      map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// ComponentDefinition is the serializable part of a materialized definition.
type ComponentDefinition struct {
	ID         string       `json:"id" yaml:"id"`
	Label      string       `json:"label,omitempty" yaml:"label,omitempty"`
	Type       []string     `json:"type,omitempty" yaml:"type,omitempty"`
	PasteSlots []string     `json:"pasteSlots,omitempty" yaml:"pasteSlots,omitempty"`
	Schema     []SchemaProp `json:"schema" yaml:"schema"`
}

// DeviceRange is one device preset. Breakpoint is nil for the widest device.
type DeviceRange struct {
	ID         string `json:"id" yaml:"id"`
	W          int    `json:"w" yaml:"w"`
	H          int    `json:"h" yaml:"h"`
	Breakpoint *int   `json:"breakpoint" yaml:"breakpoint"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty"`
	Hidden     bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	IsMain     bool   `json:"isMain,omitempty" yaml:"isMain,omitempty"`
}

// ConfigToken is one entry of a token set.
type ConfigToken struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Value     any    `json:"value" yaml:"value"`
	IsDefault bool   `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
}

// Custom type kinds.
const (
	CustomInline   = "inline"
	CustomToken    = "token"
	CustomExternal = "external"
)

// CustomType describes a caller-registered prop type referenced by Custom props.
type CustomType struct {
	Kind              string   `json:"type" yaml:"type"`
	Widget            string   `json:"widget,omitempty" yaml:"widget,omitempty"`
	Widgets           []string `json:"widgets,omitempty" yaml:"widgets,omitempty"`
	Token             string   `json:"token,omitempty" yaml:"token,omitempty"`
	CustomValueWidget string   `json:"customValueWidget,omitempty" yaml:"customValueWidget,omitempty"`
	DefaultValue      any      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// Bundle is the complete configuration handed to the external framework.
type Bundle struct {
	Devices    []DeviceRange            `json:"devices" yaml:"devices"`
	Tokens     map[string][]ConfigToken `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Types      map[string]CustomType    `json:"types,omitempty" yaml:"types,omitempty"`
	Components []ComponentDefinition    `json:"components" yaml:"components"`
}

// CatalogKind selects the namespace of a catalog lookup.
type CatalogKind string

const (
	CatalogType          CatalogKind = "type"
	CatalogToken         CatalogKind = "token"
	CatalogTokenSet      CatalogKind = "tokenSet"
	CatalogWidget        CatalogKind = "widget"
	CatalogComponentType CatalogKind = "componentType"
)

// TokenKey is the CatalogToken lookup key of token id within set.
func TokenKey(set, id string) string { return set + "/" + id }
