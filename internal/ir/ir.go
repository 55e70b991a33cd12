// Package ir defines the declarative intermediate representation read from
// manifest files. Lists (not maps) carry every ordered collection so that
// declaration order survives YAML, TOML and JSON alike. This package is
// internal and not part of the public API.
package ir

// Manifest is the root of a manifest file.
type Manifest struct {
	ComponentTypes []string     `yaml:"componentTypes,omitempty" toml:"componentTypes,omitempty" json:"componentTypes,omitempty"`
	Devices        *Devices     `yaml:"devices,omitempty" toml:"devices,omitempty" json:"devices,omitempty"`
	Tokens         []TokenSet   `yaml:"tokens,omitempty" toml:"tokens,omitempty" json:"tokens,omitempty"`
	Widgets        []Widget     `yaml:"widgets,omitempty" toml:"widgets,omitempty" json:"widgets,omitempty"`
	Types          []Type       `yaml:"types,omitempty" toml:"types,omitempty" json:"types,omitempty"`
	Definitions    []Definition `yaml:"definitions,omitempty" toml:"definitions,omitempty" json:"definitions,omitempty"`
}

// Devices overrides the default device table.
type Devices struct {
	Main      string   `yaml:"main,omitempty" toml:"main,omitempty" json:"main,omitempty"`
	Overrides []Device `yaml:"overrides,omitempty" toml:"overrides,omitempty" json:"overrides,omitempty"`
}

// Device is a per-field override; nil pointers keep the table value.
type Device struct {
	ID           string  `yaml:"id" toml:"id" json:"id"`
	W            *int    `yaml:"w,omitempty" toml:"w,omitempty" json:"w,omitempty"`
	H            *int    `yaml:"h,omitempty" toml:"h,omitempty" json:"h,omitempty"`
	Breakpoint   *int    `yaml:"breakpoint,omitempty" toml:"breakpoint,omitempty" json:"breakpoint,omitempty"`
	NoBreakpoint bool    `yaml:"noBreakpoint,omitempty" toml:"noBreakpoint,omitempty" json:"noBreakpoint,omitempty"`
	Label        *string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Hidden       *bool   `yaml:"hidden,omitempty" toml:"hidden,omitempty" json:"hidden,omitempty"`
}

// TokenSet is a standard set (color, font, space, ...) or a custom one.
// Custom sets may constrain values with Values: "string" or "number".
type TokenSet struct {
	Name    string  `yaml:"name" toml:"name" json:"name"`
	Values  string  `yaml:"values,omitempty" toml:"values,omitempty" json:"values,omitempty"`
	Default string  `yaml:"default,omitempty" toml:"default,omitempty" json:"default,omitempty"`
	Tokens  []Token `yaml:"tokens" toml:"tokens" json:"tokens"`
}

// Token is one token of a set.
type Token struct {
	ID    string `yaml:"id" toml:"id" json:"id"`
	Label string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Value any    `yaml:"value" toml:"value" json:"value"`
}

// Widget declares a widget key. Kind is inline, token or external.
type Widget struct {
	Key          string `yaml:"key" toml:"key" json:"key"`
	Kind         string `yaml:"kind" toml:"kind" json:"kind"`
	Label        string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Default      any    `yaml:"default,omitempty" toml:"default,omitempty" json:"default,omitempty"`
	ResourceType string `yaml:"resourceType,omitempty" toml:"resourceType,omitempty" json:"resourceType,omitempty"`
}

// Type declares a custom prop type. Kind is inline, token or external.
type Type struct {
	Key               string   `yaml:"key" toml:"key" json:"key"`
	Kind              string   `yaml:"kind" toml:"kind" json:"kind"`
	Widget            string   `yaml:"widget,omitempty" toml:"widget,omitempty" json:"widget,omitempty"`
	Widgets           []string `yaml:"widgets,omitempty" toml:"widgets,omitempty" json:"widgets,omitempty"`
	Token             string   `yaml:"token,omitempty" toml:"token,omitempty" json:"token,omitempty"`
	CustomValueWidget string   `yaml:"customValueWidget,omitempty" toml:"customValueWidget,omitempty" json:"customValueWidget,omitempty"`
	Default           any      `yaml:"default,omitempty" toml:"default,omitempty" json:"default,omitempty"`
}

// Definition is one component definition.
type Definition struct {
	ID         string   `yaml:"id" toml:"id" json:"id"`
	Label      string   `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Type       []string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	PasteSlots []string `yaml:"pasteSlots,omitempty" toml:"pasteSlots,omitempty" json:"pasteSlots,omitempty"`
	Props      []Prop   `yaml:"props" toml:"props" json:"props"`
}

// Prop is a leaf prop, or a group when Props is non-empty.
type Prop struct {
	Name         string   `yaml:"name" toml:"name" json:"name"`
	Type         string   `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Label        string   `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Description  string   `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	HideLabel    bool     `yaml:"hideLabel,omitempty" toml:"hideLabel,omitempty" json:"hideLabel,omitempty"`
	BuildOnly    bool     `yaml:"buildOnly,omitempty" toml:"buildOnly,omitempty" json:"buildOnly,omitempty"`
	Responsive   bool     `yaml:"responsive,omitempty" toml:"responsive,omitempty" json:"responsive,omitempty"`
	Layout       string   `yaml:"layout,omitempty" toml:"layout,omitempty" json:"layout,omitempty"`
	Default      any      `yaml:"default,omitempty" toml:"default,omitempty" json:"default,omitempty"`
	DefaultToken string   `yaml:"defaultToken,omitempty" toml:"defaultToken,omitempty" json:"defaultToken,omitempty"`
	Min          *float64 `yaml:"min,omitempty" toml:"min,omitempty" json:"min,omitempty"`
	Max          *float64 `yaml:"max,omitempty" toml:"max,omitempty" json:"max,omitempty"`
	Values       []string `yaml:"values,omitempty" toml:"values,omitempty" json:"values,omitempty"`
	Options      []Option `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty"`
	Accepts      []string `yaml:"accepts,omitempty" toml:"accepts,omitempty" json:"accepts,omitempty"`
	Props        []Prop   `yaml:"props,omitempty" toml:"props,omitempty" json:"props,omitempty"`
}

// Option is one select option with display settings.
type Option struct {
	Value     string `yaml:"value" toml:"value" json:"value"`
	Label     string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	HideLabel bool   `yaml:"hideLabel,omitempty" toml:"hideLabel,omitempty" json:"hideLabel,omitempty"`
	Icon      string `yaml:"icon,omitempty" toml:"icon,omitempty" json:"icon,omitempty"`
}

// IsGroup reports whether p declares a group.
func (p Prop) IsGroup() bool { return len(p.Props) > 0 }
