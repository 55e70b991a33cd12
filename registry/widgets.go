package registry

import (
	"context"
)

// Widget kinds.
const (
	WidgetInline   = "inline"
	WidgetToken    = "token"
	WidgetExternal = "external"
)

// FetchFunc resolves external resource ids to values. It is stored for the
// editor and never called by this package.
type FetchFunc func(ctx context.Context, ids []string) (map[string]any, error)

// Widget is a custom value editor registered under a key.
type Widget struct {
	kind         string
	label        string
	defaultValue any
	validate     func(any) bool
	resourceType string
	component    any
	fetch        FetchFunc
}

// InlineWidget creates an editor whose value is stored inline in the
// component. The default must satisfy validate (when non-nil).
func InlineWidget(defaultValue any, validate func(any) bool) *Widget {
	return &Widget{kind: WidgetInline, defaultValue: defaultValue, validate: validate}
}

// TokenWidget creates an editor for custom values of token-backed types.
func TokenWidget(defaultValue any, validate func(any) bool) *Widget {
	return &Widget{kind: WidgetToken, defaultValue: defaultValue, validate: validate}
}

// ExternalWidget creates an editor that picks resources of resourceType from
// an external source.
func ExternalWidget(resourceType string) *Widget {
	return &Widget{kind: WidgetExternal, resourceType: resourceType}
}

func (w *Widget) Label(s string) *Widget {
	w.label = s
	return w
}

// Component attaches the opaque editor component handle.
func (w *Widget) Component(c any) *Widget {
	w.component = c
	return w
}

// Fetch attaches the resource fetcher of an external widget.
func (w *Widget) Fetch(fn FetchFunc) *Widget {
	w.fetch = fn
	return w
}

func (w *Widget) Kind() string         { return w.kind }
func (w *Widget) LabelText() string    { return w.label }
func (w *Widget) DefaultValue() any    { return w.defaultValue }
func (w *Widget) ResourceType() string { return w.resourceType }
func (w *Widget) ComponentHandle() any { return w.component }
func (w *Widget) Fetcher() FetchFunc   { return w.fetch }

// Validate reports whether v is an acceptable value for the widget.
func (w *Widget) Validate(v any) bool {
	if w.validate == nil {
		return true
	}
	return w.validate(v)
}
