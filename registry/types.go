package registry

import (
	"slices"

	eb "github.com/timoconnellaus/eb"
)

// TypeBuilder declares a custom prop type, referenced by dsl.Custom(key).
type TypeBuilder struct {
	t eb.CustomType
}

// InlineType is a type edited by an inline widget; its default is the widget
// default unless DefaultValue overrides it.
func InlineType(widget string) *TypeBuilder {
	return &TypeBuilder{t: eb.CustomType{Kind: eb.CustomInline, Widget: widget}}
}

// TokenType is a type whose values come from a token set.
func TokenType(tokenSet string) *TypeBuilder {
	return &TypeBuilder{t: eb.CustomType{Kind: eb.CustomToken, Token: tokenSet}}
}

// ExternalType is a type whose values are resources picked by external widgets.
func ExternalType(widgets ...string) *TypeBuilder {
	return &TypeBuilder{t: eb.CustomType{Kind: eb.CustomExternal, Widgets: slices.Clone(widgets)}}
}

// CustomValueWidget lets editors type a value outside the token set.
func (b *TypeBuilder) CustomValueWidget(widget string) *TypeBuilder {
	b.t.CustomValueWidget = widget
	return b
}

func (b *TypeBuilder) DefaultValue(v any) *TypeBuilder {
	b.t.DefaultValue = v
	return b
}

// resolve checks widget and token references against the config under
// construction.
func (b *TypeBuilder) resolve(key string, widgets map[string]*Widget, tokens map[string][]eb.ConfigToken) (eb.CustomType, eb.Issues) {
	var iss eb.Issues
	at := eb.Root().Field("types").Field(key)
	t := b.t
	t.Widgets = slices.Clone(b.t.Widgets)
	needWidget := func(name, kind string, field eb.PathRef) *Widget {
		w, ok := widgets[name]
		if !ok || w.kind != kind {
			iss = eb.AppendIssues(iss, field.Issue(eb.CodeUnknownWidget, "key", name, "kind", kind))
			return nil
		}
		return w
	}
	switch t.Kind {
	case eb.CustomInline:
		if w := needWidget(t.Widget, WidgetInline, at.Field("widget")); w != nil {
			if t.DefaultValue == nil {
				t.DefaultValue = w.defaultValue
			}
			if !w.Validate(t.DefaultValue) {
				iss = eb.AppendIssues(iss, at.Field("defaultValue").Issue(eb.CodeInvalidDefault, "value", t.DefaultValue))
			}
		}
	case eb.CustomToken:
		if _, ok := tokens[t.Token]; !ok {
			iss = eb.AppendIssues(iss, at.Field("token").Issue(eb.CodeUnknownToken, "key", t.Token))
		}
		if t.CustomValueWidget != "" {
			needWidget(t.CustomValueWidget, WidgetToken, at.Field("customValueWidget"))
		}
	case eb.CustomExternal:
		for i, name := range t.Widgets {
			needWidget(name, WidgetExternal, at.Field("widgets").Index(i))
		}
	}
	return t, iss
}
