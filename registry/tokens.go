package registry

import (
	eb "github.com/timoconnellaus/eb"
)

// Standard token set names. Color, Space and Font back the dsl props of the
// same name.
const (
	SetColor          = "color"
	SetFont           = "font"
	SetSpace          = "space"
	SetBoxShadow      = "boxShadow"
	SetContainerWidth = "containerWidth"
	SetAspectRatio    = "aspectRatio"
	SetIcon           = "icon"
)

// TokenBuilder is one design token value.
type TokenBuilder struct {
	value     any
	label     string
	isDefault bool
}

// Token creates a token with the given value.
func Token(value any) *TokenBuilder { return &TokenBuilder{value: value} }

func (t *TokenBuilder) Label(s string) *TokenBuilder {
	t.label = s
	return t
}

// IsDefault marks the token as the set's default.
func (t *TokenBuilder) IsDefault() *TokenBuilder {
	t.isDefault = true
	return t
}

// TokenSet is an ordered, named collection of tokens whose values are checked
// by a validator.
type TokenSet struct {
	name     string
	validate func(any) bool
	ids      []string
	tokens   []*TokenBuilder
	defaults []string
}

// CustomTokens creates a caller-named set; validate may be nil.
func CustomTokens(name string, validate func(any) bool) *TokenSet {
	return &TokenSet{name: name, validate: validate}
}

func ColorTokens() *TokenSet          { return CustomTokens(SetColor, responsiveOf(isString)) }
func FontTokens() *TokenSet           { return CustomTokens(SetFont, responsiveOf(isFont)) }
func SpaceTokens() *TokenSet          { return CustomTokens(SetSpace, responsiveOf(isSpace)) }
func BoxShadowTokens() *TokenSet      { return CustomTokens(SetBoxShadow, isString) }
func ContainerWidthTokens() *TokenSet { return CustomTokens(SetContainerWidth, isNumber) }
func AspectRatioTokens() *TokenSet    { return CustomTokens(SetAspectRatio, isString) }
func IconTokens() *TokenSet           { return CustomTokens(SetIcon, isString) }

// StandardTokenSet returns the standard set builder for name.
func StandardTokenSet(name string) (*TokenSet, bool) {
	switch name {
	case SetColor:
		return ColorTokens(), true
	case SetFont:
		return FontTokens(), true
	case SetSpace:
		return SpaceTokens(), true
	case SetBoxShadow:
		return BoxShadowTokens(), true
	case SetContainerWidth:
		return ContainerWidthTokens(), true
	case SetAspectRatio:
		return AspectRatioTokens(), true
	case SetIcon:
		return IconTokens(), true
	}
	return nil, false
}

// Name returns the set name.
func (s *TokenSet) Name() string { return s.name }

// Add appends a token. Order is kept.
func (s *TokenSet) Add(id string, t *TokenBuilder) *TokenSet {
	s.ids = append(s.ids, id)
	s.tokens = append(s.tokens, t)
	return s
}

// Default marks id as the default token.
func (s *TokenSet) Default(id string) *TokenSet {
	s.defaults = append(s.defaults, id)
	return s
}

// build validates the set and returns its wire form.
func (s *TokenSet) build() ([]eb.ConfigToken, eb.Issues) {
	var iss eb.Issues
	at := eb.Root().Field("tokens").Field(s.name)
	out := make([]eb.ConfigToken, 0, len(s.ids))
	index := map[string]int{}
	for i, id := range s.ids {
		t := s.tokens[i]
		tat := at.Field(id)
		if _, dup := index[id]; dup {
			iss = eb.AppendIssues(iss, tat.Issue(eb.CodeDuplicateKey, "key", id))
			continue
		}
		if t == nil {
			iss = eb.AppendIssues(iss, tat.Issue(eb.CodeInvalidToken, "key", id))
			continue
		}
		if s.validate != nil && !s.validate(t.value) {
			iss = eb.AppendIssues(iss, tat.Issue(eb.CodeInvalidToken, "key", id))
			continue
		}
		index[id] = len(out)
		out = append(out, eb.ConfigToken{ID: id, Label: t.label, Value: t.value, IsDefault: t.isDefault})
	}
	for _, id := range s.defaults {
		i, ok := index[id]
		if !ok {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeUnknownToken, "key", eb.TokenKey(s.name, id)))
			continue
		}
		out[i].IsDefault = true
	}
	n := 0
	for _, t := range out {
		if t.IsDefault {
			n++
		}
	}
	if n > 1 {
		iss = eb.AppendIssues(iss, at.Issue(eb.CodeDuplicateDefault, "set", s.name))
	}
	return out, iss
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

func isSpace(v any) bool { return isString(v) || isNumber(v) }

// isFont accepts {fontFamily, fontSize, lineHeight[, fontWeight]}.
func isFont(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if !isString(m["fontFamily"]) || !isNumber(m["fontSize"]) || !isNumber(m["lineHeight"]) {
		return false
	}
	if w, ok := m["fontWeight"]; ok && !isNumber(w) {
		return false
	}
	return true
}

// responsiveOf accepts a plain value or a {"$res": true, <breakpoint>: value} map.
func responsiveOf(inner func(any) bool) func(any) bool {
	return func(v any) bool {
		m, ok := v.(map[string]any)
		if !ok || m[eb.ResponsiveMarker] != true {
			return inner(v)
		}
		for k, x := range m {
			if k == eb.ResponsiveMarker {
				continue
			}
			if !eb.IsBreakpoint(k) || !inner(x) {
				return false
			}
		}
		return true
	}
}
