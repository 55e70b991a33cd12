package dsl

import (
	"slices"

	eb "github.com/timoconnellaus/eb"
)

// TokenProp is a prop whose value is picked from a token set with the same
// name as its kind ("color", "space" or "font").
type TokenProp struct {
	common[*TokenProp]
	tokenIDs   []string
	badDevices []string
}

// Color creates a "color" prop backed by the color token set.
func Color() *TokenProp { return newToken("color") }

// Space creates a "space" prop backed by the space token set.
func Space() *TokenProp { return newToken("space") }

// Font creates a "font" prop backed by the font token set.
func Font() *TokenProp { return newToken("font") }

func newToken(tag string) *TokenProp {
	p := &TokenProp{}
	p.self, p.tag = p, tag
	return p
}

// DefaultValue sets a raw (non-token) default value.
func (p *TokenProp) DefaultValue(v any) *TokenProp {
	p.setDefault(v)
	p.tokenIDs, p.badDevices = nil, nil
	return p
}

// DefaultToken sets the default to the token id of this prop's token set.
func (p *TokenProp) DefaultToken(id string) *TokenProp {
	p.setDefault(eb.TokenRef{TokenID: id})
	p.tokenIDs, p.badDevices = []string{id}, nil
	return p
}

func (p *TokenProp) Responsive() *TokenProp {
	p.responsive = true
	return p
}

// ResponsiveDefault sets per-device token ids as the default.
func (p *TokenProp) ResponsiveDefault(r eb.Responsive[string]) *TokenProp {
	p.responsive = true
	refs := make(eb.Responsive[eb.TokenRef], len(r))
	p.tokenIDs = p.tokenIDs[:0]
	for k, id := range r {
		refs[k] = eb.TokenRef{TokenID: id}
		p.tokenIDs = append(p.tokenIDs, id)
	}
	slices.Sort(p.tokenIDs)
	p.setDefault(refs.Wire())
	p.badDevices = r.UnknownDevices()
	return p
}

func (p *TokenProp) Descriptor() eb.SchemaProp { return p.base().Clone() }

func (p *TokenProp) check(at eb.PathRef, cat Catalog) []eb.Issue {
	out := checkDevices(at, p.badDevices)
	if cat == nil {
		return out
	}
	for _, id := range slices.Compact(slices.Clone(p.tokenIDs)) {
		if _, ok := cat.Lookup(eb.CatalogToken, eb.TokenKey(p.tag, id)); !ok {
			out = append(out, at.Field("defaultValue").Issue(eb.CodeUnknownToken, "key", eb.TokenKey(p.tag, id)))
		}
	}
	return out
}

// CustomProp is a prop of a caller-registered type; its type tag is the
// registry key.
type CustomProp struct {
	common[*CustomProp]
}

// Custom creates a prop of the custom type registered under key.
func Custom(key string) *CustomProp {
	p := &CustomProp{}
	p.self, p.tag = p, key
	return p
}

func (p *CustomProp) DefaultValue(v any) *CustomProp {
	p.setDefault(v)
	return p
}

func (p *CustomProp) Responsive() *CustomProp {
	p.responsive = true
	return p
}

func (p *CustomProp) Descriptor() eb.SchemaProp { return p.base().Clone() }

func (p *CustomProp) check(at eb.PathRef, cat Catalog) []eb.Issue {
	if cat == nil {
		return nil
	}
	if _, ok := cat.Lookup(eb.CatalogType, p.tag); !ok {
		return []eb.Issue{at.Issue(eb.CodeUnknownType, "key", p.tag)}
	}
	return nil
}
