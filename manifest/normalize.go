package manifest

import (
	"fmt"

	ir "github.com/timoconnellaus/eb/internal/ir"
)

// normalizeValue converts decoder-specific shapes into JSON-like values:
// map[string]any, []any, string, bool and float64 for every number. YAML
// yields int and map[any]any, TOML yields int64; both must compare equal to
// the JSON decoding of the same file.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	case []map[string]any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

func normalizeManifest(m *Manifest) {
	for i := range m.Tokens {
		for j := range m.Tokens[i].Tokens {
			m.Tokens[i].Tokens[j].Value = normalizeValue(m.Tokens[i].Tokens[j].Value)
		}
	}
	for i := range m.Widgets {
		m.Widgets[i].Default = normalizeValue(m.Widgets[i].Default)
	}
	for i := range m.Types {
		m.Types[i].Default = normalizeValue(m.Types[i].Default)
	}
	for i := range m.Definitions {
		normalizeProps(m.Definitions[i].Props)
	}
}

func normalizeProps(ps []ir.Prop) {
	for i := range ps {
		ps[i].Default = normalizeValue(ps[i].Default)
		normalizeProps(ps[i].Props)
	}
}
