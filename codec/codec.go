// Package codec encodes bundles for the external framework.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	eb "github.com/timoconnellaus/eb"
)

// Format names an output encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{JSON, YAML, MsgPack} }

// ParseFormat resolves a format name (case-insensitive; "yml" and "mp" are
// accepted as aliases).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp":
		return MsgPack, nil
	}
	return "", fmt.Errorf("codec: unknown format %q", s)
}

// Encode writes v (usually an eb.Bundle) in format f. JSON is indented and
// newline-terminated; maps are written with sorted keys in every format.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case JSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("codec: json: %w", err)
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("codec: yaml: %w", err)
		}
		return enc.Close()
	case MsgPack:
		// msgpack treats zero values held in interfaces as empty under
		// omitempty; encoding the JSON tree keeps 0, false and "" defaults.
		tree, err := jsonTree(v)
		if err != nil {
			return fmt.Errorf("codec: msgpack: %w", err)
		}
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("codec: msgpack: %w", err)
		}
		return nil
	}
	return fmt.Errorf("codec: unknown format %q", f)
}

// jsonTree renders v through its JSON encoding so that every format carries
// the same keys.
func jsonTree(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// EncodeBundle is Encode for a bundle, returning the bytes.
func EncodeBundle(b eb.Bundle, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a document in format f into a JSON-like value
// (map[string]any, []any, string, bool, float64, nil). It is the inverse of
// Encode up to number types.
func Decode(r io.Reader, f Format) (any, error) {
	var v any
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("codec: json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("codec: yaml: %w", err)
		}
	case MsgPack:
		if err := msgpack.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("codec: msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("codec: unknown format %q", f)
	}
	return jsonLike(v), nil
}

func jsonLike(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, x := range t {
			t[k] = jsonLike(x)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[fmt.Sprint(k)] = jsonLike(x)
		}
		return out
	case []any:
		for i := range t {
			t[i] = jsonLike(t[i])
		}
		return t
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
	}
	return v
}
