// Package manifest loads declarative registry and definition files.
//
// A manifest is YAML, TOML or JSON with the same shape in every format:
// componentTypes, devices, tokens, widgets, types and definitions. Every
// ordered collection is a list, so prop order is the order in the file.
// A prop with nested props is a group.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	ir "github.com/timoconnellaus/eb/internal/ir"
)

// Manifest is the decoded file.
type Manifest = ir.Manifest

// Format names a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("manifest: unsupported extension %q", filepath.Ext(path))
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return m, nil
}

// Decode reads one manifest. Unknown fields are rejected in every format.
// Duplicate keys are reported with their positions in YAML and their object
// pointer in JSON.
func Decode(r io.Reader, f Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m Manifest
	switch f {
	case FormatYAML:
		if err := checkDuplicateKeys(data); err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if k, ok := firstUnknownTOMLKey(md.Undecoded()); ok {
			return nil, fmt.Errorf("decode toml: unknown field %q", k)
		}
	case FormatJSON:
		if err := checkJSONDuplicateKeys(data); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
	normalizeManifest(&m)
	return &m, nil
}

// freeFormFields hold arbitrary values; the toml decoder does not mark keys
// below them as decoded.
var freeFormFields = map[string]bool{"value": true, "default": true}

func firstUnknownTOMLKey(keys []toml.Key) (string, bool) {
	for _, k := range keys {
		free := false
		for _, part := range k[:len(k)-1] {
			if freeFormFields[part] {
				free = true
				break
			}
		}
		if !free {
			return k.String(), true
		}
	}
	return "", false
}
