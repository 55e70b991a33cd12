package dsl

import (
	"reflect"

	eb "github.com/timoconnellaus/eb"
	js "github.com/timoconnellaus/eb/jsonschema"
)

// CheckValueShape compares the exported fields of struct V (keys resolved with
// eb.ResolveStructKey) with the values shape of f. Missing keys, extra keys
// and scalar kind mismatches are reported as value_shape issues. Map and
// interface types of V are accepted as-is.
func CheckValueShape[V any](f Flattened) error {
	rt := reflect.TypeOf((*V)(nil)).Elem()
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	fields := map[string]reflect.Type{}
	var order []string
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := eb.ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		fields[key] = sf.Type
		order = append(order, key)
	}
	var iss eb.Issues
	want := map[string]bool{}
	for _, vf := range f.Values {
		want[vf.Name] = true
		at := eb.Root().Field(vf.Name)
		ft, ok := fields[vf.Name]
		if !ok {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeValueShape, "name", vf.Name, "reason", "missing"))
			continue
		}
		if !kindFits(vf, ft) {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeValueShape, "name", vf.Name, "reason", "kind", "got", ft.String()))
		}
	}
	for _, k := range order {
		if !want[k] {
			iss = eb.AppendIssues(iss, eb.Root().Field(k).Issue(eb.CodeValueShape, "name", k, "reason", "extra"))
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func kindFits(vf ValueField, t reflect.Type) bool {
	k := t.Kind()
	if k == reflect.Interface {
		return true
	}
	if vf.Responsive && k == reflect.Map {
		return true
	}
	switch vf.Type {
	case "string", "select", "radio-group":
		return k == reflect.String
	case "number":
		switch k {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	case "boolean":
		return k == reflect.Bool
	}
	// token, custom and component values are opaque
	return true
}

// ValuesSchema exports the values shape of f as a JSON Schema object. Every
// field is required: the renderer fills defaults before calling styles.
func ValuesSchema(f Flattened) *js.Schema {
	byName := make(map[string]eb.SchemaProp, len(f.Descriptors))
	for _, d := range f.Descriptors {
		byName[d.Prop] = d
	}
	root := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}, AdditionalProperties: false}
	for _, vf := range f.Values {
		d := byName[vf.Name]
		s := scalarSchema(d)
		if vf.Responsive {
			perDevice := &js.Schema{
				Type:                 "object",
				Properties:           map[string]*js.Schema{eb.ResponsiveMarker: {Type: "boolean"}},
				AdditionalProperties: false,
			}
			for _, bp := range eb.Breakpoints() {
				perDevice.Properties[bp] = scalarSchema(d)
			}
			s = &js.Schema{OneOf: []*js.Schema{s, perDevice}}
		}
		s.Title = d.Label
		s.Description = d.Description
		root.Properties[vf.Name] = s
		root.Required = append(root.Required, vf.Name)
	}
	return root
}

func scalarSchema(d eb.SchemaProp) *js.Schema {
	s := &js.Schema{}
	switch d.Type {
	case "string":
		s.Type = "string"
	case "number":
		s.Type = "number"
		if d.Params != nil {
			s.Minimum, s.Maximum = d.Params.Min, d.Params.Max
		}
	case "boolean":
		s.Type = "boolean"
	case "select", "radio-group":
		s.Type = "string"
		if d.Params != nil {
			for _, o := range d.Params.Options {
				s.Enum = append(s.Enum, o.Value)
			}
		}
	}
	if !d.Responsive && d.DefaultValue != nil {
		s.Default = d.DefaultValue
	}
	return s
}
