// Package gen renders Go source for component values structs.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	g "github.com/timoconnellaus/eb/dsl"
)

// Field is one struct field of a rendered type.
type Field struct {
	GoName string
	GoType string
	Key    string
	Doc    string
}

// TypeDef is one rendered struct type.
type TypeDef struct {
	Name   string
	Doc    string
	Fields []Field
}

// File is a rendered Go file.
type File struct {
	Package string
	Source  string
	Types   []TypeDef
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by eb gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}
{{range .Types}}
{{if .Doc}}// {{.Doc}}
{{end}}type {{.Name}} struct {
{{- range .Fields}}
	{{if .Doc}}// {{.Doc}}
	{{end}}{{.GoName}} {{.GoType}} ` + "`json:\"{{.Key}}\"`" + `
{{- end}}
}
{{end}}`))

// RenderFile renders f and formats the result with go/format.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: empty package name")
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("gen: template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

// ValuesType builds the values struct for a flattened definition. Field
// order follows the flattened values order.
func ValuesType(name string, fl g.Flattened) TypeDef {
	labels := make(map[string]string, len(fl.Descriptors))
	for _, d := range fl.Descriptors {
		if d.Label != "" {
			labels[d.Prop] = d.Label
		} else {
			labels[d.Prop] = g.Humanize(d.Prop)
		}
	}
	td := TypeDef{Name: name, Doc: name + " holds the resolved prop values."}
	used := map[string]int{}
	for _, vf := range fl.Values {
		gn := exportedName(vf.Name)
		if n := used[gn]; n > 0 {
			used[gn] = n + 1
			gn = fmt.Sprintf("%s%d", gn, n+1)
		} else {
			used[gn] = 1
		}
		td.Fields = append(td.Fields, Field{GoName: gn, GoType: goType(vf), Key: vf.Name, Doc: labels[vf.Name]})
	}
	return td
}

// RenderValues renders a single values struct for fl into package pkg.
func RenderValues(pkg, typeName, source string, fl g.Flattened) ([]byte, error) {
	return RenderFile(File{Package: pkg, Source: source, Types: []TypeDef{ValuesType(typeName, fl)}})
}

func goType(vf g.ValueField) string {
	if vf.Responsive {
		return "any"
	}
	switch vf.Type {
	case "string", "select", "radio-group":
		return "string"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	}
	return "any"
}

// exportedName turns a prop key such as "padding_top" or "bg-color" into
// PaddingTop and BgColor.
func exportedName(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" || unicode.IsDigit(rune(s[0])) {
		s = "F" + s
	}
	return s
}

// TypeName derives an exported type name from a definition id, e.g.
// "hero-banner" becomes HeroBannerValues.
func TypeName(id string) string { return exportedName(id) + "Values" }
