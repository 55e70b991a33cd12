package manifest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	eb "github.com/timoconnellaus/eb"
	"github.com/timoconnellaus/eb/manifest"
)

func loadBundle(t *testing.T, path string) eb.Bundle {
	t.Helper()
	res, err := manifest.LoadAndBuild(path)
	require.NoError(t, err)
	b, err := res.Bundle()
	require.NoError(t, err)
	return b
}

func TestLoad_FormatsAgree(t *testing.T) {
	y := loadBundle(t, "testdata/site.yaml")
	tm := loadBundle(t, "testdata/site.toml")
	js := loadBundle(t, "testdata/site.json")
	if diff := cmp.Diff(y, tm); diff != "" {
		t.Fatalf("yaml vs toml (-yaml +toml):\n%s", diff)
	}
	if diff := cmp.Diff(y, js); diff != "" {
		t.Fatalf("yaml vs json (-yaml +json):\n%s", diff)
	}
}

func TestLoad_BundleContent(t *testing.T) {
	b := loadBundle(t, "testdata/site.yaml")

	require.Len(t, b.Components, 2)
	banner := b.Components[0]
	require.Equal(t, "banner", banner.ID)
	require.Equal(t, []string{"section"}, banner.Type)

	var order []string
	for _, p := range banner.Schema {
		order = append(order, p.Prop)
	}
	require.Equal(t, []string{"name", "height", "top", "bottom", "align", "link", "cards"}, order)
	require.Equal(t, "Padding Group", banner.Schema[2].Group)
	require.Equal(t, eb.TokenRef{TokenID: "8"}, banner.Schema[2].DefaultValue)
	require.Equal(t, float64(45), banner.Schema[1].DefaultValue)
	require.Equal(t, 0.0, *banner.Schema[1].Params.Min)

	card := b.Components[1]
	require.Equal(t, false, card.Schema[1].DefaultValue, "false defaults are kept")
	require.Equal(t, []eb.Option{{Value: "s", Label: "Small"}, {Value: "l", Label: "Large", Icon: "large"}}, card.Schema[2].Params.Options)

	var main string
	for _, d := range b.Devices {
		if d.IsMain {
			main = d.ID
		}
		if d.ID == "sm" {
			require.False(t, d.Hidden)
		}
		if d.ID == "xl" {
			require.Equal(t, "Laptop", d.Label)
		}
	}
	require.Equal(t, "md", main)
	require.True(t, b.Tokens["color"][0].IsDefault)
	require.Equal(t, "https://example.com", b.Types["url"].DefaultValue)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	cases := map[manifest.Format]string{
		manifest.FormatYAML: "definitions:\n  - id: a\n    colour: red\n    props: []\n",
		manifest.FormatTOML: "[[definitions]]\nid = \"a\"\ncolour = \"red\"\n",
		manifest.FormatJSON: `{"definitions":[{"id":"a","colour":"red","props":[]}]}`,
	}
	for f, src := range cases {
		_, err := manifest.Decode(strings.NewReader(src), f)
		require.Error(t, err, "format %s", f)
	}
}

func TestDecode_TOMLFreeFormValues(t *testing.T) {
	src := "[[tokens]]\nname = \"font\"\n[[tokens.tokens]]\nid = \"body\"\nvalue = { fontFamily = \"Inter\", fontSize = 16, lineHeight = 1.2 }\n"
	m, err := manifest.Decode(strings.NewReader(src), manifest.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"fontFamily": "Inter", "fontSize": 16.0, "lineHeight": 1.2}, m.Tokens[0].Tokens[0].Value)
}

func TestDecode_DuplicateYAMLKey(t *testing.T) {
	src := "definitions:\n  - id: a\n    id: b\n"
	_, err := manifest.Decode(strings.NewReader(src), manifest.FormatYAML)
	var dup *manifest.DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	require.Equal(t, "id", dup.Key)
	require.Equal(t, 2, dup.FirstLine)
	require.Equal(t, 3, dup.Line)
}

func TestDecode_DuplicateJSONKey(t *testing.T) {
	src := `{"definitions":[{"id":"a","props":[{"name":"x","type":"string","type":"number"}]}]}`
	_, err := manifest.Decode(strings.NewReader(src), manifest.FormatJSON)
	var dup *manifest.DuplicateJSONKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	require.Equal(t, "type", dup.Key)
	require.Equal(t, "/definitions/0/props/0", dup.Pointer)

	_, err = manifest.Decode(strings.NewReader(`{"definitions":[{"id":"a"},{"id":"b"}]}`), manifest.FormatJSON)
	require.NoError(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := manifest.FormatFromPath("x/site.YML")
	require.NoError(t, err)
	require.Equal(t, manifest.FormatYAML, f)
	_, err = manifest.FormatFromPath("site.ini")
	require.Error(t, err)
}

func TestBuild_CollectsIssues(t *testing.T) {
	src := `
widgets:
  - key: w
    kind: sideways
types:
  - key: t
    kind: inline
    widget: missing
definitions:
  - id: a
    props:
      - name: n
        type: number
        default: ten
`
	m, err := manifest.Decode(strings.NewReader(src), manifest.FormatYAML)
	require.NoError(t, err)
	_, err = manifest.Build(m)
	iss, ok := eb.AsIssues(err)
	require.True(t, ok)
	require.True(t, iss.Has(eb.CodeInvalidManifest))
	require.True(t, iss.Has(eb.CodeUnknownWidget))
	require.True(t, iss.Has(eb.CodeInvalidDefault))
	for _, it := range iss {
		if it.Code == eb.CodeInvalidDefault {
			require.Equal(t, "a", it.Definition)
			require.Equal(t, "/n/default", it.Path)
		}
	}
}

func TestResult_BundleReportsFlattenErrors(t *testing.T) {
	src := `
definitions:
  - id: a
    props:
      - name: x
        type: string
      - name: grp
        props:
          - name: x
            type: number
`
	m, err := manifest.Decode(strings.NewReader(src), manifest.FormatYAML)
	require.NoError(t, err)
	res, err := manifest.Build(m)
	require.NoError(t, err)
	_, ok := res.Definition("a")
	require.True(t, ok)
	_, err = res.Bundle()
	iss, _ := eb.AsIssues(err)
	require.True(t, iss.Has(eb.CodeDuplicateProp))
}
