package dsl_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	eb "github.com/timoconnellaus/eb"
	g "github.com/timoconnellaus/eb/dsl"
)

func f64(v float64) *float64 { return &v }

func names(ds []eb.SchemaProp) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Prop)
	}
	return out
}

func TestFlatten_OrderAndGroupLabel(t *testing.T) {
	s := g.Schema().
		Field("a", g.String()).
		Field("box", g.Group().Label("Box").
			Field("b", g.Number()).
			Field("c", g.Boolean())).
		Field("d", g.String())

	f, err := g.Flatten(s, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, names(f.Descriptors)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	groups := []string{}
	for _, d := range f.Descriptors {
		groups = append(groups, d.Group)
	}
	if diff := cmp.Diff([]string{"", "Box", "Box", ""}, groups); diff != "" {
		t.Fatalf("group labels (-want +got):\n%s", diff)
	}
}

func TestFlatten_GroupLabelDefaultsToHumanizedName(t *testing.T) {
	s := g.Schema().Field("paddingGroup", g.Group().
		Field("top", g.Number()).
		Field("bottom", g.Number()))
	f, err := g.Flatten(s, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range f.Descriptors {
		if d.Group != "Padding Group" {
			t.Fatalf("want group %q, got %q", "Padding Group", d.Group)
		}
	}
}

func TestFlatten_BuildOnlyExcludedFromValues(t *testing.T) {
	s := g.Schema().
		Field("name", g.String().BuildOnly()).
		Field("height", g.Number().DefaultValue(45))
	f, err := g.Flatten(s, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDesc := []eb.SchemaProp{
		{Prop: "name", Type: "string", BuildOnly: true},
		{Prop: "height", Type: "number", DefaultValue: float64(45)},
	}
	if diff := cmp.Diff(wantDesc, f.Descriptors); diff != "" {
		t.Fatalf("descriptors (-want +got):\n%s", diff)
	}
	wantValues := []g.ValueField{{Name: "height", Type: "number"}}
	if diff := cmp.Diff(wantValues, f.Values); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
}

func TestFlatten_DefaultValueKeyPresence(t *testing.T) {
	s := g.Schema().
		Field("withDefault", g.Number().DefaultValue(42)).
		Field("zeroDefault", g.Number().DefaultValue(0)).
		Field("noDefault", g.Number())
	f, err := g.Flatten(s, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		`{"prop":"withDefault","type":"number","defaultValue":42}`,
		`{"prop":"zeroDefault","type":"number","defaultValue":0}`,
		`{"prop":"noDefault","type":"number"}`,
	}
	for i, d := range f.Descriptors {
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != want[i] {
			t.Fatalf("descriptor %d: want %s, got %s", i, want[i], b)
		}
	}
}

func TestFlatten_MinMaxZeroIsKept(t *testing.T) {
	s := g.Schema().Field("n", g.Number().Min(0).Max(10))
	f, err := g.Flatten(s, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &eb.Params{Min: f64(0), Max: f64(10)}
	if diff := cmp.Diff(want, f.Descriptors[0].Params); diff != "" {
		t.Fatalf("params (-want +got):\n%s", diff)
	}
}

func TestFlatten_OptionForms(t *testing.T) {
	list := g.Schema().Field("v", g.Select("a", "b"))
	mapped := g.Schema().Field("v", g.Select().
		Option("a", g.Option().Label("A")).
		Option("b", g.Option().Label("B").Icon("arrow")))

	fl, err := g.Flatten(list, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	fm, err := g.Flatten(mapped, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("mapped: %v", err)
	}
	if diff := cmp.Diff([]eb.Option{{Value: "a", Label: "a"}, {Value: "b", Label: "b"}}, fl.Descriptors[0].Params.Options); diff != "" {
		t.Fatalf("list options (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]eb.Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B", Icon: "arrow"}}, fm.Descriptors[0].Params.Options); diff != "" {
		t.Fatalf("mapped options (-want +got):\n%s", diff)
	}
}

func TestFlatten_DuplicateAcrossGroup(t *testing.T) {
	s := g.Schema().
		Field("x", g.String()).
		Field("grp", g.Group().Field("x", g.Number()))
	_, err := g.Flatten(s, g.FlattenOpt{Definition: "card"})
	iss, ok := eb.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != eb.CodeDuplicateProp {
		t.Fatalf("want one duplicate_prop, got %v", iss)
	}
	if iss[0].Params["name"] != "x" || iss[0].Path != "/grp/x" || iss[0].Definition != "card" {
		t.Fatalf("issue does not locate x: %+v", iss[0])
	}
}

func TestFlatten_ConfigurationErrors(t *testing.T) {
	cases := []struct {
		name string
		s    *g.SchemaBuilder
		code string
		path string
	}{
		{"nested group", g.Schema().Field("outer", g.Group().Field("inner", g.Group().Field("a", g.String()))), eb.CodeNestedGroup, "/outer/inner"},
		{"empty options", g.Schema().Field("s", g.Select()), eb.CodeEmptyOptions, "/s/params"},
		{"duplicate option", g.Schema().Field("s", g.Select("a", "a")), eb.CodeDuplicateOption, "/s/params/options/1"},
		{"select default", g.Schema().Field("s", g.Select("a").DefaultValue("z")), eb.CodeInvalidDefault, "/s/defaultValue"},
		{"range", g.Schema().Field("n", g.Number().Min(5).Max(1)), eb.CodeInvalidRange, "/n/params"},
		{"default out of range", g.Schema().Field("n", g.Number().Min(0).DefaultValue(-1)), eb.CodeInvalidDefault, "/n/defaultValue"},
		{"unknown device", g.Schema().Field("n", g.Number().ResponsiveDefault(eb.Responsive[float64]{"phone": 1})), eb.CodeUnknownDevice, "/n/defaultValue"},
		{"nil prop", g.Schema().Field("n", (*g.StringProp)(nil)), eb.CodeNilProp, "/n"},
		{"empty name", g.Schema().Field("", g.String()), eb.CodeEmptyName, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Flatten(tc.s, g.FlattenOpt{})
			iss, ok := eb.AsIssues(err)
			if !ok || len(iss) == 0 {
				t.Fatalf("expected issues, got %v", err)
			}
			if iss[0].Code != tc.code || iss[0].Path != tc.path {
				t.Fatalf("want %s at %s, got %s at %s", tc.code, tc.path, iss[0].Code, iss[0].Path)
			}
		})
	}
}

func TestFlatten_FailFastStopsAtFirst(t *testing.T) {
	s := g.Schema().
		Field("a", g.Select()).
		Field("b", g.Select())
	_, err := g.Flatten(s, g.FlattenOpt{})
	all, _ := eb.AsIssues(err)
	_, err = g.Flatten(s, g.FlattenOpt{FailFast: true})
	first, _ := eb.AsIssues(err)
	if len(all) != 2 || len(first) != 1 {
		t.Fatalf("want 2 collected and 1 fail-fast, got %d and %d", len(all), len(first))
	}
}

type catalog map[eb.CatalogKind]map[string]bool

func (c catalog) Lookup(kind eb.CatalogKind, key string) (any, bool) {
	ok := c[kind][key]
	return ok, ok
}

func TestFlatten_CatalogReferences(t *testing.T) {
	cat := catalog{
		eb.CatalogType:  {"url": true},
		eb.CatalogToken: {eb.TokenKey("color", "black"): true},
	}
	ok := g.Schema().
		Field("link", g.Custom("url")).
		Field("fg", g.Color().DefaultToken("black"))
	if _, err := g.Flatten(ok, g.FlattenOpt{Catalog: cat}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := g.Schema().
		Field("link", g.Custom("video")).
		Field("fg", g.Color().DefaultToken("pink"))
	_, err := g.Flatten(bad, g.FlattenOpt{Catalog: cat})
	iss, _ := eb.AsIssues(err)
	if !iss.Has(eb.CodeUnknownType) || !iss.Has(eb.CodeUnknownToken) {
		t.Fatalf("want unknown_type and unknown_token, got %v", iss)
	}

	// without a catalog references are not resolved
	if _, err := g.Flatten(bad, g.FlattenOpt{}); err != nil {
		t.Fatalf("no catalog should skip lookups: %v", err)
	}
}

func TestFlatten_ResponsiveDefaultWire(t *testing.T) {
	s := g.Schema().Field("gap", g.Space().ResponsiveDefault(eb.Responsive[string]{"xs": "8", "xl": "16"}))
	f, err := g.Flatten(s, g.FlattenOpt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := json.Marshal(f.Descriptors[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"prop":"gap","type":"space","defaultValue":{"$res":true,"xl":{"tokenId":"16"},"xs":{"tokenId":"8"}},"responsive":true}`
	if string(b) != want {
		t.Fatalf("want %s\n got %s", want, b)
	}
}

func TestFlatten_DescriptorsDoNotAliasBuilders(t *testing.T) {
	sel := g.Select("a")
	s := g.Schema().Field("s", sel)
	f1, _ := g.Flatten(s, g.FlattenOpt{})
	f1.Descriptors[0].Params.Options[0].Label = "mutated"
	f2, _ := g.Flatten(s, g.FlattenOpt{})
	if f2.Descriptors[0].Params.Options[0].Label != "a" {
		t.Fatalf("builder state leaked through a descriptor")
	}
}

func TestMaterialize_NestedDefaultsDoNotAlias(t *testing.T) {
	def := g.Define[map[string]any]("gallery", g.Schema().
		Field("items", g.Custom("list").DefaultValue([]any{"orig", map[string]any{"k": "orig"}})).
		Field("media", g.Custom("media").DefaultValue(map[string]any{"inner": map[string]any{"k": "orig"}})))

	m1 := def.MustMaterialize()
	items := m1.Schema[0].DefaultValue.([]any)
	items[0] = "mutated"
	items[1].(map[string]any)["k"] = "mutated"
	m1.Schema[1].DefaultValue.(map[string]any)["inner"].(map[string]any)["k"] = "mutated"

	m2 := def.MustMaterialize()
	wantItems := []any{"orig", map[string]any{"k": "orig"}}
	if diff := cmp.Diff(wantItems, m2.Schema[0].DefaultValue); diff != "" {
		t.Fatalf("slice default leaked (-want +got):\n%s", diff)
	}
	wantMedia := map[string]any{"inner": map[string]any{"k": "orig"}}
	if diff := cmp.Diff(wantMedia, m2.Schema[1].DefaultValue); diff != "" {
		t.Fatalf("nested map default leaked (-want +got):\n%s", diff)
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"paddingGroup": "Padding Group",
		"URLField":     "URL Field",
		"h1Size":       "H1 Size",
		"title":        "Title",
		"snake_case":   "Snake case",
		"":             "",
	}
	for in, want := range cases {
		if got := g.Humanize(in); got != want {
			t.Fatalf("Humanize(%q): want %q, got %q", in, want, got)
		}
	}
}
