package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	eb "github.com/timoconnellaus/eb"
	"github.com/timoconnellaus/eb/codec"
	g "github.com/timoconnellaus/eb/dsl"
	"github.com/timoconnellaus/eb/registry"
)

func sampleBundle(t *testing.T) eb.Bundle {
	t.Helper()
	cfg := registry.New().
		Tokens(registry.ColorTokens().Add("black", registry.Token("#000")).Default("black")).
		MustBuild()
	def := g.Define[map[string]any]("banner", g.Schema().
		Field("name", g.String().BuildOnly().Normalize(strings.TrimSpace)).
		Field("height", g.Number().DefaultValue(45).Min(0)).
		Field("bg", g.Color().DefaultToken("black")).
		Field("offset", g.Number().DefaultValue(0).Min(0)).
		Field("rounded", g.Boolean().DefaultValue(false)).
		Field("caption", g.String().DefaultValue("")).
		Field("style", g.Group().
			Field("align", g.Select("left", "right").DefaultValue("left"))))
	b, err := cfg.Bundle(def)
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	return b
}

func TestEncode_AllFormatsDecodeToSameShape(t *testing.T) {
	b := sampleBundle(t)
	var want any
	for i, f := range codec.Formats() {
		var buf bytes.Buffer
		if err := codec.Encode(&buf, b, f); err != nil {
			t.Fatalf("%s encode: %v", f, err)
		}
		got, err := codec.Decode(&buf, f)
		if err != nil {
			t.Fatalf("%s decode: %v", f, err)
		}
		if i == 0 {
			want = got
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s differs from json (-json +%s):\n%s", f, f, diff)
		}
	}
}

func TestEncode_KeepsZeroDefaults(t *testing.T) {
	b := sampleBundle(t)
	want := map[string]any{"offset": 0.0, "rounded": false, "caption": ""}
	for _, f := range codec.Formats() {
		out, err := codec.EncodeBundle(b, f)
		if err != nil {
			t.Fatalf("%s encode: %v", f, err)
		}
		v, err := codec.Decode(bytes.NewReader(out), f)
		if err != nil {
			t.Fatalf("%s decode: %v", f, err)
		}
		comps := v.(map[string]any)["components"].([]any)
		schema := comps[0].(map[string]any)["schema"].([]any)
		got := map[string]any{}
		for _, p := range schema {
			d := p.(map[string]any)
			if _, ok := want[d["prop"].(string)]; !ok {
				continue
			}
			dv, ok := d["defaultValue"]
			if !ok {
				t.Fatalf("%s: %s lost its defaultValue: %v", f, d["prop"], d)
			}
			got[d["prop"].(string)] = dv
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s zero defaults (-want +got):\n%s", f, diff)
		}
	}
}

func TestEncode_JSONWireKeys(t *testing.T) {
	out, err := codec.EncodeBundle(sampleBundle(t), codec.JSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(out)
	for _, want := range []string{`"prop": "height"`, `"defaultValue": 45`, `"buildOnly": true`, `"group": "Style"`, `"tokenId": "black"`, `"min": 0`} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %s in:\n%s", want, s)
		}
	}
	if strings.Contains(s, `"defaultValue": null`) {
		t.Fatalf("absent defaults must be omitted, not null")
	}
	if strings.Contains(s, "ormalize") {
		t.Fatalf("normalize function must not be serialized")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]codec.Format{"": codec.JSON, "YML": codec.YAML, "mp": codec.MsgPack, "msgpack": codec.MsgPack}
	for in, want := range cases {
		got, err := codec.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := codec.ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}
