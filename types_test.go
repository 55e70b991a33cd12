package eb_test

import (
	"reflect"
	"testing"

	eb "github.com/timoconnellaus/eb"
)

func TestResponsive_Wire(t *testing.T) {
	r := eb.Responsive[string]{"xs": "8", "xl": "16"}
	w := r.Wire()
	if w[eb.ResponsiveMarker] != true || w["xs"] != "8" || w["xl"] != "16" || len(w) != 3 {
		t.Fatalf("unexpected wire: %v", w)
	}
	if _, ok := r[eb.ResponsiveMarker]; ok {
		t.Fatalf("Wire must not modify the receiver")
	}
}

func TestResponsive_UnknownDevices(t *testing.T) {
	r := eb.Responsive[int]{"xs": 1, "tablet": 2, "desktop": 3, "2xl": 4}
	if got := r.UnknownDevices(); !reflect.DeepEqual(got, []string{"desktop", "tablet"}) {
		t.Fatalf("UnknownDevices = %v", got)
	}
}

func TestSchemaProp_CloneDoesNotAlias(t *testing.T) {
	lo := 0.0
	p := eb.SchemaProp{
		Prop:         "gap",
		Accepts:      []string{"card"},
		DefaultValue: map[string]any{"xs": 1.0},
		Params:       &eb.Params{Min: &lo, Options: []eb.Option{{Value: "a"}}},
	}
	c := p.Clone()
	*c.Params.Min = 5
	c.Params.Options[0].Value = "b"
	c.Accepts[0] = "x"
	c.DefaultValue.(map[string]any)["xs"] = 2.0
	if *p.Params.Min != 0 || p.Params.Options[0].Value != "a" || p.Accepts[0] != "card" || p.DefaultValue.(map[string]any)["xs"] != 1.0 {
		t.Fatalf("clone aliases the original: %+v", p)
	}
}

func TestBreakpoints(t *testing.T) {
	bps := eb.Breakpoints()
	if !reflect.DeepEqual(bps, []string{"xs", "sm", "md", "lg", "xl", "2xl"}) {
		t.Fatalf("Breakpoints = %v", bps)
	}
	bps[0] = "zz"
	if !eb.IsBreakpoint("xs") || eb.IsBreakpoint("zz") {
		t.Fatalf("Breakpoints must return a copy")
	}
}

func TestResolveStructKey(t *testing.T) {
	type v struct {
		A string `eb:"name=alpha" json:"a"`
		B string `json:"b,omitempty"`
		C string `json:",omitempty"`
		D string `json:"-"`
		E string
	}
	rt := reflect.TypeOf(v{})
	want := []string{"alpha", "b", "C", "-", "E"}
	for i, w := range want {
		if got := eb.ResolveStructKey(rt.Field(i)); got != w {
			t.Fatalf("field %d: got %q want %q", i, got, w)
		}
	}
}
