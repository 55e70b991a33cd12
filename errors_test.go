package eb_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	eb "github.com/timoconnellaus/eb"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := eb.Issues{
		eb.At("/paddingGroup/top").Issue(eb.CodeDuplicateProp, "name", "top"),
		eb.Root().Issue(eb.CodeMissingID),
	}.WithDefinition("banner")
	want := "duplicate_prop at banner/paddingGroup/top; missing_id at banner"
	if got := iss.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	var many eb.Issues
	for i := 0; i < 5; i++ {
		many = eb.AppendIssues(many, eb.Root().Field("x").Index(i).Issue(eb.CodeEmptyName))
	}
	if !strings.HasSuffix(many.Error(), "... (total 5)") {
		t.Fatalf("expected truncated summary, got %q", many.Error())
	}
}

func TestIssues_WithDefinitionKeepsExisting(t *testing.T) {
	it := eb.Root().Issue(eb.CodeDuplicateDefinition)
	it.Definition = "card"
	iss := eb.Issues{it, eb.Root().Issue(eb.CodeMissingID)}.WithDefinition("hero")
	if iss[0].Definition != "card" || iss[1].Definition != "hero" {
		t.Fatalf("unexpected definitions: %+v", iss)
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	err := fmt.Errorf("building: %w", eb.Issues{eb.Root().Issue(eb.CodeNestedGroup)})
	iss, ok := eb.AsIssues(err)
	if !ok || !iss.Has(eb.CodeNestedGroup) {
		t.Fatalf("AsIssues failed: %v %v", iss, ok)
	}
	if _, ok := eb.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error is not Issues")
	}
}

func TestPathRef_Pointer(t *testing.T) {
	if got := eb.Root().Pointer(); got != "/" {
		t.Fatalf("root pointer = %q", got)
	}
	p := eb.Root().Field("a/b").Field("c~d").Index(2)
	if got := p.Pointer(); got != "/a~1b/c~0d/2" {
		t.Fatalf("pointer = %q", got)
	}
	if got := eb.At("/x/defaultValue").Pointer(); got != "/x/defaultValue" {
		t.Fatalf("At pointer = %q", got)
	}
}

func TestPathRef_IssueParams(t *testing.T) {
	it := eb.At("/height/params").Issue(eb.CodeInvalidRange, "min", 10, "max", 1)
	if it.Path != "/height/params" || it.Params["min"] != 10 || it.Params["max"] != 1 {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if it.Message == "" {
		t.Fatalf("message must be resolved")
	}
}
