package eb

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicateProp        = "duplicate_prop"
	CodeNestedGroup          = "nested_group"
	CodeNilProp              = "nil_prop"
	CodeNilEntry             = "nil_entry"
	CodeEmptyName            = "empty_name"
	CodeEmptyOptions         = "empty_options"
	CodeDuplicateOption      = "duplicate_option"
	CodeInvalidRange         = "invalid_range"
	CodeInvalidDefault       = "invalid_default"
	CodeUnknownType          = "unknown_type"
	CodeUnknownToken         = "unknown_token"
	CodeUnknownWidget        = "unknown_widget"
	CodeUnknownDevice        = "unknown_device"
	CodeUnknownComponentType = "unknown_component_type"
	CodeMissingID            = "missing_id"
	CodeDuplicateDefinition  = "duplicate_definition"
	CodeDuplicateDefault     = "duplicate_default"
	CodeDuplicateKey         = "duplicate_key"
	CodeInvalidToken         = "invalid_token"
	CodeValueShape           = "value_shape"
	// Manifest loading
	CodeInvalidManifest = "invalid_manifest"
)

// Issue is a single configuration error found while building or flattening.
type Issue struct {
	Definition string // Definition id, empty for registry-level issues.
	Path       string // Pointer-like location, e.g. /paddingGroup/top.
	Code       string // One of the codes listed above.
	Message    string
	Hint       string // Optional: remediation hint.
	// Params carries structured parameters (e.g., {"min":10, "max":1}) for i18n
	// and tooling.
	Params map[string]any
}

// Location renders the definition id and path as one string.
func (it Issue) Location() string {
	switch {
	case it.Definition == "":
		return it.Path
	case it.Path == "" || it.Path == "/":
		return it.Definition
	default:
		return it.Definition + it.Path
	}
}

// Issues is a collection of configuration errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_prop at banner/paddingGroup/top
		fmt.Fprintf(b, "%s at %s", it.Code, it.Location())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// WithDefinition returns a copy with Definition set on every issue that has none.
func (iss Issues) WithDefinition(id string) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Definition == "" {
			it.Definition = id
		}
		out[i] = it
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
