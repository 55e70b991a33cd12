package dsl

import (
	"strings"
	"unicode"
)

// Humanize turns a camel case field name into a spaced, capitalized label:
// paddingGroup -> "Padding Group", URLField -> "URL Field".
func Humanize(name string) string {
	rs := []rune(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	out := []rune(strings.Join(strings.Fields(b.String()), " "))
	if len(out) == 0 {
		return ""
	}
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}
