// Package qahook builds the data-testid values test tooling uses to find nodes.
package qahook

import "strings"

// New returns "qa-<context>-<label>-<kind>" with every part slugged.
// A label equal to its context is only written once.
func New(label, context, kind string) string {
	parts := []string{"qa", slug(context)}
	if l := slug(label); l != parts[1] {
		parts = append(parts, l)
	}
	parts = append(parts, slug(kind))

	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "-")
}

func slug(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
