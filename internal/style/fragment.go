package style

import (
	"sort"
	"strconv"
	"strings"
)

// Fragment is a partial style description keyed by camelCase CSS property
// names. Values already carry their units.
type Fragment map[string]string

func Px(n int) string { return strconv.Itoa(n) + "px" }

func Em(f float64) string { return Num(f) + "em" }

// Num formats f with the shortest representation that round-trips.
func Num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Merge folds fragments left to right; later keys win. Nil fragments are skipped.
func Merge(frags ...Fragment) Fragment {
	out := Fragment{}
	for _, f := range frags {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}

// CSS serializes f as an inline style attribute value, keys sorted.
func CSS(f Fragment) string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(kebab(k))
		sb.WriteByte(':')
		sb.WriteString(f[k])
	}
	return sb.String()
}

// kebab turns fontSize into font-size and WebkitLineClamp into -webkit-line-clamp.
func kebab(k string) string {
	var sb strings.Builder
	for i, r := range k {
		if r >= 'A' && r <= 'Z' {
			if i > 0 || isVendor(k) {
				sb.WriteByte('-')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isVendor(k string) bool {
	for _, p := range []string{"Webkit", "Moz", "Ms", "O"} {
		if strings.HasPrefix(k, p) && len(k) > len(p) && k[len(p)] >= 'A' && k[len(p)] <= 'Z' {
			return true
		}
	}
	return false
}
