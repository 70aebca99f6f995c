package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cupid_fragments/internal/domain"
)

/********** alias registries (single source of truth) **********/

var propertyAliases = map[string][]string{
	"name":      {"hotel_name", "name", "property_name"},
	"intro":     {"description", "markdown_description", "description_short", "summary"},
	"website":   {"website", "contact.website", "hotel_website", "url"},
	"avatar":    {"main_image_th", "main_image", "logo", "thumbnail"},
	"city":      {"address.city", "city", "locality", "town"},
	"country":   {"address.country", "country", "countryCode", "country_code"},
	"interests": {"themes", "tags", "interests", "hotel_themes"},
	"images":    {"photos", "images"},
	"amenities": {"facilities", "amenities"},
	"room":      {"room_amenities", "amenities", "facilities"},
}

const (
	groupHotel = "Hotel facilities"
	groupRoom  = "Room amenities"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstStr: first non-blank string among paths, trimmed.
func firstStr(m map[string]any, paths ...string) string {
	for _, p := range paths {
		if s, ok := lookupAny(m, p).(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return ""
}

// firstInt64Flexible: int64 from several paths (float64/int/string).
func firstInt64Flexible(m map[string]any, paths ...string) int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int64(v)
		case int:
			return int64(v)
		case int64:
			return v
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

// sliceStrings: accept []any with either strings or {url/src/name}.
func sliceStrings(raw any) []string {
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		switch t := it.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case map[string]any:
			for _, k := range []string{"url", "src", "name"} {
				if s, ok := t[k].(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
					break
				}
			}
		}
	}
	return out
}

func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if out := sliceStrings(lookupAny(m, k)); len(out) > 0 {
			return out
		}
	}
	return nil
}

// normalizeLabels lower-cases amenity names (display casing is a style
// concern) and drops duplicates, keeping first-seen order.
func normalizeLabels(in []string) []string {
	lower := cases.Lower(language.English)
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		l := lower.String(s)
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// blockTags separate words when stripped; inline tags do not.
var blockTags = map[string]struct{}{
	"p": {}, "br": {}, "div": {}, "li": {}, "ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

// plainText strips markup from upstream descriptions; the header intro is
// rendered as escaped text.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	z := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if _, ok := blockTags[string(name)]; ok {
				sb.WriteByte(' ')
			}
		}
	}
}

/********** property mapper **********/

func mapProperty(p map[string]any) domain.Property {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).
			Str("context", "mapProperty").
			Msg("failed to marshal property to JSON")
	}

	facilities := normalizeLabels(firstSliceStrings(p, propertyAliases["amenities"]...))

	var room []string
	if rooms, ok := lookupAny(p, "rooms").([]any); ok {
		for _, r := range rooms {
			if rm, ok := r.(map[string]any); ok {
				room = append(room, firstSliceStrings(rm, propertyAliases["room"]...)...)
			}
		}
	}
	room = normalizeLabels(room)

	var groups []domain.AmenityGroup
	if len(facilities) > 0 {
		groups = append(groups, domain.AmenityGroup{Title: groupHotel, Items: facilities, Capitalize: true})
	}
	if len(room) > 0 {
		groups = append(groups, domain.AmenityGroup{Title: groupRoom, Items: room, Capitalize: true})
	}

	avatar := firstStr(p, propertyAliases["avatar"]...)
	if avatar == "" {
		if imgs := firstSliceStrings(p, propertyAliases["images"]...); len(imgs) > 0 {
			avatar = imgs[0]
		}
	}

	return domain.Property{
		ID:            firstInt64Flexible(p, "hotel_id", "cupid_id", "id"),
		Name:          firstStr(p, propertyAliases["name"]...),
		Intro:         plainText(firstStr(p, propertyAliases["intro"]...)),
		Website:       firstStr(p, propertyAliases["website"]...),
		AvatarSrc:     avatar,
		City:          firstStr(p, propertyAliases["city"]...),
		Country:       firstStr(p, propertyAliases["country"]...),
		Interests:     firstSliceStrings(p, propertyAliases["interests"]...),
		Amenities:     facilities,
		AmenityGroups: groups,
		RawJSON:       raw,
	}
}
