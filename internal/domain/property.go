package domain

// Property is the stored profile of a hotel: what the header and the
// amenity list are rendered from. All text is plain, never markup.
type Property struct {
	ID            int64
	Name          string
	Intro         string
	Website       string
	AvatarSrc     string
	City          string
	Country       string
	Interests     []string
	Amenities     []string       // flat list, used by single lists
	AmenityGroups []AmenityGroup // used by grouped lists
	RawJSON       []byte         // full upstream payload
}

type AmenityGroup struct {
	Title      string   `json:"title"`
	Items      []string `json:"items"`
	Capitalize bool     `json:"capitalize,omitempty"`
}

// Location is the display label for the header, e.g. "Paris, France".
func (p Property) Location() string {
	switch {
	case p.City != "" && p.Country != "":
		return p.City + ", " + p.Country
	case p.City != "":
		return p.City
	default:
		return p.Country
	}
}

// Fragment is a rendered HTML block plus its weak ETag.
type Fragment struct {
	HTML string `json:"html"`
	ETag string `json:"etag"`
}
