// Package profileheader composes the profile header block: avatar, location,
// name, website, intro and interests, laid out centered or left aligned.
package profileheader

import (
	"errors"
	"fmt"

	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
	"cupid_fragments/internal/weburl"
)

var ErrNameRequired = errors.New("profileheader: name is required")

type Profile struct {
	Name           string          `json:"name" yaml:"name"`
	Intro          string          `json:"intro,omitempty" yaml:"intro,omitempty"`
	Website        string          `json:"website,omitempty" yaml:"website,omitempty"`
	AvatarSrc      string          `json:"avatarSrc,omitempty" yaml:"avatarSrc,omitempty"`
	Location       string          `json:"location,omitempty" yaml:"location,omitempty"`
	Interests      []string        `json:"interests,omitempty" yaml:"interests,omitempty"`
	InterestsLimit *int            `json:"interestsLimit,omitempty" yaml:"interestsLimit,omitempty"`
	Alignment      style.Alignment `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Style          style.Fragment  `json:"style,omitempty" yaml:"style,omitempty"`
}

type Composer struct {
	clamp Clamper
	tags  TagLister
	urls  weburl.Resolver
}

type Option func(*Composer)

func WithClamper(c Clamper) Option { return func(cp *Composer) { cp.clamp = c } }
func WithTagLister(t TagLister) Option { return func(cp *Composer) { cp.tags = t } }
func WithURLResolver(r weburl.Resolver) Option { return func(cp *Composer) { cp.urls = r } }

func NewComposer(opts ...Option) *Composer {
	c := &Composer{clamp: LineClamp{}, tags: TagList{}, urls: weburl.Default}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Compose builds the header tree. Blocks appear only when their input is
// present; the order avatar/location/name/website, intro, tags is fixed.
func (c *Composer) Compose(p Profile) (*view.Node, error) {
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	align, err := style.ParseAlignment(string(p.Alignment))
	if err != nil {
		return nil, err
	}

	var r resolver
	hdr := r.get(headerStyles, align)
	flex := r.get(flexContainerStyles, align)
	av := r.get(avatarStyles, align)
	text := r.get(textContainerStyles, align)
	loc := r.get(locationLabelStyles, align)
	site := r.get(websiteStyles, align)
	intro := r.get(introStyles, align)
	tags := r.get(tagListStyles, align)
	if r.err != nil {
		return nil, r.err
	}

	root := view.El("header", append(hdr, p.Style)...)
	root.Class = "ProfileHeader"

	textBox := view.El("div", text...)
	if p.Location != "" {
		textBox.Append(locationLabel(p.Location, loc))
	}
	if p.Name != "" {
		textBox.Append(heading(p.Name, headingStyle))
	}
	if p.Website != "" && weburl.IsValid(p.Website) {
		textBox.Append(c.website(p.Website, site))
	}

	flexBox := view.El("div", flex...)
	if p.AvatarSrc != "" {
		flexBox.Append(avatar(p.AvatarSrc, p.Name, av))
	}
	root.Append(flexBox.Append(textBox))

	if p.Intro != "" {
		para := view.El("p", append([]style.Fragment{textBodySmall}, intro...)...)
		para.Class = "ProfileIntro"
		para.Text = p.Intro
		root.Append(c.clamp.Clamp(para, ClampSpec{
			MaxLines:   introLines,
			FontSize:   introFontSize[align],
			LineHeight: paragraphLineHeight,
		}))
	}

	if len(p.Interests) > 0 {
		list := c.tags.Tags(p.Interests, p.InterestsLimit, tagRows)
		list.Styles = append(list.Styles, tags...)
		root.Append(list)
	}
	return root, nil
}

func (c *Composer) website(raw string, styles []style.Fragment) *view.Node {
	// a missing URL parser leaves the link text empty rather than failing
	host, _ := c.urls.Hostname(raw)

	a := view.El("a")
	a.SetAttr("href", raw).
		SetAttr("target", "_blank").
		SetAttr("rel", "noopener noreferrer")
	a.Text = host

	return view.El("p", append([]style.Fragment{textBodySmall}, styles...)...).Append(a)
}

// resolver keeps the first resolution error so Compose can check once.
type resolver struct{ err error }

func (r *resolver) get(t style.Table[style.Alignment], a style.Alignment) []style.Fragment {
	out, err := style.Resolve(t, a)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("profileheader: %w", err)
	}
	return out
}
