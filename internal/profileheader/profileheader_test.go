package profileheader_test

import (
	"errors"
	"strings"
	"testing"

	"cupid_fragments/internal/profileheader"
	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
	"cupid_fragments/internal/view/htmlrender"
	"cupid_fragments/internal/weburl"
)

func compose(t *testing.T, p profileheader.Profile, opts ...profileheader.Option) *view.Node {
	t.Helper()
	root, err := profileheader.NewComposer(opts...).Compose(p)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if root.Tag != "header" || root.Class != "ProfileHeader" {
		t.Fatalf("unexpected root %s.%s", root.Tag, root.Class)
	}
	return root
}

func TestOnlyName_LeftAligned(t *testing.T) {
	root := compose(t, profileheader.Profile{Name: "Ada", Alignment: style.AlignLeft})

	if len(root.Children) != 1 {
		t.Fatalf("only the flex block expected, got %d children", len(root.Children))
	}
	flex := root.Children[0]
	if s := flex.Style(); s["display"] != "flex" || s["alignItems"] != "center" {
		t.Fatalf("left flex container style: %+v", s)
	}
	if len(flex.Children) != 1 {
		t.Fatalf("no avatar expected, got %d children", len(flex.Children))
	}
	textBox := flex.Children[0]
	if _, ok := textBox.Style()["marginTop"]; ok {
		t.Fatalf("left text container has no top margin: %+v", textBox.Style())
	}
	if len(textBox.Children) != 1 {
		t.Fatalf("only the heading expected, got %d", len(textBox.Children))
	}
	h1 := textBox.Children[0]
	if h1.Tag != "h1" || h1.Text != "Ada" || h1.Style()["lineHeight"] != "1" {
		t.Fatalf("heading: %+v style=%+v", h1, h1.Style())
	}
	if _, ok := root.Style()["textAlign"]; ok {
		t.Fatalf("left header is not centered")
	}
	for _, sel := range []string{"ProfileHeader-avatar", "LocationLabel", "a", "ProfileIntro", "TagList"} {
		if root.Find(sel) != nil {
			t.Fatalf("unexpected %s block", sel)
		}
	}
}

func TestCenterDefaults(t *testing.T) {
	root := compose(t, profileheader.Profile{Name: "Ada"})
	if root.Style()["textAlign"] != "center" {
		t.Fatalf("default alignment should be center: %+v", root.Style())
	}
	if got := root.Children[0].Children[0].Style()["marginTop"]; got != "23px" {
		t.Fatalf("center text container margin: %q", got)
	}
}

func TestFullProfile(t *testing.T) {
	limit := 2
	root := compose(t, profileheader.Profile{
		Name:           "Hotel Lutetia",
		Intro:          "A left bank landmark.",
		Website:        "https://www.example.com/path",
		AvatarSrc:      "/img/a.jpg",
		Location:       "Paris, France",
		Interests:      []string{"art", "food", "jazz"},
		InterestsLimit: &limit,
		Alignment:      style.AlignLeft,
		Style:          style.Fragment{"padding": "12px"},
	})

	if root.Style()["padding"] != "12px" {
		t.Fatalf("caller override should merge last: %+v", root.Style())
	}
	if len(root.Children) != 3 {
		t.Fatalf("flex, intro, tags expected; got %d", len(root.Children))
	}

	img := root.Find("ProfileHeader-avatar")
	if img == nil {
		t.Fatalf("avatar missing")
	}
	if alt, _ := img.Attr("alt"); alt != "Avatar for user Hotel Lutetia" {
		t.Fatalf("avatar alt %q", alt)
	}
	if img.Style()["marginRight"] != "33px" {
		t.Fatalf("left avatar margin: %+v", img.Style())
	}

	textBox := root.Children[0].Children[1]
	var order []string
	for _, c := range textBox.Children {
		order = append(order, c.Tag)
	}
	if strings.Join(order, ",") != "span,h1,p" {
		t.Fatalf("text block order: %v", order)
	}
	if loc := textBox.Children[0]; loc.Text != "Paris, France" || loc.Style()["marginBottom"] != "7px" {
		t.Fatalf("location: %+v %+v", loc, loc.Style())
	}

	site := textBox.Children[2]
	if s := site.Style(); s["marginTop"] != "8px" || s["fontSize"] != "16px" || s["lineHeight"] != "1" {
		t.Fatalf("website style: %+v", s)
	}
	a := site.Children[0]
	if href, _ := a.Attr("href"); href != "https://www.example.com/path" {
		t.Fatalf("href must be the raw website: %q", href)
	}
	if a.Text != "example.com" {
		t.Fatalf("link text: %q", a.Text)
	}
	if rel, _ := a.Attr("rel"); rel != "noopener noreferrer" {
		t.Fatalf("rel: %q", rel)
	}

	intro := root.Children[1]
	s := intro.Style()
	if intro.Text != "A left bank landmark." || s["fontSize"] != "16px" || s["lineHeight"] != "1.5" ||
		s["marginTop"] != "37px" || s["WebkitLineClamp"] != "3" || s["maxHeight"] != "72px" {
		t.Fatalf("intro: %+v", s)
	}

	tags := root.Children[2]
	if tags.Class != "TagList" || tags.Style()["marginTop"] != "31px" || tags.Style()["maxHeight"] != "400px" {
		t.Fatalf("tag list: %+v", tags.Style())
	}
	var texts []string
	for _, c := range tags.Children {
		texts = append(texts, c.Text)
	}
	if strings.Join(texts, ",") != "art,food,+1" {
		t.Fatalf("tags: %v", texts)
	}

	if _, err := htmlrender.String(root); err != nil {
		t.Fatalf("html: %v", err)
	}
}

func TestIntroCenterSize(t *testing.T) {
	root := compose(t, profileheader.Profile{Name: "Ada", Intro: "hi"})
	s := root.Children[1].Style()
	if s["fontSize"] != "14px" || s["lineHeight"] != "1.7142857142857142" {
		t.Fatalf("center intro: %+v", s)
	}
}

func TestInvalidWebsiteOmitted(t *testing.T) {
	root := compose(t, profileheader.Profile{
		Name:      "Ada",
		Website:   "not a url",
		AvatarSrc: "/a.png",
		Location:  "London",
	})
	if root.Find("a") != nil {
		t.Fatalf("invalid website must not render")
	}
	if root.Find("ProfileHeader-avatar") == nil || root.Find("LocationLabel") == nil || root.Find("h1") == nil {
		t.Fatalf("avatar, location and name should still render")
	}
}

func TestHeadlessResolverEmptyHost(t *testing.T) {
	root := compose(t,
		profileheader.Profile{Name: "Ada", Website: "https://www.example.com"},
		profileheader.WithURLResolver(weburl.Headless),
	)
	a := root.Find("a")
	if a == nil {
		t.Fatalf("valid website should still render without a parser")
	}
	if a.Text != "" {
		t.Fatalf("headless host should be empty, got %q", a.Text)
	}
}

type stubTags struct {
	limit *int
	rows  int
}

func (s *stubTags) Tags(items []string, limit *int, rows int) *view.Node {
	s.limit, s.rows = limit, rows
	return view.El("div")
}

func TestTagListerCollaborator(t *testing.T) {
	st := &stubTags{}
	limit := 4
	root := compose(t,
		profileheader.Profile{Name: "Ada", Interests: []string{"a"}, InterestsLimit: &limit},
		profileheader.WithTagLister(st),
	)
	if st.rows != 10 || st.limit == nil || *st.limit != 4 {
		t.Fatalf("tag lister got rows=%d limit=%v", st.rows, st.limit)
	}
	if got := root.Children[1].Style()["marginTop"]; got != "39px" {
		t.Fatalf("center tag list margin: %q", got)
	}
}

func TestComposeErrors(t *testing.T) {
	c := profileheader.NewComposer()
	if _, err := c.Compose(profileheader.Profile{}); !errors.Is(err, profileheader.ErrNameRequired) {
		t.Fatalf("missing name: %v", err)
	}
	if _, err := c.Compose(profileheader.Profile{Name: "Ada", Alignment: "right"}); !errors.Is(err, style.ErrInvalidVariant) {
		t.Fatalf("bad alignment: %v", err)
	}
}

func TestTagList_NoLimit(t *testing.T) {
	ul := profileheader.TagList{}.Tags([]string{"a", "b"}, nil, 2)
	if len(ul.Children) != 2 || ul.Style()["maxHeight"] != "80px" {
		t.Fatalf("unexpected: %d %+v", len(ul.Children), ul.Style())
	}
}
