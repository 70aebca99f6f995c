package profileheader

import (
	"strconv"

	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
)

const (
	avatarSize   = 80
	tagRows      = 10
	tagRowHeight = 40
	introLines   = 3
)

func avatar(src, name string, styles []style.Fragment) *view.Node {
	n := view.El("img", append([]style.Fragment{{
		"borderRadius":  "50%",
		"display":       "inline-block",
		"height":        style.Px(avatarSize),
		"objectFit":     "cover",
		"verticalAlign": "middle",
		"width":         style.Px(avatarSize),
	}}, styles...)...)
	n.Class = "ProfileHeader-avatar"
	n.SetAttr("src", src).
		SetAttr("alt", "Avatar for user "+name).
		SetAttr("width", strconv.Itoa(avatarSize)).
		SetAttr("height", strconv.Itoa(avatarSize))
	return n
}

func locationLabel(text string, styles []style.Fragment) *view.Node {
	n := view.El("span", append([]style.Fragment{{
		"color":         style.ColorTextSecondary,
		"display":       "block",
		"fontFamily":    style.FontFamily("benton"),
		"fontSize":      style.Px(style.FontSizeUppercase),
		"fontWeight":    "600",
		"letterSpacing": style.Em(0.04),
		"lineHeight":    style.Num(style.LineHeightReset),
		"textTransform": "uppercase",
	}}, styles...)...)
	n.Class = "LocationLabel"
	n.Text = text
	return n
}

// heading is a level-1, size-5, medium weight heading.
func heading(text string, styles ...style.Fragment) *view.Node {
	n := view.El("h1", append([]style.Fragment{{
		"color":      style.ColorTextPrimary,
		"fontFamily": style.FontFamily("benton"),
		"fontSize":   style.Px(style.FontSizeHeading5),
		"fontWeight": strconv.Itoa(style.FontWeightMedium),
		"margin":     "0",
	}}, styles...)...)
	n.Text = text
	return n
}

// ClampSpec describes how many lines of copy stay visible.
type ClampSpec struct {
	MaxLines   int
	FontSize   int // px
	LineHeight int // px
}

// Clamper truncates a text node to a number of display lines.
type Clamper interface {
	Clamp(n *view.Node, c ClampSpec) *view.Node
}

// LineClamp clamps with -webkit-line-clamp and a max height fallback.
type LineClamp struct{}

func (LineClamp) Clamp(n *view.Node, c ClampSpec) *view.Node {
	n.Styles = append(n.Styles, style.Fragment{
		"WebkitBoxOrient": "vertical",
		"WebkitLineClamp": strconv.Itoa(c.MaxLines),
		"display":         "-webkit-box",
		"fontSize":        style.Px(c.FontSize),
		"maxHeight":       style.Px(c.MaxLines * c.LineHeight),
		"overflow":        "hidden",
	})
	return n
}

// TagLister renders interests as tags. A nil limit shows every tag.
type TagLister interface {
	Tags(items []string, limit *int, rows int) *view.Node
}

// TagList is the default lister: a wrapped row of pill tags, with a "+N"
// tag standing in for anything past the limit.
type TagList struct{}

var (
	tagListBase = style.Fragment{
		"listStyle": "none",
		"margin":    "0",
		"overflow":  "hidden",
		"padding":   "0",
	}
	tagBase = style.Fragment{
		"border":        "1px solid " + style.ColorBorderPrimary,
		"borderRadius":  "16px",
		"color":         style.ColorTextPrimary,
		"display":       "inline-block",
		"fontFamily":    style.FontFamily("benton"),
		"fontSize":      style.Px(style.FontSizeUppercase),
		"lineHeight":    "30px",
		"marginBottom":  "8px",
		"marginRight":   "8px",
		"padding":       "0 12px",
		"textTransform": "capitalize",
	}
)

func (TagList) Tags(items []string, limit *int, rows int) *view.Node {
	ul := view.El("ul", tagListBase, style.Fragment{"maxHeight": style.Px(rows * tagRowHeight)})
	ul.Class = "TagList"

	shown := items
	if limit != nil && *limit >= 0 && *limit < len(items) {
		shown = items[:*limit]
	}
	for _, it := range shown {
		li := view.El("li", tagBase)
		li.Class = "Tag"
		li.Key = it
		li.Text = it
		ul.Append(li)
	}
	if more := len(items) - len(shown); more > 0 {
		li := view.El("li", tagBase)
		li.Class = "Tag Tag--more"
		li.Key = "more"
		li.Text = "+" + strconv.Itoa(more)
		ul.Append(li)
	}
	return ul
}
