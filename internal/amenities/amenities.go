// Package amenities renders a flat or grouped amenity list.
package amenities

import (
	"errors"
	"fmt"
	"strconv"

	"cupid_fragments/internal/grid"
	"cupid_fragments/internal/qahook"
	"cupid_fragments/internal/style"
	"cupid_fragments/internal/view"
)

// ErrMixedItems means the items supplied do not match the list type.
var ErrMixedItems = errors.New("amenities: items do not match list type")

type Group struct {
	Title      string        `json:"title" yaml:"title"`
	Items      []view.Markup `json:"items" yaml:"items"`
	Capitalize bool          `json:"capitalize,omitempty" yaml:"capitalize,omitempty"`
}

// Props configures one render. Single lists read Items; grouped lists read Groups.
type Props struct {
	Columns  style.Columns
	ListType style.ListType
	QAHook   bool
	Items    []view.Markup
	Groups   []Group
}

type Renderer struct {
	grid grid.Spanner
}

func New(sp grid.Spanner) *Renderer {
	if sp == nil {
		sp = grid.DefaultSettings()
	}
	return &Renderer{grid: sp}
}

func (r *Renderer) Render(p Props) (*view.Node, error) {
	if p.Columns == 0 {
		p.Columns = 1
	}
	if p.ListType == "" {
		p.ListType = style.ListSingle
	}
	if !p.Columns.Valid() {
		return nil, fmt.Errorf("%w: columns %d", style.ErrInvalidVariant, p.Columns)
	}

	listStyle, err := style.Resolve(listStyles, p.ListType)
	if err != nil {
		return nil, err
	}
	cols, ok, err := grid.ColumnStyle(p.Columns, r.grid)
	if err != nil {
		return nil, err
	}
	if ok {
		listStyle = append(listStyle, cols)
	}

	var list *view.Node
	switch p.ListType {
	case style.ListSingle:
		if len(p.Groups) > 0 {
			return nil, fmt.Errorf("%w: single list given %d groups", ErrMixedItems, len(p.Groups))
		}
		list = view.El("ul", listStyle...)
		list.Append(listItems(p.Items, false, p.QAHook)...)
	case style.ListGrouped:
		if len(p.Items) > 0 {
			return nil, fmt.Errorf("%w: grouped list given %d flat items", ErrMixedItems, len(p.Items))
		}
		list = view.El("div", listStyle...)
		list.Append(groupedItems(p.Groups, p.QAHook)...)
	}
	list.Class = "Amenities-list"

	root := view.El("div", containerBase)
	root.Class = "Amenities"
	return root.Append(list), nil
}

func listItems(items []view.Markup, capitalize, hooks bool) []*view.Node {
	out := make([]*view.Node, 0, len(items))
	for i, item := range items {
		li := view.El("li", itemBase)
		if capitalize {
			li.Styles = append(li.Styles, capitalized)
		}
		li.Key = strconv.Itoa(i)
		li.Markup = item
		if hooks {
			label := fmt.Sprintf("list-item-%d", i)
			li.SetAttr("data-testid", qahook.New(label, label, "li"))
		}
		out = append(out, li)
	}
	return out
}

func groupedItems(groups []Group, hooks bool) []*view.Node {
	out := make([]*view.Node, 0, len(groups))
	for i, g := range groups {
		heading := view.El("h5", headingBase)
		heading.Text = g.Title

		ul := view.El("ul", listBase)
		// nested items always carry hooks; their context is the grouped list
		ul.Append(listItems(g.Items, g.Capitalize, true)...)

		if hooks {
			heading.SetAttr("data-testid", qahook.New(g.Title, "group-title", "header"))
			ul.SetAttr("data-testid", "amenities-list")
		}

		div := view.El("div", itemGroupedBase)
		div.Key = strconv.Itoa(i)
		out = append(out, div.Append(heading, ul))
	}
	return out
}
