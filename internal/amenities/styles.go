package amenities

import "cupid_fragments/internal/style"

const baseFontSize = 13

var (
	containerBase = style.Fragment{
		"fontFamily": style.FontFamily("benton"),
		"fontSize":   style.Px(baseFontSize),
		"lineHeight": style.Num(24.0 / baseFontSize),
	}

	listBase = style.Fragment{
		"listStyle":    "none",
		"marginTop":    "0",
		"marginRight":  "0",
		"marginBottom": "0",
		"marginLeft":   "0",
		"padding":      "0",
	}

	// brings the top of the text 30px from the section header
	listSingle = style.Fragment{"marginTop": style.Em(-5.0 / baseFontSize)}

	// cancels the bottom margin of the last grouped item
	listGrouped = style.Fragment{"marginBottom": style.Em(-23.0 / baseFontSize)}

	itemBase = style.Fragment{"color": style.ColorTextPrimary}

	itemGroupedBase = style.Fragment{
		"WebkitColumnBreakInside": "avoid",
		"pageBreakInside":         "avoid",
		"breakInside":             "avoid",
		"display":                 "inline-block",
		"marginBottom":            style.Em(23.0 / baseFontSize),
		"width":                   "100%",
	}

	headingBase = style.Fragment{
		"color":      style.ColorTextPrimary,
		"fontSize":   style.Em(14.0 / baseFontSize),
		"fontWeight": "600",
		"lineHeight": style.Num(24.0 / 14),
		"margin":     "0",
	}

	capitalized = style.Fragment{"textTransform": "capitalize"}
)

// listStyles is the outer list container, keyed by list mode.
// Grouped mode is single mode plus an offset correction.
var listStyles = style.Table[style.ListType]{
	Default: []style.Fragment{listBase},
	Variants: map[style.ListType][]style.Fragment{
		style.ListSingle:  {listSingle},
		style.ListGrouped: {listSingle, listGrouped},
	},
}

// Styles exposes the static tables for documentation and tests.
var Styles = struct {
	Container, ListBase, ListSingle, ListGrouped style.Fragment
	Item, ItemGrouped, Heading, Capitalize       style.Fragment
}{
	containerBase, listBase, listSingle, listGrouped,
	itemBase, itemGroupedBase, headingBase, capitalized,
}
