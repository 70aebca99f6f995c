package profileheader

import "cupid_fragments/internal/style"

type alignTable = style.Table[style.Alignment]

func byAlign(center, left style.Fragment) map[style.Alignment][]style.Fragment {
	return map[style.Alignment][]style.Fragment{
		style.AlignCenter: {center},
		style.AlignLeft:   {left},
	}
}

// paragraphLineHeight is the pixel line height intro copy is clamped against.
const paragraphLineHeight = 24

var (
	headerStyles = alignTable{Variants: byAlign(
		style.Fragment{"textAlign": "center"},
		style.Fragment{},
	)}

	flexContainerStyles = alignTable{Variants: byAlign(
		style.Fragment{},
		style.Fragment{"display": "flex", "alignItems": "center"},
	)}

	avatarStyles = alignTable{Variants: byAlign(
		style.Fragment{},
		style.Fragment{"marginRight": "33px"},
	)}

	textContainerStyles = alignTable{Variants: byAlign(
		style.Fragment{"marginTop": "23px"},
		style.Fragment{},
	)}

	locationLabelStyles = alignTable{Variants: byAlign(
		style.Fragment{"marginBottom": "10px"},
		style.Fragment{"marginBottom": "7px"},
	)}

	websiteStyles = alignTable{
		Default: []style.Fragment{{
			"fontSize":   style.Px(style.FontSizeHeading7),
			"lineHeight": style.Num(style.LineHeightReset),
		}},
		Variants: byAlign(
			style.Fragment{"marginTop": "6px"},
			style.Fragment{"marginTop": "8px"},
		),
	}

	introStyles = alignTable{
		Default: []style.Fragment{{"marginTop": "37px"}},
		Variants: byAlign(
			style.Fragment{"lineHeight": style.Num(float64(paragraphLineHeight) / style.FontSizeBodySmall)},
			style.Fragment{
				"fontSize":   style.Px(style.FontSizeHeading7),
				"lineHeight": style.Num(style.LineHeightHeading7),
			},
		),
	}

	tagListStyles = alignTable{Variants: byAlign(
		style.Fragment{"marginTop": "39px"},
		style.Fragment{"marginTop": "31px"},
	)}

	headingStyle = style.Fragment{"lineHeight": style.Num(style.LineHeightReset)}

	textBodySmall = style.Merge(style.Fragment{
		"color":        style.ColorTextPrimary,
		"marginBottom": "0",
		"marginTop":    "0",
	}, style.TextBodySmall())
)

// introFontSize is the pixel size intro copy is set in for an alignment.
var introFontSize = map[style.Alignment]int{
	style.AlignCenter: style.FontSizeBodySmall,
	style.AlignLeft:   style.FontSizeHeading7,
}
