package style

// Static design tokens shared by the fragments. Never written after init.

const (
	ColorTextPrimary   = "#2a2a2a"
	ColorTextSecondary = "#707070"
	ColorBorderPrimary = "#e6e6e6"
)

const (
	FontSizeHeading5  = 24
	FontSizeHeading7  = 16
	FontSizeBodySmall = 14
	FontSizeUppercase = 12

	LineHeightHeading7  = 1.5
	LineHeightReset     = 1.0
	LineHeightBodySmall = 24.0 / FontSizeBodySmall

	FontWeightMedium = 500
)

var fontStacks = map[string]string{
	"benton": `"Benton Sans", -apple-system, BlinkMacSystemFont, "Helvetica Neue", Arial, sans-serif`,
	"miller": `"Miller Daily", Georgia, "Times New Roman", serif`,
}

const systemStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif`

// FontFamily looks up a named font stack; unknown names get the system stack.
func FontFamily(name string) string {
	if s, ok := fontStacks[name]; ok {
		return s
	}
	return systemStack
}

// TextBodySmall is the small body copy preset.
func TextBodySmall() Fragment {
	return Fragment{
		"fontFamily": FontFamily("benton"),
		"fontSize":   Px(FontSizeBodySmall),
		"lineHeight": Num(LineHeightBodySmall),
	}
}
