package grid

import (
	"fmt"

	"cupid_fragments/internal/style"
)

// ColumnGap is the fixed gap between CSS columns.
var ColumnGap = style.Em(24.0 / 13)

// Ratio is the share of the grid one column occupies, e.g. "3 of 6" for two columns.
func Ratio(columns style.Columns) string {
	return fmt.Sprintf("%d of %d", Slots/int(columns), Slots)
}

// ColumnStyle returns the multi-column fragment for columns.
// A single column is the base layout and yields ok=false.
func ColumnStyle(columns style.Columns, sp Spanner) (f style.Fragment, ok bool, err error) {
	if !columns.Valid() {
		return nil, false, fmt.Errorf("%w: columns %d", style.ErrInvalidVariant, columns)
	}
	if columns == 1 {
		return nil, false, nil
	}
	width, err := sp.Span(Ratio(columns), Static)
	if err != nil {
		return nil, false, err
	}
	return style.Fragment{
		"columns":   fmt.Sprintf("%s %d", width, columns),
		"columnGap": ColumnGap,
	}, true, nil
}
