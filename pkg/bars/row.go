// Package bars renders size entries as |name   size| rows fitted to a terminal.
package bars

import "strings"

const (
	// FullPrintTolerance is the widest terminal that still gets one column of rows.
	FullPrintTolerance = 75

	// MinColumns is the narrowest supported terminal.
	MinColumns = 30

	// RowGutter is the space left free after each row.
	RowGutter = 2

	delimiter       = "|"
	delimitersWidth = 2 * len(delimiter)
)

// Budget returns the columns available to one row.
// Terminals wider than FullPrintTolerance are split into two halves.
func Budget(columns uint) uint {
	if columns > FullPrintTolerance {
		return columns / 2
	}
	return columns
}

// RowWidth is the display width of a row whose content fits.
func RowWidth(columns uint) uint {
	return saturatingSub(Budget(columns), RowGutter)
}

// Padding returns the number of spaces between name and sizeText.
// Content wider than the row gets no padding and is never truncated.
func Padding(columns uint, name, sizeText string) uint {
	used := uint(DisplayWidth(name) + len(sizeText) + delimitersWidth)
	return saturatingSub(RowWidth(columns), used)
}

// FormatRow returns an unstyled row without the trailing newline.
func FormatRow(columns uint, name, sizeText string) string {
	name = normalizeName(name)
	var sb strings.Builder
	writeRow(&sb, columns, name, sizeText, sizeText)
	return sb.String()
}

func writeRow(sb *strings.Builder, columns uint, name, sizeText, styledSize string) {
	padding := Padding(columns, name, sizeText)
	sb.Grow(len(name) + int(padding) + len(styledSize) + delimitersWidth)
	sb.WriteString(delimiter)
	sb.WriteString(name)
	sb.WriteString(strings.Repeat(" ", int(padding)))
	sb.WriteString(styledSize)
	sb.WriteString(delimiter)
}

func saturatingSub(a, b uint) uint {
	if b > a {
		return 0
	}
	return a - b
}
