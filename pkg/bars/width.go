package bars

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Ambiguous-width runes are measured as narrow regardless of locale.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return widthCondition.StringWidth(s)
}

// normalizeName composes decomposed sequences so that names read from
// filesystems that store NFD print and measure the same as typed text.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}
