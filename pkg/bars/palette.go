package bars

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/filetug/dutug/pkg/fsutils"
)

// Styler decorates the size text of a row.
// The returned string must occupy the same columns as text.
type Styler interface {
	StyleSize(text string, size uint64) string
}

// PlainStyler leaves size text as is.
type PlainStyler struct{}

func (PlainStyler) StyleSize(text string, _ uint64) string {
	return text
}

// SizeColor picks a colour by the magnitude of size.
func SizeColor(size uint64) tcell.Color {
	switch {
	case size >= fsutils.TB:
		return tcell.ColorOrangeRed
	case size >= fsutils.GB:
		return tcell.ColorYellow
	case size >= fsutils.MB:
		return tcell.ColorLightGreen
	case size >= fsutils.KB:
		return tcell.ColorLightSkyBlue
	case size > 0:
		return tcell.ColorDefault
	default:
		return tcell.ColorGray
	}
}

// ColorStyler colours size text through a lipgloss renderer,
// which drops the escapes the output profile can not show.
type ColorStyler struct {
	renderer *lipgloss.Renderer
	styles   map[tcell.Color]lipgloss.Style
}

func NewColorStyler(renderer *lipgloss.Renderer) *ColorStyler {
	return &ColorStyler{
		renderer: renderer,
		styles:   make(map[tcell.Color]lipgloss.Style),
	}
}

func (s *ColorStyler) StyleSize(text string, size uint64) string {
	color := SizeColor(size)
	if color == tcell.ColorDefault {
		return text
	}
	style, ok := s.styles[color]
	if !ok {
		style = s.renderer.NewStyle().Foreground(lipglossColor(color))
		s.styles[color] = style
	}
	return style.Render(text)
}

func lipglossColor(c tcell.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", c.Hex()))
}
