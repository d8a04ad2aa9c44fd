// Package icons holds the small decorative glyphs drawn by the multiselect
// widget. They carry no behaviour: a caller renders them and places the
// result wherever it needs an indicator.
package icons

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Direction is where an Arrow points.
type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
)

// DefaultColor matches the grey used for secondary text in the widget.
const DefaultColor = lipgloss.Color("245")

// Arrow is the expand indicator. The zero value points down, which is the
// resting state of a closed dropdown.
type Arrow struct {
	Color     lipgloss.Color
	Direction Direction
	Width     int // cells; the glyph is centred and padded to this width
}

// NewArrow returns a downward arrow in the default colour.
func NewArrow() Arrow {
	return Arrow{Color: DefaultColor, Direction: Down, Width: 1}
}

// Glyph returns the unstyled character for the arrow's direction.
func (a Arrow) Glyph() string {
	switch a.Direction {
	case Up:
		return "▴"
	case Right:
		return "▸"
	case Left:
		return "◂"
	default:
		return "▾"
	}
}

// Flipped returns the arrow rotated by 180 degrees.
func (a Arrow) Flipped() Arrow {
	switch a.Direction {
	case Up:
		a.Direction = Down
	case Down:
		a.Direction = Up
	case Left:
		a.Direction = Right
	case Right:
		a.Direction = Left
	}
	return a
}

// Render draws the arrow.
func (a Arrow) Render() string {
	return render(a.Glyph(), a.Color, a.Width)
}

// Close is the removal mark drawn inside a chip. It is unstyled: the chip
// supplies colour and background around it.
type Close struct{}

// NewClose returns the close mark.
func NewClose() Close {
	return Close{}
}

// Glyph returns the close character.
func (c Close) Glyph() string {
	return "✕"
}

func render(glyph string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(color)
	}
	glyphWidth := ansi.StringWidth(glyph)
	if width <= glyphWidth {
		return style.Render(glyph)
	}
	left := (width - glyphWidth) / 2
	right := width - glyphWidth - left
	return strings.Repeat(" ", left) + style.Render(glyph) + strings.Repeat(" ", right)
}
