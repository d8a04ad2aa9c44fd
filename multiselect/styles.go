package multiselect

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the widget.
type Styles struct {
	Shell         lipgloss.Style
	ShellFocused  lipgloss.Style
	ShellDisabled lipgloss.Style

	// Chip must not carry horizontal padding or margins; the widget lays
	// out chip segments itself to hit-test the close mark.
	Chip      lipgloss.Style
	ChipClose lipgloss.Style

	Input       lipgloss.Style
	Placeholder lipgloss.Style

	ArrowColor lipgloss.Color

	Panel             lipgloss.Style
	Option            lipgloss.Style
	OptionHighlighted lipgloss.Style
	Empty             lipgloss.Style
	Loading           lipgloss.Style

	ScrollTrack lipgloss.Style
	ScrollThumb lipgloss.Style
}

// DefaultStyles returns the stock dark-terminal palette.
func DefaultStyles() Styles {
	chipBg := lipgloss.Color("#614b79")
	return Styles{
		Shell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		ShellFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		ShellDisabled: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Faint(true),
		Chip: lipgloss.NewStyle().
			Background(chipBg).
			Foreground(lipgloss.Color("255")),
		ChipClose: lipgloss.NewStyle().
			Background(chipBg).
			Foreground(lipgloss.Color("252")),
		Input:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ArrowColor:  lipgloss.Color("245"),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")),
		Option:            lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionHighlighted: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("255")),
		Empty:             lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Loading:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		ScrollTrack:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollThumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}
}
