package multiselect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"multiselect/icons"
)

const minInputWidth = 8

type hitKind int

const (
	hitShell hitKind = iota
	hitPanel
	hitChipClose
	hitOption
)

// region is a clickable rectangle in widget-local cells; x1 and y1 are
// exclusive.
type region struct {
	kind           hitKind
	index          int
	x0, y0, x1, y1 int
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// hitTest prefers chip and option regions over the shell and panel that
// enclose them.
func hitTest(regions []region, x, y int) (region, bool) {
	var fallback region
	found := false
	for _, r := range regions {
		if !r.contains(x, y) {
			continue
		}
		if r.kind == hitChipClose || r.kind == hitOption {
			return r, true
		}
		if !found {
			fallback, found = r, true
		}
	}
	return fallback, found
}

// View implements tea.Model. It also records the layout used to resolve
// clicks, so hosts must render before forwarding pointer events.
func (m *Model) View() string {
	shell, regions := m.renderShell()
	out := shell

	if m.state.IsOpen() {
		panel, panelRegions := m.renderPanel(lipgloss.Width(shell))
		shift := lipgloss.Height(shell)
		for _, r := range panelRegions {
			r.y0 += shift
			r.y1 += shift
			regions = append(regions, r)
		}
		out = lipgloss.JoinVertical(lipgloss.Left, shell, panel)
	}

	m.regions = regions
	m.width = lipgloss.Width(out)
	m.height = lipgloss.Height(out)
	return out
}

func (m *Model) shellStyle() lipgloss.Style {
	switch {
	case m.cfg.Disabled:
		return m.styles.ShellDisabled
	case m.focused:
		return m.styles.ShellFocused
	default:
		return m.styles.Shell
	}
}

func (m *Model) renderShell() (string, []region) {
	inner := m.cfg.Width
	arrowWidth := 0
	if !m.cfg.HideArrow {
		arrowWidth = 2
	}
	avail := inner - arrowWidth
	if avail < minInputWidth {
		avail = minInputWidth
	}

	var (
		lines   []string
		line    strings.Builder
		x       int
		regions []region
	)
	breakLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		x = 0
	}

	for i, o := range m.state.selected {
		chip, closeAt, closeWidth := m.renderChip(o, avail)
		w := ansi.StringWidth(chip)
		if x > 0 && x+w > avail {
			breakLine()
		}
		y := len(lines)
		regions = append(regions, region{
			kind:  hitChipClose,
			index: i,
			x0:    x + closeAt,
			x1:    x + closeAt + closeWidth,
			y0:    y,
			y1:    y + 1,
		})
		line.WriteString(chip)
		x += w
		if x < avail {
			line.WriteString(" ")
			x++
		}
	}

	inputWidth := avail - x
	if inputWidth < minInputWidth && x > 0 {
		breakLine()
		inputWidth = avail
	}
	line.WriteString(m.renderInput(inputWidth))
	lines = append(lines, line.String())

	for i, l := range lines {
		l = padRight(l, avail)
		if arrowWidth > 0 {
			if i == 0 {
				l += " " + m.renderArrow()
			} else {
				l += strings.Repeat(" ", arrowWidth)
			}
		}
		lines[i] = l
	}

	style := m.shellStyle()
	rendered := style.Render(strings.Join(lines, "\n"))

	left := style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	top := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
	for i := range regions {
		regions[i].x0 += left
		regions[i].x1 += left
		regions[i].y0 += top
		regions[i].y1 += top
	}
	regions = append(regions, region{
		kind: hitShell,
		x1:   lipgloss.Width(rendered),
		y1:   lipgloss.Height(rendered),
	})
	return rendered, regions
}

// renderChip returns the chip and the offset and width of its close mark.
func (m *Model) renderChip(o Option, avail int) (string, int, int) {
	closeMark := m.cfg.CustomCloseIcon
	if closeMark == "" {
		closeMark = icons.NewClose().Glyph()
	}
	closeWidth := ansi.StringWidth(closeMark)

	label := o.Label()
	if maxLabel := avail - closeWidth - 3; ansi.StringWidth(label) > maxLabel {
		if maxLabel < 1 {
			maxLabel = 1
		}
		label = ansi.Truncate(label, maxLabel, "…")
	}

	head := m.styles.Chip.Render(" " + label + " ")
	chip := head + m.styles.ChipClose.Render(closeMark) + m.styles.Chip.Render(" ")
	return chip, ansi.StringWidth(head), closeWidth
}

func (m *Model) renderInput(width int) string {
	// the cursor takes one cell beyond Width
	m.input.Width = width - 1
	if m.input.Width < 1 {
		m.input.Width = 1
	}

	var view string
	switch placeholder := m.placeholder(); {
	case m.input.Value() != "" || placeholder == "":
		view = m.input.View()
	case m.focused:
		// block cursor over the first placeholder rune
		r := []rune(placeholder)
		view = m.styles.Placeholder.Reverse(true).Render(string(r[:1])) +
			m.styles.Placeholder.Render(string(r[1:]))
	default:
		view = m.styles.Placeholder.Render(placeholder)
	}
	return fit(view, width)
}

// placeholder is drawn by the widget rather than the text input so it can
// be hidden once something is selected.
func (m *Model) placeholder() string {
	if m.cfg.HidePlaceholder && len(m.state.selected) > 0 {
		return ""
	}
	return m.cfg.Placeholder
}

func (m *Model) renderArrow() string {
	if m.cfg.CustomArrow != "" {
		custom := m.cfg.CustomArrow
		if m.state.IsOpen() && m.cfg.CustomArrowOpen != "" {
			custom = m.cfg.CustomArrowOpen
		}
		return ansi.Truncate(custom, 1, "")
	}
	arrow := icons.NewArrow()
	if m.styles.ArrowColor != "" {
		arrow.Color = m.styles.ArrowColor
	}
	if m.state.IsOpen() {
		arrow = arrow.Flipped()
	}
	return arrow.Render()
}

// renderPanel draws exactly one of the loading, empty and populated states.
func (m *Model) renderPanel(totalWidth int) (string, []region) {
	style := m.styles.Panel
	inner := totalWidth - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var (
		lines   []string
		regions []region
	)
	switch {
	case m.cfg.Loading:
		content := m.styles.Loading.Render(m.cfg.LoadingMessage)
		if m.cfg.LoadingView != nil {
			content = m.cfg.LoadingView()
		}
		for _, l := range strings.Split(content, "\n") {
			lines = append(lines, fit(l, inner))
		}
	case len(m.state.filtered) == 0:
		lines = append(lines, fit(m.styles.Empty.Render(" "+m.cfg.EmptyRecordMsg), inner))
	default:
		lines, regions = m.renderOptions(inner)
	}

	rendered := style.Render(strings.Join(lines, "\n"))

	left := style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	top := style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
	for i := range regions {
		regions[i].x0 += left
		regions[i].x1 += left
		regions[i].y0 += top
		regions[i].y1 += top
	}
	regions = append(regions, region{
		kind: hitPanel,
		x1:   lipgloss.Width(rendered),
		y1:   lipgloss.Height(rendered),
	})
	return rendered, regions
}

func (m *Model) renderOptions(inner int) ([]string, []region) {
	total := len(m.state.filtered)
	start, end := m.state.Window(m.cfg.MaxVisible)
	visible := end - start

	rowWidth := inner
	var bar []string
	if total > visible {
		rowWidth--
		bar = scrollbar(m.styles, visible, total, start)
	}

	lines := make([]string, 0, visible)
	regions := make([]region, 0, visible)
	for i := start; i < end; i++ {
		label := " " + m.state.filtered[i].Label() + " "
		style := m.styles.Option
		if i == m.state.cursor {
			style = m.styles.OptionHighlighted
		}
		row := style.Render(padRight(truncate(label, rowWidth), rowWidth))
		if bar != nil {
			row += bar[i-start]
		}
		row = fit(row, inner)

		y := len(lines)
		lines = append(lines, row)
		regions = append(regions, region{
			kind:  hitOption,
			index: i,
			x1:    rowWidth,
			y0:    y,
			y1:    y + 1,
		})
	}
	return lines, regions
}

// scrollbar returns one cell per visible row: the thumb marks the window
// over the full list.
func scrollbar(styles Styles, height, total, offset int) []string {
	out := make([]string, height)
	thumb := height * height / total
	if thumb < 1 {
		thumb = 1
	}
	pos := 0
	if scrollable := total - height; scrollable > 0 {
		pos = offset * (height - thumb) / scrollable
	}
	for i := range out {
		if i >= pos && i < pos+thumb {
			out[i] = styles.ScrollThumb.Render("┃")
		} else {
			out[i] = styles.ScrollTrack.Render("│")
		}
	}
	return out
}

func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	return padRight(s, width)
}
