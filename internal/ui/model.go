package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/multiselect"
)

const (
	marginX = 2
	marginY = 1
)

// widget is one configured multiselect plus the data the host delivers to it
type widget struct {
	model    *multiselect.Model
	label    string
	delay    time.Duration
	options  []multiselect.Option
	selected []multiselect.Option
}

// Model is the demo screen: a column of widgets sharing one pointer document
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	doc    *multiselect.Document

	widgets []*widget
	focus   int

	width  int
	height int
	help   help.Model
	keys   keyMap
	styles *Styles

	status      string
	statusStyle lipgloss.Style
	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates the demo model from cfg. Widgets with a load delay start
// in loading mode and get their options from Init.
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	m := &Model{
		bus:    bus,
		config: cfg,
		doc:    multiselect.NewDocument(),
		help:   help.New(),
		styles: NewStyles(),
	}
	m.statusStyle = m.styles.Status

	for i, wc := range cfg.Widgets {
		options, selected, err := wc.BuildOptions()
		if err != nil {
			return nil, err
		}
		delay, err := wc.Delay()
		if err != nil {
			return nil, err
		}

		mc := wc.MultiselectConfig(cfg.UISettings)
		if mc.ID == "" {
			mc.ID = fmt.Sprintf("%s-%d", multiselect.DefaultID, i)
		}
		id := mc.ID
		mc.OnSelect = func(sel []multiselect.Option) {
			log.Printf("widget %s selection: %v", id, multiselect.Labels(sel))
		}
		if delay > 0 {
			mc.Loading = true
		} else {
			mc.Options = options
			mc.SelectedValues = selected
		}

		label := wc.Label
		if label == "" {
			label = id
		}
		w := &widget{
			model:    multiselect.New(mc),
			label:    label,
			delay:    delay,
			options:  options,
			selected: selected,
		}
		w.model.Mount(m.doc)
		m.widgets = append(m.widgets, w)
	}

	widgetKeys := multiselect.DefaultKeyMap()
	if len(m.widgets) > 0 {
		widgetKeys = m.widgets[0].model.KeyMap()
	}
	m.keys = newKeyMap(widgetKeys)
	m.focus = -1

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Close unmounts every widget from the pointer document
func (m *Model) Close() {
	for _, w := range m.widgets {
		w.model.Unmount()
	}
}

// Init focuses the first enabled widget and starts the simulated loads
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.focusWidget(m.nextEnabled(-1, 1))}

	for i, w := range m.widgets {
		if w.delay <= 0 {
			continue
		}
		m.publish(eventbus.OptionsRequestedEvent{WidgetID: w.model.ID()})
		cmds = append(cmds, tea.Tick(w.delay, func(time.Time) tea.Msg {
			return optionsLoadedMsg{index: i, options: w.options, selected: w.selected}
		}))
	}

	m.publish(eventbus.AppReadyEvent{Widgets: len(m.widgets)})
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.focusWidget(m.nextEnabled(m.focus, 1))
		case key.Matches(msg, m.keys.Prev):
			return m, m.focusWidget(m.nextEnabled(m.focus, -1))
		case key.Matches(msg, m.keys.Help):
			return m, m.fetchHelpPager(NewHelpRenderer(m.keys).Render())
		}
		if w := m.focused(); w != nil {
			_, cmd := w.model.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.MouseMsg:
		m.doc.Dispatch(msg)
		cmds := make([]tea.Cmd, 0, len(m.widgets))
		for _, w := range m.widgets {
			_, cmd := w.model.Update(msg)
			cmds = append(cmds, cmd)
		}
		// a shell click that closes the panel, or a press outside, blurs
		// the widget on its own
		if w := m.focused(); w != nil && !w.model.Focused() {
			m.focus = -1
		}
		return m, tea.Batch(cmds...)

	case multiselect.FocusMsg:
		for i, w := range m.widgets {
			if w.model.ID() == msg.ID {
				m.focus = i
			} else {
				w.model.Blur()
			}
		}
		return m, nil

	case multiselect.SelectMsg:
		labels := multiselect.Labels(msg.Selection)
		m.publish(eventbus.SelectionChangedEvent{WidgetID: msg.ID, Labels: labels})
		m.setStatus(fmt.Sprintf("%s: %s", msg.ID, strings.Join(labels, ", ")), m.styles.Status)
		return m, nil

	case optionsLoadedMsg:
		if msg.index < 0 || msg.index >= len(m.widgets) {
			return m, nil
		}
		w := m.widgets[msg.index]
		w.model.SetOptions(msg.options)
		w.model.SetSelectedValues(msg.selected)
		w.model.SetLoading(false)
		m.publish(eventbus.OptionsLoadedEvent{WidgetID: w.model.ID(), Count: len(msg.options)})
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Error showing help: %v", msg.err)
			m.setStatus(fmt.Sprintf("help: %v", msg.err), m.styles.StatusError)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and other textinput messages
	if w := m.focused(); w != nil {
		_, cmd := w.model.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ConfigSavedEvent:
		m.setStatus("saved "+e.Path, m.styles.StatusSuccess)
	case eventbus.ErrorEvent:
		m.setStatus(e.Message, m.styles.StatusError)
	}
}

// View renders the widgets top to bottom and records where each one landed
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	var lines []string
	if m.config.Title != "" {
		lines = append(lines, m.styles.Title.Render(m.config.Title), "")
	}

	for i, w := range m.widgets {
		labelStyle := m.styles.Label
		if i == m.focus {
			labelStyle = m.styles.LabelFocused
		}
		lines = append(lines, labelStyle.Render(w.label))

		w.model.SetPosition(marginX, marginY+len(lines))
		lines = append(lines, strings.Split(w.model.View(), "\n")...)
		lines = append(lines, "")
	}

	if m.status != "" {
		lines = append(lines, m.statusStyle.Render(m.status))
	}
	lines = append(lines, m.styles.Help.Render(m.help.View(m.keys)))

	indent := strings.Repeat(" ", marginX)
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Repeat("\n", marginY) + strings.Join(lines, "\n")
}

func (m *Model) focused() *widget {
	if m.focus < 0 || m.focus >= len(m.widgets) {
		return nil
	}
	return m.widgets[m.focus]
}

// nextEnabled returns the next widget after from in direction dir that is
// not disabled, or -1 when there is none.
func (m *Model) nextEnabled(from, dir int) int {
	n := len(m.widgets)
	if n == 0 {
		return -1
	}
	if from < 0 && dir < 0 {
		from = 0
	}
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if !m.widgets[i].model.Disabled() {
			return i
		}
	}
	return -1
}

// focusWidget moves keyboard focus to widget i and closes the one it left
func (m *Model) focusWidget(i int) tea.Cmd {
	if prev := m.focused(); prev != nil && i != m.focus {
		prev.model.Close()
		prev.model.Blur()
	}
	m.focus = i
	if w := m.focused(); w != nil {
		return w.model.Focus()
	}
	return nil
}

func (m *Model) setStatus(text string, style lipgloss.Style) {
	m.status = text
	m.statusStyle = style
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		m.setStatus("help pager unavailable", m.styles.StatusError)
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
